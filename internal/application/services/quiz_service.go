package services

import (
	"context"

	"studytrack/internal/application/command"
	"studytrack/internal/application/session"
	"studytrack/internal/domain"
	"studytrack/internal/domain/entities"
	"studytrack/internal/domain/repositories"
)

type QuizService struct {
	quizRepo repositories.QuizRepository
}

func NewQuizService(quizRepo repositories.QuizRepository) *QuizService {
	return &QuizService{quizRepo: quizRepo}
}

// SubmitResult records a finished quiz attempt for the session user.
func (s *QuizService) SubmitResult(ctx context.Context, sess *session.Session, cmd *command.SubmitQuizResultCommand) (*command.SubmitQuizResultCommandResult, error) {
	user := sess.Current()
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}

	result, err := entities.NewQuizResult(user.ID, cmd.Topic, cmd.Score, cmd.Total)
	if err != nil {
		return nil, err
	}

	stored, err := s.quizRepo.InsertResult(ctx, result)
	if err != nil {
		return nil, err
	}

	return &command.SubmitQuizResultCommandResult{Result: stored}, nil
}

// ListMine returns the session user's quiz attempts, newest first.
func (s *QuizService) ListMine(ctx context.Context, sess *session.Session) ([]*entities.QuizResult, error) {
	user := sess.Current()
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}
	return s.quizRepo.ListByUser(ctx, user.ID)
}
