package services

import (
	"context"

	"studytrack/internal/application/command"
	"studytrack/internal/application/interfaces"
	"studytrack/internal/application/query"
	"studytrack/internal/application/session"
	"studytrack/internal/domain"
	"studytrack/internal/domain/entities"
	"studytrack/internal/domain/repositories"
)

type StudyLogService struct {
	logRepo     repositories.StudyLogRepository
	userService interfaces.UserService
	pageSize    int
}

func NewStudyLogService(logRepo repositories.StudyLogRepository, userService interfaces.UserService, pageSize int) *StudyLogService {
	return &StudyLogService{
		logRepo:     logRepo,
		userService: userService,
		pageSize:    pageSize,
	}
}

// Create stores a study log owned by the session user and awards the log's
// points to them. Logs are immutable once stored.
func (s *StudyLogService) Create(ctx context.Context, sess *session.Session, cmd *command.CreateStudyLogCommand) (*command.CreateStudyLogCommandResult, error) {
	user := sess.Current()
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}

	log, err := entities.NewStudyLog(user.ID, cmd.Date, cmd.Subject, cmd.Topics, cmd.Notes, cmd.Homework, cmd.Points)
	if err != nil {
		return nil, err
	}

	stored, err := s.logRepo.Insert(ctx, log)
	if err != nil {
		return nil, err
	}

	if stored.Points > 0 {
		updated, err := s.userService.AwardPoints(ctx, user, stored.Points)
		if err != nil {
			return nil, err
		}
		sess.Set(updated)
	}

	return &command.CreateStudyLogCommandResult{Result: stored}, nil
}

// History returns one page of the session user's study logs, newest first.
func (s *StudyLogService) History(ctx context.Context, sess *session.Session, page query.PageQuery) (*query.Paginated[*entities.StudyLog], error) {
	user := sess.Current()
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}

	page = page.Normalize(s.pageSize)

	items, total, err := s.logRepo.ListByUser(ctx, user.ID, page.Offset(), page.PageSize)
	if err != nil {
		return nil, err
	}
	return query.NewPaginated(items, total, page), nil
}
