package services

import (
	"context"

	"studytrack/internal/application/command"
	"studytrack/internal/application/session"
	"studytrack/internal/domain"
	"studytrack/internal/domain/entities"
	"studytrack/internal/domain/repositories"
)

type ClassService struct {
	classRepo repositories.ClassDataRepository
}

func NewClassService(classRepo repositories.ClassDataRepository) *ClassService {
	return &ClassService{classRepo: classRepo}
}

// List returns the class-data records, newest first. Reads go through the
// TTL cache wired around the repository.
func (s *ClassService) List(ctx context.Context) ([]*entities.ClassData, error) {
	return s.classRepo.List(ctx)
}

// Upsert records what was covered in class, keyed on (date, subject).
// Teacher only.
func (s *ClassService) Upsert(ctx context.Context, sess *session.Session, cmd *command.UpsertClassDataCommand) (*command.UpsertClassDataCommandResult, error) {
	if sess.Current() == nil {
		return nil, domain.ErrUnauthenticated
	}
	if !sess.HasRole(entities.RoleTeacher) {
		return nil, domain.ErrForbidden
	}

	data, err := entities.NewClassData(cmd.Date, cmd.Subject, cmd.Topics, cmd.Homework, cmd.Notes)
	if err != nil {
		return nil, err
	}

	stored, err := s.classRepo.Upsert(ctx, data)
	if err != nil {
		return nil, err
	}

	return &command.UpsertClassDataCommandResult{Result: stored}, nil
}
