package services

import (
	"context"

	"studytrack/internal/application/command"
	"studytrack/internal/application/query"
	"studytrack/internal/application/session"
	"studytrack/internal/domain"
	"studytrack/internal/domain/entities"
	"studytrack/internal/domain/repositories"
)

type MockTestService struct {
	testRepo repositories.MockTestRepository
	pageSize int
}

func NewMockTestService(testRepo repositories.MockTestRepository, pageSize int) *MockTestService {
	return &MockTestService{testRepo: testRepo, pageSize: pageSize}
}

// Create defines a new mock test. Teacher only.
func (s *MockTestService) Create(ctx context.Context, sess *session.Session, cmd *command.CreateMockTestCommand) (*command.CreateMockTestCommandResult, error) {
	user := sess.Current()
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}
	if !sess.HasRole(entities.RoleTeacher) {
		return nil, domain.ErrForbidden
	}

	test, err := entities.NewMockTest(cmd.Title, cmd.Subject, cmd.TotalMarks, user.Email, cmd.ScheduledFor)
	if err != nil {
		return nil, err
	}

	stored, err := s.testRepo.Create(ctx, test)
	if err != nil {
		return nil, err
	}

	return &command.CreateMockTestCommandResult{Result: stored}, nil
}

// List returns one page of mock tests, newest first.
func (s *MockTestService) List(ctx context.Context, page query.PageQuery) (*query.Paginated[*entities.MockTest], error) {
	page = page.Normalize(s.pageSize)

	items, total, err := s.testRepo.List(ctx, page.Offset(), page.PageSize)
	if err != nil {
		return nil, err
	}
	return query.NewPaginated(items, total, page), nil
}

// SubmitResult records the session user's score on an existing mock test.
func (s *MockTestService) SubmitResult(ctx context.Context, sess *session.Session, cmd *command.SubmitMockTestResultCommand) (*command.SubmitMockTestResultCommandResult, error) {
	user := sess.Current()
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}

	test, err := s.testRepo.FindByID(ctx, cmd.MockTestID)
	if err != nil {
		return nil, err
	}

	if cmd.Marks > test.TotalMarks {
		return nil, &domain.ValidationError{Field: "marks", Reason: "must not exceed the test's total marks"}
	}

	result, err := entities.NewMockTestResult(test.ID, user.ID, cmd.Marks)
	if err != nil {
		return nil, err
	}

	stored, err := s.testRepo.InsertResult(ctx, result)
	if err != nil {
		return nil, err
	}

	return &command.SubmitMockTestResultCommandResult{Result: stored}, nil
}
