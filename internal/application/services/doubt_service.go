package services

import (
	"context"
	"log"
	"time"

	"studytrack/internal/application/command"
	"studytrack/internal/application/query"
	"studytrack/internal/application/session"
	"studytrack/internal/domain"
	"studytrack/internal/domain/entities"
	"studytrack/internal/domain/repositories"
	"studytrack/internal/infrastructure"
	"studytrack/internal/messaging"
)

type DoubtService struct {
	doubtRepo   repositories.DoubtRepository
	userRepo    repositories.UserRepository
	rateLimiter *infrastructure.RateLimiter
	email       *infrastructure.EmailService
	publisher   *messaging.Publisher
	pageSize    int
}

func NewDoubtService(
	doubtRepo repositories.DoubtRepository,
	userRepo repositories.UserRepository,
	rateLimiter *infrastructure.RateLimiter,
	email *infrastructure.EmailService,
	publisher *messaging.Publisher,
	pageSize int,
) *DoubtService {
	return &DoubtService{
		doubtRepo:   doubtRepo,
		userRepo:    userRepo,
		rateLimiter: rateLimiter,
		email:       email,
		publisher:   publisher,
		pageSize:    pageSize,
	}
}

// Submit files a doubt for the session user. Submission is rate limited
// per asker; a call over the budget is rejected, not silently dropped.
func (s *DoubtService) Submit(ctx context.Context, sess *session.Session, cmd *command.SubmitDoubtCommand) (*command.SubmitDoubtCommandResult, error) {
	user := sess.Current()
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}

	if !s.rateLimiter.Allow(user.Email) {
		return nil, &domain.RateLimitedError{RetryAfter: s.rateLimiter.RetryAfter(user.Email)}
	}

	doubt, err := entities.NewDoubt(cmd.Topic, cmd.Question, user.Email)
	if err != nil {
		return nil, err
	}

	stored, err := s.doubtRepo.Insert(ctx, doubt)
	if err != nil {
		return nil, err
	}

	return &command.SubmitDoubtCommandResult{Result: stored}, nil
}

// List returns one page of all doubts, newest first.
func (s *DoubtService) List(ctx context.Context, page query.PageQuery) (*query.Paginated[*entities.Doubt], error) {
	return s.list(ctx, "", page)
}

// ListMine returns one page of the session user's own doubts.
func (s *DoubtService) ListMine(ctx context.Context, sess *session.Session, page query.PageQuery) (*query.Paginated[*entities.Doubt], error) {
	user := sess.Current()
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}
	return s.list(ctx, user.Email, page)
}

func (s *DoubtService) list(ctx context.Context, askerEmail string, page query.PageQuery) (*query.Paginated[*entities.Doubt], error) {
	page = page.Normalize(s.pageSize)

	items, total, err := s.doubtRepo.List(ctx, askerEmail, page.Offset(), page.PageSize)
	if err != nil {
		return nil, err
	}
	return query.NewPaginated(items, total, page), nil
}

// Respond records a teacher's answer. The first responder wins: answering
// an already-answered doubt fails with domain.ErrAlreadyAnswered. On
// success the asker is notified by mail when their preferences allow it.
func (s *DoubtService) Respond(ctx context.Context, sess *session.Session, cmd *command.RespondDoubtCommand) (*command.RespondDoubtCommandResult, error) {
	if sess.Current() == nil {
		return nil, domain.ErrUnauthenticated
	}
	if !sess.HasRole(entities.RoleTeacher) {
		return nil, domain.ErrForbidden
	}
	if cmd.Response == "" {
		return nil, &domain.ValidationError{Field: "response", Reason: "must not be empty"}
	}

	responder := sess.Current()
	answered, err := s.doubtRepo.Respond(ctx, cmd.DoubtID, cmd.Response, responder.Email, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	s.notifyAsker(ctx, answered)
	s.publisher.Publish(messaging.SubjectDoubtResponded, messaging.DoubtRespondedEvent{
		DoubtID:        answered.ID.String(),
		AskerEmail:     answered.Email,
		ResponderEmail: responder.Email,
	})

	return &command.RespondDoubtCommandResult{Result: answered}, nil
}

func (s *DoubtService) notifyAsker(ctx context.Context, doubt *entities.Doubt) {
	asker, err := s.userRepo.FindByEmail(ctx, doubt.Email)
	if err != nil {
		log.Printf("Could not load asker %s for notification: %v", doubt.Email, err)
		return
	}
	if !asker.Preferences.Notifications {
		return
	}
	if err := s.email.NotifyDoubtResponse(asker.Email, doubt.Topic, doubt.Response); err != nil {
		log.Printf("Failed to notify %s about doubt response: %v", asker.Email, err)
	}
}
