package services

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	"studytrack/internal/application/command"
	"studytrack/internal/application/common"
	"studytrack/internal/application/interfaces"
	"studytrack/internal/application/mapper"
	"studytrack/internal/application/session"
	"studytrack/internal/domain"
	"studytrack/internal/domain/entities"
	"studytrack/internal/domain/repositories"
	"studytrack/internal/messaging"
)

type UserService struct {
	userRepo    repositories.UserRepository
	teacherRepo repositories.TeacherRepository
	publisher   *messaging.Publisher
}

func NewUserService(
	userRepo repositories.UserRepository,
	teacherRepo repositories.TeacherRepository,
	publisher *messaging.Publisher,
) interfaces.UserService {
	return &UserService{
		userRepo:    userRepo,
		teacherRepo: teacherRepo,
		publisher:   publisher,
	}
}

// Authenticate resolves the asserted identity against the store and binds
// the result to the session. The stored role is immutable: asserting a
// different one fails the login. A failed authentication never leaves a
// partial identity on the session and never writes a partial user row.
func (s *UserService) Authenticate(ctx context.Context, sess *session.Session, cmd *command.AuthenticateCommand) (*command.AuthenticateCommandResult, error) {
	if cmd.Email == "" {
		sess.Clear()
		return nil, &domain.ValidationError{Field: "email", Reason: "must not be empty"}
	}
	if cmd.Name == "" {
		sess.Clear()
		return nil, &domain.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	role, err := entities.ParseRole(cmd.Role)
	if err != nil {
		sess.Clear()
		return nil, err
	}

	existing, err := s.userRepo.FindByEmail(ctx, cmd.Email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		sess.Clear()
		return nil, err
	}

	if existing != nil {
		if existing.Role != role {
			sess.Clear()
			return nil, &domain.RoleMismatchError{StoredRole: string(existing.Role)}
		}

		updated := *existing
		updated.RecordLogin()
		stored, err := s.userRepo.Update(ctx, &updated)
		if err != nil {
			sess.Clear()
			return nil, err
		}

		sess.Set(stored)
		log.Printf("User %s logged in as %s (login %d)", stored.Email, stored.Role, stored.LoginCount)
		return &command.AuthenticateCommandResult{Result: mapper.NewUserResultFromEntity(stored)}, nil
	}

	// First login. A teacher needs a verified credential before any row
	// is written, so a rejected attempt leaves no dangling user record.
	if role == entities.RoleTeacher {
		credential, err := s.teacherRepo.FindByEmail(ctx, cmd.Email)
		if errors.Is(err, domain.ErrNotFound) {
			sess.Clear()
			return nil, domain.ErrTeacherNotVerified
		}
		if err != nil {
			sess.Clear()
			return nil, err
		}
		if !credential.Verified {
			sess.Clear()
			return nil, domain.ErrTeacherNotVerified
		}
	}

	validated, err := entities.NewValidatedUser(entities.NewUser(cmd.Email, cmd.Name, role))
	if err != nil {
		sess.Clear()
		return nil, err
	}

	created, err := s.userRepo.Create(ctx, validated)
	if err != nil {
		sess.Clear()
		return nil, err
	}

	sess.Set(created)
	log.Printf("User %s registered as %s", created.Email, created.Role)
	s.publisher.Publish(messaging.SubjectUserRegistered, messaging.UserRegisteredEvent{
		UserID: created.ID.String(),
		Email:  created.Email,
		Role:   string(created.Role),
	})

	return &command.AuthenticateCommandResult{Result: mapper.NewUserResultFromEntity(created)}, nil
}

// Logout clears the session. Calling it on an empty session is a no-op.
func (s *UserService) Logout(sess *session.Session) {
	sess.Clear()
}

func (s *UserService) CurrentUser(sess *session.Session) *common.UserResult {
	user := sess.Current()
	if user == nil {
		return nil
	}
	return mapper.NewUserResultFromEntity(user)
}

func (s *UserService) GetProfile(ctx context.Context, id uuid.UUID) (*common.UserResult, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapper.NewUserResultFromEntity(user), nil
}

func (s *UserService) CompleteOnboarding(ctx context.Context, sess *session.Session) (*common.UserResult, error) {
	user := sess.Current()
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}

	updated := *user
	updated.CompleteOnboarding()
	stored, err := s.userRepo.Update(ctx, &updated)
	if err != nil {
		return nil, err
	}

	sess.Set(stored)
	return mapper.NewUserResultFromEntity(stored), nil
}

func (s *UserService) UpdatePreferences(ctx context.Context, sess *session.Session, prefs entities.Preferences) (*common.UserResult, error) {
	user := sess.Current()
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}

	updated := *user
	updated.SetPreferences(prefs)
	stored, err := s.userRepo.Update(ctx, &updated)
	if err != nil {
		return nil, err
	}

	sess.Set(stored)
	return mapper.NewUserResultFromEntity(stored), nil
}

// AwardPoints persists a points grant, e.g. for a submitted study log.
func (s *UserService) AwardPoints(ctx context.Context, user *entities.User, points int) (*entities.User, error) {
	updated := *user
	updated.AwardPoints(points)
	return s.userRepo.Update(ctx, &updated)
}
