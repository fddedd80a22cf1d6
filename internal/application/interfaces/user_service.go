package interfaces

import (
	"context"

	"github.com/google/uuid"

	"studytrack/internal/application/command"
	"studytrack/internal/application/common"
	"studytrack/internal/application/session"
	"studytrack/internal/domain/entities"
)

type UserService interface {
	Authenticate(ctx context.Context, sess *session.Session, cmd *command.AuthenticateCommand) (*command.AuthenticateCommandResult, error)
	Logout(sess *session.Session)
	CurrentUser(sess *session.Session) *common.UserResult
	GetProfile(ctx context.Context, id uuid.UUID) (*common.UserResult, error)
	CompleteOnboarding(ctx context.Context, sess *session.Session) (*common.UserResult, error)
	UpdatePreferences(ctx context.Context, sess *session.Session, prefs entities.Preferences) (*common.UserResult, error)
	AwardPoints(ctx context.Context, user *entities.User, points int) (*entities.User, error)
}
