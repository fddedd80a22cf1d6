package repositories

import (
	"context"

	"github.com/google/uuid"

	"studytrack/internal/domain/entities"
)

// UserRepository persists users in the remote store. Lookups return
// domain.ErrNotFound when zero rows match; transport failures wrap
// domain.ErrStorageUnavailable. The two are never conflated.
type UserRepository interface {
	Create(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) (*entities.User, error)
}
