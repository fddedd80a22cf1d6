package repositories

import (
	"context"

	"github.com/google/uuid"

	"studytrack/internal/domain/entities"
)

type MockTestRepository interface {
	Create(ctx context.Context, test *entities.MockTest) (*entities.MockTest, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entities.MockTest, error)
	List(ctx context.Context, offset, limit int) ([]*entities.MockTest, int, error)
	InsertResult(ctx context.Context, result *entities.MockTestResult) (*entities.MockTestResult, error)
}
