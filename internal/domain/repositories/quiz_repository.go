package repositories

import (
	"context"

	"github.com/google/uuid"

	"studytrack/internal/domain/entities"
)

type QuizRepository interface {
	InsertResult(ctx context.Context, result *entities.QuizResult) (*entities.QuizResult, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.QuizResult, error)
}
