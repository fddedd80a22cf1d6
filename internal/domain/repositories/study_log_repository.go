package repositories

import (
	"context"

	"github.com/google/uuid"

	"studytrack/internal/domain/entities"
)

type StudyLogRepository interface {
	Insert(ctx context.Context, log *entities.StudyLog) (*entities.StudyLog, error)
	ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*entities.StudyLog, int, error)
}
