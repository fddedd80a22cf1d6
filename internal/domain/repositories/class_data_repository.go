package repositories

import (
	"context"

	"studytrack/internal/domain/entities"
)

type ClassDataRepository interface {
	List(ctx context.Context) ([]*entities.ClassData, error)
	// Upsert inserts or replaces the row keyed on (date, subject).
	Upsert(ctx context.Context, data *entities.ClassData) (*entities.ClassData, error)
}
