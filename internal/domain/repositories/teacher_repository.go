package repositories

import (
	"context"

	"studytrack/internal/domain/entities"
)

// TeacherRepository reads the externally curated teacher credentials table.
type TeacherRepository interface {
	FindByEmail(ctx context.Context, email string) (*entities.TeacherCredential, error)
}
