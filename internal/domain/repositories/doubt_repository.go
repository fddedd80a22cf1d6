package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"studytrack/internal/domain/entities"
)

// DoubtRepository persists doubts. List returns one page ordered by
// created_at descending plus the exact total count.
type DoubtRepository interface {
	Insert(ctx context.Context, doubt *entities.Doubt) (*entities.Doubt, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Doubt, error)
	List(ctx context.Context, askerEmail string, offset, limit int) ([]*entities.Doubt, int, error)
	// Respond sets the response fields only if the doubt is still
	// unanswered. An already-answered doubt yields domain.ErrAlreadyAnswered.
	Respond(ctx context.Context, id uuid.UUID, response, responderEmail string, respondedAt time.Time) (*entities.Doubt, error)
}
