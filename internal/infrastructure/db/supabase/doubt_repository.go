package supabase

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"

	"studytrack/internal/domain"
	"studytrack/internal/domain/entities"
	"studytrack/internal/domain/repositories"
)

const doubtsTable = "doubts"

type doubtModel struct {
	ID             uuid.UUID  `json:"id"`
	Topic          string     `json:"topic"`
	Question       string     `json:"question"`
	Email          string     `json:"email"`
	CreatedAt      time.Time  `json:"created_at"`
	Response       *string    `json:"response"`
	ResponderEmail *string    `json:"responder_email"`
	RespondedAt    *time.Time `json:"responded_at"`
}

func newDoubtModel(doubt *entities.Doubt) doubtModel {
	model := doubtModel{
		ID:        doubt.ID,
		Topic:     doubt.Topic,
		Question:  doubt.Question,
		Email:     doubt.Email,
		CreatedAt: doubt.CreatedAt,
	}
	if doubt.Answered() {
		model.Response = &doubt.Response
		model.ResponderEmail = &doubt.ResponderEmail
		model.RespondedAt = doubt.RespondedAt
	}
	return model
}

func (m *doubtModel) toEntity() *entities.Doubt {
	doubt := &entities.Doubt{
		ID:          m.ID,
		Topic:       m.Topic,
		Question:    m.Question,
		Email:       m.Email,
		CreatedAt:   m.CreatedAt,
		RespondedAt: m.RespondedAt,
	}
	if m.Response != nil {
		doubt.Response = *m.Response
	}
	if m.ResponderEmail != nil {
		doubt.ResponderEmail = *m.ResponderEmail
	}
	return doubt
}

type DoubtRepository struct {
	client *Client
}

func NewDoubtRepository(client *Client) repositories.DoubtRepository {
	return &DoubtRepository{client: client}
}

func (r *DoubtRepository) Insert(ctx context.Context, doubt *entities.Doubt) (*entities.Doubt, error) {
	payload := newDoubtModel(doubt)

	var rows []doubtModel
	if err := r.client.Insert(ctx, doubtsTable, payload, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.StorageError("insert doubts", fmt.Errorf("store returned no representation"))
	}

	return rows[0].toEntity(), nil
}

func (r *DoubtRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Doubt, error) {
	q := url.Values{}
	q.Set("id", Eq(id.String()))

	var rows []doubtModel
	if err := r.client.Select(ctx, doubtsTable, q, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrNotFound
	}

	return rows[0].toEntity(), nil
}

// List returns one page ordered newest-first plus the exact total count,
// optionally filtered to a single asker. Both come from a single request.
func (r *DoubtRepository) List(ctx context.Context, askerEmail string, offset, limit int) ([]*entities.Doubt, int, error) {
	q := url.Values{}
	q.Set("order", "created_at.desc")
	if askerEmail != "" {
		q.Set("email", Eq(askerEmail))
	}

	var rows []doubtModel
	total, err := r.client.SelectRange(ctx, doubtsTable, q, offset, limit, &rows)
	if err != nil {
		return nil, 0, err
	}

	doubts := make([]*entities.Doubt, 0, len(rows))
	for i := range rows {
		doubts = append(doubts, rows[i].toEntity())
	}
	return doubts, total, nil
}

// Respond sets the response fields with a conditional update filtered on
// response=is.null, so the first responder wins at the store. Zero affected
// rows means either the doubt is gone or someone answered first.
func (r *DoubtRepository) Respond(ctx context.Context, id uuid.UUID, response, responderEmail string, respondedAt time.Time) (*entities.Doubt, error) {
	q := url.Values{}
	q.Set("id", Eq(id.String()))
	q.Set("response", "is.null")

	payload := map[string]any{
		"response":        response,
		"responder_email": responderEmail,
		"responded_at":    respondedAt,
	}

	var rows []doubtModel
	if err := r.client.Update(ctx, doubtsTable, q, payload, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		if _, err := r.FindByID(ctx, id); err != nil {
			return nil, err
		}
		return nil, domain.ErrAlreadyAnswered
	}

	return rows[0].toEntity(), nil
}
