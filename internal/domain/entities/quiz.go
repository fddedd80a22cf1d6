package entities

import (
	"time"

	"github.com/google/uuid"

	"studytrack/internal/domain"
)

// QuizResult is one completed quiz attempt by a user.
type QuizResult struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Topic     string    `json:"topic"`
	Score     int       `json:"score"`
	Total     int       `json:"total"`
	CreatedAt time.Time `json:"created_at"`
}

func NewQuizResult(userID uuid.UUID, topic string, score, total int) (*QuizResult, error) {
	if topic == "" {
		return nil, &domain.ValidationError{Field: "topic", Reason: "must not be empty"}
	}
	if total <= 0 {
		return nil, &domain.ValidationError{Field: "total", Reason: "must be positive"}
	}
	if score < 0 || score > total {
		return nil, &domain.ValidationError{Field: "score", Reason: "must be between 0 and total"}
	}
	return &QuizResult{
		ID:        uuid.New(),
		UserID:    userID,
		Topic:     topic,
		Score:     score,
		Total:     total,
		CreatedAt: time.Now().UTC(),
	}, nil
}
