package entities

import (
	"time"

	"github.com/google/uuid"

	"studytrack/internal/domain"
)

type Doubt struct {
	ID             uuid.UUID  `json:"id"`
	Topic          string     `json:"topic"`
	Question       string     `json:"question"`
	Email          string     `json:"email"`
	CreatedAt      time.Time  `json:"created_at"`
	Response       string     `json:"response,omitempty"`
	ResponderEmail string     `json:"responder_email,omitempty"`
	RespondedAt    *time.Time `json:"responded_at,omitempty"`
}

func NewDoubt(topic, question, askerEmail string) (*Doubt, error) {
	if topic == "" {
		return nil, &domain.ValidationError{Field: "topic", Reason: "must not be empty"}
	}
	if question == "" {
		return nil, &domain.ValidationError{Field: "question", Reason: "must not be empty"}
	}
	return &Doubt{
		ID:        uuid.New(),
		Topic:     topic,
		Question:  question,
		Email:     askerEmail,
		CreatedAt: time.Now().UTC(),
	}, nil
}

func (d *Doubt) Answered() bool {
	return d.RespondedAt != nil
}
