package entities

import (
	"time"

	"github.com/google/uuid"

	"studytrack/internal/domain"
)

// ClassData is a teacher-maintained record of what was covered in class.
// Upserts are keyed on (date, subject).
type ClassData struct {
	ID        uuid.UUID `json:"id"`
	Date      string    `json:"date"`
	Subject   string    `json:"subject"`
	Topics    []string  `json:"topics"`
	Homework  string    `json:"homework"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

func NewClassData(date, subject string, topics []string, homework, notes string) (*ClassData, error) {
	if date == "" {
		return nil, &domain.ValidationError{Field: "date", Reason: "must not be empty"}
	}
	if subject == "" {
		return nil, &domain.ValidationError{Field: "subject", Reason: "must not be empty"}
	}
	if topics == nil {
		topics = make([]string, 0)
	}
	return &ClassData{
		ID:        uuid.New(),
		Date:      date,
		Subject:   subject,
		Topics:    topics,
		Homework:  homework,
		Notes:     notes,
		CreatedAt: time.Now().UTC(),
	}, nil
}
