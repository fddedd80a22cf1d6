package entities

import (
	"github.com/google/uuid"

	"studytrack/internal/domain"
)

// StudyLog is created by its owner and immutable afterwards.
type StudyLog struct {
	ID       uuid.UUID `json:"id"`
	UserID   uuid.UUID `json:"user_id"`
	Date     string    `json:"date"`
	Subject  string    `json:"subject"`
	Topics   []string  `json:"topics"`
	Notes    string    `json:"notes"`
	Homework string    `json:"homework"`
	Points   int       `json:"points"`
}

func NewStudyLog(userID uuid.UUID, date, subject string, topics []string, notes, homework string, points int) (*StudyLog, error) {
	if date == "" {
		return nil, &domain.ValidationError{Field: "date", Reason: "must not be empty"}
	}
	if subject == "" {
		return nil, &domain.ValidationError{Field: "subject", Reason: "must not be empty"}
	}
	if points < 0 {
		return nil, &domain.ValidationError{Field: "points", Reason: "must not be negative"}
	}
	if topics == nil {
		topics = make([]string, 0)
	}
	return &StudyLog{
		ID:       uuid.New(),
		UserID:   userID,
		Date:     date,
		Subject:  subject,
		Topics:   topics,
		Notes:    notes,
		Homework: homework,
		Points:   points,
	}, nil
}
