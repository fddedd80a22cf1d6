package entities

import (
	"time"

	"github.com/google/uuid"

	"studytrack/internal/domain"
)

// MockTest is a teacher-created test definition.
type MockTest struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Subject      string    `json:"subject"`
	TotalMarks   int       `json:"total_marks"`
	CreatedBy    string    `json:"created_by"`
	CreatedAt    time.Time `json:"created_at"`
	ScheduledFor string    `json:"scheduled_for,omitempty"`
}

func NewMockTest(title, subject string, totalMarks int, createdBy, scheduledFor string) (*MockTest, error) {
	if title == "" {
		return nil, &domain.ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if subject == "" {
		return nil, &domain.ValidationError{Field: "subject", Reason: "must not be empty"}
	}
	if totalMarks <= 0 {
		return nil, &domain.ValidationError{Field: "total_marks", Reason: "must be positive"}
	}
	return &MockTest{
		ID:           uuid.New(),
		Title:        title,
		Subject:      subject,
		TotalMarks:   totalMarks,
		CreatedBy:    createdBy,
		CreatedAt:    time.Now().UTC(),
		ScheduledFor: scheduledFor,
	}, nil
}

// MockTestResult is one user's score on a mock test.
type MockTestResult struct {
	ID         uuid.UUID `json:"id"`
	MockTestID uuid.UUID `json:"mock_test_id"`
	UserID     uuid.UUID `json:"user_id"`
	Marks      int       `json:"marks"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewMockTestResult(mockTestID, userID uuid.UUID, marks int) (*MockTestResult, error) {
	if marks < 0 {
		return nil, &domain.ValidationError{Field: "marks", Reason: "must not be negative"}
	}
	return &MockTestResult{
		ID:         uuid.New(),
		MockTestID: mockTestID,
		UserID:     userID,
		Marks:      marks,
		CreatedAt:  time.Now().UTC(),
	}, nil
}
