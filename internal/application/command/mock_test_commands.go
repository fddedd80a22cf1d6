package command

import (
	"github.com/google/uuid"

	"studytrack/internal/domain/entities"
)

type CreateMockTestCommand struct {
	Title        string
	Subject      string
	TotalMarks   int
	ScheduledFor string
}

type CreateMockTestCommandResult struct {
	Result *entities.MockTest
}

type SubmitMockTestResultCommand struct {
	MockTestID uuid.UUID
	Marks      int
}

type SubmitMockTestResultCommandResult struct {
	Result *entities.MockTestResult
}
