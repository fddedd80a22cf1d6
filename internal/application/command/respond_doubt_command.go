package command

import (
	"github.com/google/uuid"

	"studytrack/internal/domain/entities"
)

type RespondDoubtCommand struct {
	DoubtID  uuid.UUID
	Response string
}

type RespondDoubtCommandResult struct {
	Result *entities.Doubt
}
