package command

import "studytrack/internal/domain/entities"

type SubmitDoubtCommand struct {
	Topic    string
	Question string
}

type SubmitDoubtCommandResult struct {
	Result *entities.Doubt
}
