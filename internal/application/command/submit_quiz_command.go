package command

import "studytrack/internal/domain/entities"

type SubmitQuizResultCommand struct {
	Topic string
	Score int
	Total int
}

type SubmitQuizResultCommandResult struct {
	Result *entities.QuizResult
}
