package command

import "studytrack/internal/domain/entities"

type UpsertClassDataCommand struct {
	Date     string
	Subject  string
	Topics   []string
	Homework string
	Notes    string
}

type UpsertClassDataCommandResult struct {
	Result *entities.ClassData
}
