package command

import "studytrack/internal/domain/entities"

type CreateStudyLogCommand struct {
	Date     string
	Subject  string
	Topics   []string
	Notes    string
	Homework string
	Points   int
}

type CreateStudyLogCommandResult struct {
	Result *entities.StudyLog
}
