package command

import "studytrack/internal/application/common"

type AuthenticateCommand struct {
	Email string
	Name  string
	Role  string
}

type AuthenticateCommandResult struct {
	Result *common.UserResult
}
