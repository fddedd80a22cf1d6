package mapper

import (
	"studytrack/internal/application/common"
	"studytrack/internal/domain/entities"
)

func NewUserResultFromEntity(user *entities.User) *common.UserResult {
	return &common.UserResult{
		ID:          user.ID,
		Email:       user.Email,
		Name:        user.Name,
		Role:        user.Role,
		CreatedAt:   user.CreatedAt,
		LoginCount:  user.LoginCount,
		LastLoginAt: user.LastLoginAt,
		Points:      user.Points,
		Badges:      user.Badges,
		Onboarded:   user.Onboarded,
		Preferences: user.Preferences,
	}
}
