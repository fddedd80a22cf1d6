package supabase

import (
	"time"

	"github.com/google/uuid"

	"studytrack/internal/domain/entities"
)

// userModel mirrors the users table row shape.
type userModel struct {
	ID              uuid.UUID        `json:"id"`
	Email           string           `json:"email"`
	Name            string           `json:"name"`
	Role            string           `json:"role"`
	CreatedAt       time.Time        `json:"created_at"`
	LoginCount      int              `json:"login_count"`
	LastLoginAt     time.Time        `json:"last_login_at"`
	Points          int              `json:"points"`
	Badges          []string         `json:"badges"`
	Logs            []string         `json:"logs"`
	Groups          []string         `json:"groups"`
	DifficultTopics []string         `json:"difficult_topics"`
	Onboarded       bool             `json:"onboarded"`
	Preferences     preferencesModel `json:"preferences"`
}

type preferencesModel struct {
	Language      string `json:"language"`
	Notifications bool   `json:"notifications"`
	DarkMode      bool   `json:"dark_mode"`
}

func newUserModel(user *entities.User) userModel {
	return userModel{
		ID:              user.ID,
		Email:           user.Email,
		Name:            user.Name,
		Role:            string(user.Role),
		CreatedAt:       user.CreatedAt,
		LoginCount:      user.LoginCount,
		LastLoginAt:     user.LastLoginAt,
		Points:          user.Points,
		Badges:          user.Badges,
		Logs:            user.Logs,
		Groups:          user.Groups,
		DifficultTopics: user.DifficultTopics,
		Onboarded:       user.Onboarded,
		Preferences: preferencesModel{
			Language:      user.Preferences.Language,
			Notifications: user.Preferences.Notifications,
			DarkMode:      user.Preferences.DarkMode,
		},
	}
}

func (m *userModel) toEntity() *entities.User {
	return &entities.User{
		ID:              m.ID,
		Email:           m.Email,
		Name:            m.Name,
		Role:            entities.Role(m.Role),
		CreatedAt:       m.CreatedAt,
		LoginCount:      m.LoginCount,
		LastLoginAt:     m.LastLoginAt,
		Points:          m.Points,
		Badges:          m.Badges,
		Logs:            m.Logs,
		Groups:          m.Groups,
		DifficultTopics: m.DifficultTopics,
		Onboarded:       m.Onboarded,
		Preferences: entities.Preferences{
			Language:      m.Preferences.Language,
			Notifications: m.Preferences.Notifications,
			DarkMode:      m.Preferences.DarkMode,
		},
	}
}
