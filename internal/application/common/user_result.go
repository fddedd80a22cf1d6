package common

import (
	"time"

	"github.com/google/uuid"

	"studytrack/internal/domain/entities"
)

// UserResult is the user shape handed outward from the application layer.
type UserResult struct {
	ID          uuid.UUID            `json:"id"`
	Email       string               `json:"email"`
	Name        string               `json:"name"`
	Role        entities.Role        `json:"role"`
	CreatedAt   time.Time            `json:"created_at"`
	LoginCount  int                  `json:"login_count"`
	LastLoginAt time.Time            `json:"last_login_at"`
	Points      int                  `json:"points"`
	Badges      []string             `json:"badges"`
	Onboarded   bool                 `json:"onboarded"`
	Preferences entities.Preferences `json:"preferences"`
}
