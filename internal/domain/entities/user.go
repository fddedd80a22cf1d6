package entities

import (
	"time"

	"github.com/google/uuid"

	"studytrack/internal/domain"
)

type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
)

// ParseRole validates an asserted role string.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleStudent, RoleTeacher:
		return Role(s), nil
	}
	return "", &domain.ValidationError{Field: "role", Reason: "must be student or teacher"}
}

type Preferences struct {
	Language      string `json:"language"`
	Notifications bool   `json:"notifications"`
	DarkMode      bool   `json:"dark_mode"`
}

func DefaultPreferences() Preferences {
	return Preferences{
		Language:      "English",
		Notifications: true,
		DarkMode:      true,
	}
}

type User struct {
	ID              uuid.UUID
	Email           string
	Name            string
	Role            Role
	CreatedAt       time.Time
	LoginCount      int
	LastLoginAt     time.Time
	Points          int
	Badges          []string
	Logs            []string
	Groups          []string
	DifficultTopics []string
	Onboarded       bool
	Preferences     Preferences
}

// NewUser builds a first-login user with the default field set.
func NewUser(email, name string, role Role) *User {
	now := time.Now().UTC()
	return &User{
		ID:              uuid.New(),
		Email:           email,
		Name:            name,
		Role:            role,
		CreatedAt:       now,
		LoginCount:      1,
		LastLoginAt:     now,
		Points:          0,
		Badges:          make([]string, 0),
		Logs:            make([]string, 0),
		Groups:          make([]string, 0),
		DifficultTopics: make([]string, 0),
		Onboarded:       false,
		Preferences:     DefaultPreferences(),
	}
}

func (u *User) validate() error {
	if u.Email == "" {
		return &domain.ValidationError{Field: "email", Reason: "must not be empty"}
	}
	if u.Name == "" {
		return &domain.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if _, err := ParseRole(string(u.Role)); err != nil {
		return err
	}
	return nil
}

// RecordLogin mutates the counters touched on every successful login.
func (u *User) RecordLogin() {
	u.LoginCount++
	u.LastLoginAt = time.Now().UTC()
}

func (u *User) AwardPoints(points int) {
	u.Points += points
}

func (u *User) CompleteOnboarding() {
	u.Onboarded = true
}

func (u *User) SetPreferences(p Preferences) {
	u.Preferences = p
}
