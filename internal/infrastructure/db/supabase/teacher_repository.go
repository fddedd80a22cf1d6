package supabase

import (
	"context"
	"net/url"

	"studytrack/internal/domain"
	"studytrack/internal/domain/entities"
	"studytrack/internal/domain/repositories"
)

const teachersTable = "teachers"

type teacherModel struct {
	Email    string `json:"email"`
	Verified bool   `json:"verified"`
}

type TeacherRepository struct {
	client *Client
}

func NewTeacherRepository(client *Client) repositories.TeacherRepository {
	return &TeacherRepository{client: client}
}

func (r *TeacherRepository) FindByEmail(ctx context.Context, email string) (*entities.TeacherCredential, error) {
	q := url.Values{}
	q.Set("email", Eq(email))

	var rows []teacherModel
	if err := r.client.Select(ctx, teachersTable, q, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrNotFound
	}

	return &entities.TeacherCredential{
		Email:    rows[0].Email,
		Verified: rows[0].Verified,
	}, nil
}
