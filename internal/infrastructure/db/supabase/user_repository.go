package supabase

import (
	"context"
	"fmt"
	"net/url"

	"github.com/google/uuid"

	"studytrack/internal/domain"
	"studytrack/internal/domain/entities"
	"studytrack/internal/domain/repositories"
)

const usersTable = "users"

type UserRepository struct {
	client *Client
}

func NewUserRepository(client *Client) repositories.UserRepository {
	return &UserRepository{client: client}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error) {
	payload := newUserModel(user.GetUser())

	var rows []userModel
	if err := r.client.Insert(ctx, usersTable, payload, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.StorageError("insert users", fmt.Errorf("store returned no representation"))
	}

	return rows[0].toEntity(), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return r.findOne(ctx, "id", id.String())
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.findOne(ctx, "email", email)
}

func (r *UserRepository) findOne(ctx context.Context, column, value string) (*entities.User, error) {
	q := url.Values{}
	q.Set(column, Eq(value))

	var rows []userModel
	if err := r.client.Select(ctx, usersTable, q, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrNotFound
	}

	return rows[0].toEntity(), nil
}

func (r *UserRepository) Update(ctx context.Context, user *entities.User) (*entities.User, error) {
	q := url.Values{}
	q.Set("id", Eq(user.ID.String()))

	payload := newUserModel(user)

	var rows []userModel
	if err := r.client.Update(ctx, usersTable, q, payload, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrNotFound
	}

	return rows[0].toEntity(), nil
}
