package cached

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"studytrack/internal/domain/entities"
	"studytrack/internal/domain/repositories"
	"studytrack/internal/infrastructure"
)

// UserRepository is a read-through TTL cache around another UserRepository.
// Cache trouble is logged and bypassed; it never replaces a store answer.
// Writes invalidate the exact keys they touch.
type UserRepository struct {
	inner repositories.UserRepository
	cache infrastructure.Cache
	ttl   time.Duration
}

func NewUserRepository(inner repositories.UserRepository, cache infrastructure.Cache, ttl time.Duration) repositories.UserRepository {
	return &UserRepository{inner: inner, cache: cache, ttl: ttl}
}

func userIDKey(id uuid.UUID) string    { return "user:id:" + id.String() }
func userEmailKey(email string) string { return "user:email:" + email }

func (r *UserRepository) Create(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error) {
	created, err := r.inner.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx, created)
	return created, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	if user := r.cached(ctx, userIDKey(id)); user != nil {
		return user, nil
	}

	user, err := r.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.store(ctx, userIDKey(id), user)
	return user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	if user := r.cached(ctx, userEmailKey(email)); user != nil {
		return user, nil
	}

	user, err := r.inner.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	r.store(ctx, userEmailKey(email), user)
	return user, nil
}

func (r *UserRepository) Update(ctx context.Context, user *entities.User) (*entities.User, error) {
	updated, err := r.inner.Update(ctx, user)
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx, updated)
	return updated, nil
}

func (r *UserRepository) cached(ctx context.Context, key string) *entities.User {
	raw, err := r.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, infrastructure.ErrCacheMiss) {
			log.Printf("user cache read failed for %s: %v", key, err)
		}
		return nil
	}

	var user entities.User
	if err := json.Unmarshal(raw, &user); err != nil {
		log.Printf("user cache entry corrupt for %s: %v", key, err)
		return nil
	}
	return &user
}

func (r *UserRepository) store(ctx context.Context, key string, user *entities.User) {
	raw, err := json.Marshal(user)
	if err != nil {
		return
	}
	if err := r.cache.Set(ctx, key, raw, r.ttl); err != nil {
		log.Printf("user cache write failed for %s: %v", key, err)
	}
}

func (r *UserRepository) invalidate(ctx context.Context, user *entities.User) {
	if err := r.cache.Delete(ctx, userIDKey(user.ID), userEmailKey(user.Email)); err != nil {
		log.Printf("user cache invalidation failed for %s: %v", user.ID, err)
	}
}
