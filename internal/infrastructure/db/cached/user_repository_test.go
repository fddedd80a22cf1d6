package cached

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studytrack/internal/domain"
	"studytrack/internal/domain/entities"
	"studytrack/internal/infrastructure"
)

type memoryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	failAll error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string][]byte)}
}

func (c *memoryCache) Get(_ context.Context, key string) ([]byte, error) {
	if c.failAll != nil {
		return nil, c.failAll
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if raw, ok := c.entries[key]; ok {
		return raw, nil
	}
	return nil, infrastructure.ErrCacheMiss
}

func (c *memoryCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	if c.failAll != nil {
		return c.failAll
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
	return nil
}

func (c *memoryCache) Delete(_ context.Context, keys ...string) error {
	if c.failAll != nil {
		return c.failAll
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range keys {
		delete(c.entries, key)
	}
	return nil
}

// countingUserRepo records how often the store is actually hit.
type countingUserRepo struct {
	users map[uuid.UUID]*entities.User
	calls int
}

func newCountingUserRepo() *countingUserRepo {
	return &countingUserRepo{users: make(map[uuid.UUID]*entities.User)}
}

func (r *countingUserRepo) Create(_ context.Context, user *entities.ValidatedUser) (*entities.User, error) {
	r.calls++
	stored := *user.GetUser()
	r.users[stored.ID] = &stored
	result := stored
	return &result, nil
}

func (r *countingUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entities.User, error) {
	r.calls++
	if user, ok := r.users[id]; ok {
		result := *user
		return &result, nil
	}
	return nil, domain.ErrNotFound
}

func (r *countingUserRepo) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	r.calls++
	for _, user := range r.users {
		if user.Email == email {
			result := *user
			return &result, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *countingUserRepo) Update(_ context.Context, user *entities.User) (*entities.User, error) {
	r.calls++
	stored := *user
	r.users[user.ID] = &stored
	result := stored
	return &result, nil
}

func seedUser(t *testing.T, repo *countingUserRepo, email string) *entities.User {
	t.Helper()
	validated, err := entities.NewValidatedUser(entities.NewUser(email, "A", entities.RoleStudent))
	require.NoError(t, err)
	user, err := repo.Create(context.Background(), validated)
	require.NoError(t, err)
	repo.calls = 0
	return user
}

func TestFindByIDServesSecondReadFromCache(t *testing.T) {
	inner := newCountingUserRepo()
	repo := NewUserRepository(inner, newMemoryCache(), time.Minute)
	user := seedUser(t, inner, "a@x.com")

	first, err := repo.FindByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, inner.calls)

	second, err := repo.FindByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, inner.calls, "the second read must come from the cache")
	assert.Equal(t, first.Email, second.Email)
}

func TestFindByEmailCachesIndependently(t *testing.T) {
	inner := newCountingUserRepo()
	repo := NewUserRepository(inner, newMemoryCache(), time.Minute)
	user := seedUser(t, inner, "a@x.com")

	_, err := repo.FindByEmail(context.Background(), user.Email)
	require.NoError(t, err)
	_, err = repo.FindByEmail(context.Background(), user.Email)
	require.NoError(t, err)
	assert.Equal(t, 1, inner.calls)

	// a lookup by ID is a different key, so it hits the store once
	_, err = repo.FindByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, inner.calls)
}

func TestUpdateInvalidatesBothKeys(t *testing.T) {
	inner := newCountingUserRepo()
	repo := NewUserRepository(inner, newMemoryCache(), time.Minute)
	user := seedUser(t, inner, "a@x.com")

	_, err := repo.FindByID(context.Background(), user.ID)
	require.NoError(t, err)
	_, err = repo.FindByEmail(context.Background(), user.Email)
	require.NoError(t, err)

	user.Points = 42
	_, err = repo.Update(context.Background(), user)
	require.NoError(t, err)

	refreshed, err := repo.FindByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, 42, refreshed.Points, "a read after an update must not see the stale entry")

	byEmail, err := repo.FindByEmail(context.Background(), user.Email)
	require.NoError(t, err)
	assert.Equal(t, 42, byEmail.Points)
}

func TestCacheFailureFallsThroughToStore(t *testing.T) {
	inner := newCountingUserRepo()
	cache := newMemoryCache()
	cache.failAll = errors.New("redis is down")
	repo := NewUserRepository(inner, cache, time.Minute)
	user := seedUser(t, inner, "a@x.com")

	found, err := repo.FindByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, found.Email)
}

func TestNotFoundIsNotCached(t *testing.T) {
	inner := newCountingUserRepo()
	repo := NewUserRepository(inner, newMemoryCache(), time.Minute)

	_, err := repo.FindByID(context.Background(), uuid.New())
	require.ErrorIs(t, err, domain.ErrNotFound)
	_, err = repo.FindByID(context.Background(), uuid.New())
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 2, inner.calls)
}
