package cached

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studytrack/internal/domain/entities"
)

type countingClassRepo struct {
	rows  []*entities.ClassData
	calls int
}

func (r *countingClassRepo) List(_ context.Context) ([]*entities.ClassData, error) {
	r.calls++
	return r.rows, nil
}

func (r *countingClassRepo) Upsert(_ context.Context, data *entities.ClassData) (*entities.ClassData, error) {
	r.calls++
	r.rows = append(r.rows, data)
	return data, nil
}

func TestClassListIsCached(t *testing.T) {
	row, err := entities.NewClassData("2026-08-31", "physics", []string{"optics"}, "", "")
	require.NoError(t, err)
	inner := &countingClassRepo{rows: []*entities.ClassData{row}}
	repo := NewClassDataRepository(inner, newMemoryCache(), time.Minute)

	first, err := repo.List(context.Background())
	require.NoError(t, err)
	second, err := repo.List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, inner.calls, "the second listing must come from the cache")
	assert.Equal(t, first[0].Subject, second[0].Subject)
}

func TestUpsertInvalidatesListing(t *testing.T) {
	inner := &countingClassRepo{}
	repo := NewClassDataRepository(inner, newMemoryCache(), time.Minute)

	_, err := repo.List(context.Background())
	require.NoError(t, err)

	row, err := entities.NewClassData("2026-08-31", "physics", nil, "", "")
	require.NoError(t, err)
	_, err = repo.Upsert(context.Background(), row)
	require.NoError(t, err)

	fresh, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, fresh, 1, "the listing after an upsert must include the new row")
}
