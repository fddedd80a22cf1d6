package cached

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"studytrack/internal/domain/entities"
	"studytrack/internal/domain/repositories"
	"studytrack/internal/infrastructure"
)

const classListKey = "class_data:list"

// ClassDataRepository caches the full class-data listing with a TTL and
// invalidates it on every upsert.
type ClassDataRepository struct {
	inner repositories.ClassDataRepository
	cache infrastructure.Cache
	ttl   time.Duration
}

func NewClassDataRepository(inner repositories.ClassDataRepository, cache infrastructure.Cache, ttl time.Duration) repositories.ClassDataRepository {
	return &ClassDataRepository{inner: inner, cache: cache, ttl: ttl}
}

func (r *ClassDataRepository) List(ctx context.Context) ([]*entities.ClassData, error) {
	raw, err := r.cache.Get(ctx, classListKey)
	if err == nil {
		var data []*entities.ClassData
		if err := json.Unmarshal(raw, &data); err == nil {
			return data, nil
		}
		log.Printf("class data cache entry corrupt: %v", err)
	} else if !errors.Is(err, infrastructure.ErrCacheMiss) {
		log.Printf("class data cache read failed: %v", err)
	}

	data, err := r.inner.List(ctx)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(data); err == nil {
		if err := r.cache.Set(ctx, classListKey, encoded, r.ttl); err != nil {
			log.Printf("class data cache write failed: %v", err)
		}
	}
	return data, nil
}

func (r *ClassDataRepository) Upsert(ctx context.Context, data *entities.ClassData) (*entities.ClassData, error) {
	stored, err := r.inner.Upsert(ctx, data)
	if err != nil {
		return nil, err
	}
	if err := r.cache.Delete(ctx, classListKey); err != nil {
		log.Printf("class data cache invalidation failed: %v", err)
	}
	return stored, nil
}
