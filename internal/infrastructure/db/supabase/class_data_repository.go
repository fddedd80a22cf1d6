package supabase

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"

	"studytrack/internal/domain"
	"studytrack/internal/domain/entities"
	"studytrack/internal/domain/repositories"
)

const classDataTable = "class_data"

type classDataModel struct {
	ID        uuid.UUID `json:"id"`
	Date      string    `json:"date"`
	Subject   string    `json:"subject"`
	Topics    []string  `json:"topics"`
	Homework  string    `json:"homework"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

func newClassDataModel(data *entities.ClassData) classDataModel {
	return classDataModel(*data)
}

func (m *classDataModel) toEntity() *entities.ClassData {
	data := entities.ClassData(*m)
	return &data
}

type ClassDataRepository struct {
	client *Client
}

func NewClassDataRepository(client *Client) repositories.ClassDataRepository {
	return &ClassDataRepository{client: client}
}

func (r *ClassDataRepository) List(ctx context.Context) ([]*entities.ClassData, error) {
	q := url.Values{}
	q.Set("order", "created_at.desc")

	var rows []classDataModel
	if err := r.client.Select(ctx, classDataTable, q, &rows); err != nil {
		return nil, err
	}

	data := make([]*entities.ClassData, 0, len(rows))
	for i := range rows {
		data = append(data, rows[i].toEntity())
	}
	return data, nil
}

func (r *ClassDataRepository) Upsert(ctx context.Context, data *entities.ClassData) (*entities.ClassData, error) {
	payload := newClassDataModel(data)

	var rows []classDataModel
	if err := r.client.Upsert(ctx, classDataTable, "date,subject", payload, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.StorageError("upsert class_data", fmt.Errorf("store returned no representation"))
	}

	return rows[0].toEntity(), nil
}
