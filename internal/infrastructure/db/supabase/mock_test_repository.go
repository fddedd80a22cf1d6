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

const (
	mockTestsTable        = "mock_tests"
	mockTestsResultsTable = "mock_tests_results"
)

type mockTestModel struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Subject      string    `json:"subject"`
	TotalMarks   int       `json:"total_marks"`
	CreatedBy    string    `json:"created_by"`
	CreatedAt    time.Time `json:"created_at"`
	ScheduledFor string    `json:"scheduled_for"`
}

type mockTestResultModel struct {
	ID         uuid.UUID `json:"id"`
	MockTestID uuid.UUID `json:"mock_test_id"`
	UserID     uuid.UUID `json:"user_id"`
	Marks      int       `json:"marks"`
	CreatedAt  time.Time `json:"created_at"`
}

type MockTestRepository struct {
	client *Client
}

func NewMockTestRepository(client *Client) repositories.MockTestRepository {
	return &MockTestRepository{client: client}
}

func (r *MockTestRepository) Create(ctx context.Context, test *entities.MockTest) (*entities.MockTest, error) {
	payload := mockTestModel(*test)

	var rows []mockTestModel
	if err := r.client.Insert(ctx, mockTestsTable, payload, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.StorageError("insert mock_tests", fmt.Errorf("store returned no representation"))
	}

	stored := entities.MockTest(rows[0])
	return &stored, nil
}

func (r *MockTestRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.MockTest, error) {
	q := url.Values{}
	q.Set("id", Eq(id.String()))

	var rows []mockTestModel
	if err := r.client.Select(ctx, mockTestsTable, q, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrNotFound
	}

	stored := entities.MockTest(rows[0])
	return &stored, nil
}

func (r *MockTestRepository) List(ctx context.Context, offset, limit int) ([]*entities.MockTest, int, error) {
	q := url.Values{}
	q.Set("order", "created_at.desc")

	var rows []mockTestModel
	total, err := r.client.SelectRange(ctx, mockTestsTable, q, offset, limit, &rows)
	if err != nil {
		return nil, 0, err
	}

	tests := make([]*entities.MockTest, 0, len(rows))
	for i := range rows {
		stored := entities.MockTest(rows[i])
		tests = append(tests, &stored)
	}
	return tests, total, nil
}

func (r *MockTestRepository) InsertResult(ctx context.Context, result *entities.MockTestResult) (*entities.MockTestResult, error) {
	payload := mockTestResultModel(*result)

	var rows []mockTestResultModel
	if err := r.client.Insert(ctx, mockTestsResultsTable, payload, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.StorageError("insert mock_tests_results", fmt.Errorf("store returned no representation"))
	}

	stored := entities.MockTestResult(rows[0])
	return &stored, nil
}
