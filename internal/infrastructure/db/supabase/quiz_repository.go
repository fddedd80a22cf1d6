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

const quizzesTable = "quizzes"

type quizResultModel struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Topic     string    `json:"topic"`
	Score     int       `json:"score"`
	Total     int       `json:"total"`
	CreatedAt time.Time `json:"created_at"`
}

type QuizRepository struct {
	client *Client
}

func NewQuizRepository(client *Client) repositories.QuizRepository {
	return &QuizRepository{client: client}
}

func (r *QuizRepository) InsertResult(ctx context.Context, result *entities.QuizResult) (*entities.QuizResult, error) {
	payload := quizResultModel(*result)

	var rows []quizResultModel
	if err := r.client.Insert(ctx, quizzesTable, payload, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.StorageError("insert quizzes", fmt.Errorf("store returned no representation"))
	}

	stored := entities.QuizResult(rows[0])
	return &stored, nil
}

func (r *QuizRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.QuizResult, error) {
	q := url.Values{}
	q.Set("user_id", Eq(userID.String()))
	q.Set("order", "created_at.desc")

	var rows []quizResultModel
	if err := r.client.Select(ctx, quizzesTable, q, &rows); err != nil {
		return nil, err
	}

	results := make([]*entities.QuizResult, 0, len(rows))
	for i := range rows {
		stored := entities.QuizResult(rows[i])
		results = append(results, &stored)
	}
	return results, nil
}
