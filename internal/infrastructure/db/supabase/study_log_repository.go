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

const studyLogsTable = "study_logs"

type studyLogModel struct {
	ID       uuid.UUID `json:"id"`
	UserID   uuid.UUID `json:"user_id"`
	Date     string    `json:"date"`
	Subject  string    `json:"subject"`
	Topics   []string  `json:"topics"`
	Notes    string    `json:"notes"`
	Homework string    `json:"homework"`
	Points   int       `json:"points"`
}

func newStudyLogModel(log *entities.StudyLog) studyLogModel {
	return studyLogModel(*log)
}

func (m *studyLogModel) toEntity() *entities.StudyLog {
	log := entities.StudyLog(*m)
	return &log
}

type StudyLogRepository struct {
	client *Client
}

func NewStudyLogRepository(client *Client) repositories.StudyLogRepository {
	return &StudyLogRepository{client: client}
}

func (r *StudyLogRepository) Insert(ctx context.Context, log *entities.StudyLog) (*entities.StudyLog, error) {
	payload := newStudyLogModel(log)

	var rows []studyLogModel
	if err := r.client.Insert(ctx, studyLogsTable, payload, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.StorageError("insert study_logs", fmt.Errorf("store returned no representation"))
	}

	return rows[0].toEntity(), nil
}

func (r *StudyLogRepository) ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*entities.StudyLog, int, error) {
	q := url.Values{}
	q.Set("user_id", Eq(userID.String()))
	q.Set("order", "date.desc")

	var rows []studyLogModel
	total, err := r.client.SelectRange(ctx, studyLogsTable, q, offset, limit, &rows)
	if err != nil {
		return nil, 0, err
	}

	logs := make([]*entities.StudyLog, 0, len(rows))
	for i := range rows {
		logs = append(logs, rows[i].toEntity())
	}
	return logs, total, nil
}
