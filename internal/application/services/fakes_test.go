package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"studytrack/internal/domain"
	"studytrack/internal/domain/entities"
)

// In-memory repositories backing the service tests.

type fakeUserRepo struct {
	mu      sync.Mutex
	users   map[uuid.UUID]*entities.User
	failAll error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entities.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entities.ValidatedUser) (*entities.User, error) {
	if r.failAll != nil {
		return nil, r.failAll
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *user.GetUser()
	r.users[stored.ID] = &stored
	result := stored
	return &result, nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entities.User, error) {
	if r.failAll != nil {
		return nil, r.failAll
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.users[id]; ok {
		result := *user
		return &result, nil
	}
	return nil, domain.ErrNotFound
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	if r.failAll != nil {
		return nil, r.failAll
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			result := *user
			return &result, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeUserRepo) Update(_ context.Context, user *entities.User) (*entities.User, error) {
	if r.failAll != nil {
		return nil, r.failAll
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return nil, domain.ErrNotFound
	}
	stored := *user
	r.users[user.ID] = &stored
	result := stored
	return &result, nil
}

func (r *fakeUserRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}

type fakeTeacherRepo struct {
	credentials map[string]*entities.TeacherCredential
}

func newFakeTeacherRepo() *fakeTeacherRepo {
	return &fakeTeacherRepo{credentials: make(map[string]*entities.TeacherCredential)}
}

func (r *fakeTeacherRepo) FindByEmail(_ context.Context, email string) (*entities.TeacherCredential, error) {
	if credential, ok := r.credentials[email]; ok {
		return credential, nil
	}
	return nil, domain.ErrNotFound
}

type fakeDoubtRepo struct {
	mu     sync.Mutex
	doubts []*entities.Doubt
}

func newFakeDoubtRepo() *fakeDoubtRepo {
	return &fakeDoubtRepo{}
}

func (r *fakeDoubtRepo) Insert(_ context.Context, doubt *entities.Doubt) (*entities.Doubt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *doubt
	// newest first, matching the store's created_at.desc ordering
	r.doubts = append([]*entities.Doubt{&stored}, r.doubts...)
	result := stored
	return &result, nil
}

func (r *fakeDoubtRepo) FindByID(_ context.Context, id uuid.UUID) (*entities.Doubt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, doubt := range r.doubts {
		if doubt.ID == id {
			result := *doubt
			return &result, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeDoubtRepo) List(_ context.Context, askerEmail string, offset, limit int) ([]*entities.Doubt, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []*entities.Doubt
	for _, doubt := range r.doubts {
		if askerEmail == "" || doubt.Email == askerEmail {
			matched = append(matched, doubt)
		}
	}

	total := len(matched)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}

	page := make([]*entities.Doubt, 0, end-offset)
	for _, doubt := range matched[offset:end] {
		result := *doubt
		page = append(page, &result)
	}
	return page, total, nil
}

func (r *fakeDoubtRepo) Respond(_ context.Context, id uuid.UUID, response, responderEmail string, respondedAt time.Time) (*entities.Doubt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, doubt := range r.doubts {
		if doubt.ID != id {
			continue
		}
		if doubt.Answered() {
			return nil, domain.ErrAlreadyAnswered
		}
		doubt.Response = response
		doubt.ResponderEmail = responderEmail
		doubt.RespondedAt = &respondedAt
		result := *doubt
		return &result, nil
	}
	return nil, domain.ErrNotFound
}

type fakeStudyLogRepo struct {
	mu   sync.Mutex
	logs []*entities.StudyLog
}

func newFakeStudyLogRepo() *fakeStudyLogRepo {
	return &fakeStudyLogRepo{}
}

func (r *fakeStudyLogRepo) Insert(_ context.Context, log *entities.StudyLog) (*entities.StudyLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *log
	r.logs = append([]*entities.StudyLog{&stored}, r.logs...)
	result := stored
	return &result, nil
}

func (r *fakeStudyLogRepo) ListByUser(_ context.Context, userID uuid.UUID, offset, limit int) ([]*entities.StudyLog, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []*entities.StudyLog
	for _, log := range r.logs {
		if log.UserID == userID {
			matched = append(matched, log)
		}
	}

	total := len(matched)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return matched[offset:end], total, nil
}

type fakeClassDataRepo struct {
	mu   sync.Mutex
	rows []*entities.ClassData
}

func newFakeClassDataRepo() *fakeClassDataRepo {
	return &fakeClassDataRepo{}
}

func (r *fakeClassDataRepo) List(_ context.Context) ([]*entities.ClassData, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entities.ClassData, 0, len(r.rows))
	for _, row := range r.rows {
		result := *row
		out = append(out, &result)
	}
	return out, nil
}

func (r *fakeClassDataRepo) Upsert(_ context.Context, data *entities.ClassData) (*entities.ClassData, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, row := range r.rows {
		if row.Date == data.Date && row.Subject == data.Subject {
			stored := *data
			stored.ID = row.ID
			r.rows[i] = &stored
			result := stored
			return &result, nil
		}
	}
	stored := *data
	r.rows = append([]*entities.ClassData{&stored}, r.rows...)
	result := stored
	return &result, nil
}

type fakeQuizRepo struct {
	mu      sync.Mutex
	results []*entities.QuizResult
}

func newFakeQuizRepo() *fakeQuizRepo {
	return &fakeQuizRepo{}
}

func (r *fakeQuizRepo) InsertResult(_ context.Context, result *entities.QuizResult) (*entities.QuizResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *result
	r.results = append([]*entities.QuizResult{&stored}, r.results...)
	out := stored
	return &out, nil
}

func (r *fakeQuizRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*entities.QuizResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entities.QuizResult
	for _, result := range r.results {
		if result.UserID == userID {
			copied := *result
			out = append(out, &copied)
		}
	}
	return out, nil
}

type fakeMockTestRepo struct {
	mu      sync.Mutex
	tests   []*entities.MockTest
	results []*entities.MockTestResult
}

func newFakeMockTestRepo() *fakeMockTestRepo {
	return &fakeMockTestRepo{}
}

func (r *fakeMockTestRepo) Create(_ context.Context, test *entities.MockTest) (*entities.MockTest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *test
	r.tests = append([]*entities.MockTest{&stored}, r.tests...)
	result := stored
	return &result, nil
}

func (r *fakeMockTestRepo) FindByID(_ context.Context, id uuid.UUID) (*entities.MockTest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, test := range r.tests {
		if test.ID == id {
			result := *test
			return &result, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeMockTestRepo) List(_ context.Context, offset, limit int) ([]*entities.MockTest, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	total := len(r.tests)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	page := make([]*entities.MockTest, 0, end-offset)
	for _, test := range r.tests[offset:end] {
		result := *test
		page = append(page, &result)
	}
	return page, total, nil
}

func (r *fakeMockTestRepo) InsertResult(_ context.Context, result *entities.MockTestResult) (*entities.MockTestResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *result
	r.results = append([]*entities.MockTestResult{&stored}, r.results...)
	out := stored
	return &out, nil
}
