package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studytrack/internal/application/command"
	"studytrack/internal/application/query"
	"studytrack/internal/application/session"
	"studytrack/internal/domain"
	"studytrack/internal/domain/entities"
	"studytrack/internal/infrastructure"
	"studytrack/internal/messaging"
)

func newDoubtServiceForTest(t *testing.T, limit int, window time.Duration) (*fakeDoubtRepo, *fakeUserRepo, *DoubtService) {
	t.Helper()
	doubtRepo := newFakeDoubtRepo()
	userRepo := newFakeUserRepo()
	svc := NewDoubtService(
		doubtRepo,
		userRepo,
		infrastructure.NewRateLimiter(window, limit),
		infrastructure.NewEmailService(),
		messaging.Connect(""),
		10,
	)
	return doubtRepo, userRepo, svc
}

func studentSession(t *testing.T, userRepo *fakeUserRepo, email string) *session.Session {
	t.Helper()
	validated, err := entities.NewValidatedUser(entities.NewUser(email, "Student", entities.RoleStudent))
	require.NoError(t, err)
	user, err := userRepo.Create(context.Background(), validated)
	require.NoError(t, err)

	sess := session.New()
	sess.Set(user)
	return sess
}

func teacherSession(t *testing.T, userRepo *fakeUserRepo, email string) *session.Session {
	t.Helper()
	validated, err := entities.NewValidatedUser(entities.NewUser(email, "Teacher", entities.RoleTeacher))
	require.NoError(t, err)
	user, err := userRepo.Create(context.Background(), validated)
	require.NoError(t, err)

	sess := session.New()
	sess.Set(user)
	return sess
}

func TestSubmitDoubtRequiresAuthentication(t *testing.T) {
	_, _, svc := newDoubtServiceForTest(t, 5, time.Minute)

	_, err := svc.Submit(context.Background(), session.New(), &command.SubmitDoubtCommand{
		Topic:    "algebra",
		Question: "why",
	})
	require.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestSubmitDoubtRateLimited(t *testing.T) {
	doubtRepo, userRepo, svc := newDoubtServiceForTest(t, 5, time.Minute)
	sess := studentSession(t, userRepo, "a@x.com")

	for i := 0; i < 5; i++ {
		_, err := svc.Submit(context.Background(), sess, &command.SubmitDoubtCommand{
			Topic:    "algebra",
			Question: fmt.Sprintf("question %d", i),
		})
		require.NoError(t, err)
	}

	_, err := svc.Submit(context.Background(), sess, &command.SubmitDoubtCommand{
		Topic:    "algebra",
		Question: "one too many",
	})

	var rateLimited *domain.RateLimitedError
	require.ErrorAs(t, err, &rateLimited)
	assert.Greater(t, rateLimited.RetryAfter, time.Duration(0))

	_, total, listErr := doubtRepo.List(context.Background(), "", 0, 100)
	require.NoError(t, listErr)
	assert.Equal(t, 5, total, "the rejected call must not store a sixth row")
}

func TestSubmitDoubtRateLimitIsPerCaller(t *testing.T) {
	_, userRepo, svc := newDoubtServiceForTest(t, 1, time.Minute)
	first := studentSession(t, userRepo, "a@x.com")
	second := studentSession(t, userRepo, "b@x.com")

	_, err := svc.Submit(context.Background(), first, &command.SubmitDoubtCommand{Topic: "t", Question: "q"})
	require.NoError(t, err)

	// a different identity still has its own budget
	_, err = svc.Submit(context.Background(), second, &command.SubmitDoubtCommand{Topic: "t", Question: "q"})
	require.NoError(t, err)
}

func TestListDoubtsPagination(t *testing.T) {
	_, userRepo, svc := newDoubtServiceForTest(t, 100, time.Minute)
	sess := studentSession(t, userRepo, "a@x.com")

	for i := 0; i < 25; i++ {
		_, err := svc.Submit(context.Background(), sess, &command.SubmitDoubtCommand{
			Topic:    "algebra",
			Question: fmt.Sprintf("question %d", i),
		})
		require.NoError(t, err)
	}

	page, err := svc.List(context.Background(), query.PageQuery{Page: 2, PageSize: 10})
	require.NoError(t, err)
	assert.Len(t, page.Items, 10)
	assert.Equal(t, 25, page.TotalCount)
	assert.Equal(t, 3, page.TotalPages())

	beyond, err := svc.List(context.Background(), query.PageQuery{Page: 4, PageSize: 10})
	require.NoError(t, err)
	assert.Empty(t, beyond.Items, "a page past the end is empty, not an error")
	assert.Equal(t, 25, beyond.TotalCount)
}

func TestListMineFiltersByAsker(t *testing.T) {
	_, userRepo, svc := newDoubtServiceForTest(t, 100, time.Minute)
	alice := studentSession(t, userRepo, "a@x.com")
	bob := studentSession(t, userRepo, "b@x.com")

	_, err := svc.Submit(context.Background(), alice, &command.SubmitDoubtCommand{Topic: "t", Question: "mine"})
	require.NoError(t, err)
	_, err = svc.Submit(context.Background(), bob, &command.SubmitDoubtCommand{Topic: "t", Question: "theirs"})
	require.NoError(t, err)

	page, err := svc.ListMine(context.Background(), alice, query.PageQuery{Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "a@x.com", page.Items[0].Email)
}

func TestRespondDoubtTeacherOnly(t *testing.T) {
	_, userRepo, svc := newDoubtServiceForTest(t, 100, time.Minute)
	student := studentSession(t, userRepo, "a@x.com")

	submitted, err := svc.Submit(context.Background(), student, &command.SubmitDoubtCommand{Topic: "t", Question: "q"})
	require.NoError(t, err)

	_, err = svc.Respond(context.Background(), student, &command.RespondDoubtCommand{
		DoubtID:  submitted.Result.ID,
		Response: "not allowed",
	})
	require.ErrorIs(t, err, domain.ErrForbidden)

	_, err = svc.Respond(context.Background(), session.New(), &command.RespondDoubtCommand{
		DoubtID:  submitted.Result.ID,
		Response: "not allowed",
	})
	require.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestRespondDoubtFirstResponderWins(t *testing.T) {
	_, userRepo, svc := newDoubtServiceForTest(t, 100, time.Minute)
	student := studentSession(t, userRepo, "a@x.com")
	teacher := teacherSession(t, userRepo, "t@x.com")

	submitted, err := svc.Submit(context.Background(), student, &command.SubmitDoubtCommand{Topic: "t", Question: "q"})
	require.NoError(t, err)

	answered, err := svc.Respond(context.Background(), teacher, &command.RespondDoubtCommand{
		DoubtID:  submitted.Result.ID,
		Response: "first answer",
	})
	require.NoError(t, err)
	assert.Equal(t, "first answer", answered.Result.Response)
	assert.Equal(t, "t@x.com", answered.Result.ResponderEmail)
	require.NotNil(t, answered.Result.RespondedAt)

	_, err = svc.Respond(context.Background(), teacher, &command.RespondDoubtCommand{
		DoubtID:  submitted.Result.ID,
		Response: "second answer",
	})
	require.ErrorIs(t, err, domain.ErrAlreadyAnswered)
}

func TestRespondDoubtNotFound(t *testing.T) {
	_, userRepo, svc := newDoubtServiceForTest(t, 100, time.Minute)
	teacher := teacherSession(t, userRepo, "t@x.com")

	_, err := svc.Respond(context.Background(), teacher, &command.RespondDoubtCommand{
		DoubtID:  uuid.New(),
		Response: "answer",
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
}
