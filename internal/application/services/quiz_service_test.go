package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studytrack/internal/application/command"
	"studytrack/internal/application/session"
	"studytrack/internal/domain"
)

func TestSubmitQuizResult(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewQuizService(newFakeQuizRepo())
	sess := studentSession(t, userRepo, "a@x.com")

	result, err := svc.SubmitResult(context.Background(), sess, &command.SubmitQuizResultCommand{
		Topic: "optics",
		Score: 7,
		Total: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, sess.Current().ID, result.Result.UserID)
	assert.Equal(t, 7, result.Result.Score)
}

func TestSubmitQuizResultValidation(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewQuizService(newFakeQuizRepo())
	sess := studentSession(t, userRepo, "a@x.com")

	cases := []struct {
		name string
		cmd  command.SubmitQuizResultCommand
	}{
		{"missing topic", command.SubmitQuizResultCommand{Score: 1, Total: 10}},
		{"zero total", command.SubmitQuizResultCommand{Topic: "optics", Score: 0, Total: 0}},
		{"score above total", command.SubmitQuizResultCommand{Topic: "optics", Score: 11, Total: 10}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.SubmitResult(context.Background(), sess, &tc.cmd)
			var validation *domain.ValidationError
			require.ErrorAs(t, err, &validation)
		})
	}
}

func TestListMineQuizResultsScopedToUser(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewQuizService(newFakeQuizRepo())
	alice := studentSession(t, userRepo, "a@x.com")
	bob := studentSession(t, userRepo, "b@x.com")

	_, err := svc.SubmitResult(context.Background(), alice, &command.SubmitQuizResultCommand{Topic: "optics", Score: 5, Total: 10})
	require.NoError(t, err)
	_, err = svc.SubmitResult(context.Background(), bob, &command.SubmitQuizResultCommand{Topic: "optics", Score: 8, Total: 10})
	require.NoError(t, err)

	mine, err := svc.ListMine(context.Background(), alice)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, alice.Current().ID, mine[0].UserID)

	_, err = svc.ListMine(context.Background(), session.New())
	require.ErrorIs(t, err, domain.ErrUnauthenticated)
}
