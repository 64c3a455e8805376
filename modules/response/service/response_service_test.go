package service

import (
	"context"
	"testing"

	"meetpoll-api/core/database"
	"meetpoll-api/core/errors"
	"meetpoll-api/modules/response/dto"
	"meetpoll-api/modules/response/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (ResponseServiceInterface, database.Database) {
	t.Helper()
	db, err := database.InitDB(database.DatabaseConfig{Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewResponseService(repository.NewResponseRepository(db)), db
}

func seedEvent(t *testing.T, db database.Database, id string) {
	t.Helper()
	require.NoError(t, db.ExecContext(context.Background(),
		`INSERT INTO events (id, name) VALUES (?, ?)`, id, "Poll "+id))
}

func submitReq(name string, availability map[string]map[string]bool) *dto.SubmitResponseRequest {
	return &dto.SubmitResponseRequest{ParticipantName: name, Availability: availability}
}

func TestSubmit_UnknownEvent(t *testing.T) {
	svc, _ := newTestService(t)

	_, appErr := svc.Submit(context.Background(), "missing", "",
		submitReq("Alice", map[string]map[string]bool{"mon": {"9am": true}}))
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
}

func TestSubmit_FirstTimeWithoutPassword(t *testing.T) {
	svc, db := newTestService(t)
	seedEvent(t, db, "E1")

	result, appErr := svc.Submit(context.Background(), "E1", "",
		submitReq("Alice", map[string]map[string]bool{"mon": {"9am": true, "10am": false}}))
	require.Nil(t, appErr)
	assert.True(t, result.Success)
	assert.False(t, result.HasPassword)
	assert.NotEmpty(t, result.Token)

	responses, appErr := svc.ListByEvent(context.Background(), "E1")
	require.Nil(t, appErr)
	require.Len(t, responses, 1)
	assert.Equal(t, "mon", responses[0].Date)
	assert.Equal(t, "9am", responses[0].TimeSlot)
}

func TestSubmit_FullReplaceInvariant(t *testing.T) {
	svc, db := newTestService(t)
	seedEvent(t, db, "E1")
	ctx := context.Background()

	_, appErr := svc.Submit(ctx, "E1", "", submitReq("Alice", map[string]map[string]bool{"mon": {"9am": true}}))
	require.Nil(t, appErr)

	_, appErr = svc.Submit(ctx, "E1", "", submitReq("Alice", map[string]map[string]bool{"tue": {"10am": true}}))
	require.Nil(t, appErr)

	responses, appErr := svc.ListByEvent(ctx, "E1")
	require.Nil(t, appErr)
	require.Len(t, responses, 1)
	assert.Equal(t, "tue", responses[0].Date)
	assert.Equal(t, "10am", responses[0].TimeSlot)
}

func TestSubmit_PasswordProtectsResubmission(t *testing.T) {
	svc, db := newTestService(t)
	seedEvent(t, db, "E1")
	ctx := context.Background()

	// First submission sets the credential.
	withPassword := submitReq("Alice", map[string]map[string]bool{"mon": {"9am": true}})
	withPassword.Password = "p1"
	result, appErr := svc.Submit(ctx, "E1", "", withPassword)
	require.Nil(t, appErr)
	assert.True(t, result.HasPassword)

	// Resubmitting without the password is rejected with the
	// machine-readable marker.
	_, appErr = svc.Submit(ctx, "E1", "", submitReq("Alice", map[string]map[string]bool{"tue": {"10am": true}}))
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrPasswordRequired, appErr.Code)

	// Wrong password is rejected too.
	wrong := submitReq("Alice", map[string]map[string]bool{"tue": {"10am": true}})
	wrong.Password = "p2"
	_, appErr = svc.Submit(ctx, "E1", "", wrong)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrPasswordRequired, appErr.Code)

	// The failed attempts must not have altered the stored availability.
	responses, appErr := svc.ListByEvent(ctx, "E1")
	require.Nil(t, appErr)
	require.Len(t, responses, 1)
	assert.Equal(t, "mon", responses[0].Date)

	// Correct password replaces as usual.
	right := submitReq("Alice", map[string]map[string]bool{"tue": {"10am": true}})
	right.Password = "p1"
	_, appErr = svc.Submit(ctx, "E1", "", right)
	require.Nil(t, appErr)

	responses, appErr = svc.ListByEvent(ctx, "E1")
	require.Nil(t, appErr)
	require.Len(t, responses, 1)
	assert.Equal(t, "tue", responses[0].Date)
}

func TestSubmit_TokenAuthorizes(t *testing.T) {
	svc, db := newTestService(t)
	seedEvent(t, db, "E1")
	ctx := context.Background()

	withPassword := submitReq("Alice", map[string]map[string]bool{"mon": {"9am": true}})
	withPassword.Password = "p1"
	result, appErr := svc.Submit(ctx, "E1", "", withPassword)
	require.Nil(t, appErr)
	require.NotEmpty(t, result.Token)

	// The issued token authorizes a later submission without the password.
	_, appErr = svc.Submit(ctx, "E1", result.Token, submitReq("Alice", map[string]map[string]bool{"tue": {"10am": true}}))
	require.Nil(t, appErr)

	responses, appErr := svc.ListByEvent(ctx, "E1")
	require.Nil(t, appErr)
	require.Len(t, responses, 1)
	assert.Equal(t, "tue", responses[0].Date)
}

func TestSubmit_TokenBoundToEvent(t *testing.T) {
	svc, db := newTestService(t)
	seedEvent(t, db, "E1")
	seedEvent(t, db, "E2")
	ctx := context.Background()

	withPassword := submitReq("Alice", map[string]map[string]bool{"mon": {"9am": true}})
	withPassword.Password = "p1"
	result, appErr := svc.Submit(ctx, "E1", "", withPassword)
	require.Nil(t, appErr)

	protect := submitReq("Alice", map[string]map[string]bool{"mon": {"9am": true}})
	protect.Password = "p2"
	_, appErr = svc.Submit(ctx, "E2", "", protect)
	require.Nil(t, appErr)

	// A token issued for E1 must not authorize a write on E2.
	_, appErr = svc.Submit(ctx, "E2", result.Token, submitReq("Alice", map[string]map[string]bool{"tue": {"10am": true}}))
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrPasswordRequired, appErr.Code)
}

func TestSubmit_TokenBoundToParticipant(t *testing.T) {
	svc, db := newTestService(t)
	seedEvent(t, db, "E1")
	ctx := context.Background()

	alice := submitReq("Alice", map[string]map[string]bool{"mon": {"9am": true}})
	alice.Password = "p1"
	result, appErr := svc.Submit(ctx, "E1", "", alice)
	require.Nil(t, appErr)

	bob := submitReq("Bob", map[string]map[string]bool{"mon": {"9am": true}})
	bob.Password = "p2"
	_, appErr = svc.Submit(ctx, "E1", "", bob)
	require.Nil(t, appErr)

	// Alice's token must not let anyone overwrite Bob's availability.
	_, appErr = svc.Submit(ctx, "E1", result.Token, submitReq("Bob", map[string]map[string]bool{"tue": {"10am": true}}))
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrPasswordRequired, appErr.Code)
}

func TestLogin_SetsCredentialAndIssuesToken(t *testing.T) {
	svc, db := newTestService(t)
	seedEvent(t, db, "E1")
	ctx := context.Background()

	login := &dto.SubmitResponseRequest{ParticipantName: "Alice", Password: "p1", Action: dto.ActionLogin}
	result, appErr := svc.Submit(ctx, "E1", "", login)
	require.Nil(t, appErr)
	assert.True(t, result.Success)
	assert.True(t, result.HasPassword)
	assert.NotEmpty(t, result.Token)

	// Login writes no availability.
	responses, appErr := svc.ListByEvent(ctx, "E1")
	require.Nil(t, appErr)
	assert.Empty(t, responses)

	// The credential now guards submissions.
	_, appErr = svc.Submit(ctx, "E1", "", submitReq("Alice", map[string]map[string]bool{"mon": {"9am": true}}))
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrPasswordRequired, appErr.Code)
}

func TestLogin_Passwordless(t *testing.T) {
	svc, db := newTestService(t)
	seedEvent(t, db, "E1")

	login := &dto.SubmitResponseRequest{ParticipantName: "Alice", Action: dto.ActionLogin}
	result, appErr := svc.Submit(context.Background(), "E1", "", login)
	require.Nil(t, appErr)
	assert.False(t, result.HasPassword)
	assert.NotEmpty(t, result.Token)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, db := newTestService(t)
	seedEvent(t, db, "E1")
	ctx := context.Background()

	set := &dto.SubmitResponseRequest{ParticipantName: "Alice", Password: "p1", Action: dto.ActionLogin}
	_, appErr := svc.Submit(ctx, "E1", "", set)
	require.Nil(t, appErr)

	wrong := &dto.SubmitResponseRequest{ParticipantName: "Alice", Password: "p2", Action: dto.ActionLogin}
	_, appErr = svc.Submit(ctx, "E1", "", wrong)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrPasswordRequired, appErr.Code)
}
