package identity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDevBackendSignUpAndSignIn(t *testing.T) {
	ctx := context.Background()
	b := NewDevBackend()

	require.NoError(t, b.SignUp(ctx, SignUpInput{
		Email:    "dev@shop.test",
		Password: "hunter2hunter2",
		Metadata: map[string]string{"name": "Dev User"},
	}))

	sess, err := b.SignInWithPassword(ctx, "dev@shop.test", "hunter2hunter2")
	require.NoError(t, err)
	assert.Equal(t, "dev@shop.test", sess.Email)
	assert.Equal(t, "Dev User", sess.Name)
	assert.NotEmpty(t, sess.UserID)

	active, err := b.GetSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, sess.UserID, active.UserID)
}

func TestDevBackendRejectsBadCredentials(t *testing.T) {
	ctx := context.Background()
	b := NewDevBackend()
	require.NoError(t, b.SignUp(ctx, SignUpInput{Email: "dev@shop.test", Password: "hunter2hunter2"}))

	_, err := b.SignInWithPassword(ctx, "dev@shop.test", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = b.SignInWithPassword(ctx, "ghost@shop.test", "hunter2hunter2")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestDevBackendDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	b := NewDevBackend()
	require.NoError(t, b.SignUp(ctx, SignUpInput{Email: "dev@shop.test", Password: "hunter2hunter2"}))

	err := b.SignUp(ctx, SignUpInput{Email: "dev@shop.test", Password: "other-password"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestDevBackendSignOutClearsSession(t *testing.T) {
	ctx := context.Background()
	b := NewDevBackend()
	require.NoError(t, b.SignUp(ctx, SignUpInput{Email: "dev@shop.test", Password: "hunter2hunter2"}))
	_, err := b.SignInWithPassword(ctx, "dev@shop.test", "hunter2hunter2")
	require.NoError(t, err)

	require.NoError(t, b.SignOut(ctx))
	active, err := b.GetSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, active)
}
