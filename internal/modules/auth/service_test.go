package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftroots/storefront/internal/modules/user"
)

func TestSignup_CreatesUserWithToken(t *testing.T) {
	svc := NewService(user.NewMemoryRepository())

	u, token, err := svc.Signup(context.Background(), "sarah@example.com", "secret", "Sarah Mitchell")

	require.NoError(t, err)
	assert.Equal(t, "sarah@example.com", u.Email)
	assert.Equal(t, "Sarah Mitchell", u.Name)
	assert.False(t, u.IsArtisan)
	assert.NotEmpty(t, token)
	assert.NotEmpty(t, u.ID)
}

func TestSignup_NameDefaultsToEmailLocalPart(t *testing.T) {
	svc := NewService(user.NewMemoryRepository())

	u, _, err := svc.Signup(context.Background(), "emma@example.com", "secret", "")

	require.NoError(t, err)
	assert.Equal(t, "emma", u.Name)
}

func TestSignup_RequiresEmailAndPassword(t *testing.T) {
	svc := NewService(user.NewMemoryRepository())

	_, _, err := svc.Signup(context.Background(), "", "secret", "")
	assert.Error(t, err)

	_, _, err = svc.Signup(context.Background(), "a@b.com", "", "")
	assert.Error(t, err)
}

func TestSignup_DuplicateEmailRejected(t *testing.T) {
	svc := NewService(user.NewMemoryRepository())
	_, _, err := svc.Signup(context.Background(), "sarah@example.com", "secret", "")
	require.NoError(t, err)

	_, _, err = svc.Signup(context.Background(), "sarah@example.com", "other", "")

	assert.Error(t, err)
}

func TestLogin_ResolvesExistingUser(t *testing.T) {
	repo := user.NewMemoryRepository()
	svc := NewService(repo)
	created, _, err := svc.Signup(context.Background(), "james@example.com", "secret", "James Cooper")
	require.NoError(t, err)

	u, token, err := svc.Login(context.Background(), "james@example.com", "secret")

	require.NoError(t, err)
	assert.Equal(t, created.ID, u.ID)
	assert.NotEmpty(t, token)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := NewService(user.NewMemoryRepository())
	_, _, err := svc.Signup(context.Background(), "james@example.com", "secret", "")
	require.NoError(t, err)

	_, _, err = svc.Login(context.Background(), "james@example.com", "wrong")

	assert.EqualError(t, err, "invalid credentials")
}

func TestLogin_UnknownUser(t *testing.T) {
	svc := NewService(user.NewMemoryRepository())

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "secret")

	assert.Error(t, err)
}
