package auth

import (
	"sync"
	"testing"
	"time"

	"github.com/WGledhill94/loadLab/internal/domain"
	"github.com/WGledhill94/loadLab/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	return NewService(store.New[domain.User](), "test-secret", time.Hour)
}

func TestRegisterAndLogin_Roundtrip(t *testing.T) {
	svc := newTestService()

	token, user, err := svc.Register("ada@example.com", "hunter2", "Ada")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "Ada", user.Name)
	assert.NotEqual(t, "hunter2", user.PasswordHash, "password must not be stored in the clear")

	loginToken, loginUser, err := svc.Login("ada@example.com", "hunter2")
	require.NoError(t, err)
	assert.NotEmpty(t, loginToken)
	assert.Equal(t, user.ID, loginUser.ID)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := newTestService()

	_, _, err := svc.Register("ada@example.com", "hunter2", "Ada")
	require.NoError(t, err)

	_, _, err = svc.Register("ada@example.com", "other", "Imposter")
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestRegister_ConcurrentSameEmailOnlyOneWins(t *testing.T) {
	users := store.New[domain.User]()
	svc := NewService(users, "test-secret", time.Hour)

	var wg sync.WaitGroup
	errs := make([]error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, _, errs[n] = svc.Register("race@example.com", "pw", "Racer")
		}(i)
	}
	wg.Wait()

	var succeeded int
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, ErrUserExists)
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, users.Len())
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newTestService()
	_, _, err := svc.Register("ada@example.com", "hunter2", "Ada")
	require.NoError(t, err)

	_, _, err = svc.Login("ada@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login("nobody@example.com", "hunter2")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestVerify_ValidToken(t *testing.T) {
	svc := newTestService()
	token, user, err := svc.Register("ada@example.com", "hunter2", "Ada")
	require.NoError(t, err)

	identity, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, identity.ID)
	assert.Equal(t, "ada@example.com", identity.Email)
}

func TestVerify_GarbageToken(t *testing.T) {
	svc := newTestService()

	identity, err := svc.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, identity)
}

func TestVerify_ExpiredToken(t *testing.T) {
	users := store.New[domain.User]()
	svc := NewService(users, "test-secret", -time.Minute)

	token, _, err := svc.Register("ada@example.com", "hunter2", "Ada")
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_TokenSignedWithDifferentSecret(t *testing.T) {
	users := store.New[domain.User]()
	signer := NewService(users, "secret-a", time.Hour)
	verifier := NewService(users, "secret-b", time.Hour)

	token, _, err := signer.Register("ada@example.com", "hunter2", "Ada")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
