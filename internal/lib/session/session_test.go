package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-0123456789"

func TestIssueAndParse(t *testing.T) {
	m := NewManager(testSecret, time.Hour)

	token, expiresAt, err := m.Issue("5b1f8a3e-1c2d-4e5f-8a9b-0c1d2e3f4a5b", "ana@example.com")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 2*time.Second)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "5b1f8a3e-1c2d-4e5f-8a9b-0c1d2e3f4a5b", claims.Subject)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, RoleAuthenticated, claims.Role)
}

func TestParse_WrongSecret(t *testing.T) {
	token, _, err := NewManager(testSecret, time.Hour).Issue("user-1", "a@example.com")
	require.NoError(t, err)

	_, err = NewManager("another-secret-0123456789", time.Hour).Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_Expired(t *testing.T) {
	m := NewManager(testSecret, time.Minute)
	m.now = func() time.Time { return time.Now().Add(-time.Hour) }

	token, _, err := m.Issue("user-1", "a@example.com")
	require.NoError(t, err)

	_, err = NewManager(testSecret, time.Minute).Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_Garbage(t *testing.T) {
	_, err := NewManager(testSecret, time.Hour).Parse("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestBearerToken(t *testing.T) {
	token, err := BearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	token, err = BearerToken("bearer   xyz ")
	require.NoError(t, err)
	assert.Equal(t, "xyz", token)

	for _, header := range []string{"", "Bearer", "Bearer ", "Basic abc"} {
		_, err := BearerToken(header)
		assert.ErrorIs(t, err, ErrMissingToken, header)
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct horse battery")
	require.NoError(t, err)

	assert.True(t, CheckPassword(hash, "correct horse battery"))
	assert.False(t, CheckPassword(hash, "wrong"))
	assert.False(t, CheckPassword("not-a-hash", "correct horse battery"))
}
