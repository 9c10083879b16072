package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundtrip(t *testing.T) {
	hash, err := HashPassword("secret-pass")
	require.NoError(t, err)
	assert.True(t, CheckPassword(hash, "secret-pass"))
	assert.False(t, CheckPassword(hash, "wrong-pass"))
}

func TestTokenRoundtrip(t *testing.T) {
	env := &Env{JWTKey: []byte("test-key")}
	token, err := env.IssueToken(42, "engineer")
	require.NoError(t, err)

	id, err := env.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, 42, id)
}

func TestParseTokenRejectsWrongKey(t *testing.T) {
	env := &Env{JWTKey: []byte("test-key")}
	token, err := env.IssueToken(42, "engineer")
	require.NoError(t, err)

	other := &Env{JWTKey: []byte("other-key")}
	_, err = other.ParseToken(token)
	require.Error(t, err)
}

func TestMiddlewareBearerToken(t *testing.T) {
	env := &Env{JWTKey: []byte("test-key")}
	token, err := env.IssueToken(7, "engineer")
	require.NoError(t, err)

	var gotID int
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = UserID(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	env.Middleware(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 7, gotID)
}

func TestMiddlewareRejectsMissingToken(t *testing.T) {
	env := &Env{JWTKey: []byte("test-key")}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	env.Middleware(next).ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUserIDAbsent(t *testing.T) {
	_, ok := UserID(context.Background())
	assert.False(t, ok)
}

func TestIPRateLimiterBurst(t *testing.T) {
	l := NewIPRateLimiter(1, 2)
	assert.True(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.1"))
	assert.False(t, l.Allow("10.0.0.1"))
	// Other addresses get their own bucket.
	assert.True(t, l.Allow("10.0.0.2"))
}
