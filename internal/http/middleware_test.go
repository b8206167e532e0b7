package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medidea/medidea-api/internal/adapters/jwtauth"
	"github.com/medidea/medidea-api/internal/adapters/memory"
	domainauth "github.com/medidea/medidea-api/internal/domain/auth"
	"github.com/medidea/medidea-api/internal/domain/ratelimit"
	"github.com/medidea/medidea-api/internal/service"
)

func newTestAuthority(t *testing.T) *jwtauth.Authority {
	t.Helper()
	authority, err := jwtauth.NewAuthority(jwtauth.Config{Secret: "test-secret", Lifetime: time.Hour})
	require.NoError(t, err)
	return authority
}

func issueToken(t *testing.T, authority *jwtauth.Authority, role domainauth.Role) string {
	t.Helper()
	token, err := authority.Issue(domainauth.Identity{UserID: 7, Email: "tech@example.com", Role: role})
	require.NoError(t, err)
	return token
}

func decodeErrorBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	return body
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	authority := newTestAuthority(t)
	handler := RequireAuth(authority)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler should not run without credentials")
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/customers", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "authentication_required", decodeErrorBody(t, w)["error"])
}

func TestRequireAuth_MalformedHeader(t *testing.T) {
	authority := newTestAuthority(t)
	handler := RequireAuth(authority)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler should not run")
	}))

	for _, header := range []string{"Basic abc123", "Bearer", "Bearer a b", "garbage"} {
		r := httptest.NewRequest(http.MethodGet, "/api/customers", nil)
		r.Header.Set("Authorization", header)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
		assert.Equal(t, "authentication_required", decodeErrorBody(t, w)["error"], "header %q", header)
	}
}

func TestRequireAuth_TamperedToken(t *testing.T) {
	authority := newTestAuthority(t)
	token := issueToken(t, authority, domainauth.RoleUser)
	handler := RequireAuth(authority)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler should not run")
	}))

	r := httptest.NewRequest(http.MethodGet, "/api/customers", nil)
	r.Header.Set("Authorization", "Bearer "+token+"x")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	past := time.Now().Add(-2 * time.Hour)
	expiredAuthority, err := jwtauth.NewAuthority(jwtauth.Config{
		Secret:   "test-secret",
		Lifetime: time.Hour,
		Now:      func() time.Time { return past },
	})
	require.NoError(t, err)
	token, err := expiredAuthority.Issue(domainauth.Identity{UserID: 7, Role: domainauth.RoleUser})
	require.NoError(t, err)

	authority := newTestAuthority(t)
	handler := RequireAuth(authority)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler should not run with an expired token")
	}))

	r := httptest.NewRequest(http.MethodGet, "/api/customers", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "authentication_required", decodeErrorBody(t, w)["error"])
}

func TestRequireAuth_ValidTokenSetsClaims(t *testing.T) {
	authority := newTestAuthority(t)
	token := issueToken(t, authority, domainauth.RoleTechnician)

	calls := 0
	handler := RequireAuth(authority)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		claims, ok := GetClaimsFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, int64(7), claims.UserID)
		assert.Equal(t, domainauth.RoleTechnician, claims.Role)
		w.WriteHeader(http.StatusOK)
	}))

	r := httptest.NewRequest(http.MethodGet, "/api/customers", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, calls)
}

func TestRequireRole_WrongRole(t *testing.T) {
	authority := newTestAuthority(t)
	token := issueToken(t, authority, domainauth.RoleUser)
	handler := RequireRole(authority, domainauth.RoleAdmin)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler should not run for the wrong role")
	}))

	r := httptest.NewRequest(http.MethodDelete, "/api/users/1", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "insufficient_permissions", decodeErrorBody(t, w)["error"])
}

func TestRequireRole_AdminIsNotImplicit(t *testing.T) {
	// Role matching is exact: an admin token does not satisfy a
	// technician-gated route.
	authority := newTestAuthority(t)
	token := issueToken(t, authority, domainauth.RoleAdmin)
	handler := RequireRole(authority, domainauth.RoleTechnician)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler should not run")
	}))

	r := httptest.NewRequest(http.MethodGet, "/api/anything", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRole_NoTokenIsUnauthorized(t *testing.T) {
	// Missing credentials report 401, not 403: the caller has no identity
	// to judge a role against.
	authority := newTestAuthority(t)
	handler := RequireRole(authority, domainauth.RoleAdmin)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler should not run")
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/users", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "authentication_required", decodeErrorBody(t, w)["error"])
}

func TestRecover_PanicBecomesJSON500(t *testing.T) {
	handler := Recover(testLogger())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/customers", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decodeErrorBody(t, w)
	assert.Equal(t, "internal_error", body["error"])
	assert.Contains(t, body["message"], "boom")
}

func newAPITestLimiter(maxAPI int) *service.RateLimiter {
	return service.NewRateLimiter(service.RateLimiterOptions{
		Store:  memory.NewRateStore(),
		Login:  ratelimit.Policy{Max: 5, Window: 15 * time.Minute},
		Upload: ratelimit.Policy{Max: 10, Window: time.Hour},
		API:    ratelimit.Policy{Max: maxAPI, Window: time.Minute},
	})
}

func TestAPIRateLimit_AllowsUnderLimit(t *testing.T) {
	limiter := newAPITestLimiter(3)
	handler := APIRateLimit(limiter, false)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/customers", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestAPIRateLimit_BlocksOverLimit(t *testing.T) {
	limiter := newAPITestLimiter(2)
	handler := APIRateLimit(limiter, false)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/customers", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/customers", nil))

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	body := decodeErrorBody(t, w)
	assert.Equal(t, "rate_limited", body["error"])
	assert.Contains(t, body, "remaining")
	assert.Contains(t, body, "reset_at")
	assert.EqualValues(t, 0, body["remaining"])
}

func TestAPIRateLimit_KeysByUserWhenAuthenticated(t *testing.T) {
	limiter := newAPITestLimiter(1)
	handler := APIRateLimit(limiter, false)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// Two different users from the same address each get their own quota.
	for _, userID := range []int64{1, 2} {
		r := httptest.NewRequest(http.MethodGet, "/api/customers", nil)
		r = r.WithContext(SetClaimsInContext(r.Context(), &domainauth.Claims{UserID: userID, Role: domainauth.RoleUser}))
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		assert.Equal(t, http.StatusOK, w.Code, "user %d", userID)
	}
}

func TestAPIRateLimit_SkipsNonAPIPaths(t *testing.T) {
	limiter := newAPITestLimiter(1)
	handler := APIRateLimit(limiter, false)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}
