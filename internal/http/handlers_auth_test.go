package httpx

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/medidea/medidea-api/internal/adapters/memory"
	domainauth "github.com/medidea/medidea-api/internal/domain/auth"
	"github.com/medidea/medidea-api/internal/domain/model"
	"github.com/medidea/medidea-api/internal/domain/ratelimit"
	"github.com/medidea/medidea-api/internal/mocks"
	"github.com/medidea/medidea-api/internal/service"
)

func newAuthHandlers(t *testing.T, loginMax int) (*AuthHandlers, *mocks.MockUserRepository, *mocks.MockTokenAuthority, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)
	tokens := mocks.NewMockTokenAuthority(ctrl)
	svc := service.NewAuthService(service.AuthServiceOptions{Users: users, Tokens: tokens})
	limiter := service.NewRateLimiter(service.RateLimiterOptions{
		Store:  memory.NewRateStore(),
		Login:  ratelimit.Policy{Max: loginMax, Window: 15 * time.Minute},
		Upload: ratelimit.Policy{Max: 10, Window: time.Hour},
		API:    ratelimit.Policy{Max: 100, Window: time.Minute},
	})
	h := &AuthHandlers{Svc: svc, Limiter: limiter, Logger: testLogger()}
	return h, users, tokens, ctrl
}

func loginRequestBody(t *testing.T, email, password string) *bytes.Reader {
	t.Helper()
	b, err := json.Marshal(map[string]string{"email": email, "password": password})
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func TestLoginHandler_Success(t *testing.T) {
	h, users, tokens, ctrl := newAuthHandlers(t, 5)
	defer ctrl.Finish()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &model.User{ID: 3, Email: "tech@example.com", PasswordHash: string(hash), Role: domainauth.RoleTechnician}

	users.EXPECT().GetByEmail(gomock.Any(), "tech@example.com").Return(user, nil)
	tokens.EXPECT().Issue(domainauth.Identity{UserID: 3, Email: "tech@example.com", Role: domainauth.RoleTechnician}).Return("signed-token", nil)

	r := httptest.NewRequest(http.MethodPost, "/api/auth/login", loginRequestBody(t, "tech@example.com", "correct horse"))
	w := httptest.NewRecorder()
	h.Login(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	var got struct {
		Token string     `json:"token"`
		User  model.User `json:"user"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.Equal(t, "signed-token", got.Token)
	assert.Equal(t, int64(3), got.User.ID)
}

func TestLoginHandler_WrongPassword(t *testing.T) {
	h, users, _, ctrl := newAuthHandlers(t, 5)
	defer ctrl.Finish()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)
	users.EXPECT().GetByEmail(gomock.Any(), "tech@example.com").
		Return(&model.User{ID: 3, Email: "tech@example.com", PasswordHash: string(hash)}, nil)

	r := httptest.NewRequest(http.MethodPost, "/api/auth/login", loginRequestBody(t, "tech@example.com", "wrong"))
	w := httptest.NewRecorder()
	h.Login(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "unauthorized", decodeErrorBody(t, w)["error"])
}

func TestLoginHandler_RateLimited(t *testing.T) {
	h, users, _, ctrl := newAuthHandlers(t, 2)
	defer ctrl.Finish()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)
	users.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).
		Return(&model.User{ID: 3, PasswordHash: string(hash)}, nil).Times(2)

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		h.Login(w, httptest.NewRequest(http.MethodPost, "/api/auth/login", loginRequestBody(t, "tech@example.com", "wrong")))
		require.Equal(t, http.StatusUnauthorized, w.Code)
	}

	// Third attempt is blocked before the repository is consulted.
	w := httptest.NewRecorder()
	h.Login(w, httptest.NewRequest(http.MethodPost, "/api/auth/login", loginRequestBody(t, "tech@example.com", "wrong")))

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	body := decodeErrorBody(t, w)
	assert.Equal(t, "rate_limited", body["error"])
	assert.Contains(t, body, "reset_at")
}

func TestLoginHandler_InvalidJSON(t *testing.T) {
	h, _, _, ctrl := newAuthHandlers(t, 5)
	defer ctrl.Finish()

	r := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString("{bad"))
	w := httptest.NewRecorder()
	h.Login(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMeHandler(t *testing.T) {
	h, users, _, ctrl := newAuthHandlers(t, 5)
	defer ctrl.Finish()

	users.EXPECT().GetByID(gomock.Any(), int64(3)).
		Return(&model.User{ID: 3, Email: "tech@example.com", Role: domainauth.RoleTechnician}, nil)

	r := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	r = r.WithContext(SetClaimsInContext(r.Context(), &domainauth.Claims{UserID: 3, Role: domainauth.RoleTechnician}))
	w := httptest.NewRecorder()
	h.Me(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	var got model.User
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.Equal(t, "tech@example.com", got.Email)
}

func TestMeHandler_NoClaims(t *testing.T) {
	h, _, _, ctrl := newAuthHandlers(t, 5)
	defer ctrl.Finish()

	w := httptest.NewRecorder()
	h.Me(w, httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
