package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/medidea/medidea-api/internal/data"
	"github.com/medidea/medidea-api/internal/domain/auth"
	"github.com/medidea/medidea-api/internal/domain/model"
	apperrors "github.com/medidea/medidea-api/internal/errors"
	"github.com/medidea/medidea-api/internal/mocks"
)

func hashFor(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := mocks.NewMockUserRepository(ctrl)
	tokens := mocks.NewMockTokenAuthority(ctrl)
	svc := NewAuthService(AuthServiceOptions{Users: users, Tokens: tokens})

	user := &model.User{
		ID:           42,
		Email:        "ada@example.com",
		PasswordHash: hashFor(t, "correct-horse"),
		Name:         "Ada",
		Role:         auth.RoleAdmin,
	}
	users.EXPECT().GetByEmail(gomock.Any(), "ada@example.com").Return(user, nil)
	tokens.EXPECT().Issue(auth.Identity{UserID: 42, Email: "ada@example.com", Role: auth.RoleAdmin}).
		Return("signed-token", nil)

	res, err := svc.Login(context.Background(), "ada@example.com", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, "signed-token", res.Token)
	assert.Equal(t, int64(42), res.User.ID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := mocks.NewMockUserRepository(ctrl)
	tokens := mocks.NewMockTokenAuthority(ctrl)
	svc := NewAuthService(AuthServiceOptions{Users: users, Tokens: tokens})

	user := &model.User{ID: 1, Email: "ada@example.com", PasswordHash: hashFor(t, "correct-horse")}
	users.EXPECT().GetByEmail(gomock.Any(), "ada@example.com").Return(user, nil)

	_, err := svc.Login(context.Background(), "ada@example.com", "wrong")
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestAuthService_Login_UnknownEmailSameError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := mocks.NewMockUserRepository(ctrl)
	tokens := mocks.NewMockTokenAuthority(ctrl)
	svc := NewAuthService(AuthServiceOptions{Users: users, Tokens: tokens})

	users.EXPECT().GetByEmail(gomock.Any(), "nobody@example.com").Return(nil, data.ErrUserNotFound)
	_, unknownErr := svc.Login(context.Background(), "nobody@example.com", "whatever")
	assert.True(t, apperrors.IsUnauthorized(unknownErr))

	user := &model.User{ID: 1, Email: "ada@example.com", PasswordHash: hashFor(t, "correct-horse")}
	users.EXPECT().GetByEmail(gomock.Any(), "ada@example.com").Return(user, nil)
	_, wrongErr := svc.Login(context.Background(), "ada@example.com", "wrong")

	// the two failure modes must be indistinguishable to the caller
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestAuthService_Login_EmptyInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewAuthService(AuthServiceOptions{
		Users:  mocks.NewMockUserRepository(ctrl),
		Tokens: mocks.NewMockTokenAuthority(ctrl),
	})

	_, err := svc.Login(context.Background(), "", "password")
	assert.True(t, apperrors.IsUnauthorized(err))

	_, err = svc.Login(context.Background(), "a@b.c", "")
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestAuthService_Login_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := mocks.NewMockUserRepository(ctrl)
	tokens := mocks.NewMockTokenAuthority(ctrl)
	svc := NewAuthService(AuthServiceOptions{Users: users, Tokens: tokens})

	users.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))

	_, err := svc.Login(context.Background(), "ada@example.com", "correct-horse")
	require.Error(t, err)
	assert.False(t, apperrors.IsUnauthorized(err), "infrastructure failures are not credential failures")
}

func TestAuthService_Me(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := mocks.NewMockUserRepository(ctrl)
	svc := NewAuthService(AuthServiceOptions{Users: users, Tokens: mocks.NewMockTokenAuthority(ctrl)})

	users.EXPECT().GetByID(gomock.Any(), int64(7)).Return(&model.User{ID: 7, Email: "x@y.z"}, nil)
	user, err := svc.Me(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)

	users.EXPECT().GetByID(gomock.Any(), int64(8)).Return(nil, data.ErrUserNotFound)
	_, err = svc.Me(context.Background(), 8)
	assert.True(t, apperrors.IsUnauthorized(err))
}
