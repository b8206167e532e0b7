package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/medidea/medidea-api/internal/domain/model"
	"github.com/medidea/medidea-api/internal/mocks"
)

func TestUserService_Create_HashesPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := mocks.NewMockUserRepository(ctrl)
	svc := NewUserService(UserServiceOptions{Users: users})

	users.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *model.CreateUserRequest, hash string) (*model.User, error) {
			assert.NotEqual(t, req.Password, hash, "plaintext must never reach the repository")
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)))
			return &model.User{ID: 1, Email: req.Email}, nil
		})

	user, err := svc.Create(context.Background(), &model.CreateUserRequest{
		Email:    "new@example.com",
		Password: "long-enough",
		Name:     "New",
		Role:     "user",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
}

func TestUserService_Create_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewUserService(UserServiceOptions{Users: mocks.NewMockUserRepository(ctrl)})

	_, err := svc.Create(context.Background(), &model.CreateUserRequest{
		Email:    "new@example.com",
		Password: "short",
		Name:     "New",
		Role:     "user",
	})
	assert.Error(t, err)
}

func TestUserService_Update_RehashesOnlyWhenPasswordSet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := mocks.NewMockUserRepository(ctrl)
	svc := NewUserService(UserServiceOptions{Users: users})
	ctx := context.Background()

	name := "Renamed"
	users.EXPECT().Update(ctx, int64(1), gomock.Any(), nil).Return(&model.User{ID: 1}, nil)
	_, err := svc.Update(ctx, 1, &model.UpdateUserRequest{Name: &name})
	require.NoError(t, err)

	password := "fresh-password"
	users.EXPECT().Update(ctx, int64(1), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, _ *model.UpdateUserRequest, hash *string) (*model.User, error) {
			require.NotNil(t, hash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*hash), []byte(password)))
			return &model.User{ID: 1}, nil
		})
	_, err = svc.Update(ctx, 1, &model.UpdateUserRequest{Password: &password})
	require.NoError(t, err)
}
