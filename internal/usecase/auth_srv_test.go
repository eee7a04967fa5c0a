package usecase_test

import (
	"context"
	"testing"

	"kinopark/internal/data/entity"
	"kinopark/internal/data/repository"
	"kinopark/internal/data/repository/mocks"
	"kinopark/internal/dto/request"
	"kinopark/internal/usecase"
	"kinopark/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func authConfig() *utils.Config {
	return &utils.Config{
		Session: utils.SessionConfig{ExpiryHours: 24},
	}
}

func TestRegister_Success(t *testing.T) {
	userRepo := mocks.NewUserRepository(t)

	repo := &repository.Repository{User: userRepo, Session: mocks.NewSessionRepository(t)}
	service := usecase.NewAuthService(repo, authConfig(), zap.NewNop())

	ctx := context.Background()

	userRepo.On("FindByEmail", ctx, "ana@example.com").Return(nil, nil)
	userRepo.On("FindByUsername", ctx, "ana").Return(nil, nil)
	userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*entity.User)
			assert.Equal(t, entity.RoleCustomer, user.Role)
			assert.True(t, user.IsActive)
			assert.NotEqual(t, "secret123", user.PasswordHash)
		}).
		Return(nil)

	resp, err := service.Register(ctx, &request.RegisterRequest{
		Username: "ana",
		Email:    "ana@example.com",
		Password: "secret123",
	})

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "ana", resp.Username)
}

func TestRegister_EmailTaken(t *testing.T) {
	userRepo := mocks.NewUserRepository(t)

	repo := &repository.Repository{User: userRepo, Session: mocks.NewSessionRepository(t)}
	service := usecase.NewAuthService(repo, authConfig(), zap.NewNop())

	ctx := context.Background()
	existing := &entity.User{BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()}}

	userRepo.On("FindByEmail", ctx, "ana@example.com").Return(existing, nil)

	_, err := service.Register(ctx, &request.RegisterRequest{
		Username: "ana",
		Email:    "ana@example.com",
		Password: "secret123",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestLogin_Success(t *testing.T) {
	userRepo := mocks.NewUserRepository(t)
	sessionRepo := mocks.NewSessionRepository(t)

	repo := &repository.Repository{User: userRepo, Session: sessionRepo}
	service := usecase.NewAuthService(repo, authConfig(), zap.NewNop())

	ctx := context.Background()
	hashed, err := utils.HashPassword("secret123")
	require.NoError(t, err)

	user := &entity.User{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()},
		Username:     "ana",
		Email:        "ana@example.com",
		PasswordHash: hashed,
		Role:         entity.RoleCustomer,
		IsActive:     true,
	}

	userRepo.On("FindByEmail", ctx, "ana@example.com").Return(user, nil)
	sessionRepo.On("Create", ctx, mock.AnythingOfType("*entity.Session")).
		Run(func(args mock.Arguments) {
			session := args.Get(1).(*entity.Session)
			assert.Equal(t, user.ID, session.UserID)
			assert.NotEqual(t, uuid.Nil, session.Token)
		}).
		Return(nil)

	resp, err := service.Login(ctx, &request.LoginRequest{
		Email:    "ana@example.com",
		Password: "secret123",
	})

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, user.ID.String(), resp.User.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	userRepo := mocks.NewUserRepository(t)

	repo := &repository.Repository{User: userRepo, Session: mocks.NewSessionRepository(t)}
	service := usecase.NewAuthService(repo, authConfig(), zap.NewNop())

	ctx := context.Background()
	hashed, err := utils.HashPassword("secret123")
	require.NoError(t, err)

	user := &entity.User{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()},
		Email:        "ana@example.com",
		PasswordHash: hashed,
		IsActive:     true,
	}

	userRepo.On("FindByEmail", ctx, "ana@example.com").Return(user, nil)

	_, err = service.Login(ctx, &request.LoginRequest{
		Email:    "ana@example.com",
		Password: "wrongpass",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
}

func TestLogin_InactiveUser(t *testing.T) {
	userRepo := mocks.NewUserRepository(t)

	repo := &repository.Repository{User: userRepo, Session: mocks.NewSessionRepository(t)}
	service := usecase.NewAuthService(repo, authConfig(), zap.NewNop())

	ctx := context.Background()
	user := &entity.User{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()},
		Email:        "ana@example.com",
		IsActive:     false,
	}

	userRepo.On("FindByEmail", ctx, "ana@example.com").Return(user, nil)

	_, err := service.Login(ctx, &request.LoginRequest{
		Email:    "ana@example.com",
		Password: "secret123",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
}
