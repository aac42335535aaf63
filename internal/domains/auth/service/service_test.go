package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"todoapp/config"
	jwtMocks "todoapp/infras/jwt/mocks"
	"todoapp/infras/otel/mocks"
	"todoapp/internal/domains/auth/model/dto"
	"todoapp/internal/domains/auth/service"
	userMocks "todoapp/internal/domains/user/mocks"
	userModel "todoapp/internal/domains/user/model"
	"todoapp/shared/failure"
	"todoapp/shared/password"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockUserRepo, cfg, mockOtel, mockJWT)

	req := dto.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cret",
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
		wantMsg   string
	}{
		{
			name: "successful registration",
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil).
					Times(2)

				mockUserRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "username already taken",
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: 400,
			wantMsg:  "Username already registered",
		},
		{
			name: "email already taken",
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: 400,
			wantMsg:  "Email already registered",
		},
		{
			name: "exist check error",
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, errors.New("database error"))
			},
			wantErr: true,
		},
		{
			name: "insert error",
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil).
					Times(2)

				mockUserRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Register(context.Background(), req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				if tt.wantMsg != "" {
					assert.Equal(t, tt.wantMsg, err.Error())
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, req.Username, res.Username)
			assert.Equal(t, req.Email, res.Email)
			assert.True(t, res.IsActive)
			assert.NotEmpty(t, res.ID)
		})
	}
}

func TestAuthService_Register_StoresHashedPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockUserRepo, cfg, mockOtel, mockJWT)

	mockUserRepo.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(false, nil).
		Times(2)

	var inserted userModel.User

	mockUserRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user userModel.User) error {
			inserted = user

			return nil
		})

	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "plaintext-password",
	})
	require.NoError(t, err)

	assert.NotEqual(t, "plaintext-password", inserted.PasswordHash)
	assert.NoError(t, password.Verify("plaintext-password", inserted.PasswordHash))
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockUserRepo, cfg, mockOtel, mockJWT)

	hash, err := password.Hash("correct-password")
	require.NoError(t, err)

	storedUser := userModel.User{
		ID:           "test-user-id",
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: hash,
		IsActive:     true,
	}

	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful login",
			req: dto.LoginRequest{
				Username: "alice",
				Password: "correct-password",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedUser, nil)

				mockJWT.EXPECT().
					DefaultTTL().
					Return(30 * time.Minute)

				mockJWT.EXPECT().
					Issue("alice", 30*time.Minute).
					Return("signed-token", nil)
			},
			wantErr: false,
		},
		{
			name: "unknown username",
			req: dto.LoginRequest{
				Username: "nobody",
				Password: "correct-password",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{}, nil)
			},
			wantErr:  true,
			wantCode: 401,
		},
		{
			name: "wrong password",
			req: dto.LoginRequest{
				Username: "alice",
				Password: "wrong-password",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedUser, nil)
			},
			wantErr:  true,
			wantCode: 401,
		},
		{
			name: "repository error",
			req: dto.LoginRequest{
				Username: "alice",
				Password: "correct-password",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{}, errors.New("database error"))
			},
			wantErr: true,
		},
		{
			name: "token issue error",
			req: dto.LoginRequest{
				Username: "alice",
				Password: "correct-password",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedUser, nil)

				mockJWT.EXPECT().
					DefaultTTL().
					Return(30 * time.Minute)

				mockJWT.EXPECT().
					Issue("alice", 30*time.Minute).
					Return("", errors.New("signing error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Login(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "signed-token", res.AccessToken)
			assert.Equal(t, "bearer", res.TokenType)
		})
	}
}

func TestAuthService_Login_SameMessageForUnknownUserAndWrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockUserRepo, cfg, mockOtel, mockJWT)

	hash, err := password.Hash("correct-password")
	require.NoError(t, err)

	mockUserRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(userModel.User{}, nil)

	_, unknownUserErr := svc.Login(context.Background(), dto.LoginRequest{
		Username: "nobody",
		Password: "whatever",
	})

	mockUserRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(userModel.User{
			ID:           "test-user-id",
			Username:     "alice",
			PasswordHash: hash,
			IsActive:     true,
		}, nil)

	_, wrongPasswordErr := svc.Login(context.Background(), dto.LoginRequest{
		Username: "alice",
		Password: "wrong-password",
	})

	require.Error(t, unknownUserErr)
	require.Error(t, wrongPasswordErr)
	assert.Equal(t, unknownUserErr.Error(), wrongPasswordErr.Error())
}
