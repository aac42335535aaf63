package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"todoapp/config"
	"todoapp/infras/jwt"
	"todoapp/infras/otel/mocks"
	userMocks "todoapp/internal/domains/user/mocks"
	userModel "todoapp/internal/domains/user/model"
	"todoapp/shared/constant"
	"todoapp/transport/http/middleware"
)

func newJWTService() jwt.JWT {
	cfg := &config.Config{}
	cfg.JWT.AccessSecret = "test-secret"
	cfg.JWT.AccessExpireMin = 30
	cfg.App.Name = "todoapp-test"

	return jwt.New(cfg)
}

func nextHandler(t *testing.T, calledUserID *string) http.Handler {
	t.Helper()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, _ := r.Context().Value(constant.ContextKeyUserID).(string)
		*calledUserID = userID

		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	jwtService := newJWTService()

	validToken, err := jwtService.Issue("alice", jwtService.DefaultTTL())
	require.NoError(t, err)

	expiredToken, err := jwtService.Issue("alice", -time.Minute)
	require.NoError(t, err)

	activeUser := userModel.User{
		ID:       "test-user-id",
		Username: "alice",
		IsActive: true,
	}

	inactiveUser := userModel.User{
		ID:       "test-user-id",
		Username: "alice",
		IsActive: false,
	}

	tests := []struct {
		name       string
		authHeader string
		setupMock  func(repo *userMocks.MockUser)
		wantStatus int
		wantNext   bool
	}{
		{
			name:       "valid token with active user",
			authHeader: "Bearer " + validToken,
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeUser, nil)
			},
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
		{
			name:       "missing authorization header",
			authHeader: "",
			setupMock:  func(repo *userMocks.MockUser) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed authorization header",
			authHeader: "Token " + validToken,
			setupMock:  func(repo *userMocks.MockUser) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "garbage token",
			authHeader: "Bearer not-a-token",
			setupMock:  func(repo *userMocks.MockUser) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "expired token",
			authHeader: "Bearer " + expiredToken,
			setupMock:  func(repo *userMocks.MockUser) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "token subject no longer exists",
			authHeader: "Bearer " + validToken,
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{}, nil)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "valid token with inactive user",
			authHeader: "Bearer " + validToken,
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(inactiveUser, nil)
			},
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := userMocks.NewMockUser(ctrl)
			tt.setupMock(mockRepo)

			mw := middleware.NewAuthMiddleware(jwtService, mockRepo, mocks.NewOtel())

			var calledUserID string
			handler := mw.Auth(nextHandler(t, &calledUserID))

			request := httptest.NewRequest(http.MethodGet, "/todos", nil)
			if tt.authHeader != "" {
				request.Header.Set(constant.RequestHeaderAuthorization, tt.authHeader)
			}

			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantStatus, recorder.Code)

			if tt.wantNext {
				assert.Equal(t, "test-user-id", calledUserID)
			} else {
				assert.Empty(t, calledUserID)
			}
		})
	}
}

func TestAuthMiddleware_UnauthorizedBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := userMocks.NewMockUser(ctrl)
	mw := middleware.NewAuthMiddleware(newJWTService(), mockRepo, mocks.NewOtel())

	handler := mw.Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run without credentials")
	}))

	request := httptest.NewRequest(http.MethodGet, "/todos", nil)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Equal(t, "Could not validate credentials", body.Error)
}
