package jwt_test

import (
	"testing"
	"time"
	"todoapp/config"
	"todoapp/infras/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.JWT.AccessSecret = secret
	cfg.JWT.AccessExpireMin = 30
	cfg.App.Name = "todoapp-test"

	return cfg
}

func TestIssueAndValidate(t *testing.T) {
	svc := jwt.New(newConfig("test-secret"))

	token, err := svc.Issue("alice", svc.DefaultTTL())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", subject)
}

func TestDefaultTTL(t *testing.T) {
	svc := jwt.New(newConfig("test-secret"))

	assert.Equal(t, 30*time.Minute, svc.DefaultTTL())
}

func TestValidate_ExpiredToken(t *testing.T) {
	svc := jwt.New(newConfig("test-secret"))

	token, err := svc.Issue("alice", -time.Minute)
	require.NoError(t, err)

	subject, err := svc.Validate(token)
	assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	assert.Empty(t, subject)
}

func TestValidate_WrongSecret(t *testing.T) {
	issuer := jwt.New(newConfig("secret-one"))
	validator := jwt.New(newConfig("secret-two"))

	token, err := issuer.Issue("alice", time.Minute)
	require.NoError(t, err)

	subject, err := validator.Validate(token)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	assert.Empty(t, subject)
}

func TestValidate_MalformedToken(t *testing.T) {
	svc := jwt.New(newConfig("test-secret"))

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty token", token: ""},
		{name: "not a jwt", token: "garbage"},
		{name: "truncated jwt", token: "eyJhbGciOiJIUzI1NiJ9.broken"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subject, err := svc.Validate(tt.token)
			assert.ErrorIs(t, err, jwt.ErrInvalidToken)
			assert.Empty(t, subject)
		})
	}
}

func TestValidate_TamperedToken(t *testing.T) {
	svc := jwt.New(newConfig("test-secret"))

	token, err := svc.Issue("alice", time.Minute)
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"

	subject, err := svc.Validate(tampered)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	assert.Empty(t, subject)
}

func TestValidate_MissingSubject(t *testing.T) {
	svc := jwt.New(newConfig("test-secret"))

	token, err := svc.Issue("", time.Minute)
	require.NoError(t, err)

	subject, err := svc.Validate(token)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	assert.Empty(t, subject)
}

func TestExtractTokenFromHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{
			name:   "bearer token",
			header: "Bearer some-token",
			want:   "some-token",
		},
		{
			name:    "missing header",
			header:  "",
			wantErr: true,
		},
		{
			name:    "wrong scheme",
			header:  "Basic dXNlcjpwYXNz",
			wantErr: true,
		},
		{
			name:    "lowercase scheme",
			header:  "bearer some-token",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := jwt.ExtractTokenFromHeader(tt.header)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, token)
		})
	}
}
