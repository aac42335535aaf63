package password_test

import (
	"strings"
	"testing"
	"todoapp/shared/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{
			name:     "regular password",
			password: "s3cret-password",
		},
		{
			name:     "empty password",
			password: "",
			wantErr:  password.ErrEmptyPassword,
		},
		{
			name:     "password longer than the bcrypt limit",
			password: strings.Repeat("a", 100),
		},
		{
			name:     "multibyte password",
			password: "pässwörd-ünïcödé",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := password.Hash(tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, hash)

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, hash)
			assert.NotEqual(t, tt.password, hash)
			assert.NoError(t, password.Verify(tt.password, hash))
		})
	}
}

func TestHash_SaltedPerCall(t *testing.T) {
	first, err := password.Hash("same-password")
	require.NoError(t, err)

	second, err := password.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVerify(t *testing.T) {
	hash, err := password.Hash("correct-password")
	require.NoError(t, err)

	tests := []struct {
		name      string
		candidate string
		hash      string
		wantErr   error
	}{
		{
			name:      "correct password",
			candidate: "correct-password",
			hash:      hash,
		},
		{
			name:      "wrong password",
			candidate: "wrong-password",
			hash:      hash,
			wantErr:   password.ErrInvalidPassword,
		},
		{
			name:      "empty candidate",
			candidate: "",
			hash:      hash,
			wantErr:   password.ErrInvalidPassword,
		},
		{
			name:      "empty hash",
			candidate: "correct-password",
			hash:      "",
			wantErr:   password.ErrInvalidPassword,
		},
		{
			name:      "malformed hash",
			candidate: "correct-password",
			hash:      "not-a-bcrypt-hash",
			wantErr:   password.ErrInvalidPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.candidate, tt.hash)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestVerify_TruncatesAtLimit(t *testing.T) {
	long := strings.Repeat("x", 80)
	prefix := long[:password.MaxPasswordBytes]

	hash, err := password.Hash(long)
	require.NoError(t, err)

	// The first 72 bytes are what bcrypt saw, so the prefix verifies and
	// differences past the limit are invisible.
	assert.NoError(t, password.Verify(prefix, hash))
	assert.NoError(t, password.Verify(long+"trailing-garbage", hash))

	mutated := strings.Repeat("x", 71) + "y"
	assert.ErrorIs(t, password.Verify(mutated, hash), password.ErrInvalidPassword)
}
