package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"todoapp/shared/failure"

	"github.com/stretchr/testify/assert"
)

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "bad request", err: failure.BadRequestFromString("bad input"), want: http.StatusBadRequest},
		{name: "unauthorized", err: failure.Unauthorized("no"), want: http.StatusUnauthorized},
		{name: "forbidden", err: failure.Forbidden("no"), want: http.StatusForbidden},
		{name: "not found", err: failure.NotFound("missing"), want: http.StatusNotFound},
		{name: "conflict", err: failure.Conflict("duplicate"), want: http.StatusConflict},
		{name: "plain error defaults to internal", err: errors.New("boom"), want: http.StatusInternalServerError},
		{name: "wrapped failure keeps its code", err: fmt.Errorf("context: %w", failure.NotFound("missing")), want: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, failure.GetCode(tt.err))
		})
	}
}

func TestPredefinedFailures(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, failure.GetCode(failure.InvalidCredentials))
	assert.Equal(t, "Could not validate credentials", failure.InvalidCredentials.Error())

	assert.Equal(t, http.StatusForbidden, failure.GetCode(failure.InactiveUser))
	assert.Equal(t, "Inactive user", failure.InactiveUser.Error())
}

func TestNilErrorConstructors(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
	assert.NoError(t, failure.InternalError(nil))
}
