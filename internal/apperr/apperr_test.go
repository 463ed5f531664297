package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  *Error
		want int
	}{
		{Unauthenticated("no token"), http.StatusUnauthorized},
		{Validation("bad"), http.StatusBadRequest},
		{Conflict("no snapshot"), http.StatusBadRequest},
		{NotFound("missing"), http.StatusNotFound},
		{Upstream(http.StatusUnprocessableEntity, "gateway", nil), http.StatusUnprocessableEntity},
		{Upstream(0, "gateway", nil), http.StatusBadGateway},
		{Internal("boom", errors.New("db down")), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.err.HTTPStatus(), tc.err.Message)
	}
}

func TestAsThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("loading cart: %w", NotFound("Cart not found"))

	appErr, ok := As(wrapped)

	assert.True(t, ok)
	assert.Equal(t, "Cart not found", appErr.Message)
	assert.True(t, Is(wrapped, KindNotFound))
	assert.False(t, Is(wrapped, KindConflict))
}

func TestInternalHidesCauseFromMessage(t *testing.T) {
	cause := errors.New("connection refused")
	err := Internal("Failed to fetch cart", cause)

	assert.Equal(t, "Failed to fetch cart", err.Message)
	assert.ErrorIs(t, err, cause)
}
