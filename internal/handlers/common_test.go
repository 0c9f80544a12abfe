package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gnb-666/pgy-travel-back/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFailMapsTaxonomyToStatus(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
	}{
		{fmt.Errorf("%w: title must be 1-100 characters", apperr.ErrValidation), http.StatusBadRequest},
		{fmt.Errorf("%w: note 123", apperr.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("%w: username already taken", apperr.ErrConflict), http.StatusConflict},
		{fmt.Errorf("%w: invalid or expired session", apperr.ErrUnauthorized), http.StatusUnauthorized},
		{fmt.Errorf("%w: role 1 may not perform notes.delete", apperr.ErrForbidden), http.StatusForbidden},
	}

	for _, tt := range tests {
		rec := httptest.NewRecorder()
		fail(rec, tt.err)

		assert.Equal(t, tt.wantStatus, rec.Code)

		var resp errorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Equal(t, tt.err.Error(), resp.Message)
	}
}

func TestFailHidesInternalErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	fail(rec, fmt.Errorf("mongo: connection reset by peer"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection reset")

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "internal server error", resp.Message)
}

func TestExtractBearerToken(t *testing.T) {
	assert.Equal(t, "abc123", extractBearerToken("Bearer abc123"))
	assert.Equal(t, "abc123", extractBearerToken("Bearer  abc123 "))
	assert.Equal(t, "", extractBearerToken("abc123"))
	assert.Equal(t, "", extractBearerToken(""))
	assert.Equal(t, "", extractBearerToken("Basic abc123"))
}
