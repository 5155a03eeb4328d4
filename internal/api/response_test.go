package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blkoutuk/ivor/internal/domain"
)

func TestSuccess(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, http.StatusOK, map[string]string{"status": "ok"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp SuccessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, map[string]interface{}{"status": "ok"}, resp.Data)
}

func TestError(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, http.StatusBadRequest, "message is required")

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "message is required", resp.Error)
}

func TestDomainErrorToHTTP(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"nil", nil, http.StatusOK},
		{"validation", domain.ErrMissingRequiredField, http.StatusBadRequest},
		{"not found", domain.ErrKnowledgeItemNotFound, http.StatusNotFound},
		{"rate limited", domain.ErrRateLimited, http.StatusTooManyRequests},
		{"context unavailable", domain.ErrContextUnavailable, http.StatusServiceUnavailable},
		{"generation failed", domain.ErrGenerationFailed, http.StatusBadGateway},
		{"internal", domain.NewDomainError(domain.ErrCodeInternalError, "boom"), http.StatusInternalServerError},
		{"unknown code", domain.NewDomainError("SOMETHING_ELSE", "boom"), http.StatusInternalServerError},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, DomainErrorToHTTP(tt.err))
		})
	}
}
