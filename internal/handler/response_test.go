package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/ashwinyue/dataset-hub/internal/service/types"
)

func TestError_StatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", types.ErrNotFound, http.StatusUnauthorized},
		{"unauthorized", types.ErrUnauthorized, http.StatusUnauthorized},
		{"access prohibited", types.ErrAccessProhibited, http.StatusUnauthorized},
		{"duplicate id", types.ErrDuplicateID, http.StatusBadRequest},
		{"write failed", types.ErrWriteFailed, http.StatusBadRequest},
		{"wrapped sentinel", fmt.Errorf("failed to get dataset: %w", types.ErrNotFound), http.StatusUnauthorized},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			Error(c, tt.err)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestError_HidesInternalDetail(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Error(c, fmt.Errorf("failed to get dataset: %w",
		errors.New("dial tcp 127.0.0.1:5432: connection refused")))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	body := w.Body.String()
	if strings.Contains(body, "dial tcp") || strings.Contains(body, "5432") {
		t.Errorf("response leaks internal detail: %s", body)
	}
	if !strings.Contains(body, "internal server error") {
		t.Errorf("response missing generic message: %s", body)
	}
}
