package shared

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	RespondWithJSON(w, r, http.StatusCreated, map[string]int{"id": 1})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"id":1}`, w.Body.String())
}

func TestRespondWithText(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	RespondWithText(w, r, http.StatusOK, "hello")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/plain"))
	assert.Equal(t, "hello", w.Body.String())
}

func TestRespondWithError(t *testing.T) {
	t.Run("without details", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		RespondWithError(w, r, http.StatusNotFound, "task not found")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"task not found"}`, w.Body.String())
	})

	t.Run("with details", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		RespondWithError(w, r, http.StatusInternalServerError, "failed", WithDetails("table missing"))

		var body ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, ErrorResponse{Error: "failed", Details: "table missing"}, body)
	})
}

func TestRespondWithErrorAndLog_LogLevels(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{"server error", http.StatusInternalServerError, "ERROR"},
		{"client error", http.StatusBadRequest, "DEBUG"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := logger.New(&buf, "debug")

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPut, "/tasks_/1", nil)
			r = r.WithContext(logger.WithContext(r.Context(), log))

			RespondWithErrorAndLog(w, r, tt.status, "msg", errors.New("boom"))

			assert.Equal(t, tt.status, w.Code)

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, "boom", entry["error"])
			assert.Equal(t, "/tasks_/1", entry["path"])
		})
	}
}
