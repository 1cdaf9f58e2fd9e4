package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestWithParam(name, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(name, value)
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestGetPathID(t *testing.T) {
	id, err := getPathID(requestWithParam("id", "12"), "id")
	require.NoError(t, err)
	assert.EqualValues(t, 12, id)

	for _, bad := range []string{"", "abc", "0", "-1", "99999999999999999999", " 1"} {
		t.Run(bad, func(t *testing.T) {
			_, err := getPathID(requestWithParam("id", bad), "id")
			assert.ErrorIs(t, err, domain.ErrInvalidID)
		})
	}
}
