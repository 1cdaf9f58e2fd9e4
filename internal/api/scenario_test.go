package api_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/tasks-api/internal/api"
	"github.com/phrazzld/tasks-api/internal/platform/sqlstore"
	"github.com/phrazzld/tasks-api/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	pool := testdb.Open(t)
	r := chi.NewRouter()
	r.Route("/tasks_", api.NewTaskHandler(sqlstore.NewSQLTaskStore(pool, nil), nil).Routes)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func do(srv *httptest.Server, method, path, body string) (int, []byte, error) {
	req, err := http.NewRequest(method, srv.URL+path, strings.NewReader(body))
	if err != nil {
		return 0, nil, err
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := srv.Client().Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	return resp.StatusCode, raw, err
}

func call(t *testing.T, srv *httptest.Server, method, path, body string) (int, []byte) {
	t.Helper()
	status, raw, err := do(srv, method, path, body)
	require.NoError(t, err)
	return status, raw
}

func listTasks(t *testing.T, srv *httptest.Server) []api.TaskResponse {
	t.Helper()
	status, body := call(t, srv, http.MethodGet, "/tasks_", "")
	require.Equal(t, http.StatusOK, status)
	var tasks []api.TaskResponse
	require.NoError(t, json.Unmarshal(body, &tasks))
	return tasks
}

func TestTaskLifecycle(t *testing.T) {
	srv := newServer(t)

	status, body := call(t, srv, http.MethodPost, "/tasks_", `{"text":"A","imageUrl":"http://x/a.png"}`)
	require.Equal(t, http.StatusCreated, status)
	var created api.TaskResponse
	require.NoError(t, json.Unmarshal(body, &created))
	assert.Positive(t, created.ID)
	assert.Equal(t, "A", created.Text)

	path := fmt.Sprintf("/tasks_/%d", created.ID)

	status, body = call(t, srv, http.MethodPut, path, `{"text":"B","imageUrl":"http://x/b.png"}`)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, fmt.Sprintf(`{"id":%d,"text":"B","imageUrl":"http://x/b.png"}`, created.ID), string(body))

	tasks := listTasks(t, srv)
	require.Len(t, tasks, 1)
	assert.Equal(t, api.TaskResponse{ID: created.ID, Text: "B", ImageURL: "http://x/b.png"}, tasks[0])

	status, body = call(t, srv, http.MethodDelete, path, "")
	require.Equal(t, http.StatusNoContent, status)
	assert.Empty(t, body)

	status, body = call(t, srv, http.MethodGet, "/tasks_", "")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, string(body))

	status, body = call(t, srv, http.MethodPut, path, `{"text":"C","imageUrl":"http://x/c.png"}`)
	assert.Equal(t, http.StatusNotFound, status)
	assert.JSONEq(t, `{"error":"task not found"}`, string(body))

	status, _ = call(t, srv, http.MethodDelete, path, "")
	assert.Equal(t, http.StatusNotFound, status)

	assert.Empty(t, listTasks(t, srv))
}

func TestRejectedRequestsDoNotMutate(t *testing.T) {
	srv := newServer(t)

	status, _ := call(t, srv, http.MethodPost, "/tasks_", `{"text":"keep","imageUrl":"u"}`)
	require.Equal(t, http.StatusCreated, status)
	before := listTasks(t, srv)

	status, body := call(t, srv, http.MethodPost, "/tasks_", `{"text":"","imageUrl":"u"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.JSONEq(t, `{"error":"text and imageUrl are required"}`, string(body))

	status, _ = call(t, srv, http.MethodPut, fmt.Sprintf("/tasks_/%d", before[0].ID), `{"imageUrl":"changed"}`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = call(t, srv, http.MethodPut, "/tasks_/123456", `{"text":"t","imageUrl":"u"}`)
	assert.Equal(t, http.StatusNotFound, status)

	assert.Equal(t, before, listTasks(t, srv))
}

func TestConcurrentCreatesGetDistinctIDs(t *testing.T) {
	srv := newServer(t)

	const n = 25
	var wg sync.WaitGroup
	ids := make(chan int64, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			status, body, err := do(srv, http.MethodPost, "/tasks_", fmt.Sprintf(`{"text":"t%d","imageUrl":"u"}`, i))
			if !assert.NoError(t, err) || !assert.Equal(t, http.StatusCreated, status) {
				return
			}
			var created api.TaskResponse
			if assert.NoError(t, json.Unmarshal(body, &created)) {
				ids <- created.ID
			}
		}(i)
	}
	wg.Wait()
	close(ids)

	seen := map[int64]bool{}
	for id := range ids {
		assert.False(t, seen[id], "id %d assigned twice", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
	assert.Len(t, listTasks(t, srv), n)
}
