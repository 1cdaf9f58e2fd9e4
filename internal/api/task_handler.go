package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/tasks-api/internal/api/shared"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/phrazzld/tasks-api/internal/store"
)

// TaskHandler serves the tasks_ collection. Each operation validates its
// input, issues exactly one store call and maps the outcome to a response.
type TaskHandler struct {
	taskStore store.TaskStore
	logger    *slog.Logger
}

// NewTaskHandler creates a new TaskHandler.
// If logger is nil, a default logger will be used.
func NewTaskHandler(taskStore store.TaskStore, logger *slog.Logger) *TaskHandler {
	if taskStore == nil {
		panic("taskStore cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &TaskHandler{
		taskStore: taskStore,
		logger:    logger.With(slog.String("component", "task_handler")),
	}
}

// Routes registers the task endpoints on r.
func (h *TaskHandler) Routes(r chi.Router) {
	r.Post("/", h.CreateTask)
	r.Get("/", h.ListTasks)
	r.Put("/{id}", h.UpdateTask)
	r.Delete("/{id}", h.DeleteTask)
}

// storeContext detaches the store call from client cancellation: a
// statement that has started runs to completion even if the client leaves.
func storeContext(r *http.Request) context.Context {
	return context.WithoutCancel(r.Context())
}

// decodeTaskRequest parses and validates a create/update body, writing the
// 400 response itself when the body is unusable.
func (h *TaskHandler) decodeTaskRequest(w http.ResponseWriter, r *http.Request) (*TaskRequest, bool) {
	var req TaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgInvalidBody, err)
		return nil, false
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgFieldsRequired, err)
		return nil, false
	}
	return &req, true
}

// CreateTask handles POST /tasks_.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeTaskRequest(w, r)
	if !ok {
		return
	}

	newTask, err := domain.NewTask(req.Text, req.ImageURL)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	task, err := h.taskStore.Create(storeContext(r), newTask)
	if err != nil {
		HandleAPIError(w, r, err, "failed to create task")
		return
	}

	logger.ForComponent(r.Context(), h.logger, "task_handler").Info("task added", slog.Int64("task_id", task.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, taskToResponse(task))
}

// ListTasks handles GET /tasks_. The body is always a JSON array.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskStore.List(storeContext(r))
	if err != nil {
		HandleAPIError(w, r, err, "failed to list tasks")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, tasksToResponse(tasks))
}

// UpdateTask handles PUT /tasks_/{id}. The response echoes the requested
// state without re-reading the row.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeTaskRequest(w, r)
	if !ok {
		return
	}

	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	task, err := h.taskStore.Update(storeContext(r), &domain.Task{ID: id, Text: req.Text, ImageURL: req.ImageURL})
	if err != nil {
		HandleAPIError(w, r, err, "failed to update task")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// DeleteTask handles DELETE /tasks_/{id}.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.taskStore.Delete(storeContext(r), id); err != nil {
		HandleAPIError(w, r, err, "failed to delete task")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
