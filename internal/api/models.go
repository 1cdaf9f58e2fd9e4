package api

import "github.com/phrazzld/tasks-api/internal/domain"

// TaskRequest is the body accepted by create and update.
// Both fields must be present and non-empty.
type TaskRequest struct {
	Text     string `json:"text"     validate:"required"`
	ImageURL string `json:"imageUrl" validate:"required"`
}

// TaskResponse is the JSON shape of a stored task.
type TaskResponse struct {
	ID       int64  `json:"id"`
	Text     string `json:"text"`
	ImageURL string `json:"imageUrl"`
}

func taskToResponse(t *domain.Task) TaskResponse {
	return TaskResponse{ID: t.ID, Text: t.Text, ImageURL: t.ImageURL}
}

func tasksToResponse(tasks []*domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, taskToResponse(t))
	}
	return out
}
