package domain

import "errors"

// Validation errors for Task
var (
	ErrEmptyTaskText     = errors.New("task text cannot be empty")
	ErrEmptyTaskImageURL = errors.New("task imageUrl cannot be empty")
)

// Task is the single record this service manages: some free text and the
// URL of an image that goes with it. ID is assigned by the store on insert
// and never changes afterwards.
type Task struct {
	ID       int64  `json:"id"       db:"id"`
	Text     string `json:"text"     db:"text"`
	ImageURL string `json:"imageUrl" db:"image_url"`
}

// NewTask builds an unsaved Task (ID 0) and validates it.
func NewTask(text, imageURL string) (*Task, error) {
	t := &Task{Text: text, ImageURL: imageURL}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate checks that both content fields are present.
func (t *Task) Validate() error {
	if t.Text == "" {
		return NewValidationError("text", "is required", ErrEmptyTaskText)
	}
	if t.ImageURL == "" {
		return NewValidationError("imageUrl", "is required", ErrEmptyTaskImageURL)
	}
	return nil
}

// ValidateID checks that id can refer to a stored task.
func ValidateID(id int64) error {
	if id <= 0 {
		return NewValidationError("id", "must be a positive integer", ErrInvalidID)
	}
	return nil
}
