package redact_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/phrazzld/tasks-api/internal/redact"
	"github.com/stretchr/testify/assert"
)

func TestRedactString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "no sensitive data",
			input:    "task not found",
			expected: "task not found",
		},
		{
			name:     "postgres url",
			input:    "failed to connect to postgres://root:hunter2@db:5432/task_manager",
			expected: "failed to connect to [REDACTED_CREDENTIAL]db:5432/task_manager",
		},
		{
			name:     "mysql dsn",
			input:    "invalid DSN root:hunter2@tcp(db:3306)/task_manager",
			expected: "invalid DSN [REDACTED_CREDENTIAL]tcp(db:3306)/task_manager",
		},
		{
			name:     "keyword password",
			input:    "cannot parse `host=db password=hunter2 dbname=x`",
			expected: "cannot parse `host=db [REDACTED_CREDENTIAL] dbname=x`",
		},
		{
			name:     "file path",
			input:    "unable to open /var/lib/tasks/tasks.db",
			expected: "unable to open [REDACTED_PATH]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, redact.String(tt.input))
		})
	}
}

func TestRedactError(t *testing.T) {
	assert.Equal(t, "", redact.Error(nil))

	err := fmt.Errorf("failed to ping database: %w", errors.New("postgres://u:p@h/db refused"))
	assert.NotContains(t, redact.Error(err), "u:p@")
}
