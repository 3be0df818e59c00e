package app

import (
	"log/slog"

	"github.com/treykane/cli-blocks/internal/logging"
)

// appLog is the package-level logger for the app package. Output goes to
// stderr so it never corrupts the Bubble Tea screen.
var appLog = logging.New("app")

// setStatusError updates the status bar with a user-facing error message and
// logs a structured error entry carrying the error and any extra attrs.
//
//	m.setStatusError("Error saving document", err, "path", path)
func (m *Model) setStatusError(status string, err error, attrs ...any) {
	m.status = status
	fields := make([]any, 0, len(attrs)+2)
	fields = append(fields, slog.Any("error", err))
	fields = append(fields, attrs...)
	appLog.Error(status, fields...)
}
