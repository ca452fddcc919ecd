// package shared defines helpers used across the drop tracker: logging,
// configuration, database access and migrations.
package shared

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// NewLogger creates a new [log.Logger] instance with the specified [io.Writer], with timestamps and caller reporting enabled.
//
// The writer defaults to [os.Stderr]
func NewLogger(w io.Writer) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	opts := log.Options{ReportTimestamp: true, ReportCaller: true}
	return log.NewWithOptions(w, opts)
}

// WithLogger creates a child [log.Logger] with the specified key-value pairs added to all log entries.
func WithLogger(l *log.Logger, kv ...any) *log.Logger {
	return l.With(kv...)
}

// GenerateID generates a new v4 [uuid.UUID] as a string
func GenerateID() string {
	return uuid.New().String()
}

// EpochMillis converts a [time.Time] to epoch milliseconds, the canonical
// representation for drop timestamps.
func EpochMillis(t time.Time) int64 {
	return t.UnixMilli()
}

// FormatDropDate renders an epoch-milliseconds timestamp as a short locale
// date string (M/D/YYYY), the shape the drop feed exposes to clients.
func FormatDropDate(millis int64) string {
	t := time.UnixMilli(millis).UTC()
	return t.Format("1/2/2006")
}
