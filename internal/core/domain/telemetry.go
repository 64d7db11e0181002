package domain

import "strings"

// VertexStatus represents the lifecycle state of a progress vertex, one per watched file.
type VertexStatus string

const (
	// VertexStatusRunning indicates the file is still being polled.
	VertexStatusRunning VertexStatus = "running"
	// VertexStatusCompleted indicates the file settled.
	VertexStatusCompleted VertexStatus = "completed"
	// VertexStatusFailed indicates polling stopped on an error or a timeout.
	VertexStatusFailed VertexStatus = "failed"
)

// LogLevel represents the severity of a log message, mirroring the standard slog levels.
type LogLevel int

const (
	// LogLevelDebug represents debug-level verbosity.
	LogLevelDebug LogLevel = -4
	// LogLevelInfo represents informational verbosity.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn represents warning verbosity.
	LogLevelWarn LogLevel = 4
	// LogLevelError represents error verbosity.
	LogLevelError LogLevel = 8
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// ParseLogLevel converts a flag value such as "debug" into a LogLevel, defaulting to info.
func ParseLogLevel(s string) LogLevel {
	switch strings.ToLower(s) {
	case "debug":
		return LogLevelDebug
	case "warn", "warning":
		return LogLevelWarn
	case "error":
		return LogLevelError
	default:
		return LogLevelInfo
	}
}

// IsTerminal checks if a status is a terminal state (Completed, Failed).
func (s VertexStatus) IsTerminal() bool {
	switch s {
	case VertexStatusCompleted, VertexStatusFailed:
		return true
	default:
		return false
	}
}
