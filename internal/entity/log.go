package entity

import "time"

// LogLevel tags a progress log entry for display.
type LogLevel string

const (
	LogInfo    LogLevel = "info"
	LogSuccess LogLevel = "success"
	LogWarning LogLevel = "warning"
	LogError   LogLevel = "error"
	LogProcess LogLevel = "process"
)

// LogEntry is one line of the hunt progress narrative. Entries are transient:
// they narrate the current hunt only and are discarded when a new hunt starts.
type LogEntry struct {
	Message   string    `json:"message"`
	Level     LogLevel  `json:"level"`
	Timestamp time.Time `json:"timestamp"`
}
