package domain

import "time"

// StoreInitializer opens the data store and runs pending migrations.
type StoreInitializer interface {
	// Initialize ensures the store is open and its schema is current.
	Initialize() error
}

// TaskRepository manages task persistence.
type TaskRepository interface {
	// GetTask retrieves a task by ID. Returns nil if not found.
	GetTask(id string) (*Task, error)

	// ListTasks retrieves every stored task. Ordering is storage order
	// and carries no meaning beyond being stable.
	ListTasks() ([]*Task, error)

	// ListTasksByStatus retrieves tasks with the given status.
	ListTasksByStatus(status Status) ([]*Task, error)

	// AddTask inserts a new task. Fails with ErrDuplicateTask if the ID
	// already exists.
	AddTask(task *Task) error

	// SaveTask inserts or replaces the task with the same ID.
	SaveTask(task *Task) error

	// DeleteTask removes a task by ID. Deleting an absent ID is a no-op.
	DeleteTask(id string) error
}

// StatsRepository manages per-day aggregate persistence.
type StatsRepository interface {
	// GetDailyStats retrieves the record for a day key. Returns nil if absent.
	GetDailyStats(date string) (*DailyStats, error)

	// PutDailyStats inserts or replaces the record for its day key.
	PutDailyStats(stats *DailyStats) error

	// LatestDailyStats returns the chronologically last stored record,
	// or nil if none exist.
	LatestDailyStats() (*DailyStats, error)
}

// IDGenerator produces unique task identifiers.
type IDGenerator interface {
	// NewID returns a fresh identifier. Collisions are a programming error.
	NewID() string
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// Logger is the logging port used across use cases. A nil Logger is
// valid and disables logging.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the configuration, falling back to defaults when no
	// config file exists.
	Load() (*Config, error)
}

// Config represents the application configuration.
type Config struct {
	Data DataConfig // [data] settings
	Log  LogConfig  // [log] settings
}

// DataConfig holds storage settings from the [data] section.
type DataConfig struct {
	Dir string // Directory holding the database and logs
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string // Log level: debug, info, warn, error
}
