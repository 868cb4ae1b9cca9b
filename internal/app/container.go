// Package app provides the dependency injection container for the application.
package app

import (
	"path/filepath"

	"github.com/google/uuid"

	"tasktide/internal/domain"
	"tasktide/internal/infra/config"
	"tasktide/internal/infra/logging"
	"tasktide/internal/infra/sqlstore"
	"tasktide/internal/stats"
	"tasktide/internal/usecase"
)

// Paths holds the resolved filesystem locations the application uses.
type Paths struct {
	ConfigDir string // Directory holding config.toml
	DataDir   string // Directory holding the database and logs
	StorePath string // Path to the SQLite database file
	LogDir    string // Directory holding log files
}

// uuidGenerator implements domain.IDGenerator with random UUIDs.
type uuidGenerator struct{}

// NewID returns a fresh UUID string.
func (uuidGenerator) NewID() string { return uuid.NewString() }

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for
// use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Tasks            domain.TaskRepository
	Stats            domain.StatsRepository
	StoreInitializer domain.StoreInitializer
	Clock            domain.Clock
	IDs              domain.IDGenerator
	Logger           domain.Logger

	// Shared state
	Engine *stats.Engine
	Cache  *usecase.TaskCache

	// Configuration
	Config *domain.Config
	Paths  Paths
}

// New creates a new Container using the default config directory.
func New() (*Container, error) {
	return NewFromConfigDir(config.DefaultConfigDir())
}

// NewFromConfigDir creates a new Container reading configuration from
// the given directory. A missing or unreadable config file falls back
// to defaults; the store itself opens lazily on first use.
func NewFromConfigDir(configDir string) (*Container, error) {
	loader := config.NewLoader(configDir)
	cfg, err := loader.Load()
	if err != nil {
		// Malformed config should not brick the CLI; run with defaults.
		cfg = config.Default()
	}

	paths := Paths{
		ConfigDir: configDir,
		DataDir:   cfg.Data.Dir,
		StorePath: filepath.Join(cfg.Data.Dir, "tasktide.db"),
		LogDir:    filepath.Join(cfg.Data.Dir, "logs"),
	}

	store := sqlstore.New(paths.StorePath)
	logger := logging.New(paths.LogDir, logging.ParseLevel(cfg.Log.Level))
	engine := stats.NewEngine(store, logger)

	return &Container{
		Tasks:            store,
		Stats:            store,
		StoreInitializer: store,
		Clock:            domain.RealClock{},
		IDs:              uuidGenerator{},
		Logger:           logger,
		Engine:           engine,
		Cache:            usecase.NewTaskCache(),
		Config:           cfg,
		Paths:            paths,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(paths Paths, tasks domain.TaskRepository, statsRepo domain.StatsRepository, clock domain.Clock, ids domain.IDGenerator, logger domain.Logger) *Container {
	return &Container{
		Tasks:            tasks,
		Stats:            statsRepo,
		StoreInitializer: nil,
		Clock:            clock,
		IDs:              ids,
		Logger:           logger,
		Engine:           stats.NewEngine(statsRepo, logger),
		Cache:            usecase.NewTaskCache(),
		Config:           config.Default(),
		Paths:            paths,
	}
}

// UseCase factory methods

// CreateTaskUseCase returns a new CreateTask use case.
func (c *Container) CreateTaskUseCase() *usecase.CreateTask {
	return usecase.NewCreateTask(c.Tasks, c.Engine, c.Cache, c.IDs, c.Clock, c.Logger)
}

// SetStatusUseCase returns a new SetStatus use case.
func (c *Container) SetStatusUseCase() *usecase.SetStatus {
	return usecase.NewSetStatus(c.Tasks, c.Engine, c.Cache, c.Clock, c.Logger)
}

// SetPriorityUseCase returns a new SetPriority use case.
func (c *Container) SetPriorityUseCase() *usecase.SetPriority {
	return usecase.NewSetPriority(c.Tasks, c.Cache, c.Logger)
}

// DeleteTaskUseCase returns a new DeleteTask use case.
func (c *Container) DeleteTaskUseCase() *usecase.DeleteTask {
	return usecase.NewDeleteTask(c.Tasks, c.Engine, c.Cache, c.Clock, c.Logger)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Tasks, c.Cache, c.Clock)
}

// TodayStatsUseCase returns a new TodayStats use case.
func (c *Container) TodayStatsUseCase() *usecase.TodayStats {
	return usecase.NewTodayStats(c.Tasks, c.Stats, c.Engine, c.Clock)
}

// ImportTasksUseCase returns a new ImportTasks use case.
func (c *Container) ImportTasksUseCase() *usecase.ImportTasks {
	return usecase.NewImportTasks(c.CreateTaskUseCase())
}
