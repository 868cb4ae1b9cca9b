// Package sqlstore implements the task and daily-stats repositories on
// an embedded SQLite database via gorm.
package sqlstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"tasktide/internal/domain"
)

// taskRecord is the database representation of a task.
type taskRecord struct {
	CreatedAt   time.Time  `gorm:"index;not null"`
	StartTime   *time.Time `gorm:""`
	EndTime     *time.Time `gorm:""`
	ID          string     `gorm:"primaryKey;size:36"`
	Title       string     `gorm:"not null"`
	Description string     `gorm:""`
	Status      string     `gorm:"index;not null"`
	Priority    string     `gorm:"not null"`
}

// TableName returns the table name for taskRecord.
func (taskRecord) TableName() string { return "tasks" }

// statsRecord is the database representation of a day's aggregates.
// The Date key stays fixed-width YYYY-MM-DD so ORDER BY date is
// chronological.
type statsRecord struct {
	Date                string `gorm:"primaryKey;size:10"`
	CompletedTasksCount int    `gorm:"not null;default:0"`
	Streak              int    `gorm:"not null;default:0"`
}

// TableName returns the table name for statsRecord.
func (statsRecord) TableName() string { return "daily_stats" }

// Store implements domain.TaskRepository and domain.StatsRepository on a
// single SQLite file. The database is opened lazily on first use.
type Store struct {
	db   *gorm.DB
	path string
	mu   sync.Mutex
}

// New creates a Store for the given database file path. The file does
// not need to exist; it is created and migrated on first use.
func New(path string) *Store {
	return &Store{path: path}
}

// Initialize opens the database and runs pending migrations.
func (s *Store) Initialize() error {
	_, err := s.conn()
	return err
}

// conn returns the open database handle, opening and migrating on the
// first call.
func (s *Store) conn() (*gorm.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		return s.db, nil
	}

	if dir := filepath.Dir(s.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("%w: create data directory: %v", domain.ErrStoreUnavailable, err)
		}
	}

	db, err := gorm.Open(sqlite.Open(s.path), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", domain.ErrStoreUnavailable, s.path, err)
	}

	if err := migrate(db); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	s.db = db
	return db, nil
}

// GetTask retrieves a task by ID. Returns nil if not found.
func (s *Store) GetTask(id string) (*domain.Task, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}
	var rec taskRecord
	if err := db.First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get task %s: %w", id, err)
	}
	return toTask(&rec), nil
}

// ListTasks retrieves every stored task in creation order.
func (s *Store) ListTasks() ([]*domain.Task, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}
	var recs []taskRecord
	if err := db.Order("created_at, id").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return toTasks(recs), nil
}

// ListTasksByStatus retrieves tasks with the given status via the
// status index.
func (s *Store) ListTasksByStatus(status domain.Status) ([]*domain.Task, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}
	var recs []taskRecord
	if err := db.Where("status = ?", string(status)).Order("created_at, id").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list tasks by status %s: %w", status, err)
	}
	return toTasks(recs), nil
}

// AddTask inserts a new task. Fails with domain.ErrDuplicateTask if the
// ID already exists.
func (s *Store) AddTask(task *domain.Task) error {
	db, err := s.conn()
	if err != nil {
		return err
	}
	if err := db.Create(toRecord(task)).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("add task %s: %w", task.ID, domain.ErrDuplicateTask)
		}
		return fmt.Errorf("add task %s: %w", task.ID, err)
	}
	return nil
}

// SaveTask inserts or replaces the task with the same ID.
func (s *Store) SaveTask(task *domain.Task) error {
	db, err := s.conn()
	if err != nil {
		return err
	}
	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(toRecord(task)).Error
	if err != nil {
		return fmt.Errorf("save task %s: %w", task.ID, err)
	}
	return nil
}

// DeleteTask removes a task by ID. Deleting an absent ID is a no-op.
func (s *Store) DeleteTask(id string) error {
	db, err := s.conn()
	if err != nil {
		return err
	}
	if err := db.Delete(&taskRecord{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete task %s: %w", id, err)
	}
	return nil
}

// GetDailyStats retrieves the record for a day key. Returns nil if absent.
func (s *Store) GetDailyStats(date string) (*domain.DailyStats, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}
	var rec statsRecord
	if err := db.First(&rec, "date = ?", date).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get daily stats %s: %w", date, err)
	}
	return toStats(&rec), nil
}

// PutDailyStats inserts or replaces the record for its day key.
func (s *Store) PutDailyStats(stats *domain.DailyStats) error {
	db, err := s.conn()
	if err != nil {
		return err
	}
	rec := statsRecord{
		Date:                stats.Date,
		CompletedTasksCount: stats.CompletedTasksCount,
		Streak:              stats.Streak,
	}
	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}},
		UpdateAll: true,
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("put daily stats %s: %w", stats.Date, err)
	}
	return nil
}

// LatestDailyStats returns the chronologically last stored record, or
// nil if none exist.
func (s *Store) LatestDailyStats() (*domain.DailyStats, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}
	var rec statsRecord
	if err := db.Order("date DESC").First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get latest daily stats: %w", err)
	}
	return toStats(&rec), nil
}

func toRecord(t *domain.Task) *taskRecord {
	return &taskRecord{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		Priority:    string(t.Priority),
		CreatedAt:   t.CreatedAt,
		StartTime:   t.StartTime,
		EndTime:     t.EndTime,
	}
}

func toTask(r *taskRecord) *domain.Task {
	return &domain.Task{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Status:      domain.Status(r.Status),
		Priority:    domain.Priority(r.Priority),
		CreatedAt:   r.CreatedAt,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
	}
}

func toTasks(recs []taskRecord) []*domain.Task {
	tasks := make([]*domain.Task, 0, len(recs))
	for i := range recs {
		tasks = append(tasks, toTask(&recs[i]))
	}
	return tasks
}

func toStats(r *statsRecord) *domain.DailyStats {
	return &domain.DailyStats{
		Date:                r.Date,
		CompletedTasksCount: r.CompletedTasksCount,
		Streak:              r.Streak,
	}
}

// Interface guards.
var (
	_ domain.TaskRepository   = (*Store)(nil)
	_ domain.StatsRepository  = (*Store)(nil)
	_ domain.StoreInitializer = (*Store)(nil)
)
