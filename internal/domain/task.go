// Package domain contains core business entities and interfaces.
package domain

import "time"

// Task represents a unit of work tracked by tasktide.
// Fields are ordered to minimize memory padding.
type Task struct {
	CreatedAt   time.Time  `json:"createdAt"`           // Creation time, immutable
	StartTime   *time.Time `json:"startTime,omitempty"` // First entry into doing (nil = never started)
	EndTime     *time.Time `json:"endTime,omitempty"`   // First entry into done (nil = never finished)
	ID          string     `json:"id"`                  // Opaque unique identifier, primary key
	Title       string     `json:"title"`               // Title (required)
	Description string     `json:"description,omitempty"`
	Status      Status     `json:"status"`
	Priority    Priority   `json:"priority"`
}

// IsDone returns true if the task is in the done state.
func (t *Task) IsDone() bool {
	return t.Status == StatusDone
}

// CreatedOn returns true if the task was created on the same local
// calendar day as the given time.
func (t *Task) CreatedOn(day time.Time) bool {
	y1, m1, d1 := t.CreatedAt.Local().Date()
	y2, m2, d2 := day.Local().Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
