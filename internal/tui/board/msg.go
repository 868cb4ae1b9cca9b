package board

import (
	"tasktide/internal/domain"
	"tasktide/internal/usecase"
)

// Msg is the interface for all board TUI messages.
// All message types implement this sealed interface.
//
//sumtype:decl
type Msg interface {
	sealed()
}

// MsgTasksLoaded is sent when the task list has been read from the store.
//
//nolint:govet // Logical field order preferred
type MsgTasksLoaded struct {
	Tasks []*domain.Task
	Err   error
}

func (MsgTasksLoaded) sealed() {}

// MsgStatsLoaded is sent when today's aggregates have been read.
//
//nolint:govet // Logical field order preferred
type MsgStatsLoaded struct {
	Stats *usecase.TodayStatsOutput
	Err   error
}

func (MsgStatsLoaded) sealed() {}

// MsgTaskMutated is sent after a create, status/priority change, or delete.
type MsgTaskMutated struct {
	Err error
}

func (MsgTaskMutated) sealed() {}
