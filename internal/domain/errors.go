package domain

import "errors"

// Domain errors.
var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrDuplicateTask    = errors.New("task id already exists")
	ErrStoreUnavailable = errors.New("task store unavailable")
	ErrEmptyTitle       = errors.New("title cannot be empty")
	ErrInvalidStatus    = errors.New("invalid status")
	ErrInvalidPriority  = errors.New("invalid priority")
	ErrEmptyFile        = errors.New("import file is empty")
	ErrNoTasksInFile    = errors.New("no tasks found in file")
)
