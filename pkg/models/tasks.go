package models

import (
	"time"
)

// Task statuses. Transitions are monotonic:
// PENDING -> IN_PROGRESS -> DONE or FAILED.
const (
	TaskStatusPending    = "PENDING"
	TaskStatusInProgress = "IN_PROGRESS"
	TaskStatusDone       = "DONE"
	TaskStatusFailed     = "FAILED"
)

// Task kinds understood by the agent
const (
	TaskKindSetPassword = "SET_PASSWORD"
	TaskKindReboot      = "REBOOT"
	TaskKindRunCommand  = "RUN_COMMAND"
)

// Task is a queued command for a single device. Payload is the kind
// specific JSON document the agent receives verbatim. ClaimedAt is set
// when an agent claims the task and anchors the lease timeout.
type Task struct {
	Model
	DeviceID    uint       `json:"DeviceID" gorm:"index;<-:create"`
	Kind        string     `json:"Kind" gorm:"<-:create"`
	Payload     string     `json:"Payload" gorm:"<-:create"`
	Status      string     `json:"Status" gorm:"default:PENDING;index"`
	ClaimedAt   *time.Time `json:"ClaimedAt,omitempty"`
	CompletedAt *time.Time `json:"CompletedAt,omitempty"`
	Error       string     `json:"Error,omitempty"`
}

// Terminal reports whether the task reached a final status
func (task *Task) Terminal() bool {
	return task.Status == TaskStatusDone || task.Status == TaskStatusFailed
}

// TaskResult is the agent's outcome report for a claimed task
type TaskResult struct {
	Success bool   `json:"Success"`
	Error   string `json:"Error,omitempty"`
}
