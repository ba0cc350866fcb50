package services

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/gorm"

	kafkacommon "github.com/fleetdesk/fleet-api/pkg/common/kafka"
	"github.com/fleetdesk/fleet-api/pkg/db"
	"github.com/fleetdesk/fleet-api/pkg/metrics"
	"github.com/fleetdesk/fleet-api/pkg/models"

	log "github.com/sirupsen/logrus"
)

// TaskCancelledByAdminError is the synthetic error recorded on a task
// cancelled before any agent claimed it
const TaskCancelledByAdminError = "cancelled by administrator"

// TaskServiceInterface defines the interface that helps handle
// the business logic of the per-device task queue
type TaskServiceInterface interface {
	Enqueue(deviceUUID string, kind string, payload json.RawMessage) (*models.Task, error)
	PollNext(deviceUUID string) (*models.Task, error)
	ReportResult(deviceUUID string, taskID uint, result *models.TaskResult) (*models.Task, error)
	Cancel(taskID uint) (*models.Task, error)
	ListForDevice(deviceUUID string, limit int, offset int) (*[]models.Task, int64, error)
	ReleaseExpiredClaims(lease time.Duration) (int64, error)
}

// TaskService is the main implementation of a TaskServiceInterface
type TaskService struct {
	Service
	Producer kafkacommon.ProducerServiceInterface
}

// NewTaskService returns an instance of the main implementation of a TaskServiceInterface
func NewTaskService(ctx context.Context, log *log.Entry) TaskServiceInterface {
	return &TaskService{
		Service:  Service{ctx: ctx, log: log.WithField("service", "tasks")},
		Producer: kafkacommon.NewProducerService(),
	}
}

type setPasswordPayload struct {
	Password string `json:"password"`
}

type runCommandPayload struct {
	Command string `json:"command"`
}

// validateTaskPayload checks the payload shape for the given kind
func validateTaskPayload(kind string, payload json.RawMessage) error {
	switch kind {
	case models.TaskKindSetPassword:
		var p setPasswordPayload
		if err := json.Unmarshal(payload, &p); err != nil || p.Password == "" {
			return new(InvalidTaskPayloadError)
		}
	case models.TaskKindRunCommand:
		var p runCommandPayload
		if err := json.Unmarshal(payload, &p); err != nil || p.Command == "" {
			return new(InvalidTaskPayloadError)
		}
	case models.TaskKindReboot:
		// no payload required
	default:
		return new(UnknownTaskKindError)
	}
	return nil
}

// Enqueue creates a PENDING task for the device. Each call is one
// independent delivery attempt, the queue never retries on its own.
func (s *TaskService) Enqueue(deviceUUID string, kind string, payload json.RawMessage) (*models.Task, error) {
	if err := validateTaskPayload(kind, payload); err != nil {
		return nil, err
	}

	var device models.Device
	if result := db.DB.Where("uuid = ?", deviceUUID).First(&device); result.Error != nil {
		return nil, new(DeviceNotFoundError)
	}

	task := &models.Task{
		DeviceID: device.ID,
		Kind:     kind,
		Payload:  string(payload),
		Status:   models.TaskStatusPending,
	}
	if result := db.DB.Create(task); result.Error != nil {
		s.log.WithField("error", result.Error.Error()).Error("Error creating task")
		return nil, result.Error
	}

	metrics.TasksEnqueuedCount.WithLabelValues(kind).Inc()
	event := kafkacommon.CreateFleetEvent(metrics.ApplicationName, kafkacommon.EventTypeTaskEnqueued, deviceUUID, task)
	if err := s.Producer.ProduceEvent(kafkacommon.TopicTaskLifecycle, deviceUUID, event); err != nil {
		s.log.WithField("error", err.Error()).Error("Error producing task enqueued event")
	}
	s.log.WithFields(log.Fields{"taskID": task.ID, "kind": kind, "deviceUUID": deviceUUID}).Info("Task enqueued")
	return task, nil
}

// PollNext claims the oldest PENDING task for the device and returns it as
// IN_PROGRESS, or nil when the queue is empty. The claim is a conditional
// update on the status column, two concurrent polls never claim the same
// task: the loser of the race retries on the next oldest pending task.
func (s *TaskService) PollNext(deviceUUID string) (*models.Task, error) {
	var device models.Device
	if result := db.DB.Where("uuid = ?", deviceUUID).First(&device); result.Error != nil {
		return nil, new(DeviceNotFoundError)
	}

	for {
		var task models.Task
		result := db.DB.Where("device_id = ? AND status = ?", device.ID, models.TaskStatusPending).
			Order("id ASC").First(&task)
		if result.Error != nil {
			if result.Error == gorm.ErrRecordNotFound {
				return nil, nil
			}
			return nil, result.Error
		}

		now := time.Now()
		claimed := db.DB.Model(&models.Task{}).
			Where("id = ? AND status = ?", task.ID, models.TaskStatusPending).
			Updates(map[string]interface{}{
				"status":     models.TaskStatusInProgress,
				"claimed_at": now,
			})
		if claimed.Error != nil {
			return nil, claimed.Error
		}
		if claimed.RowsAffected == 0 {
			// lost the claim race, try the next pending task
			continue
		}

		task.Status = models.TaskStatusInProgress
		task.ClaimedAt = &now
		metrics.TasksClaimedCount.Inc()
		return &task, nil
	}
}

// ReportResult transitions a claimed task to DONE or FAILED. Only the
// device the task was queued for can report it, a task belonging to
// another device reads as not found. A stale report on a task that
// already left IN_PROGRESS returns InvalidTaskTransitionError, which
// agent callers treat as benign.
func (s *TaskService) ReportResult(deviceUUID string, taskID uint, result *models.TaskResult) (*models.Task, error) {
	var device models.Device
	if res := db.DB.Where("uuid = ?", deviceUUID).First(&device); res.Error != nil {
		return nil, new(DeviceNotFoundError)
	}

	var task models.Task
	if res := db.DB.Where("id = ? AND device_id = ?", taskID, device.ID).First(&task); res.Error != nil {
		return nil, new(TaskNotFoundError)
	}

	status := models.TaskStatusDone
	taskError := ""
	if !result.Success {
		status = models.TaskStatusFailed
		taskError = result.Error
	}

	now := time.Now()
	transitioned := db.DB.Model(&models.Task{}).
		Where("id = ? AND device_id = ? AND status = ?", taskID, device.ID, models.TaskStatusInProgress).
		Updates(map[string]interface{}{
			"status":       status,
			"completed_at": now,
			"error":        taskError,
		})
	if transitioned.Error != nil {
		s.log.WithField("error", transitioned.Error.Error()).Error("Error reporting task result")
		return nil, transitioned.Error
	}
	if transitioned.RowsAffected == 0 {
		return nil, new(InvalidTaskTransitionError)
	}

	task.Status = status
	task.CompletedAt = &now
	task.Error = taskError
	metrics.TasksCompletedCount.WithLabelValues(status).Inc()
	event := kafkacommon.CreateFleetEvent(metrics.ApplicationName, kafkacommon.EventTypeTaskCompleted, status, &task)
	if err := s.Producer.ProduceEvent(kafkacommon.TopicTaskLifecycle, status, event); err != nil {
		s.log.WithField("error", err.Error()).Error("Error producing task completed event")
	}
	return &task, nil
}

// Cancel fails a PENDING task before any agent claims it. Tasks already
// claimed or terminal cannot be cancelled.
func (s *TaskService) Cancel(taskID uint) (*models.Task, error) {
	var task models.Task
	if res := db.DB.First(&task, taskID); res.Error != nil {
		return nil, new(TaskNotFoundError)
	}

	now := time.Now()
	cancelled := db.DB.Model(&models.Task{}).
		Where("id = ? AND status = ?", taskID, models.TaskStatusPending).
		Updates(map[string]interface{}{
			"status":       models.TaskStatusFailed,
			"completed_at": now,
			"error":        TaskCancelledByAdminError,
		})
	if cancelled.Error != nil {
		return nil, cancelled.Error
	}
	if cancelled.RowsAffected == 0 {
		return nil, new(InvalidTaskTransitionError)
	}

	task.Status = models.TaskStatusFailed
	task.CompletedAt = &now
	task.Error = TaskCancelledByAdminError
	s.log.WithField("taskID", taskID).Info("Task cancelled")
	return &task, nil
}

// ListForDevice returns the device tasks newest-first with the total count
func (s *TaskService) ListForDevice(deviceUUID string, limit int, offset int) (*[]models.Task, int64, error) {
	var device models.Device
	if result := db.DB.Where("uuid = ?", deviceUUID).First(&device); result.Error != nil {
		return nil, 0, new(DeviceNotFoundError)
	}

	var count int64
	if res := db.DB.Model(&models.Task{}).Where("device_id = ?", device.ID).Count(&count); res.Error != nil {
		return nil, 0, res.Error
	}

	var tasks []models.Task
	res := db.DB.Where("device_id = ?", device.ID).
		Order("created_at DESC, id DESC").
		Limit(limit).Offset(offset).
		Find(&tasks)
	if res.Error != nil {
		s.log.WithField("error", res.Error.Error()).Error("Error listing device tasks")
		return nil, 0, res.Error
	}

	return &tasks, count, nil
}

// ReleaseExpiredClaims reverts IN_PROGRESS tasks whose claim is older than
// the lease back to PENDING so another poll can pick them up. Run
// periodically by cmd/leasesweep.
func (s *TaskService) ReleaseExpiredClaims(lease time.Duration) (int64, error) {
	cutoff := time.Now().Add(-lease)
	result := db.DB.Model(&models.Task{}).
		Where("status = ? AND claimed_at < ?", models.TaskStatusInProgress, cutoff).
		Updates(map[string]interface{}{
			"status":     models.TaskStatusPending,
			"claimed_at": nil,
		})
	if result.Error != nil {
		s.log.WithField("error", result.Error.Error()).Error("Error releasing expired task claims")
		return 0, result.Error
	}

	if result.RowsAffected > 0 {
		metrics.TaskLeasesExpiredCount.Add(float64(result.RowsAffected))
		s.log.WithField("released", result.RowsAffected).Info("Released expired task claims")
	}
	return result.RowsAffected, nil
}
