package interfaces

import "time"

// SchedulerInterface is the facade over the "run this callback at time T"
// primitive. Registrations are idempotent per task id: re-scheduling a live
// task replaces it instead of duplicating it, and cancelling a task that
// already fired or never existed is not an error.
type SchedulerInterface interface {
	ScheduleTask(taskID string, executeAt time.Time, callback func()) error
	CancelTask(taskID string)
	IsTaskScheduled(taskID string) bool
	ScheduledTasks() []string
	Stop()
}
