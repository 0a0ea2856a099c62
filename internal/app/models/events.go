package models

// Event is a notification fanned out to subscribers. Delivery is synchronous,
// at-least-once, with no ordering guarantee across tasks.
type Event interface {
	isEvent()
}

// TaskCreatedEvent announces a new conversion task.
type TaskCreatedEvent struct {
	TaskID string
}

// ProgressEvent carries the absolute progress of a task after a mutation.
type ProgressEvent struct {
	TaskID   string
	Progress float64
}

// ConversionCompleteEvent carries the download task listing produced by a
// finished conversion, sorted by index descending.
type ConversionCompleteEvent struct {
	TaskID string
	Items  []TaskView
}

// LoginStatusEvent reports connectivity to the source and catalog services.
type LoginStatusEvent struct {
	Source  bool
	Catalog bool
}

// TaskFailedEvent announces a task moving to the failed state.
type TaskFailedEvent struct {
	TaskID string
}

func (TaskCreatedEvent) isEvent()        {}
func (ProgressEvent) isEvent()           {}
func (ConversionCompleteEvent) isEvent() {}
func (LoginStatusEvent) isEvent()        {}
func (TaskFailedEvent) isEvent()         {}
