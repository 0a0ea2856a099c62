package registry

import (
	"sort"
	"strconv"
	"sync"

	"github.com/google/uuid"
	"github.com/songbridge/songbridge/internal/app"
	"github.com/songbridge/songbridge/internal/app/models"
	"github.com/songbridge/songbridge/internal/utils/logger"
	"go.uber.org/zap"
)

// Registry is the in-memory task store shared by the dispatch worker, the
// resolution pool and the download pool. Structural changes (insert, remove)
// happen under the registry mutex; progress and state of a single task are
// guarded by that task's own lock. The index counter is advanced under the
// registry mutex, so index order matches creation order.
type Registry struct {
	mu         sync.Mutex
	tasks      map[uuid.UUID]*models.Task
	nextIndex  int64
	maxTasks   int
	dispatcher app.Publisher
}

func CreateRegistry(maxTasks int, dispatcher app.Publisher) *Registry {
	return &Registry{
		tasks:      make(map[uuid.UUID]*models.Task),
		maxTasks:   maxTasks,
		dispatcher: dispatcher,
	}
}

func (r *Registry) CreateConversionTask(link string) uuid.UUID {
	const funcName = "Registry.CreateConversionTask"

	r.mu.Lock()
	r.evictLocked()
	task := models.NewConversionTask(r.nextIndex, link)
	r.nextIndex++
	r.tasks[task.ID] = task
	r.mu.Unlock()

	logger.Info("conversion task created",
		zap.String("function", funcName),
		zap.String("task_id", task.ID.String()),
		zap.Int64("index", task.Index),
	)

	r.dispatcher.Publish(models.TaskCreatedEvent{TaskID: task.ID.String()})

	return task.ID
}

func (r *Registry) CreateDownloadTask(track *models.Track, placeholder *models.ErrorPlaceholder, isError bool, parentID uuid.UUID) (uuid.UUID, *models.Task) {
	const funcName = "Registry.CreateDownloadTask"

	r.mu.Lock()
	r.evictLocked()
	task := models.NewDownloadTask(r.nextIndex, track, placeholder, isError, parentID)
	r.nextIndex++
	if isError {
		task.Fail()
	}
	r.tasks[task.ID] = task
	r.mu.Unlock()

	logger.Debug("download task created",
		zap.String("function", funcName),
		zap.String("task_id", task.ID.String()),
		zap.Int64("index", task.Index),
		zap.Bool("error", isError),
	)

	if isError {
		r.dispatcher.Publish(models.TaskFailedEvent{TaskID: task.ID.String()})
	}

	return task.ID, task
}

// evictLocked keeps the registry bounded by dropping the oldest tasks that
// are already in a terminal state. Must be called with r.mu held.
func (r *Registry) evictLocked() {
	if r.maxTasks <= 0 || len(r.tasks) < r.maxTasks {
		return
	}

	terminal := make([]*models.Task, 0)
	for _, task := range r.tasks {
		if task.State().Terminal() {
			terminal = append(terminal, task)
		}
	}
	sort.Slice(terminal, func(i, j int) bool { return terminal[i].Index < terminal[j].Index })

	overflow := len(r.tasks) - r.maxTasks + 1
	for i := 0; i < overflow && i < len(terminal); i++ {
		delete(r.tasks, terminal[i].ID)
	}
}

func (r *Registry) GetTask(id uuid.UUID) (*models.Task, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	task, ok := r.tasks[id]
	return task, ok
}

func (r *Registry) QueueTask(id uuid.UUID) {
	if task, ok := r.GetTask(id); ok {
		task.Queue()
	}
}

func (r *Registry) StartTask(id uuid.UUID) {
	if task, ok := r.GetTask(id); ok {
		task.Start()
	}
}

// FinishTask completes a download task. Finishing a conversion task is the
// resolution/download hand-off and goes through FinishConversionTask instead.
func (r *Registry) FinishTask(id uuid.UUID) {
	task, ok := r.GetTask(id)
	if !ok {
		return
	}

	if task.Kind == models.KindConversion {
		r.FinishConversionTask(id)
		return
	}

	task.Finish()
}

func (r *Registry) FailTask(id uuid.UUID) {
	task, ok := r.GetTask(id)
	if !ok {
		return
	}

	task.Fail()
	r.dispatcher.Publish(models.TaskFailedEvent{TaskID: id.String()})
}

func (r *Registry) CancelTask(id uuid.UUID) {
	if task, ok := r.GetTask(id); ok {
		task.Cancel()
	}
}

func (r *Registry) CancelAll() {
	const funcName = "Registry.CancelAll"

	r.mu.Lock()
	tasks := make([]*models.Task, 0, len(r.tasks))
	for _, task := range r.tasks {
		tasks = append(tasks, task)
	}
	r.mu.Unlock()

	for _, task := range tasks {
		task.Cancel()
	}

	logger.Info("all tasks cancelled",
		zap.String("function", funcName),
		zap.Int("count", len(tasks)),
	)
}

// FinishConversionTask is the hand-off between the resolution and download
// phases: every non-failed download task spawned by this conversion moves to
// pending, and the conversion task itself leaves the registry. Its download
// tasks outlive it.
func (r *Registry) FinishConversionTask(id uuid.UUID) {
	const funcName = "Registry.FinishConversionTask"

	r.mu.Lock()
	task, ok := r.tasks[id]
	if !ok || task.Kind != models.KindConversion {
		r.mu.Unlock()
		return
	}

	queued := 0
	for _, candidate := range r.tasks {
		if candidate.Kind != models.KindDownload || candidate.ParentID != id {
			continue
		}
		if candidate.State() != models.StateFailed {
			candidate.Queue()
			queued++
		}
	}
	delete(r.tasks, id)
	r.mu.Unlock()

	logger.Info("conversion task finished",
		zap.String("function", funcName),
		zap.String("task_id", id.String()),
		zap.Int("downloads_queued", queued),
	)
}

func (r *Registry) SetProgress(id uuid.UUID, progress float64) {
	task, ok := r.GetTask(id)
	if !ok {
		return
	}

	result := task.SetProgress(progress)
	r.dispatcher.Publish(models.ProgressEvent{TaskID: id.String(), Progress: result})
}

// IncrementProgress adds delta to the task's progress. The published event
// carries the resulting absolute value, not the delta, so subscribers always
// see absolute progress.
func (r *Registry) IncrementProgress(id uuid.UUID, delta float64) {
	task, ok := r.GetTask(id)
	if !ok {
		return
	}

	result := task.IncrementProgress(delta)
	r.dispatcher.Publish(models.ProgressEvent{TaskID: id.String(), Progress: result})
}

func (r *Registry) IsCancelled(id uuid.UUID) bool {
	return r.inState(id, models.StateCancelled)
}

func (r *Registry) IsFailed(id uuid.UUID) bool {
	return r.inState(id, models.StateFailed)
}

func (r *Registry) IsComplete(id uuid.UUID) bool {
	return r.inState(id, models.StateComplete)
}

func (r *Registry) inState(id uuid.UUID, state models.State) bool {
	task, ok := r.GetTask(id)
	return ok && task.State() == state
}

// Snapshot returns a presentation-ready projection of every task that is
// neither cancelled nor still unqueued, newest first.
func (r *Registry) Snapshot() []models.TaskView {
	r.mu.Lock()
	tasks := make([]*models.Task, 0, len(r.tasks))
	for _, task := range r.tasks {
		tasks = append(tasks, task)
	}
	r.mu.Unlock()

	views := make([]models.TaskView, 0, len(tasks))
	for _, task := range tasks {
		state := task.State()
		if state == models.StateCancelled || state == models.StateCreated {
			continue
		}
		views = append(views, ViewOf(task))
	}

	sort.Slice(views, func(i, j int) bool { return views[i].Index > views[j].Index })

	return views
}

// ViewOf projects one task into its presentation shape: conversion tasks
// expose only progress, failed download tasks expose their placeholder, and
// resolved download tasks expose the catalog metadata.
func ViewOf(task *models.Task) models.TaskView {
	view := models.TaskView{
		TaskID:   task.ID.String(),
		Kind:     task.Kind,
		Index:    task.Index,
		Progress: task.Progress(),
		State:    task.State(),
	}

	if task.Kind == models.KindConversion {
		return view
	}

	view.Error = task.Error
	if task.Error && task.Placeholder != nil {
		view.SongID = task.Placeholder.SourceID
		view.Title = task.Placeholder.Title
		view.Artist = task.Placeholder.Artist
		view.Album = task.Placeholder.Album
		return view
	}

	if task.Track != nil {
		view.SongID = strconv.FormatInt(task.Track.ID, 10)
		view.Title = task.Track.Title
		view.Artist = task.Track.Artist.Name
		view.Album = task.Track.Album.Title
	}

	return view
}
