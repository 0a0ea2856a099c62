package models

import (
	"sync"

	"github.com/google/uuid"
)

type State string

const (
	StateCreated   State = "created"
	StatePending   State = "pending"
	StateRunning   State = "running"
	StateComplete  State = "complete"
	StateCancelled State = "cancelled"
	StateFailed    State = "failed"
)

// Terminal reports whether no further engine-driven transitions apply.
func (s State) Terminal() bool {
	return s == StateComplete || s == StateCancelled || s == StateFailed
}

type TaskKind string

const (
	KindConversion TaskKind = "conversion"
	KindDownload   TaskKind = "download"
)

// CompletionThreshold is the progress value past which a task is considered
// complete. The canonical threshold for every call site.
const CompletionThreshold = 99.0

// Artist is the catalog artist record.
type Artist struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Album is the catalog album record.
type Album struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	CoverURL string `json:"cover_url"`
}

// Track is a fully resolved catalog track, including the token needed to
// acquire a stream URL for it.
type Track struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	ISRC          string `json:"isrc"`
	Duration      int    `json:"duration"`
	TrackPosition int    `json:"track_position"`
	DiskNumber    int    `json:"disk_number"`
	BPM           float64 `json:"bpm"`
	ReleaseDate   string `json:"release_date"`
	StreamToken   string `json:"-"`
	Artist        Artist `json:"artist"`
	Album         Album  `json:"album"`
}

// ErrorPlaceholder stands in for a track that could not be resolved. It keeps
// just enough of the original metadata to display what failed.
type ErrorPlaceholder struct {
	SourceID string `json:"source_id"`
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	Album    string `json:"album"`
}

// RawItem is one unresolved entry of a source collection, as returned by the
// metadata service before catalog matching.
type RawItem struct {
	SourceID string
	Name     string
	Artist   string
	Album    string
	ISRC     string
}

// Task is one unit of work tracked by the registry. Two kinds exist:
// a conversion task ("resolve this link into download tasks") and a download
// task ("stream, decrypt and tag this one track"). Progress and state are
// guarded by the task's own lock; the registry's structural lock only covers
// insertion and removal.
type Task struct {
	ID    uuid.UUID
	Index int64
	Kind  TaskKind

	// conversion payload
	Link string

	// download payload: exactly one of Track/Placeholder is set.
	Track       *Track
	Placeholder *ErrorPlaceholder
	Error       bool
	ParentID    uuid.UUID

	mu       sync.Mutex
	progress float64
	state    State
}

func NewConversionTask(index int64, link string) *Task {
	return &Task{
		ID:    uuid.New(),
		Index: index,
		Kind:  KindConversion,
		Link:  link,
		state: StateCreated,
	}
}

func NewDownloadTask(index int64, track *Track, placeholder *ErrorPlaceholder, isError bool, parentID uuid.UUID) *Task {
	return &Task{
		ID:          uuid.New(),
		Index:       index,
		Kind:        KindDownload,
		Track:       track,
		Placeholder: placeholder,
		Error:       isError,
		ParentID:    parentID,
		state:       StateCreated,
	}
}

// IncrementProgress adds delta to the task's progress and returns the
// resulting absolute value. Crossing the completion threshold moves the task
// to StateComplete.
func (t *Task) IncrementProgress(delta float64) float64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.progress += delta
	if t.progress >= CompletionThreshold {
		t.state = StateComplete
	}
	return t.progress
}

// SetProgress overwrites the task's progress and returns the resulting value.
func (t *Task) SetProgress(progress float64) float64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.progress = progress
	if t.progress >= CompletionThreshold {
		t.state = StateComplete
	}
	return t.progress
}

func (t *Task) Progress() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.progress
}

func (t *Task) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

func (t *Task) Queue() {
	t.setState(StatePending)
}

func (t *Task) Start() {
	t.setState(StateRunning)
}

func (t *Task) Finish() {
	t.setState(StateComplete)
}

func (t *Task) Fail() {
	t.setState(StateFailed)
}

func (t *Task) Cancel() {
	t.setState(StateCancelled)
}

func (t *Task) setState(s State) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = s
}

// SetKind tags a download set as a single track or a named collection.
type SetKind string

const (
	SetSingle     SetKind = "single"
	SetCollection SetKind = "collection"
)

// DownloadSet is the outcome of a conversion: the download tasks spawned for
// one source reference, plus the collection title used for the destination
// subfolder when the reference was a playlist or album.
type DownloadSet struct {
	ConversionID uuid.UUID
	Kind         SetKind
	Title        string
	Tasks        []*Task
}

// TaskView is the presentation projection of a task, shaped for subscribers.
type TaskView struct {
	TaskID   string   `json:"task_id"`
	Kind     TaskKind `json:"kind"`
	SongID   string   `json:"song_id,omitempty"`
	Title    string   `json:"title,omitempty"`
	Artist   string   `json:"artist,omitempty"`
	Album    string   `json:"album,omitempty"`
	Error    bool     `json:"error"`
	Progress float64  `json:"progress"`
	Index    int64    `json:"index"`
	State    State    `json:"state"`
}

// SubmitRequest is the delivery-layer payload for submitting a reference.
type SubmitRequest struct {
	Link string `json:"link"`
}

// SearchResult is one row of a catalog search response.
type SearchResult struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	Album    string `json:"album"`
	Duration int    `json:"duration"`
}
