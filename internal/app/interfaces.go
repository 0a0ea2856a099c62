package app

import (
	"context"

	"github.com/google/uuid"
	"github.com/songbridge/songbridge/internal/app/models"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock.go

// TaskRegistry is the single source of truth for task existence, state and
// progress. Every mutation on a missing id is a no-op, never an error.
type TaskRegistry interface {
	CreateConversionTask(link string) uuid.UUID
	CreateDownloadTask(track *models.Track, placeholder *models.ErrorPlaceholder, isError bool, parentID uuid.UUID) (uuid.UUID, *models.Task)
	GetTask(id uuid.UUID) (*models.Task, bool)
	QueueTask(id uuid.UUID)
	StartTask(id uuid.UUID)
	FinishTask(id uuid.UUID)
	FailTask(id uuid.UUID)
	CancelTask(id uuid.UUID)
	CancelAll()
	FinishConversionTask(id uuid.UUID)
	SetProgress(id uuid.UUID, progress float64)
	IncrementProgress(id uuid.UUID, delta float64)
	IsCancelled(id uuid.UUID) bool
	IsFailed(id uuid.UUID) bool
	IsComplete(id uuid.UUID) bool
	Snapshot() []models.TaskView
}

// MetadataResolver matches source items against the catalog and lists the
// items of a source reference. A track that cannot be matched is reported as
// errs.ErrTrackNotFound, distinguishable from transport errors.
type MetadataResolver interface {
	ResolveByISRC(ctx context.Context, isrc string) (*models.Track, error)
	ResolveByMetadata(ctx context.Context, name, artist, album string) (*models.Track, error)
	FetchCollectionItems(ctx context.Context, kind string, sourceID string) (title string, items []models.RawItem, err error)
	FetchTrackItem(ctx context.Context, sourceID string) (models.RawItem, error)
	GetTrack(ctx context.Context, catalogID int64) (*models.Track, error)
	Search(ctx context.Context, query string) ([]models.SearchResult, error)
}

// StreamProvider turns a resolved track into an ephemeral stream URL.
// An unusable stream token is reported as errs.ErrAccessExpired.
type StreamProvider interface {
	StreamURL(ctx context.Context, track *models.Track, bitrate string) (string, error)
}

// Decrypter is the block cipher primitive applied to the leading block of
// each stream chunk, keyed per track.
type Decrypter interface {
	DeriveKey(trackID int64) []byte
	DecryptBlock(key, block []byte) ([]byte, error)
}

// Tagger writes metadata and cover art into a finished audio file.
type Tagger interface {
	WriteTags(track *models.Track, path string, cover []byte) error
}

// Subscriber receives every event published by the engine, synchronously.
type Subscriber interface {
	Receive(event models.Event)
}

// Publisher is the engine-facing side of the event dispatcher.
type Publisher interface {
	Publish(event models.Event)
}

// Orchestrator is the delivery-facing surface of the whole engine.
type Orchestrator interface {
	Login(ctx context.Context)
	Submit(link string) (uuid.UUID, error)
	SubmitCatalogTrack(ctx context.Context, catalogID int64) (uuid.UUID, error)
	Tasks() []models.TaskView
	CancelTask(id uuid.UUID)
	ClearAll()
	Search(ctx context.Context, query string) ([]models.SearchResult, error)
	Subscribe(subscriber Subscriber)
}
