package jobs

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/songbridge/songbridge/internal/app/converter"
	"github.com/songbridge/songbridge/internal/app/downloader"
	mock_app "github.com/songbridge/songbridge/internal/app/mocks"
	"github.com/songbridge/songbridge/internal/app/models"
	"github.com/songbridge/songbridge/internal/app/registry"
	"github.com/songbridge/songbridge/internal/utils/errs"
	"github.com/songbridge/songbridge/internal/utils/logger"
)

func TestMain(m *testing.M) {
	logger.InitTestLogger()
	m.Run()
}

type capturePublisher struct {
	mu     sync.Mutex
	events []models.Event
}

func (p *capturePublisher) Publish(event models.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *capturePublisher) conversionComplete() (models.ConversionCompleteEvent, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, event := range p.events {
		if complete, ok := event.(models.ConversionCompleteEvent); ok {
			return complete, true
		}
	}
	return models.ConversionCompleteEvent{}, false
}

type fixture struct {
	publisher *capturePublisher
	reg       *registry.Registry
	resolver  *mock_app.MockMetadataResolver
	conv      *converter.Converter
	engine    *downloader.Engine
	folder    string
}

func newFixture(t *testing.T, ctrl *gomock.Controller) *fixture {
	t.Helper()

	publisher := &capturePublisher{}
	reg := registry.CreateRegistry(100, publisher)
	resolver := mock_app.NewMockMetadataResolver(ctrl)
	folder := t.TempDir()

	engine := downloader.CreateEngine(
		reg,
		mock_app.NewMockStreamProvider(ctrl),
		mock_app.NewMockDecrypter(ctrl),
		mock_app.NewMockTagger(ctrl),
		downloader.Config{Folder: folder, Workers: 2, Bitrate: "MP3_320", MaxRetries: 1},
	)

	return &fixture{
		publisher: publisher,
		reg:       reg,
		resolver:  resolver,
		conv:      converter.CreateConverter(reg, resolver, 2),
		engine:    engine,
		folder:    folder,
	}
}

func TestConversionJob_PublishesItemsNewestFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl)

	link := "https://open.spotify.com/playlist/mix1"
	conversionID := f.reg.CreateConversionTask(link)
	f.reg.QueueTask(conversionID)

	items := []models.RawItem{
		{SourceID: "s1", Name: "First", Artist: "A", Album: "X", ISRC: "ISRC1"},
		{SourceID: "s2", Name: "Second", Artist: "B", Album: "Y", ISRC: "ISRC2"},
	}
	f.resolver.EXPECT().
		FetchCollectionItems(gomock.Any(), "playlist", "mix1").
		Return("Mix", items, nil)
	for _, item := range items {
		f.resolver.EXPECT().
			ResolveByISRC(gomock.Any(), item.ISRC).
			Return(nil, errs.ErrTrackNotFound)
		f.resolver.EXPECT().
			ResolveByMetadata(gomock.Any(), item.Name, item.Artist, item.Album).
			Return(nil, errs.ErrTrackNotFound)
	}

	job := NewConversionJob(conversionID, link, f.conv, f.engine, f.reg, f.publisher)
	job.Run()

	complete, ok := f.publisher.conversionComplete()
	require.True(t, ok, "a completion event must be published")
	assert.Equal(t, conversionID.String(), complete.TaskID)
	require.Len(t, complete.Items, 2)
	assert.Greater(t, complete.Items[0].Index, complete.Items[1].Index)
	for _, item := range complete.Items {
		assert.True(t, item.Error)
	}

	// the conversion task itself is gone after the hand-off
	_, exists := f.reg.GetTask(conversionID)
	assert.False(t, exists)
}

func TestConversionJob_CancelledBeforeRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl)

	link := "https://open.spotify.com/track/abc"
	conversionID := f.reg.CreateConversionTask(link)
	f.reg.CancelTask(conversionID)

	job := NewConversionJob(conversionID, link, f.conv, f.engine, f.reg, f.publisher)
	job.Run()

	_, ok := f.publisher.conversionComplete()
	assert.False(t, ok)
	assert.True(t, f.reg.IsCancelled(conversionID))
}

func TestConversionJob_InvalidLinkFailsTask(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl)

	link := "not-a-link"
	conversionID := f.reg.CreateConversionTask(link)
	f.reg.QueueTask(conversionID)

	job := NewConversionJob(conversionID, link, f.conv, f.engine, f.reg, f.publisher)
	job.Run()

	assert.True(t, f.reg.IsFailed(conversionID))

	_, ok := f.publisher.conversionComplete()
	assert.False(t, ok)
}

func TestDownloadJob_RunsEngine(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl)

	track := &models.Track{ID: 5, Title: "Prefetched"}
	taskID, task := f.reg.CreateDownloadTask(track, nil, false, uuid.Nil)
	f.reg.QueueTask(taskID)

	// the file is already on disk, so the engine reports done without
	// touching the network
	require.NoError(t, os.WriteFile(filepath.Join(f.folder, "Prefetched.mp3"), []byte("audio"), 0o644))

	job := NewDownloadJob(&models.DownloadSet{
		Kind:  models.SetSingle,
		Tasks: []*models.Task{task},
	}, f.engine)
	job.Run()

	assert.True(t, f.reg.IsComplete(taskID))
}

func TestNewJobID(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := newJobID()
		assert.Len(t, id, 8)
		seen[id] = struct{}{}
	}
	assert.Greater(t, len(seen), 90, "ids must be reasonably unique")
}
