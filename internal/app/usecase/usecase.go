package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/songbridge/songbridge/internal/app"
	"github.com/songbridge/songbridge/internal/app/converter"
	"github.com/songbridge/songbridge/internal/app/dispatcher"
	"github.com/songbridge/songbridge/internal/app/downloader"
	"github.com/songbridge/songbridge/internal/app/jobs"
	"github.com/songbridge/songbridge/internal/app/models"
	"github.com/songbridge/songbridge/internal/app/runner"
	"github.com/songbridge/songbridge/internal/media"
	"github.com/songbridge/songbridge/internal/utils/logger"
	"github.com/songbridge/songbridge/internal/utils/validate"
	"go.uber.org/zap"
)

// Controller wires the registry, dispatcher, job runner and worker pools
// together and exposes the engine to the delivery layer.
type Controller struct {
	registry   app.TaskRegistry
	dispatcher *dispatcher.Dispatcher
	converter  *converter.Converter
	engine     *downloader.Engine
	media      *media.Client
	runner     *runner.Runner
}

func CreateController(
	registry app.TaskRegistry,
	disp *dispatcher.Dispatcher,
	conv *converter.Converter,
	engine *downloader.Engine,
	mediaClient *media.Client,
	jobRunner *runner.Runner,
) *Controller {
	return &Controller{
		registry:   registry,
		dispatcher: disp,
		converter:  conv,
		engine:     engine,
		media:      mediaClient,
		runner:     jobRunner,
	}
}

// Login checks gateway connectivity and broadcasts the result.
func (c *Controller) Login(ctx context.Context) {
	ok := c.media.Login(ctx)
	c.dispatcher.PublishLoginStatus(ok, ok)
}

// Submit validates a reference link, registers a conversion task and queues
// the job that will resolve and download it.
func (c *Controller) Submit(link string) (uuid.UUID, error) {
	const funcName = "Controller.Submit"

	if err := validate.ValidateLink(link); err != nil {
		logger.Warn("rejected link",
			zap.String("function", funcName),
			zap.String("link", link),
		)
		return uuid.Nil, err
	}

	taskID := c.registry.CreateConversionTask(link)
	c.runner.Push(jobs.NewConversionJob(taskID, link, c.converter, c.engine, c.registry, c.dispatcher))

	return taskID, nil
}

// SubmitCatalogTrack queues a download for an already-resolved catalog track,
// e.g. one picked from search results. No resolution phase is involved.
func (c *Controller) SubmitCatalogTrack(ctx context.Context, catalogID int64) (uuid.UUID, error) {
	const funcName = "Controller.SubmitCatalogTrack"

	track, err := c.media.GetTrack(ctx, catalogID)
	if err != nil {
		logger.Warn("catalog track lookup failed",
			zap.String("function", funcName),
			zap.Int64("catalog_id", catalogID),
			zap.Error(err),
		)
		return uuid.Nil, err
	}

	taskID, task := c.registry.CreateDownloadTask(track, nil, false, uuid.Nil)
	c.registry.QueueTask(taskID)

	set := &models.DownloadSet{
		Kind:  models.SetSingle,
		Title: track.Title,
		Tasks: []*models.Task{task},
	}
	c.runner.Push(jobs.NewDownloadJob(set, c.engine))

	return taskID, nil
}

func (c *Controller) Tasks() []models.TaskView {
	return c.registry.Snapshot()
}

func (c *Controller) CancelTask(id uuid.UUID) {
	c.registry.CancelTask(id)
}

// ClearAll tears the whole in-flight workload down: both pools drop their
// queued work and every registered task is cancelled. Fresh pool contexts are
// installed so later submissions start clean.
func (c *Controller) ClearAll() {
	c.converter.Restart()
	c.engine.Restart()
	c.registry.CancelAll()
}

func (c *Controller) Search(ctx context.Context, query string) ([]models.SearchResult, error) {
	return c.media.Search(ctx, query)
}

func (c *Controller) Subscribe(subscriber app.Subscriber) {
	c.dispatcher.Subscribe(subscriber)
}
