package jobs

import (
	"errors"
	"math/rand"
	"sort"

	"github.com/google/uuid"
	"github.com/songbridge/songbridge/internal/app"
	"github.com/songbridge/songbridge/internal/app/converter"
	"github.com/songbridge/songbridge/internal/app/downloader"
	"github.com/songbridge/songbridge/internal/app/models"
	"github.com/songbridge/songbridge/internal/app/registry"
	"github.com/songbridge/songbridge/internal/utils/errs"
	"github.com/songbridge/songbridge/internal/utils/logger"
	"go.uber.org/zap"
)

const idAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func newJobID() string {
	b := make([]byte, 8)
	for i := range b {
		b[i] = idAlphabet[rand.Intn(len(idAlphabet))]
	}
	return string(b)
}

// ConversionJob resolves one reference into download tasks and then drives
// their downloads. It is run synchronously by the dispatch worker; expected
// domain failures are absorbed here so the loop always proceeds.
type ConversionJob struct {
	id         string
	taskID     uuid.UUID
	link       string
	converter  *converter.Converter
	engine     *downloader.Engine
	registry   app.TaskRegistry
	dispatcher app.Publisher
}

func NewConversionJob(taskID uuid.UUID, link string, conv *converter.Converter, engine *downloader.Engine, reg app.TaskRegistry, dispatcher app.Publisher) *ConversionJob {
	return &ConversionJob{
		id:         newJobID(),
		taskID:     taskID,
		link:       link,
		converter:  conv,
		engine:     engine,
		registry:   reg,
		dispatcher: dispatcher,
	}
}

func (j *ConversionJob) ID() string {
	return j.id
}

func (j *ConversionJob) Run() {
	const funcName = "ConversionJob.Run"

	if j.registry.IsCancelled(j.taskID) {
		return
	}

	j.registry.StartTask(j.taskID)

	set, err := j.converter.Generate(j.taskID, j.link)
	if err != nil {
		if errors.Is(err, errs.ErrConversionCancelled) {
			logger.Info("conversion cancelled",
				zap.String("function", funcName),
				zap.String("task_id", j.taskID.String()),
			)
			return
		}

		logger.Error("conversion failed",
			zap.String("function", funcName),
			zap.String("task_id", j.taskID.String()),
			zap.String("link", j.link),
			zap.Error(err),
		)
		j.registry.FailTask(j.taskID)
		return
	}

	// hand-off: queue the spawned downloads and drop the conversion task
	j.registry.FinishConversionTask(j.taskID)

	views := make([]models.TaskView, 0, len(set.Tasks))
	for _, task := range set.Tasks {
		views = append(views, registry.ViewOf(task))
	}
	// index order is authoritative, not completion order
	sort.Slice(views, func(a, b int) bool { return views[a].Index > views[b].Index })

	j.dispatcher.Publish(models.ConversionCompleteEvent{
		TaskID: j.taskID.String(),
		Items:  views,
	})

	j.engine.Start(set)
}

// DownloadJob drives a single pre-resolved track (e.g. picked from search
// results) straight through the download engine, skipping resolution.
type DownloadJob struct {
	id     string
	set    *models.DownloadSet
	engine *downloader.Engine
}

func NewDownloadJob(set *models.DownloadSet, engine *downloader.Engine) *DownloadJob {
	return &DownloadJob{
		id:     newJobID(),
		set:    set,
		engine: engine,
	}
}

func (j *DownloadJob) ID() string {
	return j.id
}

func (j *DownloadJob) Run() {
	j.engine.Start(j.set)
}
