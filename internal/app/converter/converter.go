package converter

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/songbridge/songbridge/internal/app"
	"github.com/songbridge/songbridge/internal/app/models"
	"github.com/songbridge/songbridge/internal/utils/errs"
	"github.com/songbridge/songbridge/internal/utils/logger"
	"github.com/songbridge/songbridge/internal/utils/validate"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Converter resolves a source reference into a set of download tasks using a
// bounded resolution pool. The pool context can be swapped out at any time
// via Restart, which drops queued work while in-flight items notice the
// cancellation at their next checkpoint.
type Converter struct {
	registry app.TaskRegistry
	resolver app.MetadataResolver
	workers  int

	mu     sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc
}

func CreateConverter(registry app.TaskRegistry, resolver app.MetadataResolver, workers int) *Converter {
	ctx, cancel := context.WithCancel(context.Background())
	return &Converter{
		registry: registry,
		resolver: resolver,
		workers:  workers,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Restart cancels the current pool context and installs a fresh one, so a
// queue clear does not poison later submissions.
func (c *Converter) Restart() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cancel()
	c.ctx, c.cancel = context.WithCancel(context.Background())

	logger.Info("resolution pool restarted")
}

func (c *Converter) poolContext() context.Context {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ctx
}

// Generate resolves one reference link into a download set. Cancellation of
// the conversion task surfaces as errs.ErrConversionCancelled; a single
// unresolvable item never fails the batch.
func (c *Converter) Generate(conversionID uuid.UUID, link string) (*models.DownloadSet, error) {
	const funcName = "Converter.Generate"

	kind, err := validate.ClassifyLink(link)
	if err != nil {
		return nil, err
	}

	sourceID, err := validate.ExtractLinkID(link, kind)
	if err != nil {
		return nil, err
	}

	logger.Debug("generating download set",
		zap.String("function", funcName),
		zap.String("task_id", conversionID.String()),
		zap.String("kind", string(kind)),
	)

	ctx := c.poolContext()

	if kind == validate.LinkTrack {
		return c.generateSingle(ctx, conversionID, sourceID)
	}

	return c.generateCollection(ctx, conversionID, string(kind), sourceID)
}

func (c *Converter) generateSingle(ctx context.Context, conversionID uuid.UUID, sourceID string) (*models.DownloadSet, error) {
	item, err := c.resolver.FetchTrackItem(ctx, sourceID)
	if err != nil {
		return nil, err
	}

	task, err := c.resolveAndRegister(ctx, conversionID, item, 1)
	if err != nil {
		return nil, err
	}

	return &models.DownloadSet{
		ConversionID: conversionID,
		Kind:         models.SetSingle,
		Title:        item.Name,
		Tasks:        []*models.Task{task},
	}, nil
}

func (c *Converter) generateCollection(ctx context.Context, conversionID uuid.UUID, kind, sourceID string) (*models.DownloadSet, error) {
	const funcName = "Converter.generateCollection"

	title, items, err := c.resolver.FetchCollectionItems(ctx, kind, sourceID)
	if err != nil {
		return nil, err
	}

	set := &models.DownloadSet{
		ConversionID: conversionID,
		Kind:         models.SetCollection,
		Title:        title,
	}

	if len(items) == 0 {
		return set, nil
	}

	var (
		mu    sync.Mutex
		tasks []*models.Task
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)

	for _, item := range items {
		item := item
		g.Go(func() error {
			task, err := c.resolveAndRegister(ctx, conversionID, item, len(items))
			if err != nil {
				return err
			}

			// tasks are registered and collected in completion order;
			// index order is restored by the consumer.
			mu.Lock()
			tasks = append(tasks, task)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, errs.ErrConversionCancelled
		}
		return nil, err
	}

	set.Tasks = tasks

	logger.Info("collection resolved",
		zap.String("function", funcName),
		zap.String("task_id", conversionID.String()),
		zap.String("title", title),
		zap.Int("items", len(tasks)),
	)

	return set, nil
}

// resolveAndRegister matches one item against the catalog and registers a
// download task for it: a resolved task on success, an error-placeholder task
// on not-found. Either way the conversion task's progress advances by its
// 1/size share, so the batch ends at 100 regardless of per-item outcomes.
func (c *Converter) resolveAndRegister(ctx context.Context, conversionID uuid.UUID, item models.RawItem, size int) (*models.Task, error) {
	if c.registry.IsCancelled(conversionID) {
		return nil, errs.ErrConversionCancelled
	}
	if err := ctx.Err(); err != nil {
		return nil, errs.ErrConversionCancelled
	}

	track, err := c.resolveItem(ctx, item)

	c.registry.IncrementProgress(conversionID, 100/float64(size))

	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, errs.ErrConversionCancelled
		}

		placeholder := &models.ErrorPlaceholder{
			SourceID: item.SourceID,
			Title:    item.Name,
			Artist:   item.Artist,
			Album:    item.Album,
		}
		_, task := c.registry.CreateDownloadTask(nil, placeholder, true, conversionID)
		return task, nil
	}

	_, task := c.registry.CreateDownloadTask(track, nil, false, conversionID)
	return task, nil
}

// resolveItem tries the fingerprint match first and falls back to a
// name/artist/album search. Every failure mode other than cancellation
// collapses into not-found: the item is reported, never the batch.
func (c *Converter) resolveItem(ctx context.Context, item models.RawItem) (*models.Track, error) {
	const funcName = "Converter.resolveItem"

	if item.ISRC != "" {
		track, err := c.resolver.ResolveByISRC(ctx, item.ISRC)
		if err == nil {
			return track, nil
		}
		if errors.Is(err, context.Canceled) {
			return nil, err
		}

		logger.Debug("fingerprint match failed, trying metadata",
			zap.String("function", funcName),
			zap.String("source_id", item.SourceID),
			zap.Error(err),
		)
	}

	track, err := c.resolver.ResolveByMetadata(ctx, item.Name, item.Artist, item.Album)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}

		logger.Warn("track not resolved",
			zap.String("function", funcName),
			zap.String("source_id", item.SourceID),
			zap.String("title", item.Name),
			zap.Error(err),
		)
		return nil, errs.ErrTrackNotFound
	}

	return track, nil
}
