package downloader

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/songbridge/songbridge/internal/app"
	"github.com/songbridge/songbridge/internal/app/models"
	"github.com/songbridge/songbridge/internal/utils/errs"
	"github.com/songbridge/songbridge/internal/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	userAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) " +
		"Chrome/79.0.3945.130 Safari/537.36"

	extension = ".mp3"

	// streams arrive in 6144-byte chunks; the leading 2048-byte block of each
	// chunk is encrypted, the remainder passes through untouched.
	blockSize = 2048
	chunkSize = 3 * blockSize

	retryDelay = 2 * time.Second
)

// Config holds the engine's knobs. MaxRetries caps the retryable failure
// classes; zero means retry without bound.
type Config struct {
	Folder     string
	Workers    int
	Overwrite  bool
	Bitrate    string
	MaxRetries int
}

// Engine streams, decrypts, tags and persists download tasks through a
// bounded worker pool. Cancellation is cooperative: each task checks its
// state when a worker picks it up, never mid-chunk.
type Engine struct {
	registry  app.TaskRegistry
	streams   app.StreamProvider
	decrypter app.Decrypter
	tagger    app.Tagger
	client    *http.Client
	cfg       Config

	mu     sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc
}

func CreateEngine(registry app.TaskRegistry, streams app.StreamProvider, decrypter app.Decrypter, tagger app.Tagger, cfg Config) *Engine {
	ctx, cancel := context.WithCancel(context.Background())
	return &Engine{
		registry:  registry,
		streams:   streams,
		decrypter: decrypter,
		tagger:    tagger,
		cfg:       cfg,
		ctx:       ctx,
		cancel:    cancel,
		client: &http.Client{
			Transport: &http.Transport{
				DialContext:           (&net.Dialer{Timeout: 10 * time.Second}).DialContext,
				TLSHandshakeTimeout:   10 * time.Second,
				ResponseHeaderTimeout: 10 * time.Second,
			},
		},
	}
}

// Restart drops every queued-but-unstarted pool item and installs a fresh
// pool context for subsequent submissions. In-flight downloads are not
// interrupted; they observe cancellation at their next checkpoint.
func (e *Engine) Restart() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.cancel()
	e.ctx, e.cancel = context.WithCancel(context.Background())

	logger.Info("download pool restarted")
}

func (e *Engine) poolContext() context.Context {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ctx
}

// Start drives a download set to completion. A single runs inline on the
// caller's goroutine; a collection fans out through the pool and blocks until
// every task has finished or been skipped. Per-task failures stay per-task.
func (e *Engine) Start(set *models.DownloadSet) {
	const funcName = "Engine.Start"

	ctx := e.poolContext()

	if set.Kind == models.SetSingle {
		if len(set.Tasks) > 0 {
			e.download(ctx, set, set.Tasks[0])
		}
		return
	}

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.Workers)

	for _, task := range set.Tasks {
		task := task
		g.Go(func() error {
			select {
			case <-ctx.Done():
				// pool restarted before this item started
				return nil
			default:
			}

			e.download(ctx, set, task)
			return nil
		})
	}
	_ = g.Wait()

	logger.Info("download set finished",
		zap.String("function", funcName),
		zap.String("title", set.Title),
		zap.Int("tasks", len(set.Tasks)),
	)
}

func (e *Engine) download(ctx context.Context, set *models.DownloadSet, task *models.Task) {
	const funcName = "Engine.download"

	if task.Error || e.registry.IsCancelled(task.ID) || e.registry.IsFailed(task.ID) {
		return
	}

	e.registry.StartTask(task.ID)

	track := task.Track

	folder := e.cfg.Folder
	if set.Kind == models.SetCollection {
		folder = filepath.Join(folder, sanitize(set.Title))
	}
	path := filepath.Join(folder, sanitize(track.Title)+extension)

	// an existing file counts as done unless overwriting is enabled
	if _, err := os.Stat(path); err == nil && !e.cfg.Overwrite {
		e.registry.SetProgress(task.ID, 100)
		return
	}

	if err := os.MkdirAll(folder, 0o755); err != nil {
		logger.Error("failed to create download folder",
			zap.String("function", funcName),
			zap.String("folder", folder),
			zap.Error(err),
		)
		e.registry.FailTask(task.ID)
		return
	}

	url, err := e.streams.StreamURL(ctx, track, e.cfg.Bitrate)
	if err != nil {
		if e.cancelled(ctx, task.ID) {
			return
		}

		// token failures are not transient, no retry
		logger.Warn("stream access denied",
			zap.String("function", funcName),
			zap.String("task_id", task.ID.String()),
			zap.String("title", track.Title),
			zap.Error(err),
		)
		e.registry.FailTask(task.ID)
		return
	}

	if err := e.streamWithRetry(ctx, task.ID, track, path, url); err != nil {
		if e.cancelled(ctx, task.ID) {
			logger.Info("download cancelled",
				zap.String("function", funcName),
				zap.String("task_id", task.ID.String()),
			)
			return
		}

		logger.Error("download failed",
			zap.String("function", funcName),
			zap.String("task_id", task.ID.String()),
			zap.String("title", track.Title),
			zap.Error(err),
		)
		e.registry.FailTask(task.ID)
		return
	}

	cover, err := e.fetchCover(ctx, track)
	if err != nil {
		if e.cancelled(ctx, task.ID) {
			return
		}

		logger.Error("failed to fetch cover art",
			zap.String("function", funcName),
			zap.String("task_id", task.ID.String()),
			zap.Error(err),
		)
		e.registry.FailTask(task.ID)
		return
	}

	if err := e.tagger.WriteTags(track, path, cover); err != nil {
		logger.Error("failed to tag file",
			zap.String("function", funcName),
			zap.String("task_id", task.ID.String()),
			zap.String("path", path),
			zap.Error(err),
		)
		e.registry.FailTask(task.ID)
		return
	}

	logger.Info("download finished",
		zap.String("function", funcName),
		zap.String("task_id", task.ID.String()),
		zap.String("title", track.Title),
	)
}

// cancelled distinguishes a torn-down workload from a genuine failure, so an
// interrupted in-flight download exits without being marked failed.
func (e *Engine) cancelled(ctx context.Context, taskID uuid.UUID) bool {
	return ctx.Err() != nil || e.registry.IsCancelled(taskID)
}

type failureClass int

const (
	failFatal failureClass = iota
	failRetryNow
	failRetryLater
)

// classify buckets a stream error. TLS-layer breakage retries immediately,
// connection resets / timeouts / truncated bodies retry after a short delay,
// everything else is fatal.
func classify(err error) failureClass {
	var recordErr tls.RecordHeaderError
	if errors.As(err, &recordErr) {
		return failRetryNow
	}
	var certErr *tls.CertificateVerificationError
	if errors.As(err, &certErr) {
		return failRetryNow
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return failRetryLater
	}
	if errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.EPIPE) {
		return failRetryLater
	}

	return failFatal
}

// streamWithRetry is an explicit retry loop around one stream attempt, so
// repeated transient failures cannot grow the call stack.
func (e *Engine) streamWithRetry(ctx context.Context, taskID uuid.UUID, track *models.Track, path, url string) error {
	const funcName = "Engine.streamWithRetry"

	attempts := 0
	for {
		err := e.streamOnce(ctx, taskID, track, path, url)
		if err == nil {
			return nil
		}

		var delay time.Duration
		switch classify(err) {
		case failRetryNow:
			delay = 0
		case failRetryLater:
			delay = retryDelay
		default:
			return fmt.Errorf("%w: %v", errs.ErrDownloadFailed, err)
		}

		attempts++
		if e.cfg.MaxRetries > 0 && attempts >= e.cfg.MaxRetries {
			return fmt.Errorf("%w: retries exhausted after %d attempts: %v", errs.ErrDownloadFailed, attempts, err)
		}

		logger.Warn("transient stream failure, retrying",
			zap.String("function", funcName),
			zap.String("task_id", taskID.String()),
			zap.Int("attempt", attempts),
			zap.Duration("delay", delay),
			zap.Error(err),
		)

		if delay > 0 {
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return fmt.Errorf("%w: %v", errs.ErrDownloadFailed, ctx.Err())
			}
		}
	}
}

// streamOnce downloads the full resource in fixed-size chunks, decrypting
// the leading block of each chunk, and reports progress only when the
// integer percentage advances.
func (e *Engine) streamOnce(ctx context.Context, taskID uuid.UUID, track *models.Track, path, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := e.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	contentLength := resp.ContentLength
	if contentLength <= 0 {
		return errs.ErrEmptyContent
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()

	key := e.decrypter.DeriveKey(track.ID)

	var (
		written      int64
		lastReported int
		buf          = make([]byte, chunkSize)
	)

	for {
		n, readErr := io.ReadFull(resp.Body, buf)
		if n > 0 {
			chunk := buf[:n]
			if n >= blockSize {
				decrypted, decErr := e.decrypter.DecryptBlock(key, chunk[:blockSize])
				if decErr != nil {
					return decErr
				}
				if _, err := out.Write(decrypted); err != nil {
					return err
				}
				if _, err := out.Write(chunk[blockSize:]); err != nil {
					return err
				}
			} else {
				if _, err := out.Write(chunk); err != nil {
					return err
				}
			}

			written += int64(n)
			if pct := int(float64(written) / float64(contentLength) * 100); pct-lastReported >= 1 {
				lastReported = pct
				e.registry.SetProgress(taskID, float64(pct))
			}
		}

		if readErr != nil {
			if readErr == io.EOF || (readErr == io.ErrUnexpectedEOF && written >= contentLength) {
				return nil
			}
			return readErr
		}
	}
}

func (e *Engine) fetchCover(ctx context.Context, track *models.Track) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, track.Album.CoverURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cover fetch: unexpected status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

func sanitize(name string) string {
	replacer := strings.NewReplacer("/", "_", string(os.PathSeparator), "_")
	return replacer.Replace(name)
}
