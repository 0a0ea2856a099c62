package runner

import (
	"sync"

	"github.com/songbridge/songbridge/internal/utils/logger"
	"go.uber.org/zap"
)

// Job is a self-contained unit of work: resolve one reference and drive its
// downloads. Run must swallow expected domain failures; the loop additionally
// recovers panics so no single job can kill the dispatch worker.
type Job interface {
	ID() string
	Run()
}

// Runner owns the unbounded FIFO job queue and its single dispatch worker.
// Jobs run strictly one at a time, so at most one conversion is actively
// orchestrating even though each job fans out internally.
type Runner struct {
	mu      sync.Mutex
	cond    *sync.Cond
	queue   []Job
	stopped bool
	done    chan struct{}
}

func CreateRunner() *Runner {
	r := &Runner{done: make(chan struct{})}
	r.cond = sync.NewCond(&r.mu)
	go r.work()
	return r
}

func (r *Runner) Push(job Job) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.stopped {
		logger.Warn("job dropped, runner stopped",
			zap.String("job_id", job.ID()),
		)
		return
	}

	r.queue = append(r.queue, job)
	r.cond.Signal()
}

// Stop shuts the dispatch worker down after the current job finishes.
// Queued jobs that have not started are dropped.
func (r *Runner) Stop() {
	r.mu.Lock()
	r.stopped = true
	r.queue = nil
	r.cond.Signal()
	r.mu.Unlock()
	<-r.done
}

func (r *Runner) work() {
	defer close(r.done)

	for {
		r.mu.Lock()
		for len(r.queue) == 0 && !r.stopped {
			r.cond.Wait()
		}
		if r.stopped {
			r.mu.Unlock()
			return
		}
		job := r.queue[0]
		r.queue = r.queue[1:]
		r.mu.Unlock()

		r.runOne(job)
	}
}

func (r *Runner) runOne(job Job) {
	const funcName = "Runner.runOne"

	defer func() {
		if rec := recover(); rec != nil {
			logger.Error("job panicked",
				zap.String("function", funcName),
				zap.String("job_id", job.ID()),
				zap.Any("panic", rec),
			)
		}
	}()

	logger.Debug("job started",
		zap.String("function", funcName),
		zap.String("job_id", job.ID()),
	)

	job.Run()

	logger.Debug("job finished",
		zap.String("function", funcName),
		zap.String("job_id", job.ID()),
	)
}
