// ABOUTME: Bounded worker pool for background downloads
// ABOUTME: Runs submitted jobs on a fixed number of goroutines without blocking the submitter

package workers

import (
	"context"
	"sync"
)

// Job is a unit of work for the pool.
// Jobs whose Context is already done when a worker picks them up are skipped.
type Job struct {
	Context context.Context
	Run     func(ctx context.Context)
}

// Pool manages a fixed set of worker goroutines
type Pool struct {
	jobQueue   chan *Job
	maxWorkers int
	queueSize  int
	wg         sync.WaitGroup
	ctx        context.Context
	cancel     context.CancelFunc
	mu         sync.Mutex
	running    bool
}

// worker represents an individual worker goroutine
type worker struct {
	id       int
	jobQueue <-chan *Job
	ctx      context.Context
	wg       *sync.WaitGroup
	onPanic  func(id int, recovered interface{})
}

// PoolConfig holds configuration for the worker pool
type PoolConfig struct {
	MaxWorkers int
	QueueSize  int

	// OnPanic is called when a job panics. The worker keeps running.
	OnPanic func(workerID int, recovered interface{})
}

// DefaultPoolConfig returns the default pool configuration
func DefaultPoolConfig() PoolConfig {
	return PoolConfig{
		MaxWorkers: 6,
		QueueSize:  64,
	}
}

// NewPool creates a worker pool and starts its workers
func NewPool(config PoolConfig) *Pool {
	ctx, cancel := context.WithCancel(context.Background())

	if config.MaxWorkers <= 0 {
		config.MaxWorkers = DefaultPoolConfig().MaxWorkers
	}
	if config.QueueSize <= 0 {
		config.QueueSize = DefaultPoolConfig().QueueSize
	}

	p := &Pool{
		jobQueue:   make(chan *Job, config.QueueSize),
		maxWorkers: config.MaxWorkers,
		queueSize:  config.QueueSize,
		ctx:        ctx,
		cancel:     cancel,
	}
	p.startWorkers(config.OnPanic)
	return p
}

func (p *Pool) startWorkers(onPanic func(int, interface{})) {
	for i := 0; i < p.maxWorkers; i++ {
		w := &worker{
			id:       i,
			jobQueue: p.jobQueue,
			ctx:      p.ctx,
			wg:       &p.wg,
			onPanic:  onPanic,
		}
		p.wg.Add(1)
		go w.run()
	}
	p.running = true
}

// Size returns the number of workers
func (p *Pool) Size() int {
	return p.maxWorkers
}

// Stop signals all workers to exit and waits for running jobs to return.
// Queued jobs that have not started are discarded.
func (p *Pool) Stop() error {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return nil
	}
	p.running = false
	p.mu.Unlock()

	p.cancel()
	p.wg.Wait()
	return nil
}

// Submit queues job without blocking the caller. When the queue is full the
// hand-off continues on a separate goroutine until a slot frees up, the job's
// context ends, or the pool stops.
func (p *Pool) Submit(job *Job) error {
	if job == nil || job.Run == nil {
		return ErrInvalidJob
	}
	if job.Context == nil {
		job.Context = context.Background()
	}

	p.mu.Lock()
	running := p.running
	p.mu.Unlock()
	if !running {
		return ErrPoolNotRunning
	}

	select {
	case p.jobQueue <- job:
		return nil
	default:
	}

	go func() {
		select {
		case p.jobQueue <- job:
		case <-job.Context.Done():
		case <-p.ctx.Done():
		}
	}()
	return nil
}

// run is the main loop for each worker
func (w *worker) run() {
	defer w.wg.Done()

	for {
		select {
		case job := <-w.jobQueue:
			w.processJob(job)
		case <-w.ctx.Done():
			return
		}
	}
}

// processJob runs a single job, recovering from panics
func (w *worker) processJob(job *Job) {
	if job.Context.Err() != nil {
		return
	}

	defer func() {
		if r := recover(); r != nil && w.onPanic != nil {
			w.onPanic(w.id, r)
		}
	}()

	job.Run(job.Context)
}

// Error definitions
var (
	ErrPoolNotRunning = &WorkerError{Message: "worker pool is not running"}
	ErrInvalidJob     = &WorkerError{Message: "job has no run function"}
)

// WorkerError represents a worker-specific error
type WorkerError struct {
	Message string
}

func (e *WorkerError) Error() string {
	return e.Message
}
