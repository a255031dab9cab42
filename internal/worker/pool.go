// Package worker implements the buffered worker pool that resolves
// predictions after a fight result is posted, and the poller that keeps card
// lock state fresh. Decoupling resolution from the HTTP request keeps the
// result endpoint fast and gives backpressure a place to act.
package worker

import (
	"context"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/fightpicks/picks-api/internal/logic"
	"github.com/fightpicks/picks-api/internal/models"
)

// Prometheus metrics
var (
	resultsEnqueued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "picks_results_enqueued_total",
		Help: "Total number of fight results accepted for resolution",
	})

	resultsProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "picks_results_processed_total",
		Help: "Total number of fight results processed by workers",
	})

	resultsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "picks_results_failed_total",
		Help: "Total number of fight results that failed resolution",
	})

	predictionsResolved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "picks_predictions_resolved_total",
		Help: "Total number of predictions scored by the resolution workers",
	})

	resolutionQueueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "picks_resolution_queue_depth",
		Help: "Current depth of the resolution queue",
	})

	resultsLoadShed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "picks_results_load_shed_total",
		Help: "Total number of fight results rejected because the queue was full",
	})
)

// Job is one posted fight result awaiting resolution.
type Job struct {
	FightID string
	Result  *models.FightResult
}

// PoolConfig configures the resolution pool.
type PoolConfig struct {
	WorkerCount int
	QueueSize   int
	Predictions logic.PredictionService
	Logger      *zap.Logger
}

// Pool fans posted fight results out to resolution workers.
type Pool struct {
	config   PoolConfig
	jobQueue chan Job
	wg       sync.WaitGroup
	ctx      context.Context
	cancel   context.CancelFunc
	logger   *zap.SugaredLogger
}

// NewPool creates a resolution pool.
func NewPool(cfg PoolConfig) *Pool {
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 1000
	}

	return &Pool{
		config:   cfg,
		jobQueue: make(chan Job, cfg.QueueSize),
		logger:   cfg.Logger.Sugar(),
	}
}

// Start launches the worker goroutines.
func (p *Pool) Start(ctx context.Context) {
	p.ctx, p.cancel = context.WithCancel(ctx)

	for i := 0; i < p.config.WorkerCount; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}

	p.logger.Infow("resolution pool started",
		"workers", p.config.WorkerCount, "queueSize", p.config.QueueSize)
}

// Enqueue accepts a fight result for async resolution. Returns false when
// the queue is full; the caller should surface backpressure instead of
// blocking the request.
func (p *Pool) Enqueue(fightID string, result *models.FightResult) bool {
	select {
	case p.jobQueue <- Job{FightID: fightID, Result: result}:
		resultsEnqueued.Inc()
		resolutionQueueDepth.Set(float64(len(p.jobQueue)))
		return true
	default:
		resultsLoadShed.Inc()
		p.logger.Warnw("resolution queue full, rejecting result", "fightID", fightID)
		return false
	}
}

// QueueDepth returns the number of pending jobs.
func (p *Pool) QueueDepth() int {
	return len(p.jobQueue)
}

// Shutdown stops accepting work and drains the queue.
func (p *Pool) Shutdown(ctx context.Context) error {
	p.cancel()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		p.logger.Infow("resolution pool drained")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()

	for {
		select {
		case job := <-p.jobQueue:
			p.process(id, job)
			resolutionQueueDepth.Set(float64(len(p.jobQueue)))
		case <-p.ctx.Done():
			// Drain remaining jobs before exiting so accepted
			// results are never lost on shutdown.
			for {
				select {
				case job := <-p.jobQueue:
					p.process(id, job)
				default:
					return
				}
			}
		}
	}
}

func (p *Pool) process(workerID int, job Job) {
	// Resolution must not inherit the (possibly cancelled) pool context
	// mid-drain; give each job a fresh one.
	ctx := context.Background()

	resolved, err := p.config.Predictions.ResolveFight(ctx, job.FightID, job.Result)
	if err != nil {
		resultsFailed.Inc()
		p.logger.Errorw("fight resolution failed",
			"worker", workerID, "fightID", job.FightID, "error", err)
		return
	}

	resultsProcessed.Inc()
	predictionsResolved.Add(float64(resolved))
}
