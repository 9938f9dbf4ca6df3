package anyon

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/theapemachine/errnie"
)

// Pool is a fixed-size worker pool evaluating the rows of a braiding generator.
type Pool struct {
	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	workers   chan chan Job
	jobs      chan Job
	space     *space
	metrics   *Metrics
	config    *Config
	closeOnce sync.Once
}

// NewPool starts config.Workers workers that live until ctx is done or Close is called.
func NewPool(ctx context.Context, config *Config) *Pool {
	if config == nil {
		config = NewConfig()
	}
	return newPool(ctx, config, max(config.Workers, 1)*10)
}

func newPool(ctx context.Context, config *Config, queueSize int) *Pool {
	size := max(config.Workers, 1)

	ctx, cancel := context.WithCancel(ctx)
	p := &Pool{
		ctx:     ctx,
		cancel:  cancel,
		workers: make(chan chan Job, size),
		jobs:    make(chan Job, max(queueSize, 1)),
		space:   newSpace(),
		metrics: newMetrics(),
		config:  config,
	}

	for i := 0; i < size; i++ {
		p.startWorker()
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.manage()
	}()

	errnie.Info("NewPool - workers %d, scheduling timeout %v", size, p.getSchedulingTimeout())
	return p
}

// manage hands queued jobs to idle workers, in queue order.
func (p *Pool) manage() {
	for {
		select {
		case <-p.ctx.Done():
			return
		case job := <-p.jobs:
			select {
			case <-p.ctx.Done():
				return
			case workerChan := <-p.workers:
				select {
				case workerChan <- job:
				case <-p.ctx.Done():
					return
				}
			}
		}
	}
}

/*
Schedule queues fn under id and returns a channel that receives its Result.
If the queue stays full for longer than the scheduling timeout, the channel
receives an error instead.
*/
func (p *Pool) Schedule(id string, fn func() (any, error)) chan Result {
	ctx, cancel := context.WithTimeout(p.ctx, p.getSchedulingTimeout())
	defer cancel()

	job := Job{
		ID:        id,
		Fn:        fn,
		StartTime: time.Now(),
	}

	select {
	case p.jobs <- job:
		p.metrics.mu.Lock()
		p.metrics.JobQueueSize = len(p.jobs)
		p.metrics.mu.Unlock()

		return p.space.Await(id)
	case <-ctx.Done():
		p.metrics.recordSchedulingFailure()

		ch := make(chan Result, 1)
		ch <- Result{
			Error:     fmt.Errorf("job scheduling timeout: %w", ctx.Err()),
			CreatedAt: time.Now(),
		}
		close(ch)
		return ch
	}
}

func (p *Pool) Metrics() *Metrics {
	return p.metrics
}

func (p *Pool) startWorker() {
	worker := &Worker{
		pool: p,
		jobs: make(chan Job),
	}

	p.metrics.mu.Lock()
	p.metrics.WorkerCount++
	p.metrics.mu.Unlock()

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		worker.run()
	}()
}

func (p *Pool) getSchedulingTimeout() time.Duration {
	if p.config != nil && p.config.SchedulingTimeout > 0 {
		return p.config.SchedulingTimeout
	}
	return 5 * time.Second
}

// Close stops every worker and waits for them to exit. It is safe to call more than once.
func (p *Pool) Close() {
	if p == nil {
		return
	}

	p.closeOnce.Do(func() {
		p.cancel()
		p.wg.Wait()
		errnie.Info("Pool closed - jobs %d, failed %d", p.metrics.JobCount, p.metrics.FailedJobs)
	})
}
