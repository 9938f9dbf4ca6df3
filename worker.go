package anyon

import "fmt"

// Worker processes jobs
type Worker struct {
	pool *Pool
	jobs chan Job
}

func (w *Worker) run() {
	for {
		select {
		case <-w.pool.ctx.Done():
			return
		case w.pool.workers <- w.jobs:
		}

		select {
		case <-w.pool.ctx.Done():
			return
		case job := <-w.jobs:
			result, err := w.processJob(job)
			w.pool.space.Store(job.ID, result, err)
		}
	}
}

func (w *Worker) processJob(job Job) (any, error) {
	result, err := job.Fn()

	w.pool.metrics.recordJobExecution(job.StartTime, err == nil)

	if err != nil {
		return nil, fmt.Errorf("job %s failed: %w", job.ID, err)
	}

	return result, nil
}
