package workers

import (
	"context"
	"time"
)

type Workers struct {
	workers []Worker
}

// NewWorkers groups ws. They are started in the given order and stopped in
// reverse, so producers stop before the consumers they feed.
func NewWorkers(ws ...Worker) *Workers {
	return &Workers{workers: ws}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}

type jobWorker struct {
	ctx      context.Context
	job      Job
	interval time.Duration
}

// NewJobWorker adapts a periodic [Job] to the [Worker] interface.
func NewJobWorker(ctx context.Context, job Job, interval time.Duration) Worker {
	return &jobWorker{ctx: ctx, job: job, interval: interval}
}

func (j *jobWorker) Run() {
	j.job.Start(j.ctx, j.interval)
}

func (j *jobWorker) Stop() {
	j.job.Stop()
}
