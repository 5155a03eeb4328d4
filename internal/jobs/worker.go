// Package jobs runs periodic background work: a generic polling worker and
// the content refresh job it drives.
package jobs

import (
	"context"
	"log"
	"time"
)

// JobProcessor is a unit of periodic work run by a Worker.
type JobProcessor interface {
	ProcessJobs(ctx context.Context) error
}

// Worker runs a JobProcessor on a fixed interval until stopped.
type Worker struct {
	processor    JobProcessor
	pollInterval time.Duration
	stopChan     chan struct{}
	doneChan     chan struct{}
}

// NewWorker creates a worker that runs processor every pollInterval.
func NewWorker(processor JobProcessor, pollInterval time.Duration) *Worker {
	return &Worker{
		processor:    processor,
		pollInterval: pollInterval,
		stopChan:     make(chan struct{}),
		doneChan:     make(chan struct{}),
	}
}

// Start runs the polling loop. It blocks until the context is cancelled or
// Stop is called, so callers usually run it in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()
	defer close(w.doneChan)

	log.Printf("worker started with poll interval %v", w.pollInterval)

	for {
		select {
		case <-ctx.Done():
			log.Println("worker stopped: context cancelled")
			return
		case <-w.stopChan:
			log.Println("worker stopped: stop signal received")
			return
		case <-ticker.C:
			if err := w.processor.ProcessJobs(ctx); err != nil {
				log.Printf("worker: %v", err)
			}
		}
	}
}

// Stop signals the worker to stop and waits for the loop to exit.
func (w *Worker) Stop() {
	close(w.stopChan)
	<-w.doneChan
	log.Println("worker shutdown complete")
}
