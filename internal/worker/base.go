package worker

import (
	"sync"

	"go.uber.org/zap"
)

// BaseWorker carries the stop plumbing shared by all workers.
type BaseWorker struct {
	name     string
	logger   *zap.Logger
	stopChan chan struct{}
	stopped  bool
	mu       sync.Mutex
}

// NewBaseWorker creates a new BaseWorker.
func NewBaseWorker(name string, logger *zap.Logger) *BaseWorker {
	return &BaseWorker{
		name:     name,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Name returns the worker name.
func (w *BaseWorker) Name() string {
	return w.name
}

// Stop signals the worker to finish. Safe to call more than once.
func (w *BaseWorker) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return nil
	}

	w.logger.Info("Stopping worker", zap.String("name", w.name))
	close(w.stopChan)
	w.stopped = true

	return nil
}

// StopChan returns the stop signal channel.
func (w *BaseWorker) StopChan() <-chan struct{} {
	return w.stopChan
}

// Logger returns the worker logger.
func (w *BaseWorker) Logger() *zap.Logger {
	return w.logger
}
