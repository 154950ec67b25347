package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// shutdownTimeout bounds how long Stop waits for workers to finish.
const shutdownTimeout = 30 * time.Second

// Manager runs a set of workers and stops them together.
type Manager struct {
	workers []Worker
	logger  *zap.Logger
	wg      sync.WaitGroup
	mu      sync.Mutex
}

// NewManager creates a new Manager.
func NewManager(logger *zap.Logger) *Manager {
	return &Manager{
		logger: logger,
	}
}

// Register adds a worker to the set.
func (m *Manager) Register(w Worker) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.workers = append(m.workers, w)
	m.logger.Info("Worker registered", zap.String("name", w.Name()))
}

// Start launches every registered worker in its own goroutine.
func (m *Manager) Start(ctx context.Context) error {
	m.mu.Lock()
	workers := make([]Worker, len(m.workers))
	copy(workers, m.workers)
	m.mu.Unlock()

	if len(workers) == 0 {
		return fmt.Errorf("no workers registered")
	}

	m.logger.Info("Starting workers", zap.Int("count", len(workers)))

	for _, w := range workers {
		m.wg.Add(1)
		go func(w Worker) {
			defer m.wg.Done()

			m.logger.Info("Starting worker", zap.String("name", w.Name()))
			if err := w.Start(ctx); err != nil {
				m.logger.Error("Worker failed",
					zap.String("name", w.Name()),
					zap.Error(err))
			}
		}(w)
	}

	return nil
}

// Stop signals every worker and waits for them, bounded by shutdownTimeout.
func (m *Manager) Stop() error {
	m.mu.Lock()
	workers := make([]Worker, len(m.workers))
	copy(workers, m.workers)
	m.mu.Unlock()

	m.logger.Info("Stopping workers", zap.Int("count", len(workers)))

	for _, w := range workers {
		if err := w.Stop(); err != nil {
			m.logger.Error("Failed to stop worker",
				zap.String("name", w.Name()),
				zap.Error(err))
		}
	}

	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		m.logger.Info("All workers stopped gracefully")
	case <-time.After(shutdownTimeout):
		m.logger.Warn("Workers shutdown timed out",
			zap.Duration("timeout", shutdownTimeout))
		return fmt.Errorf("workers shutdown timed out after %v", shutdownTimeout)
	}

	return nil
}
