package session

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// DefaultCleanupInterval is the default interval between background sweeps.
const DefaultCleanupInterval = 10 * time.Minute

// CleanupJob periodically sweeps expired sessions so idle processes do not
// accumulate state. The per-request sweep in the dispatcher remains the
// authoritative expiry path; this job only covers quiet periods.
type CleanupJob struct {
	store    *Store
	timeout  time.Duration
	interval time.Duration

	mu       sync.Mutex
	running  bool
	stopChan chan struct{}
}

// NewCleanupJob creates a cleanup job for the given store.
func NewCleanupJob(store *Store, timeout, interval time.Duration) *CleanupJob {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if interval <= 0 {
		interval = DefaultCleanupInterval
	}
	return &CleanupJob{store: store, timeout: timeout, interval: interval}
}

// Start begins the periodic sweep in a goroutine. Calling Start on a running
// job is a no-op.
func (j *CleanupJob) Start(ctx context.Context) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.running {
		return
	}
	j.running = true
	j.stopChan = make(chan struct{})

	go j.run(ctx)
	slog.Info("session cleanup job started", "timeout", j.timeout, "interval", j.interval)
}

// Stop stops the job.
func (j *CleanupJob) Stop() {
	j.mu.Lock()
	defer j.mu.Unlock()

	if !j.running {
		return
	}
	close(j.stopChan)
	j.running = false
	slog.Info("session cleanup job stopped")
}

func (j *CleanupJob) run(ctx context.Context) {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-j.stopChan:
			return
		case <-ticker.C:
			if removed := j.store.SweepExpired(time.Now(), j.timeout); removed > 0 {
				slog.Info("background session sweep completed", "removed", removed)
			}
		}
	}
}
