package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// TimeSource returns the current real time
type TimeSource func() time.Time

// PausableClock measures simulated run time, excluding paused spans
type PausableClock struct {
	mu  sync.RWMutex
	now TimeSource

	start time.Time

	isPaused        atomic.Bool
	pauseStartTime  time.Time
	totalPausedTime time.Duration
}

// NewPausableClock creates a running clock; nil source uses time.Now
func NewPausableClock(now TimeSource) *PausableClock {
	if now == nil {
		now = time.Now
	}
	return &PausableClock{
		now:   now,
		start: now(),
	}
}

// Elapsed returns run time since start or the last Reset, pauses excluded
func (pc *PausableClock) Elapsed() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	end := pc.now()
	if pc.isPaused.Load() {
		// Frozen at pause point
		end = pc.pauseStartTime
	}
	return end.Sub(pc.start) - pc.totalPausedTime
}

// Reset restarts measurement, keeping the pause state
func (pc *PausableClock) Reset() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	pc.start = pc.now()
	pc.totalPausedTime = 0
	if pc.isPaused.Load() {
		pc.pauseStartTime = pc.start
	}
}

// Pause stops time advancement
func (pc *PausableClock) Pause() {
	if pc.isPaused.CompareAndSwap(false, true) {
		pc.mu.Lock()
		defer pc.mu.Unlock()
		pc.pauseStartTime = pc.now()
	}
}

// Resume continues time advancement
func (pc *PausableClock) Resume() {
	if pc.isPaused.CompareAndSwap(true, false) {
		pc.mu.Lock()
		defer pc.mu.Unlock()
		pc.totalPausedTime += pc.now().Sub(pc.pauseStartTime)
		pc.pauseStartTime = time.Time{}
	}
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	return pc.isPaused.Load()
}
