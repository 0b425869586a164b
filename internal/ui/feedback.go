package ui

import (
	"sync"
	"time"
)

// Scheduler runs delayed one-shot reversions keyed by the control they
// affect. Re-scheduling a key before its task fires replaces the pending
// task instead of letting two timers race over the same control.
type Scheduler struct {
	mutex   sync.Mutex
	pending map[string]*time.Timer
}

func NewScheduler() *Scheduler {
	return &Scheduler{
		pending: make(map[string]*time.Timer),
	}
}

// Schedule arranges fn to run after d, cancelling any task already pending
// for the same key.
func (s *Scheduler) Schedule(key string, d time.Duration, fn func()) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if timer, ok := s.pending[key]; ok {
		timer.Stop()
	}

	var timer *time.Timer
	timer = time.AfterFunc(d, func() {
		s.mutex.Lock()
		// only the current timer for the key may fire its reversion
		if s.pending[key] == timer {
			delete(s.pending, key)
			s.mutex.Unlock()
			fn()
			return
		}
		s.mutex.Unlock()
	})
	s.pending[key] = timer
}

// Cancel drops the pending task for key, reporting whether one existed.
func (s *Scheduler) Cancel(key string) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	timer, ok := s.pending[key]
	if ok {
		timer.Stop()
		delete(s.pending, key)
	}
	return ok
}

// Stop cancels every pending task.
func (s *Scheduler) Stop() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for key, timer := range s.pending {
		timer.Stop()
		delete(s.pending, key)
	}
}
