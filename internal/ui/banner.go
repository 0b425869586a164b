package ui

import (
	"sync"
	"time"
)

// successMessageDuration is how long a form's success message stays visible.
const successMessageDuration = 5 * time.Second

// StatusBanner displays a form's success message and clears it after a fixed
// delay. A new submission while a message is showing restarts the clock on
// the new text.
type StatusBanner struct {
	flash *Scheduler
	key   string

	mutex   sync.Mutex
	message string
}

func NewStatusBanner(key string, flash *Scheduler) *StatusBanner {
	return &StatusBanner{
		flash: flash,
		key:   key,
	}
}

// Show displays message and schedules it to clear.
func (b *StatusBanner) Show(message string) {
	b.mutex.Lock()
	b.message = message
	b.mutex.Unlock()

	b.flash.Schedule(b.key, successMessageDuration, func() {
		b.mutex.Lock()
		b.message = ""
		b.mutex.Unlock()
	})
}

func (b *StatusBanner) Message() string {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.message
}

func (b *StatusBanner) Visible() bool {
	return b.Message() != ""
}
