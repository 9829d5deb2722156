package threading

import (
	"context"
	"sync"
	"time"
)

// WaitCondition is a signalable event. An auto-reset condition wakes a single waiter per Set and clears itself; a
// manual-reset condition stays set, releasing every waiter, until Reset.
//
type WaitCondition struct {
	autoReset bool
	lock      sync.Mutex
	set       bool
	signal    chan struct{}
}

func NewWaitCondition(autoReset bool) *WaitCondition {
	return &WaitCondition{
		autoReset: autoReset,
		signal:    make(chan struct{}),
	}
}

func (self *WaitCondition) Set() {
	self.lock.Lock()
	defer self.lock.Unlock()

	if self.set {
		return
	}
	self.set = true
	close(self.signal)
}

func (self *WaitCondition) Reset() {
	self.lock.Lock()
	defer self.lock.Unlock()

	if self.set {
		self.set = false
		self.signal = make(chan struct{})
	}
}

func (self *WaitCondition) IsSet() bool {
	self.lock.Lock()
	defer self.lock.Unlock()
	return self.set
}

// Wait blocks until the condition is set or ctx is done.
//
func (self *WaitCondition) Wait(ctx context.Context) error {
	for {
		self.lock.Lock()
		if self.set {
			if self.autoReset {
				self.set = false
				self.signal = make(chan struct{})
			}
			self.lock.Unlock()
			return nil
		}
		signal := self.signal
		self.lock.Unlock()

		select {
		case <-signal:
			// an auto-reset set may be consumed by another waiter first; re-check under the lock
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// WaitTimeout waits at most d, returning false on timeout.
//
func (self *WaitCondition) WaitTimeout(d time.Duration) bool {
	ctx, cancel := context.WithTimeout(context.Background(), d)
	defer cancel()
	return self.Wait(ctx) == nil
}
