package threading

import "sync"

// RWLock is a readers/writer lock with non-blocking acquisition variants.
//
type RWLock struct {
	lock sync.RWMutex
}

func (self *RWLock) ReadLock() {
	self.lock.RLock()
}

func (self *RWLock) ReadUnlock() {
	self.lock.RUnlock()
}

func (self *RWLock) TryReadLock() bool {
	return self.lock.TryRLock()
}

func (self *RWLock) WriteLock() {
	self.lock.Lock()
}

func (self *RWLock) WriteUnlock() {
	self.lock.Unlock()
}

func (self *RWLock) TryWriteLock() bool {
	return self.lock.TryLock()
}

// WithRead runs f holding the read lock.
//
func (self *RWLock) WithRead(f func()) {
	self.lock.RLock()
	defer self.lock.RUnlock()
	f()
}

// WithWrite runs f holding the write lock.
//
func (self *RWLock) WithWrite(f func()) {
	self.lock.Lock()
	defer self.lock.Unlock()
	f()
}
