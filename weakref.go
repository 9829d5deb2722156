package cpl

import "sync"

// WeakReference observes a RefCounted target without holding a reference to it. Once the target is destroyed (or the
// reference is unlinked), Lock fails and Expired reports true.
//
type WeakReference[T RefCounted] struct {
	lock   sync.Mutex
	target T
	alive  bool
	count  int32
	subId  int64
	ii     InstrumentInstance
}

func NewWeakReference[T RefCounted](target T) *WeakReference[T] {
	wr := &WeakReference[T]{
		target: target,
		alive:  true,
		count:  target.RefCount(),
		ii:     NilInstrumentInstance{},
	}
	if ro, ok := any(target).(interface{ instrument() InstrumentInstance }); ok {
		wr.ii = ro.instrument()
	}
	wr.subId = target.OnDestroy().Subscribe(wr.onDestroy)
	return wr
}

// Lock returns the target holding a new strong reference, which the caller must Release. It returns false once the
// target's count has reached zero.
//
func (self *WeakReference[T]) Lock() (T, bool) {
	self.lock.Lock()
	defer self.lock.Unlock()

	var zero T
	if !self.alive {
		return zero, false
	}
	ok := self.target.TryAddRef()
	self.ii.WeakLocked(objectId(self.target), ok)
	if !ok {
		return zero, false
	}
	self.count = self.target.RefCount()
	return self.target, true
}

func (self *WeakReference[T]) Expired() bool {
	self.lock.Lock()
	defer self.lock.Unlock()
	return !self.alive || self.target.RefCount() <= 0
}

// UseCount returns the target's strong count, or 0 once expired.
//
func (self *WeakReference[T]) UseCount() int32 {
	self.lock.Lock()
	defer self.lock.Unlock()
	if !self.alive {
		return 0
	}
	self.count = self.target.RefCount()
	return self.count
}

// Unlink detaches from the target without waiting for its destruction.
//
func (self *WeakReference[T]) Unlink() {
	self.lock.Lock()
	defer self.lock.Unlock()
	if !self.alive {
		return
	}
	self.target.OnDestroy().Unsubscribe(self.subId)
	self.clear()
}

func (self *WeakReference[T]) onDestroy() {
	self.lock.Lock()
	defer self.lock.Unlock()
	if self.alive {
		self.ii.WeakExpired(objectId(self.target))
		self.clear()
	}
}

func (self *WeakReference[T]) clear() {
	var zero T
	self.target = zero
	self.alive = false
	self.count = 0
}

func objectId(target RefCounted) int32 {
	if ro, ok := target.(interface{ Id() int32 }); ok {
		return ro.Id()
	}
	return 0
}
