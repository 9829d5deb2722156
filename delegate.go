package cpl

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
	"github.com/openziti/cpl/threading"
)

// Delegate is a one-shot event. Handlers run in subscription order, outside the delegate's lock, the first time Fire
// is called. Subscribing to a delegate that has already fired runs the handler immediately.
//
type Delegate struct {
	lock     threading.RWLock
	handlers *treemap.Map
	nextId   int64
	fired    bool
}

func NewDelegate() *Delegate {
	return &Delegate{handlers: treemap.NewWith(utils.Int64Comparator)}
}

// Subscribe registers f and returns an id for Unsubscribe. The id is 0 if the delegate already fired.
//
func (self *Delegate) Subscribe(f func()) int64 {
	self.lock.WriteLock()
	if self.fired {
		self.lock.WriteUnlock()
		f()
		return 0
	}
	self.nextId++
	id := self.nextId
	self.handlers.Put(id, f)
	self.lock.WriteUnlock()
	return id
}

func (self *Delegate) Unsubscribe(id int64) {
	self.lock.WriteLock()
	defer self.lock.WriteUnlock()
	self.handlers.Remove(id)
}

// Fire runs every subscribed handler once. Later calls do nothing.
//
func (self *Delegate) Fire() {
	self.lock.WriteLock()
	if self.fired {
		self.lock.WriteUnlock()
		return
	}
	self.fired = true
	handlers := self.handlers.Values()
	self.handlers.Clear()
	self.lock.WriteUnlock()

	for _, h := range handlers {
		h.(func())()
	}
}

func (self *Delegate) Fired() bool {
	self.lock.ReadLock()
	defer self.lock.ReadUnlock()
	return self.fired
}

func (self *Delegate) Len() int {
	self.lock.ReadLock()
	defer self.lock.ReadUnlock()
	return self.handlers.Size()
}
