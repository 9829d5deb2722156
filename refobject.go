package cpl

import (
	"sync/atomic"

	"github.com/openziti/cpl/util"
)

var objectIds = util.NewSequence(util.RandomSequence())

// RefCounted is implemented by *RefObject and by every type embedding it.
//
type RefCounted interface {
	AddRef()
	TryAddRef() bool
	Release()
	RefCount() int32
	OnDestroy() *Delegate
}

// RefObject is an embeddable, intrusive reference count. A new object starts with a count of 0; the first Release
// that brings the count to zero or below destroys it. Destruction fires OnDestroy, then runs the destructor.
//
type RefObject struct {
	id         int32
	refs       int32
	destroyed  int32
	onDestroy  *Delegate
	destructor func()
	ii         InstrumentInstance
}

func NewRefObject(destructor func()) *RefObject {
	return newRefObject(destructor, NilInstrumentInstance{})
}

func newRefObject(destructor func(), ii InstrumentInstance) *RefObject {
	ro := &RefObject{
		id:         objectIds.Next(),
		onDestroy:  NewDelegate(),
		destructor: destructor,
		ii:         ii,
	}
	ii.Created(ro.id)
	return ro
}

// SetInstrument routes this object's later events to ii.
//
func (self *RefObject) SetInstrument(ii InstrumentInstance) {
	if ii == nil {
		ii = NilInstrumentInstance{}
	}
	self.ii = ii
}

func (self *RefObject) instrument() InstrumentInstance {
	return self.ii
}

func (self *RefObject) Id() int32 {
	return self.id
}

func (self *RefObject) AddRef() {
	atomic.AddInt32(&self.refs, 1)
}

// TryAddRef takes a reference only while the count is above zero, so a dying object is never revived.
//
func (self *RefObject) TryAddRef() bool {
	for {
		refs := atomic.LoadInt32(&self.refs)
		if refs <= 0 {
			return false
		}
		if atomic.CompareAndSwapInt32(&self.refs, refs, refs+1) {
			return true
		}
	}
}

func (self *RefObject) Release() {
	if refs := atomic.AddInt32(&self.refs, -1); refs <= 0 {
		self.destroy(refs)
	}
}

func (self *RefObject) RefCount() int32 {
	return atomic.LoadInt32(&self.refs)
}

func (self *RefObject) Destroyed() bool {
	return atomic.LoadInt32(&self.destroyed) == 1
}

func (self *RefObject) OnDestroy() *Delegate {
	return self.onDestroy
}

func (self *RefObject) destroy(refs int32) {
	if !atomic.CompareAndSwapInt32(&self.destroyed, 0, 1) {
		self.ii.OverReleased(self.id, refs)
		return
	}
	self.onDestroy.Fire()
	if self.destructor != nil {
		self.destructor()
	}
	self.ii.Destroyed(self.id)
}
