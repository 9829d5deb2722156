package util

import (
	"math"
	"sync/atomic"
)

// Sequence hands out increasing int32 values, wrapping to 0 after math.MaxInt32.
//
type Sequence struct {
	nextValue int32
}

func NewSequence(nextValue int32) *Sequence {
	return &Sequence{nextValue: nextValue - 1}
}

func (self *Sequence) ResetTo(nextValue int32) {
	atomic.StoreInt32(&self.nextValue, nextValue-1)
}

func (self *Sequence) Next() int32 {
	for {
		current := atomic.LoadInt32(&self.nextValue)
		next := current + 1
		if current == math.MaxInt32 {
			next = 0
		}
		if atomic.CompareAndSwapInt32(&self.nextValue, current, next) {
			return next
		}
	}
}

// Last returns the most recently issued value.
//
func (self *Sequence) Last() int32 {
	return atomic.LoadInt32(&self.nextValue)
}
