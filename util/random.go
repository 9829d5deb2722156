package util

import (
	"sync"
	"time"

	"github.com/openziti/cpl/rand48"
)

func init() {
	r = rand48.New(time.Now().UnixNano())
}

var r rand48.Random
var rLock sync.Mutex

// RandomSequence returns a starting value in [0, 1024) for a new Sequence.
//
func RandomSequence() int32 {
	rLock.Lock()
	defer rLock.Unlock()
	return r.Next(0, 1024)
}
