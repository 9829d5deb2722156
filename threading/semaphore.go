package threading

import (
	"context"

	"github.com/pkg/errors"
)

var ErrSemaphoreFull = errors.New("semaphore released past its maximum")

// Semaphore is a counting semaphore holding between 0 and max permits.
//
type Semaphore struct {
	permits chan struct{}
}

func NewSemaphore(initial, max int) (*Semaphore, error) {
	if max < 1 || initial < 0 || initial > max {
		return nil, errors.Errorf("invalid semaphore bounds [initial: %d, max: %d]", initial, max)
	}
	s := &Semaphore{permits: make(chan struct{}, max)}
	for i := 0; i < initial; i++ {
		s.permits <- struct{}{}
	}
	return s, nil
}

// Acquire takes a permit, waiting until one is available or ctx is done.
//
func (self *Semaphore) Acquire(ctx context.Context) error {
	select {
	case <-self.permits:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (self *Semaphore) TryAcquire() bool {
	select {
	case <-self.permits:
		return true
	default:
		return false
	}
}

// Release returns a permit. Releasing more permits than max is an error.
//
func (self *Semaphore) Release() error {
	select {
	case self.permits <- struct{}{}:
		return nil
	default:
		return ErrSemaphoreFull
	}
}

func (self *Semaphore) Available() int {
	return len(self.permits)
}

func (self *Semaphore) Max() int {
	return cap(self.permits)
}
