package threading

import (
	"context"
	"runtime/debug"
	"sync"

	"github.com/michaelquigley/pfxlog"
	"github.com/pkg/errors"
)

var ErrPoolClosed = errors.New("thread pool closed")

// ThreadPool runs submitted tasks on a fixed set of worker goroutines, fed by a bounded queue. Submit blocks while
// the queue is full.
//
type ThreadPool struct {
	id      string
	tasks   chan func()
	lock    sync.RWMutex
	closed  bool
	workers sync.WaitGroup
}

func NewThreadPool(id string, workers, queueLen int) *ThreadPool {
	if workers < 1 {
		workers = 1
	}
	if queueLen < 0 {
		queueLen = 0
	}
	tp := &ThreadPool{
		id:    id,
		tasks: make(chan func(), queueLen),
	}
	for i := 0; i < workers; i++ {
		tp.workers.Add(1)
		go tp.run(i)
	}
	pfxlog.ContextLogger(id).Debugf("started [%d] workers, queue length [%d]", workers, queueLen)
	return tp
}

// Submit queues task, waiting for queue space until ctx is done.
//
func (self *ThreadPool) Submit(ctx context.Context, task func()) error {
	self.lock.RLock()
	defer self.lock.RUnlock()

	if self.closed {
		return ErrPoolClosed
	}
	select {
	case self.tasks <- task:
		return nil
	case <-ctx.Done():
		return errors.Wrapf(ctx.Err(), "[%s] submit", self.id)
	}
}

// TrySubmit queues task only if there is room right now.
//
func (self *ThreadPool) TrySubmit(task func()) bool {
	self.lock.RLock()
	defer self.lock.RUnlock()

	if self.closed {
		return false
	}
	select {
	case self.tasks <- task:
		return true
	default:
		return false
	}
}

// Pending returns the number of queued tasks not yet picked up by a worker.
//
func (self *ThreadPool) Pending() int {
	return len(self.tasks)
}

// Close stops accepting tasks, lets the workers drain the queue, and waits for them to exit. It must not be called
// from a task running on this pool: the calling worker would wait on itself.
//
func (self *ThreadPool) Close() {
	self.lock.Lock()
	if self.closed {
		self.lock.Unlock()
		return
	}
	self.closed = true
	close(self.tasks)
	self.lock.Unlock()

	self.workers.Wait()
}

func (self *ThreadPool) run(worker int) {
	log := pfxlog.ContextLogger(self.id)
	defer self.workers.Done()
	defer log.Debugf("worker [%d] exited", worker)

	for task := range self.tasks {
		self.execute(worker, task)
	}
}

func (self *ThreadPool) execute(worker int, task func()) {
	defer func() {
		if r := recover(); r != nil {
			pfxlog.ContextLogger(self.id).Errorf("worker [%d] recovered from panic (%v)\n%s", worker, r, debug.Stack())
		}
	}()
	task()
}
