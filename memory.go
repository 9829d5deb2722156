package cpl

import (
	"sync"

	"github.com/openziti/cpl/bytebuffer"
)

// Buffer is a pooled, reference-counted ByteBuffer. Dropping the last reference resets the data and returns the
// buffer to its pool.
//
type Buffer struct {
	*RefObject
	Data *bytebuffer.ByteBuffer
	pool *Pool
}

func newBuffer(pool *Pool) *Buffer {
	return &Buffer{
		Data: bytebuffer.New(pool.bufSz),
		pool: pool,
	}
}

type Pool struct {
	id    string
	bufSz int
	store *sync.Pool
	ii    InstrumentInstance
}

func NewPool(id string, bufSz int, ii InstrumentInstance) *Pool {
	if ii == nil {
		ii = NilInstrumentInstance{}
	}
	pool := &Pool{
		id:    id,
		bufSz: bytebuffer.NextPowerOfTwo(bufSz),
		store: new(sync.Pool),
		ii:    ii,
	}
	pool.store.New = pool.allocate
	return pool
}

func (pool *Pool) Id() string {
	return pool.id
}

// Get returns an empty buffer holding one reference. Each Get attaches a fresh RefObject, so weak references taken
// on an earlier use of the same storage stay expired.
//
func (pool *Pool) Get() *Buffer {
	buf := pool.store.Get().(*Buffer)
	buf.RefObject = newRefObject(func() { pool.put(buf) }, pool.ii)
	buf.AddRef()
	pool.ii.PoolGet(pool.id)
	return buf
}

func (pool *Pool) put(buf *Buffer) {
	buf.Data.Reset()
	pool.ii.PoolPut(pool.id)
	pool.store.Put(buf)
}

func (pool *Pool) allocate() interface{} {
	pool.ii.Allocate(pool.id)
	return newBuffer(pool)
}
