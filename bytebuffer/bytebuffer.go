// Package bytebuffer provides a growable byte array that tracks its capacity and used length explicitly. Growth always
// lands on a power-of-two capacity.
//
package bytebuffer

import (
	"io"
	"math/bits"

	"github.com/pkg/errors"
)

type ByteBuffer struct {
	data   []byte
	length int
}

// New allocates an empty buffer with the requested capacity.
//
func New(capacity int) *ByteBuffer {
	if capacity < 0 {
		panic(errors.Errorf("negative capacity [%d]", capacity))
	}
	return &ByteBuffer{data: make([]byte, capacity)}
}

// Wrap returns a buffer holding a copy of p, with capacity rounded to the next power of two.
//
func Wrap(p []byte) *ByteBuffer {
	bb := New(NextPowerOfTwo(len(p)))
	bb.length = copy(bb.data, p)
	return bb
}

func (self *ByteBuffer) Len() int {
	return self.length
}

func (self *ByteBuffer) Cap() int {
	return len(self.data)
}

// Bytes returns the used region. The slice aliases the buffer until the next mutation.
//
func (self *ByteBuffer) Bytes() []byte {
	return self.data[:self.length]
}

func (self *ByteBuffer) String() string {
	return string(self.data[:self.length])
}

// Append copies p to the end of the buffer, growing it to the next power of two when it does not fit.
//
func (self *ByteBuffer) Append(p []byte) {
	if len(p) == 0 {
		return
	}
	self.ensure(self.length + len(p))
	self.length += copy(self.data[self.length:], p)
}

func (self *ByteBuffer) AppendByte(b byte) {
	self.ensure(self.length + 1)
	self.data[self.length] = b
	self.length++
}

func (self *ByteBuffer) AppendString(s string) {
	if len(s) == 0 {
		return
	}
	self.ensure(self.length + len(s))
	self.length += copy(self.data[self.length:], s)
}

// Write implements io.Writer. It never fails.
//
func (self *ByteBuffer) Write(p []byte) (n int, err error) {
	self.Append(p)
	return len(p), nil
}

// WriteTo implements io.WriterTo, writing the used region.
//
func (self *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(self.data[:self.length])
	if err == nil && n != self.length {
		err = io.ErrShortWrite
	}
	return int64(n), err
}

// Insert copies p into the buffer at pos, shifting the trailing bytes forward.
//
func (self *ByteBuffer) Insert(pos int, p []byte) error {
	if pos < 0 || pos > self.length {
		return errors.Errorf("insert position [%d] outside [0, %d]", pos, self.length)
	}
	if len(p) == 0 {
		return nil
	}
	self.ensure(self.length + len(p))
	copy(self.data[pos+len(p):], self.data[pos:self.length])
	copy(self.data[pos:], p)
	self.length += len(p)
	return nil
}

// Remove erases n bytes starting at pos, shifting the trailing bytes back.
//
func (self *ByteBuffer) Remove(pos, n int) error {
	if pos < 0 || n < 0 || pos > self.length || n > self.length-pos {
		return errors.Errorf("remove [%d] bytes at [%d] outside [0, %d)", n, pos, self.length)
	}
	copy(self.data[pos:], self.data[pos+n:self.length])
	self.length -= n
	return nil
}

// Truncate discards all but the first n bytes.
//
func (self *ByteBuffer) Truncate(n int) error {
	if n < 0 || n > self.length {
		return errors.Errorf("truncate length [%d] outside [0, %d]", n, self.length)
	}
	self.length = n
	return nil
}

// Reset empties the buffer, keeping its capacity.
//
func (self *ByteBuffer) Reset() {
	self.length = 0
}

// Reserve guarantees room for n more bytes without further reallocation.
//
func (self *ByteBuffer) Reserve(n int) {
	if n > 0 {
		self.ensure(self.length + n)
	}
}

// Clone returns a deep copy with the same capacity.
//
func (self *ByteBuffer) Clone() *ByteBuffer {
	clone := New(len(self.data))
	clone.length = copy(clone.data, self.data[:self.length])
	return clone
}

func (self *ByteBuffer) ensure(required int) {
	if required <= len(self.data) {
		return
	}
	data := make([]byte, NextPowerOfTwo(required))
	copy(data, self.data[:self.length])
	self.data = data
}

// NextPowerOfTwo returns the smallest power of two >= n. Values <= 1 yield 1.
//
func NextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}
