package rand48

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Expected values below were produced by glibc's srand48/lrand48/... on x86_64.

func TestLrand48Golden(t *testing.T) {
	r := New(0x1234abcd)
	expected := []int32{851401618, 1804928587, 758783491, 959030623, 684387517}
	for i, v := range expected {
		assert.Equal(t, v, r.Lrand48(), "draw %d", i)
	}
}

func TestLrand48ZeroSeed(t *testing.T) {
	r := New(0)
	expected := []int32{366850414, 1610402240, 206956554, 1869309841, 1239749840}
	for i, v := range expected {
		assert.Equal(t, v, r.Lrand48(), "draw %d", i)
	}
}

func TestSeedBufferLayout(t *testing.T) {
	r := New(0x1234abcd)
	assert.Equal(t, Seed{0x330e, 0xabcd, 0x1234, 0, 0, 0, 0xb}, r.State())
}

func TestSrand48TruncatesTo32Bits(t *testing.T) {
	wide := New(0x1ffffffff)
	narrow := New(0xffffffff)
	negative := New(-1)
	assert.Equal(t, int32(644300343), wide.Lrand48())
	assert.Equal(t, int32(97305740), wide.Lrand48())
	assert.Equal(t, int32(644300343), narrow.Lrand48())
	assert.Equal(t, int32(644300343), negative.Lrand48())
}

func TestMrand48Golden(t *testing.T) {
	r := New(42)
	expected := []int32{-1097256770, 1471891643, 477107655, 1813932012, 348369827}
	for i, v := range expected {
		assert.Equal(t, v, r.Mrand48(), "draw %d", i)
	}
}

func TestDrand48Golden(t *testing.T) {
	r := New(42)
	expected := []uint64{0x3fe7d32617ca2020, 0x3fd5eed22ed8de00, 0x3fbc7015c72a2300}
	for i, v := range expected {
		assert.Equal(t, v, math.Float64bits(r.Drand48()), "draw %d", i)
	}
}

func TestXsubiVariants(t *testing.T) {
	r := New(0)

	xs := [3]uint16{0x1234, 0x5678, 0x9abc}
	assert.Equal(t, int32(615467189), r.Nrand48(&xs))
	assert.Equal(t, int32(2006585297), r.Nrand48(&xs))
	assert.Equal(t, int32(1149452181), r.Nrand48(&xs))
	assert.Equal(t, [3]uint16{0x0801, 0x7f2b, 0x8906}, xs)

	xj := [3]uint16{0x1234, 0x5678, 0x9abc}
	assert.Equal(t, int32(1230934378), r.Jrand48(&xj))
	assert.Equal(t, int32(-281796701), r.Jrand48(&xj))
	assert.Equal(t, int32(-1996062933), r.Jrand48(&xj))

	xe := [3]uint16{0x1234, 0x5678, 0x9abc}
	assert.Equal(t, uint64(0x3fd257a45a9e0bc0), math.Float64bits(r.Erand48(&xe)))
	assert.Equal(t, uint64(0x3fede683f46cc1c0), math.Float64bits(r.Erand48(&xe)))

	// the caller's state never touches the internal one
	assert.Equal(t, int32(366850414), r.Lrand48())
}

func TestXsubiWithoutSeeding(t *testing.T) {
	var r Random
	xs := [3]uint16{0x1234, 0x5678, 0x9abc}
	assert.Equal(t, int32(615467189), r.Nrand48(&xs))
}

func TestSeed48ReturnsPreviousState(t *testing.T) {
	r := New(0x1234abcd)
	r.Lrand48()
	old := r.Seed48([3]uint16{0x330e, 0xabcd, 0x1234})
	assert.Equal(t, [3]uint16{0x5101, 0xb725, 0x657e}, old)
	assert.Equal(t, int32(851401618), r.Lrand48())
	state := r.State()
	assert.Equal(t, uint16(0x5101), state[3])
	assert.Equal(t, uint16(0xb725), state[4])
	assert.Equal(t, uint16(0x657e), state[5])
}

func TestLcong48(t *testing.T) {
	r := New(7)
	r.Lcong48([7]uint16{1, 2, 3, 5, 0, 0, 7})
	assert.Equal(t, int32(491525), r.Lrand48())
	assert.Equal(t, int32(2457625), r.Lrand48())
	assert.Equal(t, int32(12288125), r.Lrand48())

	// Seed48 restores the standard multiplier and addend
	r.Seed48([3]uint16{0x330e, 0xabcd, 0x1234})
	assert.Equal(t, int32(851401618), r.Lrand48())
}

func TestTenThousandDraws(t *testing.T) {
	r := New(0xdeadbeef)
	var hash uint64
	var last int32
	for i := 0; i < 10000; i++ {
		last = r.Lrand48()
		hash = hash*31 + uint64(last)
	}
	assert.Equal(t, int32(40727538), last)
	assert.Equal(t, uint64(17259111422925692077), hash)

	r.Srand48(0xdeadbeef)
	var sum int64
	for i := 0; i < 10000; i++ {
		sum += int64(r.Mrand48())
	}
	assert.Equal(t, int64(-136718606808), sum)
}

func TestCopyForksSequence(t *testing.T) {
	a := New(99)
	a.Lrand48()
	b := a
	for i := 0; i < 16; i++ {
		assert.Equal(t, a.Lrand48(), b.Lrand48())
	}
}

func TestNext(t *testing.T) {
	r := New(1)
	for i := 0; i < 1000; i++ {
		v := r.Next(-10, 10)
		assert.True(t, v >= -10 && v < 10, "out of range [%d]", v)
	}
	assert.Equal(t, int32(5), r.Next(5, 5))
	assert.Equal(t, int32(5), r.Next(5, 1))

	r.Srand48(1)
	assert.Equal(t, int32(89400484%100), r.Next(0, 100))
}

func TestNextDouble(t *testing.T) {
	r := New(42)
	for i := 0; i < 1000; i++ {
		v := r.NextDouble()
		assert.True(t, v >= 0.0 && v < 1.0)
	}
}

func TestGlobalFunctions(t *testing.T) {
	Srand48(0x1234abcd)
	assert.Equal(t, int32(851401618), Lrand48())
	assert.Equal(t, int32(1804928587), Lrand48())

	Srand48(42)
	assert.Equal(t, int32(-1097256770), Mrand48())

	Srand48(42)
	assert.Equal(t, uint64(0x3fe7d32617ca2020), math.Float64bits(Drand48()))

	old := Seed48([3]uint16{0x330e, 0xabcd, 0x1234})
	assert.NotEqual(t, [3]uint16{}, old)
	assert.Equal(t, int32(851401618), Lrand48())

	Lcong48([7]uint16{1, 2, 3, 5, 0, 0, 7})
	assert.Equal(t, int32(491525), Lrand48())

	xs := [3]uint16{0x1234, 0x5678, 0x9abc}
	Srand48(0)
	assert.Equal(t, int32(615467189), Nrand48(&xs))
	xj := [3]uint16{0x1234, 0x5678, 0x9abc}
	assert.Equal(t, int32(1230934378), Jrand48(&xj))
	xe := [3]uint16{0x1234, 0x5678, 0x9abc}
	assert.Equal(t, uint64(0x3fd257a45a9e0bc0), math.Float64bits(Erand48(&xe)))
}
