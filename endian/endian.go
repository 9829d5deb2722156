package endian

import (
	"math/bits"
	"unsafe"
)

// Integer is the set of fixed-width integers that can be byte-swapped.
//
type Integer interface {
	~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64
}

var littleEndian = func() bool {
	v := uint16(1)
	return *(*byte)(unsafe.Pointer(&v)) == 1
}()

func IsLittleEndian() bool {
	return littleEndian
}

func Swap16(v uint16) uint16 {
	return bits.ReverseBytes16(v)
}

func Swap32(v uint32) uint32 {
	return bits.ReverseBytes32(v)
}

func Swap64(v uint64) uint64 {
	return bits.ReverseBytes64(v)
}

// Swap reverses the byte order of v, whatever its width.
//
func Swap[T Integer](v T) T {
	switch unsafe.Sizeof(v) {
	case 2:
		return T(Swap16(uint16(v)))
	case 4:
		return T(Swap32(uint32(v)))
	default:
		return T(Swap64(uint64(v)))
	}
}

// HostToBig converts a host-order value to big-endian (network) order.
//
func HostToBig[T Integer](v T) T {
	if littleEndian {
		return Swap(v)
	}
	return v
}

func BigToHost[T Integer](v T) T {
	return HostToBig(v)
}

func HostToLittle[T Integer](v T) T {
	if !littleEndian {
		return Swap(v)
	}
	return v
}

func LittleToHost[T Integer](v T) T {
	return HostToLittle(v)
}
