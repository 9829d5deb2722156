package rand48

import "sync"

// The package-level functions share one generator, like the hidden buffer behind the C library functions. Unlike the
// C versions they are safe for concurrent use.

var global Random
var globalLock sync.Mutex

func Srand48(seed int64) {
	globalLock.Lock()
	defer globalLock.Unlock()
	global.Srand48(seed)
}

func Seed48(seed16v [3]uint16) [3]uint16 {
	globalLock.Lock()
	defer globalLock.Unlock()
	return global.Seed48(seed16v)
}

func Lcong48(param [7]uint16) {
	globalLock.Lock()
	defer globalLock.Unlock()
	global.Lcong48(param)
}

func Lrand48() int32 {
	globalLock.Lock()
	defer globalLock.Unlock()
	return global.Lrand48()
}

func Mrand48() int32 {
	globalLock.Lock()
	defer globalLock.Unlock()
	return global.Mrand48()
}

func Drand48() float64 {
	globalLock.Lock()
	defer globalLock.Unlock()
	return global.Drand48()
}

func Nrand48(xsubi *[3]uint16) int32 {
	globalLock.Lock()
	defer globalLock.Unlock()
	return global.Nrand48(xsubi)
}

func Jrand48(xsubi *[3]uint16) int32 {
	globalLock.Lock()
	defer globalLock.Unlock()
	return global.Jrand48(xsubi)
}

func Erand48(xsubi *[3]uint16) float64 {
	globalLock.Lock()
	defer globalLock.Unlock()
	return global.Erand48(xsubi)
}
