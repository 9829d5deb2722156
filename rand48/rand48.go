// Package rand48 is a bit-exact port of the C library drand48 family. Sequences produced here match glibc for the
// same seed, which makes it suitable for reproducing data sets generated by C and C++ peers.
//
package rand48

const (
	defaultMultiplier = uint64(0x5deece66d)
	defaultAddend     = uint16(0xb)
	seedLow           = uint16(0x330e)
	stateMask         = uint64(1)<<48 - 1
)

// Seed is the 7-word seed buffer: the current 48-bit state (least significant word first), the previous state as
// returned by Seed48, and the 16-bit additive constant.
//
type Seed [7]uint16

// Random carries a complete generator state. It is a plain value; copying it forks the sequence.
//
type Random struct {
	seed Seed
	a    uint64
	init bool
}

// New returns a generator seeded as Srand48(seed).
//
func New(seed int64) Random {
	r := Random{}
	r.Srand48(seed)
	return r
}

func (self *Random) ensureInit() {
	if !self.init {
		self.a = defaultMultiplier
		self.seed[6] = defaultAddend
		self.init = true
	}
}

// Srand48 sets the high 32 bits of the state to the low 32 bits of seed and the low 16 bits to 0x330e.
//
func (self *Random) Srand48(seed int64) {
	seed &= 0xffffffff
	self.seed[0] = seedLow
	self.seed[1] = uint16(seed)
	self.seed[2] = uint16(seed >> 16)
	self.a = defaultMultiplier
	self.seed[6] = defaultAddend
	self.init = true
}

// Seed48 installs a new 48-bit state, restores the default multiplier and addend, and returns the previous state.
//
func (self *Random) Seed48(seed16v [3]uint16) [3]uint16 {
	self.seed[3], self.seed[4], self.seed[5] = self.seed[0], self.seed[1], self.seed[2]
	self.seed[0], self.seed[1], self.seed[2] = seed16v[0], seed16v[1], seed16v[2]
	self.a = defaultMultiplier
	self.seed[6] = defaultAddend
	self.init = true
	return [3]uint16{self.seed[3], self.seed[4], self.seed[5]}
}

// Lcong48 sets the state (param[0:3]), the multiplier (param[3:6]) and the addend (param[6]).
//
func (self *Random) Lcong48(param [7]uint16) {
	self.seed[0], self.seed[1], self.seed[2] = param[0], param[1], param[2]
	self.a = uint64(param[5])<<32 | uint64(param[4])<<16 | uint64(param[3])
	self.seed[6] = param[6]
	self.init = true
}

// State returns a copy of the seed buffer.
//
func (self *Random) State() Seed {
	self.ensureInit()
	return self.seed
}

func (self *Random) iterate(xsubi *[3]uint16) uint64 {
	self.ensureInit()
	x := uint64(xsubi[2])<<32 | uint64(xsubi[1])<<16 | uint64(xsubi[0])
	x = (x*self.a + uint64(self.seed[6])) & stateMask
	xsubi[0] = uint16(x)
	xsubi[1] = uint16(x >> 16)
	xsubi[2] = uint16(x >> 32)
	return x
}

func (self *Random) iterateInternal() uint64 {
	xsubi := [3]uint16{self.seed[0], self.seed[1], self.seed[2]}
	x := self.iterate(&xsubi)
	self.seed[0], self.seed[1], self.seed[2] = xsubi[0], xsubi[1], xsubi[2]
	return x
}

// Lrand48 returns a non-negative value uniformly distributed over [0, 2^31).
//
func (self *Random) Lrand48() int32 {
	return int32(self.iterateInternal() >> 17)
}

// Nrand48 is Lrand48 over the caller's state, which is advanced in place.
//
func (self *Random) Nrand48(xsubi *[3]uint16) int32 {
	return int32(self.iterate(xsubi) >> 17)
}

// Mrand48 returns a signed value uniformly distributed over [-2^31, 2^31).
//
func (self *Random) Mrand48() int32 {
	return int32(uint32(self.iterateInternal() >> 16))
}

// Jrand48 is Mrand48 over the caller's state.
//
func (self *Random) Jrand48(xsubi *[3]uint16) int32 {
	return int32(uint32(self.iterate(xsubi) >> 16))
}

// Drand48 returns a value uniformly distributed over [0.0, 1.0).
//
func (self *Random) Drand48() float64 {
	return toFloat(self.iterateInternal())
}

// Erand48 is Drand48 over the caller's state.
//
func (self *Random) Erand48(xsubi *[3]uint16) float64 {
	return toFloat(self.iterate(xsubi))
}

// Next returns a value in [min, max). When max <= min, min is returned.
//
func (self *Random) Next(min, max int32) int32 {
	if max <= min {
		return min
	}
	span := int64(max) - int64(min)
	return int32(int64(min) + int64(self.Lrand48())%span)
}

// NextDouble returns a value in [0.0, 1.0).
//
func (self *Random) NextDouble() float64 {
	return self.Drand48()
}

// A 48-bit state fits a float64 mantissa exactly, so the division yields the same bits as the C library's explicit
// mantissa construction.
func toFloat(x uint64) float64 {
	return float64(x) / float64(uint64(1)<<48)
}
