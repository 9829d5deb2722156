package cpl

type nilInstrument struct{}

func NewNilInstrument() Instrument {
	return &nilInstrument{}
}

func (self *nilInstrument) NewInstance(_ string) InstrumentInstance {
	return NilInstrumentInstance{}
}

type NilInstrumentInstance struct{}

func (n NilInstrumentInstance) Created(int32) {}

func (n NilInstrumentInstance) Destroyed(int32) {}

func (n NilInstrumentInstance) OverReleased(int32, int32) {}

func (n NilInstrumentInstance) WeakLocked(int32, bool) {}

func (n NilInstrumentInstance) WeakExpired(int32) {}

func (n NilInstrumentInstance) Allocate(string) {}

func (n NilInstrumentInstance) PoolGet(string) {}

func (n NilInstrumentInstance) PoolPut(string) {}

func (n NilInstrumentInstance) Shutdown() {}
