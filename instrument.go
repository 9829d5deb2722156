package cpl

import "github.com/pkg/errors"

type Instrument interface {
	NewInstance(id string) InstrumentInstance
}

// InstrumentInstance receives lifecycle events from ref objects, weak references and buffer pools. Implementations
// must be safe for concurrent use; events arrive from whichever goroutine drops the last reference.
//
type InstrumentInstance interface {
	// ref objects
	Created(objectId int32)
	Destroyed(objectId int32)
	OverReleased(objectId int32, count int32)

	// weak references
	WeakLocked(objectId int32, ok bool)
	WeakExpired(objectId int32)

	// pools
	Allocate(poolId string)
	PoolGet(poolId string)
	PoolPut(poolId string)

	// instrument lifecycle
	Shutdown()
}

func NewInstrument(name string, config map[string]interface{}) (i Instrument, err error) {
	switch name {
	case "metrics":
		return NewMetricsInstrument(config)
	case "nil", "":
		return NewNilInstrument(), nil
	case "trace":
		return NewTraceInstrument(config)
	default:
		return nil, errors.Errorf("unknown instrument '%s'", name)
	}
}
