package cpl

import (
	"github.com/michaelquigley/pfxlog"
	"github.com/openziti/cpl/cf"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type traceInstrument struct {
	config *traceInstrumentConfig
}

type traceInstrumentConfig struct {
	Objects bool `cf:"objects"`
	Weak    bool `cf:"weak"`
	Pool    bool `cf:"pool"`
	Error   bool `cf:"error"`
}

type traceInstrumentInstance struct {
	id  string
	log *logrus.Entry
	i   *traceInstrument
}

func NewTraceInstrument(config map[string]interface{}) (Instrument, error) {
	i := &traceInstrument{
		config: &traceInstrumentConfig{Error: true},
	}
	if err := cf.Load(config, i.config); err != nil {
		return nil, errors.Wrap(err, "unable to load config")
	}
	logrus.Info(cf.Dump("trace instrument", i.config))
	return i, nil
}

func (self *traceInstrument) NewInstance(id string) InstrumentInstance {
	return &traceInstrumentInstance{
		id:  id,
		log: pfxlog.ContextLogger(id),
		i:   self,
	}
}

/*
 * ref objects
 */

func (self *traceInstrumentInstance) Created(objectId int32) {
	if self.i.config.Objects {
		self.log.Infof("+ #%d", objectId)
	}
}

func (self *traceInstrumentInstance) Destroyed(objectId int32) {
	if self.i.config.Objects {
		self.log.Infof("- #%d", objectId)
	}
}

func (self *traceInstrumentInstance) OverReleased(objectId int32, count int32) {
	if self.i.config.Error {
		self.log.Errorf("#%d released past zero [count: %d]", objectId, count)
	}
}

/*
 * weak references
 */

func (self *traceInstrumentInstance) WeakLocked(objectId int32, ok bool) {
	if self.i.config.Weak {
		self.log.Infof("~ #%d locked [%t]", objectId, ok)
	}
}

func (self *traceInstrumentInstance) WeakExpired(objectId int32) {
	if self.i.config.Weak {
		self.log.Infof("~ #%d expired", objectId)
	}
}

/*
 * pools
 */

func (self *traceInstrumentInstance) Allocate(poolId string) {
	if self.i.config.Pool {
		self.log.Infof("[%s] allocate", poolId)
	}
}

func (self *traceInstrumentInstance) PoolGet(poolId string) {
	if self.i.config.Pool {
		self.log.Infof("[%s] get", poolId)
	}
}

func (self *traceInstrumentInstance) PoolPut(poolId string) {
	if self.i.config.Pool {
		self.log.Infof("[%s] put", poolId)
	}
}

func (self *traceInstrumentInstance) Shutdown() {}
