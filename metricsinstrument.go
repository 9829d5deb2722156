package cpl

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/michaelquigley/pfxlog"
	"github.com/openziti/cpl/cf"
	"github.com/openziti/cpl/util"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// MetricsId identifies directories written by WriteAllSamples.
//
const MetricsId = "cpl"

// MetricsSeries names every series a metrics instance records, one CSV file each.
//
var MetricsSeries = []string{
	"created", "destroyed", "live_objects", "over_releases",
	"weak_locks", "weak_lock_failures", "weak_expired",
	"allocations", "pool_gets", "pool_puts",
}

type MetricsInstrument struct {
	lock      sync.Mutex
	Config    *MetricsInstrumentConfig
	instances []*metricsInstrumentInstance
}

type MetricsInstrumentConfig struct {
	Path       string `cf:"path"`
	SnapshotMs int    `cf:"snapshot_ms"`
	Enabled    bool   `cf:"enabled"`
}

func NewMetricsInstrument(config map[string]interface{}) (Instrument, error) {
	i := &MetricsInstrument{
		Config: &MetricsInstrumentConfig{
			Path:       os.TempDir(),
			SnapshotMs: 1000,
			Enabled:    true,
		},
	}
	if err := cf.Load(config, i.Config); err != nil {
		return nil, errors.Wrap(err, "unable to load config")
	}
	if i.Config.SnapshotMs < 1 {
		return nil, errors.Errorf("invalid snapshot_ms [%d]", i.Config.SnapshotMs)
	}
	logrus.Info(cf.Dump("metrics instrument", i.Config))
	return i, nil
}

func (self *MetricsInstrument) NewInstance(id string) InstrumentInstance {
	self.lock.Lock()
	defer self.lock.Unlock()

	ii := newMetricsInstrumentInstance(id, self.Config)
	go ii.snapshotter(self.Config.SnapshotMs)
	self.instances = append(self.instances, ii)
	return ii
}

// WriteAllSamples writes each instance's series into its own directory under Config.Path.
//
func (self *MetricsInstrument) WriteAllSamples() error {
	self.lock.Lock()
	defer self.lock.Unlock()

	if err := os.MkdirAll(self.Config.Path, 0755); err != nil {
		return errors.Wrapf(err, "unable to create [%s]", self.Config.Path)
	}
	for _, ii := range self.instances {
		prefix := strings.ReplaceAll(fmt.Sprintf("%s_", ii.id), string(os.PathSeparator), "-")
		outPath, err := os.MkdirTemp(self.Config.Path, prefix)
		if err != nil {
			return err
		}
		logrus.Infof("writing metrics to [%s]", outPath)

		if err := util.WriteMetricsId(MetricsId, outPath, map[string]string{"instance": ii.id}); err != nil {
			return err
		}
		for _, s := range ii.allSeries() {
			if err := util.WriteSamples(s.name, outPath, s.snapshot()); err != nil {
				return err
			}
		}
	}
	return nil
}

// Shutdown stops every instance's snapshotter after a final snapshot.
//
func (self *MetricsInstrument) Shutdown() {
	self.lock.Lock()
	defer self.lock.Unlock()
	for _, ii := range self.instances {
		ii.Shutdown()
	}
}

type series struct {
	name    string
	gauge   bool
	accum   int64
	lock    sync.Mutex
	samples []*util.Sample
}

func (self *series) sample(now time.Time) {
	var v int64
	if self.gauge {
		v = atomic.LoadInt64(&self.accum)
	} else {
		v = atomic.SwapInt64(&self.accum, 0)
	}
	self.lock.Lock()
	self.samples = append(self.samples, &util.Sample{Ts: now, V: v})
	self.lock.Unlock()
}

func (self *series) snapshot() []*util.Sample {
	self.lock.Lock()
	defer self.lock.Unlock()
	out := make([]*util.Sample, len(self.samples))
	copy(out, self.samples)
	return out
}

type metricsInstrumentInstance struct {
	id       string
	config   *MetricsInstrumentConfig
	close    chan struct{}
	closer   sync.Once
	finished chan struct{}

	created          series
	destroyed        series
	liveObjects      series
	overReleases     series
	weakLocks        series
	weakLockFailures series
	weakExpired      series
	allocations      series
	poolGets         series
	poolPuts         series
}

func newMetricsInstrumentInstance(id string, config *MetricsInstrumentConfig) *metricsInstrumentInstance {
	ii := &metricsInstrumentInstance{
		id:       id,
		config:   config,
		close:    make(chan struct{}),
		finished: make(chan struct{}),
	}
	ii.created.name = "created"
	ii.destroyed.name = "destroyed"
	ii.liveObjects.name = "live_objects"
	ii.liveObjects.gauge = true
	ii.overReleases.name = "over_releases"
	ii.weakLocks.name = "weak_locks"
	ii.weakLockFailures.name = "weak_lock_failures"
	ii.weakExpired.name = "weak_expired"
	ii.allocations.name = "allocations"
	ii.poolGets.name = "pool_gets"
	ii.poolPuts.name = "pool_puts"
	return ii
}

func (self *metricsInstrumentInstance) allSeries() []*series {
	return []*series{
		&self.created, &self.destroyed, &self.liveObjects, &self.overReleases,
		&self.weakLocks, &self.weakLockFailures, &self.weakExpired,
		&self.allocations, &self.poolGets, &self.poolPuts,
	}
}

/*
 * ref objects
 */

func (self *metricsInstrumentInstance) Created(int32) {
	if self.config.Enabled {
		atomic.AddInt64(&self.created.accum, 1)
		atomic.AddInt64(&self.liveObjects.accum, 1)
	}
}

func (self *metricsInstrumentInstance) Destroyed(int32) {
	if self.config.Enabled {
		atomic.AddInt64(&self.destroyed.accum, 1)
		atomic.AddInt64(&self.liveObjects.accum, -1)
	}
}

func (self *metricsInstrumentInstance) OverReleased(objectId int32, count int32) {
	if self.config.Enabled {
		logrus.Errorf("#%d released past zero [count: %d]", objectId, count)
		atomic.AddInt64(&self.overReleases.accum, 1)
	}
}

/*
 * weak references
 */

func (self *metricsInstrumentInstance) WeakLocked(_ int32, ok bool) {
	if self.config.Enabled {
		if ok {
			atomic.AddInt64(&self.weakLocks.accum, 1)
		} else {
			atomic.AddInt64(&self.weakLockFailures.accum, 1)
		}
	}
}

func (self *metricsInstrumentInstance) WeakExpired(int32) {
	if self.config.Enabled {
		atomic.AddInt64(&self.weakExpired.accum, 1)
	}
}

/*
 * pools
 */

func (self *metricsInstrumentInstance) Allocate(string) {
	if self.config.Enabled {
		atomic.AddInt64(&self.allocations.accum, 1)
	}
}

func (self *metricsInstrumentInstance) PoolGet(string) {
	if self.config.Enabled {
		atomic.AddInt64(&self.poolGets.accum, 1)
	}
}

func (self *metricsInstrumentInstance) PoolPut(string) {
	if self.config.Enabled {
		atomic.AddInt64(&self.poolPuts.accum, 1)
	}
}

/*
 * instrument lifecycle
 */

func (self *metricsInstrumentInstance) Shutdown() {
	self.closer.Do(func() {
		close(self.close)
	})
	<-self.finished
}

func (self *metricsInstrumentInstance) snapshotter(ms int) {
	log := pfxlog.ContextLogger(self.id)
	log.Debug("started")
	defer log.Debug("exited")
	defer close(self.finished)

	ticker := time.NewTicker(time.Duration(ms) * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if self.config.Enabled {
				self.snapshot()
			}
		case <-self.close:
			self.snapshot()
			return
		}
	}
}

func (self *metricsInstrumentInstance) snapshot() {
	now := time.Now()
	for _, s := range self.allSeries() {
		s.sample(now)
	}
}
