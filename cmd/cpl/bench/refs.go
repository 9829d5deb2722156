package bench

import (
	"context"
	"fmt"
	"sync/atomic"

	cplib "github.com/openziti/cpl"
	"github.com/openziti/cpl/chrono"
	"github.com/openziti/cpl/cmd/cpl/cpl"
	"github.com/openziti/cpl/rand48"
	"github.com/openziti/cpl/threading"
	"github.com/openziti/cpl/util"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func init() {
	benchRefsCmd.Flags().IntVarP(&objects, "objects", "n", 100000, "Number of pooled objects to cycle")
	benchRefsCmd.Flags().IntVarP(&workers, "workers", "w", 0, "Worker count (defaults to the configured workers)")
	benchRefsCmd.Flags().StringVarP(&instrumentName, "instrument", "i", "", "Instrument (nil, trace, metrics)")
	benchRefsCmd.Flags().IntVarP(&inflight, "inflight", "f", 0, "Maximum objects in flight (defaults to the configured queue_len)")
	benchRefsCmd.Flags().StringVarP(&metricsPath, "path", "p", "", "Metrics output root (metrics instrument)")
	benchCmd.AddCommand(benchRefsCmd)
}

var benchRefsCmd = &cobra.Command{
	Use:   "refs",
	Short: "Cycle pooled buffers through strong and weak references",
	Args:  cobra.NoArgs,
	RunE:  benchRefs,
}
var objects int
var workers int
var inflight int
var instrumentName string
var metricsPath string

func benchRefs(_ *cobra.Command, _ []string) error {
	cfg, err := cpl.Config()
	if err != nil {
		return err
	}
	if workers > 0 {
		cfg.Workers = workers
	}
	if inflight < 1 {
		inflight = cfg.QueueLen
	}
	if instrumentName != "" {
		cfg.Instrument = instrumentName
	}
	if metricsPath != "" {
		if cfg.InstrumentConfig == nil {
			cfg.InstrumentConfig = make(map[string]interface{})
		}
		cfg.InstrumentConfig["path"] = metricsPath
	}

	i, err := cplib.NewInstrument(cfg.Instrument, cfg.InstrumentConfig)
	if err != nil {
		return errors.Wrap(err, "error creating instrument")
	}
	ii := i.NewInstance(fmt.Sprintf("bench_%s", util.ShortId()))
	pool := cplib.NewPool("bench", cfg.PoolBufferSz, ii)
	tp := threading.NewThreadPool("bench", cfg.Workers, cfg.QueueLen)
	slots, err := threading.NewSemaphore(inflight, inflight)
	if err != nil {
		return err
	}
	done := threading.NewWaitCondition(false)
	if objects < 1 {
		done.Set()
	}

	rnd := rand48.New(cfg.Seed)
	var locked, expired, completed int64
	complete := func() {
		if atomic.AddInt64(&completed, 1) == int64(objects) {
			done.Set()
		}
		_ = slots.Release()
	}
	start := chrono.Now()
	for j := 0; j < objects; j++ {
		if err := slots.Acquire(context.Background()); err != nil {
			return err
		}
		sz := int(rnd.Next(1, int32(cfg.PoolBufferSz)+1))
		buf := pool.Get()
		wr := cplib.NewWeakReference(buf)
		err := tp.Submit(context.Background(), func() {
			defer complete()
			if b, ok := wr.Lock(); ok {
				b.Data.Reserve(sz)
				b.Data.AppendByte(byte(sz))
				b.Release()
				atomic.AddInt64(&locked, 1)
			}
			buf.Release()
			if wr.Expired() {
				atomic.AddInt64(&expired, 1)
			}
		})
		if err != nil {
			buf.Release()
			tp.Close()
			return errors.Wrap(err, "error submitting task")
		}
	}
	if err := done.Wait(context.Background()); err != nil {
		return err
	}
	tp.Close()
	elapsed := chrono.Now().Sub(start)
	ii.Shutdown()

	logrus.Infof("cycled [%d] objects in [%s], locked [%d], expired [%d]", objects, elapsed, locked, expired)

	if mi, ok := i.(*cplib.MetricsInstrument); ok {
		mi.Shutdown()
		if err := mi.WriteAllSamples(); err != nil {
			return errors.Wrap(err, "error writing samples")
		}
	}
	return nil
}
