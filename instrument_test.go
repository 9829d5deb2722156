package cpl

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/openziti/cpl/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInstrumentByName(t *testing.T) {
	i, err := NewInstrument("nil", nil)
	require.NoError(t, err)
	assert.NotNil(t, i.NewInstance("x"))

	i, err = NewInstrument("trace", map[string]interface{}{"objects": true, "pool": true})
	require.NoError(t, err)
	ii := i.NewInstance("x")
	ii.Created(1)
	ii.PoolGet("p")
	ii.Shutdown()

	_, err = NewInstrument("bogus", nil)
	assert.Error(t, err)

	_, err = NewInstrument("trace", map[string]interface{}{"objects": "yes"})
	assert.Error(t, err)

	_, err = NewInstrument("metrics", map[string]interface{}{"snapshot_ms": 0})
	assert.Error(t, err)
}

func TestMetricsInstrumentWritesSamples(t *testing.T) {
	root, err := os.MkdirTemp("", "cpl-metrics")
	require.NoError(t, err)
	defer func() { _ = os.RemoveAll(root) }()

	i, err := NewMetricsInstrument(map[string]interface{}{"path": root, "snapshot_ms": 5})
	require.NoError(t, err)
	mi := i.(*MetricsInstrument)
	ii := mi.NewInstance("bench")

	pool := NewPool("metrics", 16, ii)
	for j := 0; j < 10; j++ {
		buf := pool.Get()
		wr := NewWeakReference(buf)
		if locked, ok := wr.Lock(); ok {
			locked.Release()
		}
		buf.Release()
	}
	mi.Shutdown()
	require.NoError(t, mi.WriteAllSamples())

	found, err := util.DiscoverMetrics(root)
	require.NoError(t, err)
	require.Len(t, found, 1)
	for dir, id := range found {
		assert.Equal(t, "cpl", id.Id)
		assert.Equal(t, "bench", id.Values["instance"])

		total := func(name string) int64 {
			data, err := util.ReadSamples(filepath.Join(dir, name+".csv"))
			require.NoError(t, err)
			var sum int64
			for _, v := range data {
				sum += v
			}
			return sum
		}
		assert.Equal(t, int64(10), total("created"))
		assert.Equal(t, int64(10), total("destroyed"))
		assert.Equal(t, int64(10), total("pool_gets"))
		assert.Equal(t, int64(10), total("pool_puts"))
		assert.Equal(t, int64(10), total("weak_locks"))
		assert.Equal(t, int64(10), total("weak_expired"))
		assert.Equal(t, int64(0), total("weak_lock_failures"))
	}
}
