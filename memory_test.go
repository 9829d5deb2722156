package cpl

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolGetHoldsOneReference(t *testing.T) {
	pool := NewPool("test", 1000, nil)
	buf := pool.Get()
	assert.Equal(t, int32(1), buf.RefCount())
	assert.Equal(t, 0, buf.Data.Len())
	assert.Equal(t, 1024, buf.Data.Cap())
	assert.Equal(t, "test", pool.Id())
	buf.Release()
	assert.True(t, buf.Destroyed())
}

func TestPoolRecyclesOnRelease(t *testing.T) {
	ii := &countingInstrument{}
	pool := NewPool("test", 64, ii)

	buf := pool.Get()
	buf.Data.AppendString("payload")
	buf.AddRef()
	buf.Release()
	assert.Equal(t, int32(0), ii.puts)
	assert.Equal(t, "payload", buf.Data.String())

	buf.Release()
	assert.Equal(t, int32(1), ii.puts)
	assert.Equal(t, 0, buf.Data.Len())
	assert.Equal(t, int32(1), ii.gets)
	assert.True(t, ii.allocations >= 1)
}

func TestPoolWeakReferencesSurviveReuse(t *testing.T) {
	pool := NewPool("test", 64, nil)
	first := pool.Get()
	wr := NewWeakReference(first)
	first.Release()
	assert.True(t, wr.Expired())

	// whether or not sync.Pool hands back the same storage, the old weak reference stays dead
	second := pool.Get()
	defer second.Release()
	_, ok := wr.Lock()
	assert.False(t, ok)
	assert.Equal(t, int32(1), second.RefCount())
	assert.False(t, second.Destroyed())
}

func TestPoolConcurrentUse(t *testing.T) {
	ii := &countingInstrument{}
	pool := NewPool("test", 32, ii)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				buf := pool.Get()
				buf.Data.AppendByte(byte(i))
				wr := NewWeakReference(buf)
				if locked, ok := wr.Lock(); ok {
					assert.Equal(t, 1, locked.Data.Len())
					locked.Release()
				}
				buf.Release()
				assert.True(t, wr.Expired())
			}
		}(i)
	}
	wg.Wait()
	assert.Equal(t, int32(1600), ii.gets)
	assert.Equal(t, int32(1600), ii.puts)
	assert.Equal(t, ii.created, ii.destroyed)
}

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
config_version: 1
pool_buffer_sz: 8192
instrument: trace
instrument_config:
  objects: true
seed: 42
workers: 2
`))
	require.NoError(t, err)
	assert.Equal(t, 8192, cfg.PoolBufferSz)
	assert.Equal(t, "trace", cfg.Instrument)
	assert.Equal(t, true, cfg.InstrumentConfig["objects"])
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, DefaultConfig().QueueLen, cfg.QueueLen)
	assert.Contains(t, cfg.Dump(), "pool_buffer_sz")
}

func TestParseConfigErrors(t *testing.T) {
	_, err := ParseConfig([]byte("seed: 1\n"))
	assert.Error(t, err)
	_, err = ParseConfig([]byte("config_version: 2\n"))
	assert.Error(t, err)
	_, err = ParseConfig([]byte("config_version: 1\nworkers: 0\n"))
	assert.Error(t, err)
	_, err = ParseConfig([]byte("config_version: 1\nworkers: many\n"))
	assert.Error(t, err)
	_, err = ParseConfig([]byte("config_version: [\n"))
	assert.Error(t, err)
}
