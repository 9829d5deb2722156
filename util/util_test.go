package util

import (
	"math"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequence(t *testing.T) {
	seq := NewSequence(10)
	assert.Equal(t, int32(10), seq.Next())
	assert.Equal(t, int32(11), seq.Next())
	assert.Equal(t, int32(11), seq.Last())

	seq.ResetTo(math.MaxInt32)
	assert.Equal(t, int32(math.MaxInt32), seq.Next())
	assert.Equal(t, int32(0), seq.Next())
}

func TestSequenceConcurrent(t *testing.T) {
	seq := NewSequence(0)
	seen := make(map[int32]bool)
	var lock sync.Mutex
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				v := seq.Next()
				lock.Lock()
				seen[v] = true
				lock.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 8000, len(seen))
}

func TestRandomSequence(t *testing.T) {
	for i := 0; i < 100; i++ {
		v := RandomSequence()
		assert.True(t, v >= 0 && v < 1024)
	}
}

func TestNewId(t *testing.T) {
	a := NewId()
	b := NewId()
	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
	assert.NotContains(t, a, "-")
	assert.Len(t, ShortId(), 8)
}

func TestSamplesRoundTrip(t *testing.T) {
	root, err := os.MkdirTemp("", "cpl-util")
	require.NoError(t, err)
	defer func() { _ = os.RemoveAll(root) }()

	out := filepath.Join(root, "peer0")
	require.NoError(t, os.MkdirAll(out, 0755))

	now := time.Now()
	samples := []*Sample{{now, 1}, {now.Add(time.Second), 7}}
	require.NoError(t, WriteSamples("objects", out, samples))
	require.NoError(t, WriteMetricsId("peer0", out, map[string]string{"kind": "bench"}))

	data, err := ReadSamples(filepath.Join(out, "objects.csv"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), data[now.UnixNano()])
	assert.Equal(t, int64(7), data[now.Add(time.Second).UnixNano()])

	found, err := DiscoverMetrics(root)
	require.NoError(t, err)
	require.Contains(t, found, out)
	assert.Equal(t, "peer0", found[out].Id)
	assert.Equal(t, "bench", found[out].Values["kind"])
}

func TestReadSamplesMalformed(t *testing.T) {
	root, err := os.MkdirTemp("", "cpl-util")
	require.NoError(t, err)
	defer func() { _ = os.RemoveAll(root) }()

	path := filepath.Join(root, "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("1,2\nnope\n"), 0644))
	_, err = ReadSamples(path)
	assert.Error(t, err)
}
