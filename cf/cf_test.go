package cf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

type testConfig struct {
	Workers  int                    `cf:"workers"`
	Seed     int64                  `cf:"seed"`
	Scale    float64                `cf:"scale"`
	Enabled  bool                   `cf:"enabled"`
	Name     string                 `cf:"name"`
	Interval time.Duration          `cf:"interval"`
	Nested   map[string]interface{} `cf:"nested"`
	Untagged int
	hidden   int
}

func TestLoadFromYaml(t *testing.T) {
	raw := `
workers: 4
seed: 1234
scale: 2
enabled: true
name: bench
interval: 250ms
nested:
  path: /tmp
Untagged: 9
hidden: 3
unknown: ignored
`
	data := make(map[string]interface{})
	assert.NoError(t, yaml.Unmarshal([]byte(raw), &data))

	cfg := &testConfig{}
	assert.NoError(t, Load(data, cfg))
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, int64(1234), cfg.Seed)
	assert.Equal(t, 2.0, cfg.Scale)
	assert.True(t, cfg.Enabled)
	assert.Equal(t, "bench", cfg.Name)
	assert.Equal(t, 250*time.Millisecond, cfg.Interval)
	assert.Equal(t, "/tmp", cfg.Nested["path"])
	assert.Equal(t, 9, cfg.Untagged)
	assert.Equal(t, 0, cfg.hidden)
}

func TestLoadMismatch(t *testing.T) {
	cfg := &testConfig{}
	assert.Error(t, Load(map[string]interface{}{"workers": "four"}, cfg))
	assert.Error(t, Load(map[string]interface{}{"enabled": 1}, cfg))
	assert.Error(t, Load(map[string]interface{}{"interval": true}, cfg))
}

func TestLoadRequiresStructPointer(t *testing.T) {
	assert.Error(t, Load(map[string]interface{}{}, testConfig{}))
	var nilCfg *testConfig
	assert.Error(t, Load(map[string]interface{}{}, nilCfg))
}

func TestDump(t *testing.T) {
	out := Dump("config", &testConfig{Workers: 2, Name: "x"})
	assert.Contains(t, out, "config {\n")
	assert.Contains(t, out, "workers")
	assert.Contains(t, out, "Untagged")
	assert.NotContains(t, out, "hidden")
}
