package cpl

import (
	"os"

	"github.com/openziti/cpl/cf"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const configVersion = 1

type Config struct {
	PoolBufferSz     int                    `cf:"pool_buffer_sz"`
	Instrument       string                 `cf:"instrument"`
	InstrumentConfig map[string]interface{} `cf:"instrument_config"`
	Seed             int64                  `cf:"seed"`
	Workers          int                    `cf:"workers"`
	QueueLen         int                    `cf:"queue_len"`
}

func DefaultConfig() *Config {
	return &Config{
		PoolBufferSz: 4 * 1024,
		Instrument:   "nil",
		Seed:         0x1234abcd,
		Workers:      4,
		QueueLen:     1024,
	}
}

// LoadConfig reads a YAML file over the defaults. The file must declare 'config_version: 1'.
//
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading config [%s]", path)
	}
	return ParseConfig(data)
}

func ParseConfig(data []byte) (*Config, error) {
	raw := make(map[string]interface{})
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "error decoding config")
	}
	if v, found := raw["config_version"]; found {
		if i, ok := v.(int); !ok || i != configVersion {
			return nil, errors.Errorf("invalid config version [%v != %d]", v, configVersion)
		}
	} else {
		return nil, errors.New("missing 'config_version'")
	}

	cfg := DefaultConfig()
	if err := cf.Load(raw, cfg); err != nil {
		return nil, errors.Wrap(err, "error loading config")
	}
	if cfg.PoolBufferSz < 1 {
		return nil, errors.Errorf("invalid pool_buffer_sz [%d]", cfg.PoolBufferSz)
	}
	if cfg.Workers < 1 {
		return nil, errors.Errorf("invalid workers [%d]", cfg.Workers)
	}
	return cfg, nil
}

func (self *Config) Dump() string {
	return cf.Dump("config", self)
}
