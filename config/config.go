package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config carries every tunable of a simulation run. Zero values are
// backfilled with the defaults below, so a partial YAML file is fine.
type Config struct {
	Device   DeviceOptions   `yaml:"device"`
	Workload WorkloadOptions `yaml:"workload"`
	Strategy StrategyOptions `yaml:"strategy"`
}

// DeviceOptions are the fixed timing parameters of the simulated medium.
type DeviceOptions struct {
	BlockSize        int     `yaml:"block_size"`          // bytes, informational
	ReadSpeed        float64 `yaml:"read_speed"`          // bytes/second
	WriteSpeed       float64 `yaml:"write_speed"`         // bytes/second
	SeekTimePerBlock float64 `yaml:"seek_time_per_block"` // seconds
}

// WorkloadOptions shape the generated dataset and query set.
type WorkloadOptions struct {
	BlockCount int     `yaml:"block_count"`
	QueryCount int     `yaml:"query_count"`
	SizeRatio  float64 `yaml:"size_ratio"` // payload sizes drawn from [1, block_size*size_ratio]
	MaxID      uint64  `yaml:"max_id"`     // identifiers drawn from [1, max_id]
	Seed       int64   `yaml:"seed"`       // 0 seeds from the wall clock
}

// StrategyOptions hold the index strategy parameters. Zero values select
// the strategy's own defaults.
type StrategyOptions struct {
	FixedInterval  int `yaml:"fixed_interval"`
	Level1Interval int `yaml:"level1_interval"`
	Level2Interval int `yaml:"level2_interval"`
}

const (
	defaultBlockSize  = 4096
	defaultReadSpeed  = 1024 * 1024 // 1 MiB/s
	defaultWriteSpeed = 512 * 1024  // 512 KiB/s
	defaultSeekTime   = 0.01

	defaultBlockCount = 10000
	defaultQueryCount = 1000
	defaultSizeRatio  = 0.5
	defaultMaxID      = 1000000
)

// Default returns the configuration used when no file overrides anything.
func Default() *Config {
	return &Config{
		Device: DeviceOptions{
			BlockSize:        defaultBlockSize,
			ReadSpeed:        defaultReadSpeed,
			WriteSpeed:       defaultWriteSpeed,
			SeekTimePerBlock: defaultSeekTime,
		},
		Workload: WorkloadOptions{
			BlockCount: defaultBlockCount,
			QueryCount: defaultQueryCount,
			SizeRatio:  defaultSizeRatio,
			MaxID:      defaultMaxID,
		},
	}
}

// Load reads the YAML file at path on top of the defaults. An empty path
// tries the conventional locations and silently falls back to defaults when
// none exists. Invalid or missing fields are backfilled, never rejected.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		for _, p := range []string{"faketape.yaml", "configs/faketape.yaml"} {
			data, err := os.ReadFile(p)
			if err != nil {
				continue
			}
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, err
			}
			applyDefaults(cfg)
			return cfg, nil
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	applyDefaults(cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Device.BlockSize <= 0 {
		cfg.Device.BlockSize = defaultBlockSize
	}
	if cfg.Device.ReadSpeed <= 0 {
		cfg.Device.ReadSpeed = defaultReadSpeed
	}
	if cfg.Device.WriteSpeed <= 0 {
		cfg.Device.WriteSpeed = defaultWriteSpeed
	}
	if cfg.Device.SeekTimePerBlock <= 0 {
		cfg.Device.SeekTimePerBlock = defaultSeekTime
	}
	if cfg.Workload.BlockCount <= 0 {
		cfg.Workload.BlockCount = defaultBlockCount
	}
	if cfg.Workload.QueryCount <= 0 {
		cfg.Workload.QueryCount = defaultQueryCount
	}
	if cfg.Workload.SizeRatio <= 0 || cfg.Workload.SizeRatio > 1 {
		cfg.Workload.SizeRatio = defaultSizeRatio
	}
	if cfg.Workload.MaxID == 0 {
		cfg.Workload.MaxID = defaultMaxID
	}
	// Strategy zero values mean "use the strategy's default"; the factory
	// resolves them, so nothing to backfill here.
}
