package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDt        = 1.0 / 60.0
	DefaultDuration  = 10.0
	DefaultTimeScale = 1.0
	DefaultGravity   = 9.81
	DefaultBound     = 20.0
)

type Config struct {
	Scene     string     `yaml:"scene"`
	ScenePath string     `yaml:"scene_path"`
	Dt        float64    `yaml:"dt"`
	Duration  float64    `yaml:"duration"`
	TimeScale float64    `yaml:"time_scale"`
	Gravity   float64    `yaml:"gravity"`
	Bounds    [3]float64 `yaml:"bounds"`
	Seed      int64      `yaml:"seed"`
}

func DefaultConfig() *Config {
	return &Config{
		Scene:     "drop",
		Dt:        DefaultDt,
		Duration:  DefaultDuration,
		TimeScale: DefaultTimeScale,
		Gravity:   DefaultGravity,
		Bounds:    [3]float64{DefaultBound, DefaultBound, DefaultBound},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
