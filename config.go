package anyon

import (
	"fmt"
	"runtime"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	// SchedulingTimeout bounds how long a row job waits for a free worker.
	SchedulingTimeout time.Duration
	// Workers is the number of goroutines assembling matrix rows.
	Workers int
	// Tolerance is the numerical tolerance used by unitarity checks and rendering.
	Tolerance float64
	// Show passes every assembled generator to the renderer.
	Show bool
}

func NewConfig() *Config {
	return &Config{
		SchedulingTimeout: 10 * time.Second,
		Workers:           runtime.NumCPU(),
		Tolerance:         1e-9,
	}
}

/*
LoadConfig reads a configuration file (TOML, YAML or JSON, picked by
extension) on top of the NewConfig defaults. Environment variables prefixed
with ANYON_ (ANYON_WORKERS, ANYON_TOLERANCE, ...) override both. An empty path
skips the file.
*/
func LoadConfig(path string) (*Config, error) {
	defaults := NewConfig()

	v := viper.New()
	v.SetDefault("scheduling_timeout", defaults.SchedulingTimeout)
	v.SetDefault("workers", defaults.Workers)
	v.SetDefault("tolerance", defaults.Tolerance)
	v.SetDefault("show", defaults.Show)

	v.SetEnvPrefix("anyon")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	config := &Config{
		SchedulingTimeout: v.GetDuration("scheduling_timeout"),
		Workers:           v.GetInt("workers"),
		Tolerance:         v.GetFloat64("tolerance"),
		Show:              v.GetBool("show"),
	}

	if config.Workers < 1 {
		return nil, fmt.Errorf("workers must be at least 1, got %d", config.Workers)
	}

	return config, nil
}
