package config

import (
	"time"
)

// Default values applied when the config file omits a setting.
const (
	DefaultLogLevel        = "INFO"
	DefaultLogFormat       = "text"
	DefaultLogOutput       = "stdout"
	DefaultWorkers         = 4
	DefaultQueueSize       = 1000
	DefaultShutdownTimeout = 30 * time.Second
)

// GetDefaultConfig returns a fully populated default configuration.
func GetDefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
			Output: DefaultLogOutput,
		},
		Fridge: FridgeConfig{
			Workers:   DefaultWorkers,
			QueueSize: DefaultQueueSize,
		},
		Metrics: MetricsConfig{
			Enabled: false,
		},
		ShutdownTimeout: DefaultShutdownTimeout,
	}
}

// ApplyDefaults fills in any zero-valued settings.
func ApplyDefaults(cfg *Config) {
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLogLevel
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = DefaultLogFormat
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = DefaultLogOutput
	}
	if cfg.Fridge.Workers == 0 {
		cfg.Fridge.Workers = DefaultWorkers
	}
	if cfg.Fridge.QueueSize == 0 {
		cfg.Fridge.QueueSize = DefaultQueueSize
	}
	if cfg.ShutdownTimeout == 0 {
		cfg.ShutdownTimeout = DefaultShutdownTimeout
	}
}
