// Package config handles meshdump configuration loading and management.
package config

// Config holds all tool settings.
type Config struct {
	Dump    DumpConfig    `yaml:"dump"`
	Logging LoggingConfig `yaml:"logging"`
}

// DumpConfig holds output settings for the dump command.
type DumpConfig struct {
	Limit      int  `yaml:"limit"`       // Max vertices/triangles printed per mesh (0 = all)
	ShowBounds bool `yaml:"show_bounds"` // Print per-mesh bounding boxes
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Dump: DumpConfig{
			Limit:      16,
			ShowBounds: true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
