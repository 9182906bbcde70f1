package config

// Config is the root configuration of lt-trim.
type Config struct {
	Log  LogConfig  `yaml:"log"`
	Trim TrimConfig `yaml:"trim"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LT_TRIM_LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LT_TRIM_LOG_FORMAT" env-default:"console"`
}

// TrimConfig holds settings of the trim run itself.
type TrimConfig struct {
	// Quiet suppresses the per-section progress lines on stdout.
	Quiet bool `yaml:"quiet" env:"LT_TRIM_QUIET" env-default:"false"`
}
