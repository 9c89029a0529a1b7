// Package config loads runtime configuration from defaults, an optional
// config file, SNQL_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable: log.level is read
// from SNQL_LOG_LEVEL.
const EnvPrefix = "SNQL"

type Config struct {
	Log      Log      `mapstructure:"log"`
	Database Database `mapstructure:"database"`
	Server   Server   `mapstructure:"server"`
	Dataset  Dataset  `mapstructure:"dataset"`
}

type Log struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type Database struct {
	// Path is a SQLite file path or ":memory:".
	Path string `mapstructure:"path"`
}

type Server struct {
	Addr         string        `mapstructure:"addr"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

type Dataset struct {
	// Path is a CUE dataset file. Empty selects the embedded sample.
	Path string `mapstructure:"path"`
}

// defaults is the flat key → value table registered on every viper
// instance. Registering every key also lets AutomaticEnv resolve it.
var defaults = map[string]any{
	"log.level":            zerolog.LevelInfoValue,
	"log.format":           LogFormatTextValue,
	"database.path":        ":memory:",
	"server.addr":          ":8080",
	"server.read_timeout":  "10s",
	"server.write_timeout": "10s",
	"dataset.path":         "",
}

// flagKeys maps persistent flag names to config keys.
var flagKeys = map[string]string{
	"log-level":  "log.level",
	"log-format": "log.format",
	"db":         "database.path",
	"addr":       "server.addr",
	"dataset":    "dataset.path",
}

// NewViper returns a viper instance with defaults and environment lookup
// configured.
func NewViper() *viper.Viper {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// BindFlags binds every known flag present in fs to its config key. Flags
// not defined in fs are skipped.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		flag := fs.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

// Load reads the optional config file and decodes the merged settings.
// Unknown keys in the file are an error.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading from config file: %w", err)
		}
	}

	decoderCfg := func(cfg *mapstructure.DecoderConfig) {
		cfg.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
		)
		cfg.ErrorUnused = true
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg, decoderCfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that decoding alone cannot.
func (c *Config) Validate() error {
	switch c.Log.Level {
	case zerolog.LevelDebugValue, zerolog.LevelInfoValue, zerolog.LevelWarnValue:
	default:
		return fmt.Errorf("log level %q: %w", c.Log.Level, errUnknownLogLevel)
	}
	switch c.Log.Format {
	case LogFormatJsonValue, LogFormatTextValue:
	default:
		return fmt.Errorf("log format %q: %w", c.Log.Format, errUnknownLogFormat)
	}
	if c.Database.Path == "" {
		return fmt.Errorf("database path is required")
	}
	if c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 {
		return fmt.Errorf("server timeouts must not be negative")
	}
	return nil
}
