// FILE: config.go
package console

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/lixenwraith/config"
)

// ModuleLevel overrides the default level threshold for every target that
// starts with Prefix. The most specific (longest) matching prefix wins.
type ModuleLevel struct {
	Prefix string `toml:"prefix"`
	Level  int64  `toml:"level"`
}

// Config holds all logger configuration values
type Config struct {
	// Filtering
	Level        int64         `toml:"level"`
	ModuleLevels []ModuleLevel `toml:"-"` // set via Builder, not loadable from file

	// Hand-off queue
	ChannelSize  int64  `toml:"channel_size"`
	Backpressure string `toml:"backpressure"` // "block" or "drop"

	// Destination
	Target   string `toml:"target"` // "stdout" or "stderr"
	Nonblock bool   `toml:"nonblock"`

	// Formatting
	Colors           bool   `toml:"colors"`
	Timestamps       string `toml:"timestamps"` // "none", "utc", or "offset"
	UTCOffsetMinutes int64  `toml:"utc_offset_minutes"`
	TimestampFormat  string `toml:"timestamp_format"` // empty = per-mode default
	ShowGoroutine    bool   `toml:"show_goroutine"`
	SanitizeControl  bool   `toml:"sanitize_control"`

	// Internal error handling
	InternalErrorsToStderr  bool    `toml:"internal_errors_to_stderr"`
	InternalErrorRatePerSec float64 `toml:"internal_error_rate_per_sec"`
}

// defaultConfig is the single source for all configurable default values
var defaultConfig = Config{
	Level: LevelTrace,

	ChannelSize:  DefaultChannelSize,
	Backpressure: BackpressureBlock,

	Target:   TargetStdout,
	Nonblock: true,

	Colors:           true,
	Timestamps:       TimestampsUTC,
	UTCOffsetMinutes: 0,
	TimestampFormat:  "",
	ShowGoroutine:    false,
	SanitizeControl:  false,

	InternalErrorsToStderr:  true,
	InternalErrorRatePerSec: 1.0,
}

// DefaultConfig returns a copy of the default configuration
func DefaultConfig() *Config {
	copiedConfig := defaultConfig
	return &copiedConfig
}

// configPrefix is the TOML table holding the logger's keys.
const configPrefix = "console."

// NewConfigFromFile loads configuration from a TOML file through the
// lixenwraith/config loader and returns a validated Config. A missing
// file is not an error; defaults apply.
func NewConfigFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	loader := config.New()
	if err := loader.RegisterStruct(configPrefix, *cfg); err != nil {
		return nil, fmtErrorf("failed to register config struct: %w", err)
	}

	if err := loader.Load(path, nil); err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return nil, fmtErrorf("failed to load config from %s: %w", path, err)
	}

	if err := applyLoaded(loader, configPrefix, cfg); err != nil {
		return nil, fmtErrorf("failed to extract config values: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyLoaded copies every key present in the loader onto cfg, keyed by
// toml tag. Keys absent from the file keep their defaults.
func applyLoaded(loader *config.Config, prefix string, cfg *Config) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("toml")
		if tag == "" || tag == "-" {
			continue
		}

		raw, found := loader.Get(prefix + tag)
		if !found {
			continue
		}

		if err := assignField(v.Field(i), raw); err != nil {
			return fmt.Errorf("key %s%s: %w", prefix, tag, err)
		}
	}

	return nil
}

// assignField converts a loader value onto a Config field. TOML integers
// arrive as int64 and may feed float fields; everything else must match.
func assignField(field reflect.Value, raw any) error {
	switch field.Kind() {
	case reflect.String:
		s, ok := raw.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", raw)
		}
		field.SetString(s)

	case reflect.Int64:
		switch n := raw.(type) {
		case int64:
			field.SetInt(n)
		case int:
			field.SetInt(int64(n))
		default:
			return fmt.Errorf("expected integer, got %T", raw)
		}

	case reflect.Float64:
		switch n := raw.(type) {
		case float64:
			field.SetFloat(n)
		case int64:
			field.SetFloat(float64(n))
		default:
			return fmt.Errorf("expected number, got %T", raw)
		}

	case reflect.Bool:
		b, ok := raw.(bool)
		if !ok {
			return fmt.Errorf("expected bool, got %T", raw)
		}
		field.SetBool(b)

	default:
		return fmt.Errorf("unsupported field kind %v", field.Kind())
	}

	return nil
}

// Validate performs validation on the configuration
func (c *Config) Validate() error {
	if c.ChannelSize <= 0 {
		return fmt.Errorf("%w: channel_size must be positive: %d", ErrInvalidConfig, c.ChannelSize)
	}

	if c.Backpressure != BackpressureBlock && c.Backpressure != BackpressureDrop {
		return fmt.Errorf("%w: invalid backpressure: '%s' (use block or drop)", ErrInvalidConfig, c.Backpressure)
	}

	if c.Target != TargetStdout && c.Target != TargetStderr {
		return fmt.Errorf("%w: invalid target: '%s' (use stdout or stderr)", ErrInvalidConfig, c.Target)
	}

	switch c.Timestamps {
	case TimestampsNone, TimestampsUTC, TimestampsOffset:
	default:
		return fmt.Errorf("%w: invalid timestamps: '%s' (use none, utc, or offset)", ErrInvalidConfig, c.Timestamps)
	}

	// time.FixedZone limit
	if c.UTCOffsetMinutes < -18*60 || c.UTCOffsetMinutes > 18*60 {
		return fmt.Errorf("%w: utc_offset_minutes out of range: %d", ErrInvalidConfig, c.UTCOffsetMinutes)
	}

	if c.InternalErrorRatePerSec < 0 {
		return fmt.Errorf("%w: internal_error_rate_per_sec cannot be negative: %f", ErrInvalidConfig, c.InternalErrorRatePerSec)
	}

	for _, ml := range c.ModuleLevels {
		if ml.Prefix == "" {
			return fmt.Errorf("%w: module level prefix cannot be empty", ErrInvalidConfig)
		}
	}

	return nil
}

// Clone creates a copy of the configuration, including module overrides
func (c *Config) Clone() *Config {
	copiedConfig := *c
	copiedConfig.ModuleLevels = append([]ModuleLevel(nil), c.ModuleLevels...)
	return &copiedConfig
}
