// Package config loads adapter and logging settings from YAML.
//
// Document shape:
//
//	environment:
//	  dimensions: 3          # 2 (x, y) or 3 (x, y, z); ignored when coordinates is set
//	  coordinates: [lat, lon] # explicit attribute names, in order
//	log:
//	  level: debug           # any zap level name
//	  encoding: console      # json (default) or console
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/graphfinder/finder"
)

// Sentinel errors returned by Validate and Load.
var (
	// ErrBadDimensions indicates a dimension count other than 2 or 3.
	ErrBadDimensions = errors.New("config: environment.dimensions must be 2 or 3")

	// ErrEmptyCoordinate indicates an empty name in environment.coordinates.
	ErrEmptyCoordinate = errors.New("config: environment.coordinates contains an empty name")

	// ErrBadLogLevel indicates an unknown log.level.
	ErrBadLogLevel = errors.New("config: unknown log level")

	// ErrBadEncoding indicates a log.encoding other than json or console.
	ErrBadEncoding = errors.New("config: log.encoding must be json or console")
)

// Config is the root YAML document.
type Config struct {
	Environment Environment `yaml:"environment"`
	Log         Log         `yaml:"log"`
}

// Environment selects which vertex attributes make up a position.
type Environment struct {
	Dimensions  int      `yaml:"dimensions"`
	Coordinates []string `yaml:"coordinates"`
}

// Log configures the zap logger handed to the adapters.
type Log struct {
	Level    string `yaml:"level"`
	Encoding string `yaml:"encoding"`
}

// Default returns the configuration used when no file is given:
// planar positions, info-level JSON logs.
func Default() Config {
	return Config{
		Environment: Environment{Dimensions: 2},
		Log:         Log{Level: "info", Encoding: "json"},
	}
}

// Load reads and validates the YAML file at path. Omitted fields keep their defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes and validates a YAML document. Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if len(bytes.TrimSpace(data)) > 0 {
		if err := decodeStrict(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks dimension, coordinate and logging settings.
func (c Config) Validate() error {
	if len(c.Environment.Coordinates) == 0 {
		if c.Environment.Dimensions != 2 && c.Environment.Dimensions != 3 {
			return fmt.Errorf("%w: got %d", ErrBadDimensions, c.Environment.Dimensions)
		}
	}
	for i, name := range c.Environment.Coordinates {
		if name == "" {
			return fmt.Errorf("%w: index %d", ErrEmptyCoordinate, i)
		}
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %q", ErrBadLogLevel, c.Log.Level)
	}
	if c.Log.Encoding != "json" && c.Log.Encoding != "console" {
		return fmt.Errorf("%w: got %q", ErrBadEncoding, c.Log.Encoding)
	}

	return nil
}

// Coordinates returns the attribute names a position is read from.
func (c Config) Coordinates() []string {
	if len(c.Environment.Coordinates) > 0 {
		return append([]string(nil), c.Environment.Coordinates...)
	}
	if c.Environment.Dimensions == 3 {
		return []string{"x", "y", "z"}
	}

	return []string{"x", "y"}
}

// Logger builds a zap logger from the log section.
func (c Config) Logger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrBadLogLevel, c.Log.Level)
	}

	zc := zap.NewProductionConfig()
	if c.Log.Encoding == "console" {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.Encoding = c.Log.Encoding

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("config: build logger: %w", err)
	}

	return logger, nil
}

// FinderOptions converts the configuration into adapter options.
func (c Config) FinderOptions(logger *zap.Logger) []finder.Option {
	return []finder.Option{
		finder.WithLogger(logger),
		finder.WithCoordinates(c.Coordinates()...),
	}
}

// NewEnvironment wraps s in a spatial adapter configured by c.
func (c Config) NewEnvironment(s finder.Store, logger *zap.Logger) (*finder.AdaptedEnvironment, error) {
	return finder.NewEnvironment(s, c.FinderOptions(logger)...)
}

func decodeStrict(data []byte, out *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}
