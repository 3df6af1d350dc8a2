// Package config reads the options of a yangtypes context from YAML.
//
//	timezone: Europe/Prague
//	dictionary:
//	  max-entries: 100000
//	log:
//	  level: debug
//	  format: json
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/reoring/yangtypes"
)

// Config is the configuration file layout.
type Config struct {
	// TimeZone is the IANA zone values are printed in; empty selects the
	// process zone.
	TimeZone   string     `yaml:"timezone,omitempty"`
	Dictionary Dictionary `yaml:"dictionary,omitempty"`
	Log        Log        `yaml:"log,omitempty"`
}

// Dictionary configures the interned-string store.
type Dictionary struct {
	MaxEntries int `yaml:"max-entries,omitempty"`
}

// Log configures logging.
type Log struct {
	Level  string `yaml:"level,omitempty"`  // logrus level name, default "info"
	Format string `yaml:"format,omitempty"` // "text" (default) or "json"
}

// Default returns the configuration used without a file.
func Default() *Config {
	return &Config{Log: Log{Level: "info", Format: "text"}}
}

// Parse reads a configuration from YAML. Missing keys keep their defaults;
// unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	c := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Load reads the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return Parse(data)
}

// Validate checks the values that are not checked by decoding.
func (c *Config) Validate() error {
	if c.Dictionary.MaxEntries < 0 {
		return fmt.Errorf("config: dictionary.max-entries must not be negative, got %d", c.Dictionary.MaxEntries)
	}
	if _, err := logrus.ParseLevel(c.level()); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}
	switch c.Log.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("config: log.format: unknown format %q", c.Log.Format)
	}
	return nil
}

func (c *Config) level() string {
	if c.Log.Level == "" {
		return "info"
	}
	return c.Log.Level
}

// Logger builds a logger writing to out according to the log section.
func (c *Config) Logger(out io.Writer) (*logrus.Entry, error) {
	lvl, err := logrus.ParseLevel(c.level())
	if err != nil {
		return nil, fmt.Errorf("config: log.level: %w", err)
	}
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(lvl)
	if c.Log.Format == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}
	return logrus.NewEntry(l), nil
}

// Options converts the configuration into context options using logger.
func (c *Config) Options(logger *logrus.Entry) yangtypes.Options {
	return yangtypes.Options{
		TimeZone:       c.TimeZone,
		MaxDictEntries: c.Dictionary.MaxEntries,
		Logger:         logger,
	}
}
