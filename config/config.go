// Package config loads the application configuration: defaults, then an
// optional YAML file parsed strictly, then ALGOVIZ_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/khaclbit/algorithm-visualizer/converters"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Environment variables read by ApplyEnv.
const (
	EnvLogLevel   = "ALGOVIZ_LOG_LEVEL"
	EnvLogFormat  = "ALGOVIZ_LOG_FORMAT"
	EnvStorePath  = "ALGOVIZ_STORE_PATH"
	EnvServerAddr = "ALGOVIZ_SERVER_ADDR"
	EnvMaxNodes   = "ALGOVIZ_TEXT_MAX_NODES"
	EnvMaxEdges   = "ALGOVIZ_TEXT_MAX_EDGES"
)

// Config aggregates application configuration values.
type Config struct {
	Logging Logging `yaml:"logging"`
	Store   Store   `yaml:"store"`
	Server  Server  `yaml:"server"`
	Text    Text    `yaml:"text"`
}

// Logging controls structured logging settings.
type Logging struct {
	Level         string `yaml:"level"`
	Format        string `yaml:"format"` // text|json
	IncludeCaller bool   `yaml:"includeCaller"`
}

// Store locates the graph database file.
type Store struct {
	Path    string        `yaml:"path"`
	Timeout time.Duration `yaml:"timeout"`
}

// Server governs the HTTP API.
type Server struct {
	Addr         string        `yaml:"addr"`
	ReadTimeout  time.Duration `yaml:"readTimeout"`
	WriteTimeout time.Duration `yaml:"writeTimeout"`
	BodyLimit    int           `yaml:"bodyLimit"`
}

// Text holds the limits applied when parsing graph text.
type Text struct {
	MaxNodes            int  `yaml:"maxNodes"`
	MaxEdges            int  `yaml:"maxEdges"`
	AllowSelfLoops      bool `yaml:"allowSelfLoops"`
	AllowDuplicateEdges bool `yaml:"allowDuplicateEdges"`
}

// Default returns a working configuration for a local run.
func Default() Config {
	return Config{
		Logging: Logging{Level: "info", Format: "text"},
		Store:   Store{Path: "algoviz.db", Timeout: 5 * time.Second},
		Server: Server{
			Addr:         ":8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 15 * time.Second,
			BodyLimit:    4 << 20,
		},
		Text: Text{
			MaxNodes:            1000,
			MaxEdges:            1000,
			AllowSelfLoops:      false,
			AllowDuplicateEdges: true,
		},
	}
}

// Load reads the YAML file at path over the defaults (skipped when path is
// empty), applies the environment and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		file, err := os.Open(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to open config: %w", err)
		}
		defer file.Close()

		decoder := yaml.NewDecoder(file)
		decoder.KnownFields(true)
		if err := decoder.Decode(&cfg); err != nil {
			return cfg, fmt.Errorf("YAML syntax error in config %s: %w", path, err)
		}
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// ApplyEnv overrides fields from the environment. lookup is os.LookupEnv
// outside tests.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Logging.Level = v
	}
	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		c.Logging.Format = v
	}
	if v, ok := lookup(EnvStorePath); ok && v != "" {
		c.Store.Path = v
	}
	if v, ok := lookup(EnvServerAddr); ok && v != "" {
		c.Server.Addr = v
	}
	for key, dst := range map[string]*int{EnvMaxNodes: &c.Text.MaxNodes, EnvMaxEdges: &c.Text.MaxEdges} {
		v, ok := lookup(key)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s value %q: %w", key, v, err)
		}
		*dst = n
	}
	return nil
}

// Validate checks the values Load cannot repair.
func (c Config) Validate() error {
	var errs []error
	if lvl := strings.TrimSpace(c.Logging.Level); lvl != "" {
		if _, err := logrus.ParseLevel(lvl); err != nil {
			errs = append(errs, fmt.Errorf("%w: log level %q", ErrInvalid, c.Logging.Level))
		}
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("%w: log format %q (want text or json)", ErrInvalid, c.Logging.Format))
	}
	if strings.TrimSpace(c.Store.Path) == "" {
		errs = append(errs, fmt.Errorf("%w: empty store path", ErrInvalid))
	}
	if c.Text.MaxNodes <= 0 || c.Text.MaxEdges <= 0 {
		errs = append(errs, fmt.Errorf("%w: text limits must be positive", ErrInvalid))
	}
	if c.Server.BodyLimit < 0 {
		errs = append(errs, fmt.Errorf("%w: negative body limit", ErrInvalid))
	}
	return errors.Join(errs...)
}

// ParseOptions converts the text limits for converters.ParseText.
func (t Text) ParseOptions() converters.ParseOptions {
	return converters.ParseOptions{
		AllowSelfLoops:      t.AllowSelfLoops,
		AllowDuplicateEdges: t.AllowDuplicateEdges,
		MaxNodes:            t.MaxNodes,
		MaxEdges:            t.MaxEdges,
	}
}
