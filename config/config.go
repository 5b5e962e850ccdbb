// Package config loads the TOML configuration of the planarity command.
//
//	[log]
//	level = "info"        # debug, info, warn, error
//
//	[input]
//	format = ""           # edges, adjacency_list, adjacency_matrix, yaml; "" detects
//
//	[cache]
//	enabled = true
//	dir = "/var/cache/planarity"
//
//	[render]
//	format = "svg"        # svg, png, dot
//	layout = "neato"
//
// Command line flags override file values.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/katalvlaran/planarity/graphio"
	"github.com/katalvlaran/planarity/render"
)

// DefaultPath is looked up in the working directory when --config is not given.
const DefaultPath = "planarity.toml"

// ErrInvalidConfig wraps every validation and decoding failure.
var ErrInvalidConfig = errors.New("config: invalid")

type Config struct {
	Log    LogConfig    `toml:"log"`
	Input  InputConfig  `toml:"input"`
	Cache  CacheConfig  `toml:"cache"`
	Render RenderConfig `toml:"render"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

type InputConfig struct {
	Format string `toml:"format"`
}

type CacheConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

type RenderConfig struct {
	Format string `toml:"format"`
	Layout string `toml:"layout"`
}

// Default returns the built-in configuration. The cache lives in the user
// cache directory, or in ./.planarity-cache when there is none.
func Default() Config {
	dir := ".planarity-cache"
	if base, err := os.UserCacheDir(); err == nil {
		dir = filepath.Join(base, "planarity")
	}

	return Config{
		Log:    LogConfig{Level: "info"},
		Cache:  CacheConfig{Enabled: true, Dir: dir},
		Render: RenderConfig{Format: "svg", Layout: render.DefaultLayout},
	}
}

// Load reads path over Default. A missing file yields the defaults; keys the
// schema does not know are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("Load: %w", err)
	}

	if cfg, err = Parse(string(data)); err != nil {
		return Config{}, fmt.Errorf("Load %s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes TOML text over Default and validates the result.
func Parse(text string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(text, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%v: %w", err, ErrInvalidConfig)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("unknown keys %s: %w", strings.Join(keys, ", "), ErrInvalidConfig)
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every enumerated value.
func (c Config) Validate() error {
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level %q: %w", c.Log.Level, ErrInvalidConfig)
	}
	if _, err := graphio.ParseFormat(c.Input.Format); err != nil {
		return fmt.Errorf("input.format %q: %w", c.Input.Format, ErrInvalidConfig)
	}
	if c.Cache.Enabled && c.Cache.Dir == "" {
		return fmt.Errorf("cache.dir is empty: %w", ErrInvalidConfig)
	}
	if !slices.Contains(render.Formats(), c.Render.Format) {
		return fmt.Errorf("render.format %q: %w", c.Render.Format, ErrInvalidConfig)
	}
	if !slices.Contains(render.Layouts(), c.Render.Layout) {
		return fmt.Errorf("render.layout %q: %w", c.Render.Layout, ErrInvalidConfig)
	}

	return nil
}

// LogLevel returns the parsed log level; Validate guarantees it parses.
func (c Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}

	return lvl
}

// Write encodes c as TOML.
func (c Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
