// Package config loads pagectl settings from an optional YAML file.
//
// Files are read through a billy.Filesystem so the CLI can use the host
// filesystem while tests use an in-memory one. Every field is optional;
// missing fields keep the values from Default.
//
//	capacity: 16
//	arena:
//	  kind: mmap        # heap | mmap
//	  size: 16777216
//	  virt_base: 0      # 0 = arena default
//	  phys_base: 0x10000
//	log:
//	  enabled: true
//	  dir: /var/log/pagefs
//	  level: debug
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/go-git/go-billy/v5"
	"gopkg.in/yaml.v3"

	"github.com/joshuapare/pagefs/internal/format"
	"github.com/joshuapare/pagefs/internal/logger"
	"github.com/joshuapare/pagefs/memfs"
	"github.com/joshuapare/pagefs/memfs/alloc"
)

// ErrInvalid indicates a configuration value outside its allowed range.
var ErrInvalid = errors.New("config: invalid value")

// Config is the complete tool configuration.
type Config struct {
	Capacity int   `yaml:"capacity"`
	Arena    Arena `yaml:"arena"`
	Log      Log   `yaml:"log"`
}

// Arena configures the allocator arena.
type Arena struct {
	Kind     string `yaml:"kind"`
	Size     int    `yaml:"size"`
	VirtBase uint64 `yaml:"virt_base"`
	PhysBase uint64 `yaml:"phys_base"`
}

// Log configures the diagnostic log file.
type Log struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"`
	Level   string `yaml:"level"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	ao := alloc.DefaultOptions()
	return &Config{
		Capacity: format.DefaultCapacity,
		Arena: Arena{
			Kind:     ao.Kind.String(),
			Size:     ao.Size,
			VirtBase: ao.VirtBase,
			PhysBase: ao.PhysBase,
		},
		Log: Log{Level: "info"},
	}
}

// Load reads path from fs over the defaults. An empty path returns the
// defaults. Unknown keys are rejected so typos do not pass silently.
func Load(fs billy.Filesystem, path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and spellings.
func (c *Config) Validate() error {
	if c.Capacity <= 0 {
		return fmt.Errorf("%w: capacity %d", ErrInvalid, c.Capacity)
	}
	if c.Arena.Size < format.PageSize {
		return fmt.Errorf("%w: arena size %d is smaller than a page", ErrInvalid, c.Arena.Size)
	}
	if c.Capacity*format.DescriptorSize > c.Arena.Size {
		return fmt.Errorf("%w: arena size %d cannot hold %d directory slots", ErrInvalid, c.Arena.Size, c.Capacity)
	}
	if _, ok := alloc.ParseArenaKind(c.Arena.Kind); !ok {
		return fmt.Errorf("%w: arena kind %q", ErrInvalid, c.Arena.Kind)
	}
	if !format.IsPageAligned(c.Arena.VirtBase) || !format.IsPageAligned(c.Arena.PhysBase) {
		return fmt.Errorf("%w: arena bases must be page aligned", ErrInvalid)
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalid, c.Log.Level)
	}
	return nil
}

// AllocOptions converts the arena section.
func (c *Config) AllocOptions() *alloc.Options {
	kind, _ := alloc.ParseArenaKind(c.Arena.Kind)
	return &alloc.Options{
		Size:     c.Arena.Size,
		Kind:     kind,
		VirtBase: c.Arena.VirtBase,
		PhysBase: c.Arena.PhysBase,
	}
}

// TableOptions converts the directory section.
func (c *Config) TableOptions() *memfs.Options {
	return &memfs.Options{Capacity: c.Capacity}
}

// LoggerOptions converts the log section.
func (c *Config) LoggerOptions() logger.Options {
	lvl, err := logger.ParseLevel(c.Log.Level)
	if err != nil {
		lvl = slog.LevelInfo
	}
	return logger.Options{
		Enabled: c.Log.Enabled,
		LogDir:  c.Log.Dir,
		Level:   lvl,
	}
}
