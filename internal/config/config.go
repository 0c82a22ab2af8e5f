// Package config loads the axctl configuration file:
//
//	[log]
//	level = "debug"        # debug, info, warn, error
//
//	[boundary]
//	string_policy = "truncate"
//
//	[limits]
//	profile = "strict"     # default, strict, relaxed
//	max_string_bytes = 4096
//
//	[render]
//	format = "svg"         # svg, dot, png
//
//	[serve]
//	addr = "127.0.0.1:8080"
//
// Every key is optional. Flags given on the command line override the file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/joshuapare/axkit/pkg/boundary"
	"github.com/joshuapare/axkit/pkg/types"
)

// DefaultPath is read when no --config flag is given; a missing file there
// is not an error.
const DefaultPath = "axctl.toml"

// Config is the decoded file.
type Config struct {
	Log struct {
		Level string `toml:"level"`
	} `toml:"log"`
	Boundary struct {
		StringPolicy string `toml:"string_policy"`
	} `toml:"boundary"`
	Limits struct {
		Profile         string `toml:"profile"`
		MaxUpdateNodes  int    `toml:"max_update_nodes"`
		MaxVectorLen    int    `toml:"max_vector_len"`
		MaxStringBytes  int    `toml:"max_string_bytes"`
		MaxSnapshotSize int64  `toml:"max_snapshot_size"`
	} `toml:"limits"`
	Render struct {
		Format string `toml:"format"`
	} `toml:"render"`
	Serve struct {
		Addr string `toml:"addr"`
	} `toml:"serve"`

	// Unknown lists keys present in the file that Config does not use.
	Unknown []string `toml:"-"`
}

// Default returns the built-in settings.
func Default() *Config {
	c := &Config{}
	c.Log.Level = "info"
	c.Boundary.StringPolicy = boundary.StringAbsent.String()
	c.Limits.Profile = "default"
	c.Render.Format = "svg"
	c.Serve.Addr = "127.0.0.1:8080"
	return c
}

// Load reads path over the defaults. When optional is set a missing file
// yields the defaults.
func Load(path string, optional bool) (*Config, error) {
	c := Default()
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return c, nil
		}
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	for _, k := range md.Undecoded() {
		c.Unknown = append(c.Unknown, k.String())
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

// Validate checks every enumerated setting.
func (c *Config) Validate() error {
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	if _, err := c.StringPolicy(); err != nil {
		return err
	}
	if _, err := c.LimitSet(); err != nil {
		return err
	}
	switch strings.ToLower(c.Render.Format) {
	case "svg", "dot", "png":
	default:
		return types.Errorf(types.ErrKindNotFound, "render.format", "%q", c.Render.Format)
	}
	return nil
}

// LogLevel parses log.level.
func (c *Config) LogLevel() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, types.Errorf(types.ErrKindNotFound, "log.level", "%q", c.Log.Level)
	}
	return l, nil
}

// StringPolicy parses boundary.string_policy.
func (c *Config) StringPolicy() (boundary.StringPolicy, error) {
	return boundary.ParseStringPolicy(c.Boundary.StringPolicy)
}

// LimitSet resolves the limits profile and applies explicit overrides.
func (c *Config) LimitSet() (types.Limits, error) {
	var l types.Limits
	switch strings.ToLower(c.Limits.Profile) {
	case "", "default":
		l = types.DefaultLimits()
	case "strict":
		l = types.StrictLimits()
	case "relaxed":
		l = types.RelaxedLimits()
	default:
		return types.Limits{}, types.Errorf(types.ErrKindNotFound, "limits.profile", "%q", c.Limits.Profile)
	}
	if c.Limits.MaxUpdateNodes > 0 {
		l.MaxUpdateNodes = c.Limits.MaxUpdateNodes
	}
	if c.Limits.MaxVectorLen > 0 {
		l.MaxVectorLen = c.Limits.MaxVectorLen
	}
	if c.Limits.MaxStringBytes > 0 {
		l.MaxStringBytes = c.Limits.MaxStringBytes
	}
	if c.Limits.MaxSnapshotSize > 0 {
		l.MaxSnapshotSize = c.Limits.MaxSnapshotSize
	}
	return l, nil
}
