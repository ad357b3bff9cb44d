// seehuhn.de/go/mosaic - rectangle scenes addressed by text tokens
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package config reads the settings of the mosaic service from an INI file.
//
// All keys are optional:
//
//	[server]
//	LISTEN = :8010
//	READ_TIMEOUT = 10s
//	WRITE_TIMEOUT = 30s
//
//	[render]
//	DEFAULT_SIZE = 600
//	MAX_SIZE = 4096
//	BACKGROUND = ffffff
//	FAVICON_SIZE = 16
//	FAVICON_BACKGROUND = 5a5a5a
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"gopkg.in/ini.v1"

	"seehuhn.de/go/mosaic"
)

// DefaultFile is the configuration file used when none is given.
const DefaultFile = "mosaic.ini"

// Config holds the settings of the service.
type Config struct {
	Server Server
	Render Render
}

// Server configures the HTTP listener.
type Server struct {
	Listen       string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Render configures image generation.
type Render struct {
	DefaultSize int // canvas side when the request gives no size
	MaxSize     int // largest canvas side a request may ask for
	Background  mosaic.Color

	FaviconSize       int
	FaviconBackground mosaic.Color
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Server: Server{
			Listen:       ":8010",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Render: Render{
			DefaultSize:       mosaic.DefaultSize,
			MaxSize:           4096,
			Background:        mosaic.White,
			FaviconSize:       16,
			FaviconBackground: mosaic.Color{R: 90, G: 90, B: 90},
		},
	}
}

// Load reads the configuration file at path.
// If the file does not exist and mustExist is false, the defaults are
// returned.
func Load(path string, mustExist bool) (*Config, error) {
	f, err := ini.Load(path)
	if errors.Is(err, fs.ErrNotExist) && !mustExist {
		return Default(), nil
	} else if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	cfg, err := fromFile(f)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse reads a configuration from the contents of an INI file.
func Parse(data []byte) (*Config, error) {
	f, err := ini.Load(data)
	if err != nil {
		return nil, err
	}
	return fromFile(f)
}

func fromFile(f *ini.File) (*Config, error) {
	cfg := Default()

	server := f.Section("server")
	cfg.Server.Listen = server.Key("LISTEN").MustString(cfg.Server.Listen)
	var err error
	if cfg.Server.ReadTimeout, err = durationKey(server, "READ_TIMEOUT", cfg.Server.ReadTimeout); err != nil {
		return nil, err
	}
	if cfg.Server.WriteTimeout, err = durationKey(server, "WRITE_TIMEOUT", cfg.Server.WriteTimeout); err != nil {
		return nil, err
	}

	render := f.Section("render")
	if cfg.Render.DefaultSize, err = intKey(render, "DEFAULT_SIZE", cfg.Render.DefaultSize); err != nil {
		return nil, err
	}
	if cfg.Render.MaxSize, err = intKey(render, "MAX_SIZE", cfg.Render.MaxSize); err != nil {
		return nil, err
	}
	if cfg.Render.FaviconSize, err = intKey(render, "FAVICON_SIZE", cfg.Render.FaviconSize); err != nil {
		return nil, err
	}
	if cfg.Render.Background, err = colorKey(render, "BACKGROUND", cfg.Render.Background); err != nil {
		return nil, err
	}
	if cfg.Render.FaviconBackground, err = colorKey(render, "FAVICON_BACKGROUND", cfg.Render.FaviconBackground); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings for consistency.
func (c *Config) Validate() error {
	r := &c.Render
	switch {
	case r.MaxSize <= 0:
		return &mosaic.ConfigError{Param: "MAX_SIZE", Value: fmt.Sprint(r.MaxSize), Reason: "must be positive"}
	case r.DefaultSize <= 0 || r.DefaultSize > r.MaxSize:
		return &mosaic.ConfigError{Param: "DEFAULT_SIZE", Value: fmt.Sprint(r.DefaultSize), Reason: "must be between 1 and MAX_SIZE"}
	case r.FaviconSize <= 0 || r.FaviconSize > r.MaxSize:
		return &mosaic.ConfigError{Param: "FAVICON_SIZE", Value: fmt.Sprint(r.FaviconSize), Reason: "must be between 1 and MAX_SIZE"}
	case c.Server.ReadTimeout < 0:
		return &mosaic.ConfigError{Param: "READ_TIMEOUT", Value: c.Server.ReadTimeout.String(), Reason: "must not be negative"}
	case c.Server.WriteTimeout < 0:
		return &mosaic.ConfigError{Param: "WRITE_TIMEOUT", Value: c.Server.WriteTimeout.String(), Reason: "must not be negative"}
	}
	return nil
}

func intKey(s *ini.Section, name string, def int) (int, error) {
	if !s.HasKey(name) {
		return def, nil
	}
	key := s.Key(name)
	v, err := key.Int()
	if err != nil {
		return 0, &mosaic.ConfigError{Param: name, Value: key.String(), Reason: "not an integer"}
	}
	return v, nil
}

func durationKey(s *ini.Section, name string, def time.Duration) (time.Duration, error) {
	if !s.HasKey(name) {
		return def, nil
	}
	key := s.Key(name)
	v, err := key.Duration()
	if err != nil {
		return 0, &mosaic.ConfigError{Param: name, Value: key.String(), Reason: "not a duration"}
	}
	return v, nil
}

func colorKey(s *ini.Section, name string, def mosaic.Color) (mosaic.Color, error) {
	if !s.HasKey(name) {
		return def, nil
	}
	key := s.Key(name)
	c, err := mosaic.ParseColor(key.String())
	if err != nil {
		return mosaic.Color{}, &mosaic.ConfigError{Param: name, Value: key.String(), Reason: "not a colour"}
	}
	return c, nil
}
