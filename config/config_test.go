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

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"seehuhn.de/go/mosaic"
)

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatal(err)
	}
	if *cfg != *Default() {
		t.Errorf("got %+v, want defaults", cfg)
	}
}

func TestParseOverrides(t *testing.T) {
	data := []byte(`
[server]
LISTEN = 127.0.0.1:9000
WRITE_TIMEOUT = 1m

[render]
DEFAULT_SIZE = 300
MAX_SIZE = 1000
BACKGROUND = black
FAVICON_BACKGROUND = 102030
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}

	want := Default()
	want.Server.Listen = "127.0.0.1:9000"
	want.Server.WriteTimeout = time.Minute
	want.Render.DefaultSize = 300
	want.Render.MaxSize = 1000
	want.Render.Background = mosaic.Black
	want.Render.FaviconBackground = mosaic.Color{R: 0x10, G: 0x20, B: 0x30}
	if *cfg != *want {
		t.Errorf("got %+v, want %+v", cfg, want)
	}
}

func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"size_text":      "[render]\nDEFAULT_SIZE = big\n",
		"size_zero":      "[render]\nDEFAULT_SIZE = 0\n",
		"size_above_max": "[render]\nDEFAULT_SIZE = 800\nMAX_SIZE = 700\n",
		"max_negative":   "[render]\nMAX_SIZE = -1\n",
		"favicon_zero":   "[render]\nFAVICON_SIZE = 0\n",
		"background":     "[render]\nBACKGROUND = 12345\n",
		"timeout":        "[server]\nREAD_TIMEOUT = soon\n",
		"negative_time":  "[server]\nWRITE_TIMEOUT = -5s\n",
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(data))
			var configErr *mosaic.ConfigError
			if !errors.As(err, &configErr) {
				t.Errorf("expected ConfigError, got %v", err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.ini")

	cfg, err := Load(missing, false)
	if err != nil {
		t.Fatal(err)
	}
	if *cfg != *Default() {
		t.Errorf("got %+v, want defaults", cfg)
	}

	_, err = Load(missing, true)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected a not-exist error, got %v", err)
	}

	path := filepath.Join(dir, "mosaic.ini")
	err = os.WriteFile(path, []byte("[server]\nLISTEN = :1234\n"), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	cfg, err = Load(path, true)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Listen != ":1234" {
		t.Errorf("got listen address %q", cfg.Server.Listen)
	}
}
