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

package mosaic

import (
	"errors"
	"testing"
)

func TestHexRoundTrip(t *testing.T) {
	levels := []uint8{0, 1, 15, 16, 127, 128, 200, 254, 255}
	var colors []Color
	for v := range 256 {
		colors = append(colors, Color{uint8(v), 0, 0}, Color{0, uint8(v), 0}, Color{0, 0, uint8(v)})
	}
	for _, r := range levels {
		for _, g := range levels {
			for _, b := range levels {
				colors = append(colors, Color{r, g, b})
			}
		}
	}

	for _, c := range colors {
		s := c.Hex()
		if len(s) != 6 {
			t.Fatalf("%v: hex form %q does not have 6 digits", c, s)
		}
		got, err := ParseHex(s)
		if err != nil {
			t.Fatalf("%v: %v", c, err)
		}
		if got != c {
			t.Fatalf("%v: round trip gave %v", c, got)
		}
	}
}

func TestHexFormat(t *testing.T) {
	cases := []struct {
		c    Color
		want string
	}{
		{Color{0, 0, 0}, "000000"},
		{Color{1, 2, 255}, "0102ff"},
		{Color{0xab, 0xcd, 0xef}, "abcdef"},
	}
	for _, tc := range cases {
		if got := tc.c.Hex(); got != tc.want {
			t.Errorf("%v: got %q, want %q", tc.c, got, tc.want)
		}
	}
}

func TestParseHexCase(t *testing.T) {
	got, err := ParseHex("FF00aA")
	if err != nil {
		t.Fatal(err)
	}
	if want := (Color{0xff, 0x00, 0xaa}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseHexErrors(t *testing.T) {
	for _, s := range []string{"zzzzzz", "", "fff", "#ffffff", "fffffff", "12345g", " 12345"} {
		_, err := ParseHex(s)
		var decodeErr *DecodeError
		if !errors.As(err, &decodeErr) {
			t.Errorf("%q: expected DecodeError, got %v", s, err)
		}
	}
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want Color
	}{
		{"red", Color{255, 0, 0}},
		{"LightSteelBlue", Color{176, 196, 222}},
		{"00ff00", Color{0, 255, 0}},
		{"#0000FF", Color{0, 0, 255}},
	}
	for _, tc := range cases {
		got, err := ParseColor(tc.in)
		if err != nil {
			t.Errorf("%q: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%q: got %v, want %v", tc.in, got, tc.want)
		}
	}

	if _, err := ParseColor("nosuchcolour"); err == nil {
		t.Error("unknown colour name accepted")
	}
}

func TestColorModel(t *testing.T) {
	r, g, b, a := Color{0x12, 0x34, 0x56}.RGBA()
	if r != 0x1212 || g != 0x3434 || b != 0x5656 || a != 0xffff {
		t.Errorf("got %04x %04x %04x %04x", r, g, b, a)
	}
}
