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
	"encoding/hex"
	"strings"

	"golang.org/x/image/colornames"
)

// Color is an opaque RGB colour.
type Color struct {
	R, G, B uint8
}

// Commonly used colours.
var (
	White = Color{0xff, 0xff, 0xff}
	Black = Color{0, 0, 0}
)

// RGBA implements the [image/color.Color] interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	return r, g, b, 0xffff
}

// Hex returns the colour as six lower-case hex digits, without a leading
// "#".
func (c Color) Hex() string {
	return hex.EncodeToString([]byte{c.R, c.G, c.B})
}

func (c Color) String() string {
	return "#" + c.Hex()
}

// ParseHex decodes a colour written as exactly six hex digits, without a
// leading "#". Upper and lower case digits are accepted.
func ParseHex(s string) (Color, error) {
	if len(s) != 6 {
		return Color{}, &DecodeError{Input: s, Reason: "colour must have 6 hex digits"}
	}
	buf, err := hex.DecodeString(s)
	if err != nil {
		return Color{}, &DecodeError{Input: s, Reason: "invalid hex colour", Err: err}
	}
	return Color{buf[0], buf[1], buf[2]}, nil
}

// ParseColor decodes a colour given either in the form accepted by
// [ParseHex], optionally with a leading "#", or as an SVG 1.1 colour
// keyword such as "red" or "lightsteelblue". Keywords are
// case-insensitive.
func ParseColor(s string) (Color, error) {
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return Color{c.R, c.G, c.B}, nil
	}
	return ParseHex(strings.TrimPrefix(s, "#"))
}
