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
	"fmt"
	"strconv"
	"strings"
)

// Point is a pair of percentages of the canvas width and height.
type Point struct {
	X, Y int
}

// Element is a filled rectangle of a scene.
//
// Position is the top-left corner. Size is the second corner handed to the
// rasterizer, which is not added to Position; see [Render].
type Element struct {
	Position Point
	Size     Point
	Color    Color
}

// Token returns the fragment form of the element, for example
// "p10:20>s50:50>ff0000".
func (e Element) Token() string {
	var b strings.Builder
	b.WriteByte('p')
	writePoint(&b, e.Position)
	b.WriteString(PartSeparator)
	b.WriteByte('s')
	writePoint(&b, e.Size)
	b.WriteString(PartSeparator)
	b.WriteString(e.Color.Hex())
	return b.String()
}

func writePoint(b *strings.Builder, p Point) {
	b.WriteString(strconv.Itoa(p.X))
	b.WriteByte(':')
	b.WriteString(strconv.Itoa(p.Y))
}

// ParseElement decodes a fragment produced by [Element.Token].
// Errors are of type [*DecodeError].
func ParseElement(fragment string) (Element, error) {
	parts := strings.Split(fragment, PartSeparator)
	if len(parts) != 3 {
		return Element{}, &DecodeError{
			Input:  fragment,
			Reason: fmt.Sprintf("expected 3 '>'-separated parts, found %d", len(parts)),
		}
	}

	pos, err := parsePoint(parts[0], 'p')
	if err != nil {
		return Element{}, &DecodeError{Input: fragment, Reason: "position", Err: err}
	}
	size, err := parsePoint(parts[1], 's')
	if err != nil {
		return Element{}, &DecodeError{Input: fragment, Reason: "size", Err: err}
	}
	col, err := ParseHex(parts[2])
	if err != nil {
		return Element{}, &DecodeError{Input: fragment, Reason: "colour", Err: err}
	}

	return Element{Position: pos, Size: size, Color: col}, nil
}

// parsePoint decodes "<prefix><int>:<int>".
func parsePoint(s string, prefix byte) (Point, error) {
	if s == "" || s[0] != prefix {
		return Point{}, &DecodeError{Input: s, Reason: fmt.Sprintf("missing prefix %q", prefix)}
	}
	xs, ys, ok := strings.Cut(s[1:], ":")
	if !ok || strings.Contains(ys, ":") {
		return Point{}, &DecodeError{Input: s, Reason: "expected 2 ':'-separated integers"}
	}

	x, err := parseInt(xs)
	if err != nil {
		return Point{}, err
	}
	y, err := parseInt(ys)
	if err != nil {
		return Point{}, err
	}
	return Point{X: x, Y: y}, nil
}

// parseInt accepts a non-empty string of ASCII digits.
func parseInt(s string) (int, error) {
	if s == "" {
		return 0, &DecodeError{Input: s, Reason: "empty integer"}
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, &DecodeError{Input: s, Reason: "not a decimal integer"}
		}
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, &DecodeError{Input: s, Reason: "integer out of range", Err: err}
	}
	return v, nil
}

// RandomElement returns an element with position and size components drawn
// uniformly from [0, 100] and a uniformly random colour. The rectangle may
// extend beyond the canvas.
func RandomElement(rng Rand) Element {
	return Element{
		Position: Point{X: uniform(rng, 0, 100), Y: uniform(rng, 0, 100)},
		Size:     Point{X: uniform(rng, 0, 100), Y: uniform(rng, 0, 100)},
		Color: Color{
			R: uint8(rng.IntN(256)),
			G: uint8(rng.IntN(256)),
			B: uint8(rng.IntN(256)),
		},
	}
}

// RandomElementToken returns the token of a [RandomElement].
func RandomElementToken(rng Rand) string {
	return RandomElement(rng).Token()
}
