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

// Package testcases holds the scenes used by the reference image tests.
package testcases

import "image"

// TestCase is a scene rendered onto a canvas of the given size.
type TestCase struct {
	Name   string // lowercase a-z, 0-9 and _ only
	Token  string // scene token
	Width  int    // canvas width in pixels
	Height int    // canvas height in pixels

	// Want lists the pixels covered by each element, clipped to the
	// canvas, worked out by hand from the token.
	Want []image.Rectangle
}
