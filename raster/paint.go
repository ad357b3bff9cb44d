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

package raster

import (
	"image"
	"image/color"
)

// Painter composites coverage of a single colour onto an RGBA image.
// Its Emit method has the signature expected by [Rasterizer.FillNonZero].
//
// Coverage acts as an extra alpha mask on top of the colour's own alpha.
// Pixels with coverage 1 are overwritten with the colour exactly.
type Painter struct {
	Dst *image.RGBA

	// premultiplied source colour
	r, g, b, a uint32
}

// NewPainter returns a Painter which paints c onto dst.
func NewPainter(dst *image.RGBA, c color.Color) *Painter {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	return &Painter{
		Dst: dst,
		r:   uint32(rgba.R),
		g:   uint32(rgba.G),
		b:   uint32(rgba.B),
		a:   uint32(rgba.A),
	}
}

// Emit paints one scanline of coverage values, starting at pixel (xMin, y).
// Pixels outside the bounds of Dst are ignored.
func (p *Painter) Emit(y, xMin int, coverage []float32) {
	bounds := p.Dst.Bounds()
	if y < bounds.Min.Y || y >= bounds.Max.Y {
		return
	}

	for i, c := range coverage {
		x := xMin + i
		if c <= 0 || x < bounds.Min.X || x >= bounds.Max.X {
			continue
		}
		off := p.Dst.PixOffset(x, y)
		pix := p.Dst.Pix[off : off+4 : off+4]

		if c >= 1 && p.a == 0xff {
			pix[0] = uint8(p.r)
			pix[1] = uint8(p.g)
			pix[2] = uint8(p.b)
			pix[3] = 0xff
			continue
		}

		// source-over in premultiplied 8-bit arithmetic
		m := uint32(min(c, 1)*0xff + 0.5)
		keep := 0xff - p.a*m/0xff
		pix[0] = uint8((p.r*m + uint32(pix[0])*keep) / 0xff)
		pix[1] = uint8((p.g*m + uint32(pix[1])*keep) / 0xff)
		pix[2] = uint8((p.b*m + uint32(pix[2])*keep) / 0xff)
		pix[3] = uint8((p.a*m + uint32(pix[3])*keep) / 0xff)
	}
}
