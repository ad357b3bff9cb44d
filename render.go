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

// Package mosaic encodes scenes of coloured rectangles as short text tokens,
// and renders the scene given by a token to a raster image.
//
// A token lists the rectangles of a scene, separated by ";". Each rectangle
// is written as
//
//	p<x>:<y>>s<w>:<h>><rrggbb>
//
// All numbers are percentages of the canvas width and height, so that one
// token can be rendered at any resolution. The same token, canvas size and
// background colour always give the same pixels.
package mosaic

//go:generate go run ./testcases/genref

import (
	"image"
	"strconv"

	"golang.org/x/image/draw"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/mosaic/raster"
)

// DefaultSize is the default canvas width and height in pixels.
const DefaultSize = 600

// Options describe the canvas a scene is rendered onto.
type Options struct {
	Width, Height int
	Background    Color
}

// DefaultOptions returns a white canvas of DefaultSize×DefaultSize pixels.
func DefaultOptions() Options {
	return Options{
		Width:      DefaultSize,
		Height:     DefaultSize,
		Background: White,
	}
}

// Validate checks that the canvas dimensions are positive.
// Errors are of type [*ConfigError].
func (o Options) Validate() error {
	if o.Width <= 0 {
		return &ConfigError{Param: "width", Value: strconv.Itoa(o.Width), Reason: "must be positive"}
	}
	if o.Height <= 0 {
		return &ConfigError{Param: "height", Value: strconv.Itoa(o.Height), Reason: "must be positive"}
	}
	return nil
}

// Box returns the pixels covered by e on a width×height canvas.
// The result may extend beyond the canvas.
//
// The corners are Position and Size, each scaled from percent to pixels
// and rounded towards zero; Size is not added to Position. Both corner
// pixels are included in the box.
func (e Element) Box(width, height int) image.Rectangle {
	x0, y0 := scale(e.Position.X, width), scale(e.Position.Y, height)
	x1, y1 := scale(e.Size.X, width), scale(e.Size.Y, height)
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	return image.Rectangle{
		Min: image.Point{X: x0, Y: y0},
		Max: image.Point{X: x1 + 1, Y: y1 + 1},
	}
}

// scale converts a percentage of extent to pixels. Percentages outside
// [-100, 100] are clamped, which only affects pixels outside the canvas.
func scale(percent, extent int) int {
	switch {
	case percent >= 100:
		return extent
	case percent <= -100:
		return -extent
	}
	return percent * extent / 100
}

// Render paints the elements of g, in order, onto a new canvas filled
// with the background colour. Later elements cover earlier ones.
func Render(g Group, opt Options) (*image.RGBA, error) {
	if err := opt.Validate(); err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, opt.Width, opt.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(opt.Background), image.Point{}, draw.Src)

	r := raster.NewRasterizer(rect.Rect{URx: float64(opt.Width), URy: float64(opt.Height)})
	for _, e := range g {
		p := raster.NewPainter(img, e.Color)
		r.FillNonZero(boxPath(e.Box(opt.Width, opt.Height)), p.Emit)
	}
	return img, nil
}

// boxPath returns the outline of b in device coordinates.
func boxPath(b image.Rectangle) *path.Data {
	x0, y0 := float64(b.Min.X), float64(b.Min.Y)
	x1, y1 := float64(b.Max.X), float64(b.Max.Y)
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: x0, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y1}).
		LineTo(vec.Vec2{X: x0, Y: y1}).
		Close()
}

// CreateImageFromToken renders the scene described by token, using
// [GroupCodec]. If token is empty, a random token is drawn from rng, or
// from [DefaultRand] if rng is nil. The token which was rendered is
// returned together with the image.
func CreateImageFromToken(token string, opt Options, rng Rand) (*image.RGBA, string, error) {
	return CreateImage(GroupCodec, token, opt, rng)
}

// CreateImage is like [CreateImageFromToken], but uses codec to generate
// and decode the token.
func CreateImage(codec Codec[Group], token string, opt Options, rng Rand) (*image.RGBA, string, error) {
	if err := opt.Validate(); err != nil {
		return nil, "", err
	}
	if token == "" {
		if rng == nil {
			rng = DefaultRand
		}
		token = codec.RandomToken(rng)
	}

	g, err := codec.Decode(token)
	if err != nil {
		return nil, token, err
	}
	img, err := Render(g, opt)
	if err != nil {
		return nil, token, err
	}
	return img, token, nil
}
