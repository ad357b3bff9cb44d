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

// Package raster computes pixel coverage for polygons given in device
// coordinates, and composites that coverage onto RGBA images.
//
// Coverage is the fraction of a pixel's area inside the polygon. Polygons
// whose vertices lie on integer coordinates produce coverage values of
// exactly 0 or 1, which makes the output of axis-aligned boxes pixel-exact.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// edge is a non-horizontal polygon side in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // inverse slope, (x1-x0)/(y1-y0)
}

func (e *edge) yMin() float64 { return min(e.y0, e.y1) }
func (e *edge) yMax() float64 { return max(e.y0, e.y1) }

// xAt returns the x coordinate of the edge's supporting line at height y.
func (e *edge) xAt(y float64) float64 { return e.x0 + e.dxdy*(y-e.y0) }

// Rasterizer converts polygons to coverage values. A single Rasterizer can
// be used for any number of paths; its scratch buffers grow to the largest
// path seen and are then reused.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// Clip bounds the output in device coordinates.
	// The coordinates must be integers.
	Clip rect.Rect

	// smallPathThreshold is the largest bounding box area, in pixels,
	// which is rasterized using full 2D accumulation buffers. Larger
	// paths are processed one scanline at a time.
	smallPathThreshold int

	cover       []float32 // signed vertical crossing per pixel; reused as output
	area        []float32 // crossing weighted by position inside the pixel
	edges       []edge
	activeIdx   []int
	rowHasEdges []bool

	// device space bounding box of r.edges
	haveBBox       bool
	bbXMin, bbXMax float64
	bbYMin, bbYMax float64
}

// NewRasterizer returns a Rasterizer which clips to the given rectangle.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	return &Rasterizer{
		Clip:               clip,
		smallPathThreshold: smallPathThreshold,
	}
}

// Reset sets a new clip rectangle and forgets all per-path state.
// Buffer capacity is kept.
func (r *Rasterizer) Reset(clip rect.Rect) {
	r.Clip = clip
	r.cover = r.cover[:0]
	r.area = r.area[:0]
	r.edges = r.edges[:0]
	r.activeIdx = r.activeIdx[:0]
	r.rowHasEdges = r.rowHasEdges[:0]
	r.haveBBox = false
}

// FillNonZero fills p using the nonzero winding rule. Open subpaths are
// closed implicitly. Curve segments are replaced by the straight line to
// their end point; callers are expected to pass polygons.
//
// Coverage is passed to emit one scanline at a time, trimmed to the
// non-zero part of the row. The slice is only valid during the call.
func (r *Rasterizer) FillNonZero(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	xMin, xMax, yMin, yMax, ok := r.collectEdges(p)
	if !ok {
		return
	}

	if (xMax-xMin)*(yMax-yMin) < r.smallPathThreshold {
		r.fillSmall(xMin, xMax, yMin, yMax, emit)
	} else {
		r.fillLarge(xMin, xMax, yMin, yMax, emit)
	}
}

// collectEdges converts p into the edge list and returns the integer
// bounding box of the edges, intersected with the clip rectangle.
func (r *Rasterizer) collectEdges(p *path.Data) (xMin, xMax, yMin, yMax int, ok bool) {
	r.edges = r.edges[:0]
	r.haveBBox = false

	var current, start vec.Vec2
	idx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			r.addEdge(current, start)
			current = p.Coords[idx]
			start = current
			idx++
		case path.CmdLineTo:
			next := p.Coords[idx]
			r.addEdge(current, next)
			current = next
			idx++
		case path.CmdQuadTo:
			next := p.Coords[idx+1]
			r.addEdge(current, next)
			current = next
			idx += 2
		case path.CmdCubeTo:
			next := p.Coords[idx+2]
			r.addEdge(current, next)
			current = next
			idx += 3
		case path.CmdClose:
			r.addEdge(current, start)
			current = start
		}
	}
	r.addEdge(current, start)

	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}

	xMin = max(int(math.Floor(r.bbXMin)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.bbXMax))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.bbYMin)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.bbYMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// addEdge appends the segment from a to b. Horizontal segments do not
// change coverage and are dropped.
func (r *Rasterizer) addEdge(a, b vec.Vec2) {
	dy := b.Y - a.Y
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{
		x0: a.X, y0: a.Y,
		x1: b.X, y1: b.Y,
		dxdy: (b.X - a.X) / dy,
	})

	if !r.haveBBox {
		r.bbXMin, r.bbXMax = min(a.X, b.X), max(a.X, b.X)
		r.bbYMin, r.bbYMax = min(a.Y, b.Y), max(a.Y, b.Y)
		r.haveBBox = true
		return
	}
	r.bbXMin = min(r.bbXMin, a.X, b.X)
	r.bbXMax = max(r.bbXMax, a.X, b.X)
	r.bbYMin = min(r.bbYMin, a.Y, b.Y)
	r.bbYMax = max(r.bbYMax, a.Y, b.Y)
}

// Accumulation model
//
// Every pixel of a scanline gets two numbers. cover is the signed height
// of all edge pieces crossing the pixel (positive for edges going down).
// area is the same height weighted by the part of the pixel which lies to
// the right of the crossing. Walking the scanline from left to right,
//
//	coverage[i] = sum(cover[0:i]) + area[i]
//
// is the signed area of the polygon inside pixel i. The nonzero rule
// takes the absolute value and clamps it to 1.

// accumulate adds the part of e inside scanline y to cover and area.
// Both slices are indexed by x - bbXMin. Contributions from the left of
// the bounding box are folded into the first pixel.
func accumulate(e *edge, y int, cover, area []float32, bbXMin, bbXMax int) {
	yTop := max(float64(y), e.yMin())
	yBot := min(float64(y+1), e.yMax())
	if yBot <= yTop {
		return
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xa, xb := e.xAt(yTop), e.xAt(yBot)
	if xa > xb {
		xa, xb = xb, xa
	}
	colLeft := int(math.Floor(xa))
	colRight := int(math.Floor(xb))

	switch {
	case colRight < bbXMin:
		h := sign * float32(yBot-yTop)
		cover[0] += h
		area[0] += h
		return
	case colLeft >= bbXMax:
		return
	case colLeft == colRight:
		accumulateColumn(e, yTop, yBot, sign, colLeft, cover, area, bbXMin, bbXMax)
		return
	}

	// The edge crosses several columns: split it at the column boundaries.
	dydx := 1 / e.dxdy
	for col := colLeft; col <= colRight; col++ {
		ya := e.y0 + dydx*(float64(col)-e.x0)
		yb := e.y0 + dydx*(float64(col+1)-e.x0)
		top := max(min(ya, yb), yTop)
		bot := min(max(ya, yb), yBot)
		if bot <= top {
			continue
		}

		h := sign * float32(bot-top)
		switch {
		case col < bbXMin:
			cover[0] += h
			area[0] += h
		case col < bbXMax:
			frac := e.xAt((top+bot)/2) - float64(col)
			i := col - bbXMin
			cover[i] += h
			area[i] += h * float32(1-frac)
		}
	}
}

// accumulateColumn handles an edge piece which stays inside column col.
func accumulateColumn(e *edge, yTop, yBot float64, sign float32, col int, cover, area []float32, bbXMin, bbXMax int) {
	h := sign * float32(yBot-yTop)
	if col < bbXMin {
		cover[0] += h
		area[0] += h
		return
	}
	if col >= bbXMax {
		return
	}

	frac := e.xAt((yTop+yBot)/2) - float64(col)
	i := col - bbXMin
	cover[i] += h
	area[i] += h * float32(1-frac)
}

// integrateNonZero turns the accumulated values of one scanline into
// coverage, in place in cover.
func integrateNonZero(cover, area []float32) {
	var sum float32
	for i := range cover {
		v := sum + area[i]
		sum += cover[i]
		if v < 0 {
			v = -v
		}
		cover[i] = min(v, 1)
	}
}

// trimZeros strips zero coverage from both ends of a scanline.
// It returns nil if nothing is left.
func trimZeros(coverage []float32) (trimmed []float32, offset int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	if lo == hi {
		return nil, 0
	}
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

// fillSmall accumulates all edges into 2D buffers covering the bounding
// box, then integrates row by row.
func (r *Rasterizer) fillSmall(xMin, xMax, yMin, yMax int, emit func(y, xMin int, coverage []float32)) {
	width := xMax - xMin
	height := yMax - yMin
	n := width * height

	r.cover = slices.Grow(r.cover[:0], n)[:n]
	r.area = slices.Grow(r.area[:0], n)[:n]
	clear(r.cover)
	clear(r.area)
	r.rowHasEdges = slices.Grow(r.rowHasEdges[:0], height)[:height]
	clear(r.rowHasEdges)

	for i := range r.edges {
		e := &r.edges[i]
		first := max(int(math.Floor(e.yMin())), yMin)
		last := min(int(math.Floor(e.yMax()))+1, yMax)
		for y := first; y < last; y++ {
			row := y - yMin
			off := row * width
			accumulate(e, y, r.cover[off:off+width], r.area[off:off+width], xMin, xMax)
			r.rowHasEdges[row] = true
		}
	}

	for row := range height {
		if !r.rowHasEdges[row] {
			continue
		}
		off := row * width
		line := r.cover[off : off+width]
		integrateNonZero(line, r.area[off:off+width])
		if trimmed, skip := trimZeros(line); trimmed != nil {
			emit(yMin+row, xMin+skip, trimmed)
		}
	}
}

// fillLarge walks the scanlines from top to bottom, keeping a list of the
// edges which intersect the current scanline.
func (r *Rasterizer) fillLarge(xMin, xMax, yMin, yMax int, emit func(y, xMin int, coverage []float32)) {
	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.yMin(), b.yMin())
	})

	r.activeIdx = r.activeIdx[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		top := float64(y)
		bottom := float64(y + 1)

		for next < len(r.edges) && r.edges[next].yMin() < bottom {
			r.activeIdx = append(r.activeIdx, next)
			next++
		}
		if len(r.activeIdx) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.activeIdx); {
			e := &r.edges[r.activeIdx[i]]
			if e.yMax() <= top {
				last := len(r.activeIdx) - 1
				r.activeIdx[i] = r.activeIdx[last]
				r.activeIdx = r.activeIdx[:last]
				continue
			}
			accumulate(e, y, r.cover, r.area, xMin, xMax)
			if min(bottom, e.yMax()) > max(top, e.yMin()) {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		integrateNonZero(r.cover, r.area)
		if trimmed, skip := trimZeros(r.cover); trimmed != nil {
			emit(y, xMin+skip, trimmed)
		}
	}
}

const (
	// horizontalEdgeThreshold is the smallest vertical extent of an edge
	// which still contributes to coverage.
	horizontalEdgeThreshold = 1e-10

	// smallPathThreshold is the default for Rasterizer.smallPathThreshold.
	smallPathThreshold = 65536
)
