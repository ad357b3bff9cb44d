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
	"math/rand/v2"
	"testing"
)

func TestElementToken(t *testing.T) {
	e := Element{
		Position: Point{10, 20},
		Size:     Point{30, 40},
		Color:    Color{255, 0, 16},
	}
	const want = "p10:20>s30:40>ff0010"
	if got := e.Token(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestParseElement(t *testing.T) {
	got, err := ParseElement("p0:100>s007:42>ABCDEF")
	if err != nil {
		t.Fatal(err)
	}
	want := Element{
		Position: Point{0, 100},
		Size:     Point{7, 42},
		Color:    Color{0xab, 0xcd, 0xef},
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestParseElementErrors(t *testing.T) {
	cases := []string{
		"",
		"x1:2>s3:4>ffffff",
		"p1:2>s3:4",
		"p1:2>s3:4>ffffff>",
		"p1:2>s3:4>ffffff>00",
		"p1>s3:4>ffffff",
		"p1:2:3>s3:4>ffffff",
		"p1:2>x3:4>ffffff",
		"p1:2>p3:4>ffffff",
		"p-1:2>s3:4>ffffff",
		"p+1:2>s3:4>ffffff",
		"p:2>s3:4>ffffff",
		"p1:>s3:4>ffffff",
		"p1:2>s3:4>fffff",
		"p1:2>s3:4>gggggg",
		"p1.5:2>s3:4>ffffff",
		"p 1:2>s3:4>ffffff",
		"p99999999999999999999:1>s1:1>ffffff",
	}
	for _, s := range cases {
		_, err := ParseElement(s)
		var decodeErr *DecodeError
		if !errors.As(err, &decodeErr) {
			t.Errorf("%q: expected DecodeError, got %v", s, err)
		}
	}
}

func TestRandomElementRange(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	var seenMax, seenMin bool
	for range 5000 {
		e := RandomElement(rng)
		for _, v := range []int{e.Position.X, e.Position.Y, e.Size.X, e.Size.Y} {
			if v < 0 || v > 100 {
				t.Fatalf("component %d out of range in %+v", v, e)
			}
			seenMin = seenMin || v == 0
			seenMax = seenMax || v == 100
		}

		back, err := ParseElement(e.Token())
		if err != nil {
			t.Fatal(err)
		}
		if back != e {
			t.Fatalf("round trip of %+v gave %+v", e, back)
		}
	}
	if !seenMin || !seenMax {
		t.Errorf("range endpoints not reached: 0 seen %t, 100 seen %t", seenMin, seenMax)
	}
}
