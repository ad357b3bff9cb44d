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
	"slices"
	"strings"
	"testing"
)

var (
	_ Tokenizer = Element{}
	_ Tokenizer = Group{}
)

func TestGroupRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for range 200 {
		g := make(Group, 1+rng.IntN(20))
		for i := range g {
			g[i] = RandomElement(rng)
		}

		back, err := ParseGroup(g.Token())
		if err != nil {
			t.Fatal(err)
		}
		if !slices.Equal(back, g) {
			t.Fatalf("round trip of %q gave %q", g.Token(), back.Token())
		}
	}
}

func TestGroupToken(t *testing.T) {
	g := Group{
		{Position: Point{10, 10}, Size: Point{50, 50}, Color: Color{255, 0, 0}},
		{Position: Point{0, 0}, Size: Point{20, 20}, Color: Color{0, 255, 0}},
	}
	const want = "p10:10>s50:50>ff0000;p0:0>s20:20>00ff00"
	if got := g.Token(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestParseGroupErrors(t *testing.T) {
	cases := []string{
		"p1:2>s3:4",
		"",
		";",
		"p1:2>s3:4>ffffff;",
		"p1:2>s3:4>ffffff;;p1:2>s3:4>ffffff",
		"p1:2>s3:4>ffffff,p1:2>s3:4>ffffff",
	}
	for _, s := range cases {
		g, err := ParseGroup(s)
		var decodeErr *DecodeError
		if !errors.As(err, &decodeErr) {
			t.Errorf("%q: expected DecodeError, got %v", s, err)
		}
		if g != nil {
			t.Errorf("%q: partial result %v", s, g)
		}
	}
}

func TestParseGroupErrorPosition(t *testing.T) {
	_, err := ParseGroup("p1:2>s3:4>ffffff;p1:2>s3:4>zzzzzz")
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
	if decodeErr.Reason != "element 1" {
		t.Errorf("got reason %q, want %q", decodeErr.Reason, "element 1")
	}
}

func TestRandomTokenCardinality(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	counts := map[int]int{}
	for range 2000 {
		g, err := ParseGroup(RandomToken(rng))
		if err != nil {
			t.Fatal(err)
		}
		if len(g) < MinRandomElements || len(g) > MaxRandomElements {
			t.Fatalf("random group has %d elements", len(g))
		}
		counts[len(g)]++
	}
	for n := MinRandomElements; n <= MaxRandomElements; n++ {
		if counts[n] == 0 {
			t.Errorf("no random group with %d elements", n)
		}
	}
}

func TestRandomTokenSeeded(t *testing.T) {
	a := RandomToken(rand.New(rand.NewPCG(7, 8)))
	b := RandomToken(rand.New(rand.NewPCG(7, 8)))
	if a != b {
		t.Errorf("same seed gave different tokens %q and %q", a, b)
	}
	if strings.Count(a, ElementSeparator) < MinRandomElements-1 {
		t.Errorf("token %q has too few elements", a)
	}
}

// checkCodec draws random tokens from c and checks that they decode to a
// value with the same token.
func checkCodec[T Tokenizer](t *testing.T, c Codec[T]) {
	t.Helper()
	rng := rand.New(rand.NewPCG(7, 8))
	for range 100 {
		token := c.RandomToken(rng)
		v, err := c.Decode(token)
		if err != nil {
			t.Fatalf("decoding %q: %v", token, err)
		}
		if v.Token() != token {
			t.Fatalf("got %q, want %q", v.Token(), token)
		}
	}

	_, err := c.Decode("p1:2>s3:4")
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Errorf("expected DecodeError, got %v", err)
	}
}

func TestCodecs(t *testing.T) {
	t.Run("element", func(t *testing.T) { checkCodec(t, ElementCodec) })
	t.Run("group", func(t *testing.T) { checkCodec(t, GroupCodec) })

	// an element token is a group with one element
	e, err := ElementCodec.Decode("p1:2>s3:4>abcdef")
	if err != nil {
		t.Fatal(err)
	}
	g, err := GroupCodec.Decode(e.Token())
	if err != nil {
		t.Fatal(err)
	}
	if len(g) != 1 || g[0] != e {
		t.Errorf("got %v, want [%v]", g, e)
	}
}
