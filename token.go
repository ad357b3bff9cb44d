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
	"math/rand/v2"
	"strconv"
	"strings"
)

// Rand is a source of random integers. [*math/rand/v2.Rand] implements
// this interface. Implementations used by concurrent callers must be safe
// for concurrent use.
type Rand interface {
	// IntN returns a uniform random integer in [0, n).
	IntN(n int) int
}

// DefaultRand draws from the global generator of math/rand/v2, which is
// safe for concurrent use.
var DefaultRand Rand = globalRand{}

type globalRand struct{}

func (globalRand) IntN(n int) int {
	return rand.IntN(n)
}

// Tokenizer is implemented by all values which have a token form.
//
// Generating random tokens and decoding tokens does not need a value, so
// these live in [Codec], which has one implementation for each Tokenizer:
// [ElementCodec] and [GroupCodec].
type Tokenizer interface {
	Token() string
}

// Codec generates and decodes the tokens of one kind of Tokenizer.
type Codec[T Tokenizer] interface {
	// RandomToken returns the token of a random value.
	RandomToken(rng Rand) string

	// Decode parses a token produced by the Token method of T.
	// Errors are of type [*DecodeError].
	Decode(token string) (T, error)
}

// ElementCodec is the Codec for token fragments describing one element.
var ElementCodec Codec[Element] = elementCodec{}

// GroupCodec is the Codec for complete scene tokens.
var GroupCodec Codec[Group] = groupCodec{}

type elementCodec struct{}

func (elementCodec) RandomToken(rng Rand) string { return RandomElementToken(rng) }
func (elementCodec) Decode(token string) (Element, error) { return ParseElement(token) }

type groupCodec struct{}

func (groupCodec) RandomToken(rng Rand) string { return RandomToken(rng) }
func (groupCodec) Decode(token string) (Group, error) { return ParseGroup(token) }

// uniform returns a random integer in the closed interval [lo, hi].
func uniform(rng Rand, lo, hi int) int {
	return lo + rng.IntN(hi-lo+1)
}

// randomToken joins between lo and hi (inclusive) random fragments,
// produced by fragment, using sep.
func randomToken(rng Rand, lo, hi int, sep string, fragment func(Rand) string) string {
	n := uniform(rng, lo, hi)
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fragment(rng)
	}
	return strings.Join(parts, sep)
}

// joinTokens joins the tokens of all items using sep.
func joinTokens[T Tokenizer](items []T, sep string) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = item.Token()
	}
	return strings.Join(parts, sep)
}

// parseList splits s at sep and parses every piece in order.
// The first error is returned, wrapped with the position of the piece.
func parseList[T any](s, sep string, parse func(string) (T, error)) ([]T, error) {
	pieces := strings.Split(s, sep)
	res := make([]T, len(pieces))
	for i, piece := range pieces {
		v, err := parse(piece)
		if err != nil {
			return nil, &DecodeError{
				Input:  s,
				Reason: "element " + strconv.Itoa(i),
				Err:    err,
			}
		}
		res[i] = v
	}
	return res, nil
}
