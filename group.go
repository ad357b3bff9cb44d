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

// Separators of the token grammar.
const (
	ElementSeparator = ";"
	PartSeparator    = ">"
)

// Number of elements in a random group.
const (
	MinRandomElements = 4
	MaxRandomElements = 12
)

// Group is a scene: a list of elements, painted in order.
type Group []Element

// Token returns the token of the group, the element tokens joined by ";".
func (g Group) Token() string {
	return joinTokens([]Element(g), ElementSeparator)
}

// ParseGroup decodes a token produced by [Group.Token]. The whole token is
// rejected if any element is malformed. Errors are of type
// [*DecodeError].
func ParseGroup(token string) (Group, error) {
	elems, err := parseList(token, ElementSeparator, ParseElement)
	if err != nil {
		return nil, err
	}
	return Group(elems), nil
}

// RandomToken returns the token of a random group with between
// [MinRandomElements] and [MaxRandomElements] elements.
//
// Only the token is returned; use [ParseGroup] to obtain the elements.
func RandomToken(rng Rand) string {
	return randomToken(rng, MinRandomElements, MaxRandomElements, ElementSeparator, RandomElementToken)
}
