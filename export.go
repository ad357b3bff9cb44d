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
	"bytes"
	"image"
	"image/jpeg"
	"io"
)

// ContentType is the MIME type of the output of [EncodeJPEG].
const ContentType = "image/jpeg"

// EncodeJPEG writes img to w as a JPEG file, using the encoder's default
// quality.
func EncodeJPEG(w io.Writer, img image.Image) error {
	return jpeg.Encode(w, img, nil)
}

// JPEG returns img encoded as a JPEG file.
func JPEG(img image.Image) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := EncodeJPEG(buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
