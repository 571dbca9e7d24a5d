// github.com/vivster7/pikepdf - PDF content stream parsing and serialization
// Copyright (C) 2026  The pikepdf-go authors
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

package pikepdf

import (
	"fmt"
	"io"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// InlineImage is a raster image embedded directly in a content stream
// between the BI and EI operators.  The image parameters are stored as a
// dictionary, the image data is kept in its encoded form.  Decoding the
// pixel data is outside the scope of this package.
type InlineImage struct {
	Dict Dict
	Data String
}

// NewInlineImage builds an inline image from the raw image data and the
// metadata tokens found between the BI and ID operators.  The metadata
// must be an alternating sequence of key names and values.
func NewInlineImage(data String, metadata []Object) (*InlineImage, error) {
	if len(metadata)%2 != 0 {
		return nil, fmt.Errorf("inline image: %d metadata tokens do not form key/value pairs",
			len(metadata))
	}
	dict := Dict{}
	for i := 0; i < len(metadata); i += 2 {
		key, ok := metadata[i].(Name)
		if !ok {
			return nil, fmt.Errorf("inline image: metadata key %s is not a name",
				Format(metadata[i]))
		}
		val := metadata[i+1]
		if val == nil {
			continue
		}
		dict[key] = val
	}
	return &InlineImage{Dict: dict, Data: data}, nil
}

// PDF implements the [Object] interface.  It writes the complete
// "BI ... ID ... EI" block, with the dictionary keys in sorted order.
// No trailing newline is written after EI.
func (img *InlineImage) PDF(w io.Writer) error {
	if _, err := io.WriteString(w, "BI"); err != nil {
		return err
	}
	keys := maps.Keys(img.Dict)
	slices.Sort(keys)
	for _, key := range keys {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
		if err := key.PDF(w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, " "); err != nil {
			return err
		}
		if err := Write(w, img.Dict[key]); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "\nID\n"); err != nil {
		return err
	}
	if _, err := w.Write(img.Data); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\nEI")
	return err
}
