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

package contentstream

import (
	"io"

	"github.com/vivster7/pikepdf"
)

// OpInlineImage is the pseudo-operator reported for inline image
// instructions.  It never occurs in an actual content stream; it
// signals to consumers that the instruction was synthesized from a
// BI ... ID ... EI block.
const OpInlineImage pikepdf.Operator = "INLINE IMAGE"

// InlineImageInstruction represents one inline image operation: the
// metadata tokens found between BI and ID, and the raw image data
// found between ID and EI.
type InlineImageInstruction struct {
	metadata  pikepdf.Array
	imageData pikepdf.String
}

// NewInlineImageInstruction returns an inline image instruction.
// The metadata list is stored without copying; imageData is the encoded
// image data exactly as found in the stream.
func NewInlineImageInstruction(metadata pikepdf.Array, imageData pikepdf.String) *InlineImageInstruction {
	return &InlineImageInstruction{metadata: metadata, imageData: imageData}
}

// Operator returns [OpInlineImage].
func (inst *InlineImageInstruction) Operator() pikepdf.Operator {
	return OpInlineImage
}

// Metadata returns the tokens collected between BI and ID.
func (inst *InlineImageInstruction) Metadata() pikepdf.Array {
	return inst.metadata
}

// ImageData returns the raw encoded bytes found between ID and EI.
func (inst *InlineImageInstruction) ImageData() pikepdf.String {
	return inst.imageData
}

// InlineImage constructs the inline image object from the stored data
// and metadata.  A new object is built on every call.  The construction
// fails if the metadata tokens do not form a valid dictionary.
func (inst *InlineImageInstruction) InlineImage() (*pikepdf.InlineImage, error) {
	return pikepdf.NewInlineImage(inst.imageData, inst.metadata)
}

// Operands returns a single-element operand list holding the inline
// image object.
func (inst *InlineImageInstruction) Operands() (pikepdf.Array, error) {
	img, err := inst.InlineImage()
	if err != nil {
		return nil, err
	}
	return pikepdf.Array{img}, nil
}

// Len implements the [Entry] interface.
func (inst *InlineImageInstruction) Len() int {
	return 2
}

// Index implements the [Entry] interface.
func (inst *InlineImageInstruction) Index(i int) (pikepdf.Object, error) {
	switch i {
	case 0, -2:
		return inst.Operands()
	case 1, -1:
		return OpInlineImage, nil
	}
	return nil, &IndexError{Index: i}
}

// unparse writes the complete BI ... ID ... EI block, delegating to the
// inline image object.  Neither operands nor the pseudo-operator are
// written.
func (inst *InlineImageInstruction) unparse(w io.Writer) error {
	img, err := inst.InlineImage()
	if err != nil {
		return err
	}
	return img.PDF(w)
}
