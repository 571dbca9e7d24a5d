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
	"bytes"
	"io"

	"github.com/vivster7/pikepdf"
)

// Unparse serializes a sequence of content stream instructions into
// their byte representation.  Instructions are separated by single
// newlines, with no leading or trailing newline.
//
// Each item must be a [*Instruction], a [*InlineImageInstruction], or a
// generic two-element (operands, operator) pair given as []any,
// []pikepdf.Object, or [pikepdf.Array].  In a generic pair the operator
// may be a [pikepdf.Operator], a string, or a byte slice; the operands
// are normalized through [pikepdf.AsObject].  A generic pair whose
// operator is [OpInlineImage] must hold a [*pikepdf.InlineImage] as its
// sole operand.
//
// Serialization is all-or-nothing: on error the returned slice is nil.
func Unparse(items []any) ([]byte, error) {
	buf := &bytes.Buffer{}
	n := 0 // position among generic pairs, for error reporting
	for i, item := range items {
		if i > 0 {
			buf.WriteByte('\n')
		}
		switch x := item.(type) {
		case *Instruction:
			if err := x.unparse(buf); err != nil {
				return nil, err
			}
		case *InlineImageInstruction:
			if err := x.unparse(buf); err != nil {
				return nil, err
			}
		default:
			if err := unparseGeneric(buf, item, n); err != nil {
				return nil, err
			}
			n++
		}
	}
	return buf.Bytes(), nil
}

// unparseGeneric handles items which are not native instruction types.
func unparseGeneric(w io.Writer, item any, n int) error {
	pair, ok := asSequence(item)
	if !ok || len(pair) != 2 {
		return &MalformedInstructionError{
			Index:  n,
			Reason: "wrong number of operands; expected 2",
		}
	}

	var op pikepdf.Operator
	switch x := pair[1].(type) {
	case pikepdf.Operator:
		op = x
	case string:
		op = pikepdf.Operator(x)
	case []byte:
		op = pikepdf.Operator(x)
	default:
		return &TypeMismatchError{Index: n}
	}

	if op == OpInlineImage {
		operands, ok := asSequence(pair[0])
		if !ok || len(operands) == 0 {
			return &MalformedInstructionError{
				Index:  n,
				Reason: "expected inline image as operand",
			}
		}
		img, ok := operands[0].(*pikepdf.InlineImage)
		if !ok {
			return &MalformedInstructionError{
				Index:  n,
				Reason: "expected inline image as operand",
			}
		}
		return img.PDF(w)
	}

	operands, ok := asSequence(pair[0])
	if !ok {
		return &MalformedInstructionError{
			Index:  n,
			Reason: "operands are not a sequence",
		}
	}
	for _, operand := range operands {
		obj, err := pikepdf.AsObject(operand)
		if err != nil {
			return err
		}
		if err := pikepdf.Write(w, obj); err != nil {
			return err
		}
		if _, err := io.WriteString(w, " "); err != nil {
			return err
		}
	}
	return op.PDF(w)
}

// asSequence views item as a generic sequence of values.
func asSequence(item any) ([]any, bool) {
	switch x := item.(type) {
	case []any:
		return x, true
	case []pikepdf.Object:
		out := make([]any, len(x))
		for i, obj := range x {
			out[i] = obj
		}
		return out, true
	case pikepdf.Array:
		out := make([]any, len(x))
		for i, obj := range x {
			out[i] = obj
		}
		return out, true
	}
	return nil, false
}
