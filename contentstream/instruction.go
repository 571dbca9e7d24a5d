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

// An Entry is one instruction of a grouped content stream, viewed as an
// (operands, operator) pair.  The only two implementations are
// [*Instruction] and [*InlineImageInstruction]; consumers distinguish
// them with a type switch.
type Entry interface {
	// Len returns the length of the instruction viewed as an
	// (operands, operator) pair.  This is always 2, regardless of the
	// number of operands.
	Len() int

	// Index returns the operands (index 0 or -2) or the operator
	// (index 1 or -1).  Any other index fails with an [*IndexError].
	Index(i int) (pikepdf.Object, error)

	unparse(w io.Writer) error
}

// Instruction pairs a content stream operator with the operands which
// preceded it.
type Instruction struct {
	operands pikepdf.Array
	operator pikepdf.Operator
}

// NewInstruction returns an instruction holding the given operands and
// operator.  The operand list is stored without copying.
func NewInstruction(operands pikepdf.Array, operator pikepdf.Operator) *Instruction {
	return &Instruction{operands: operands, operator: operator}
}

// Operator returns the operator keyword.
func (inst *Instruction) Operator() pikepdf.Operator {
	return inst.operator
}

// Operands returns the operand list.
func (inst *Instruction) Operands() pikepdf.Array {
	return inst.operands
}

// SetOperands replaces the operand list wholesale.  The argument can be
// a [pikepdf.Array] or a []pikepdf.Object, which are stored as-is, or a
// []any whose elements are normalized through [pikepdf.AsObject].
func (inst *Instruction) SetOperands(operands any) error {
	switch x := operands.(type) {
	case pikepdf.Array:
		inst.operands = x
	case []pikepdf.Object:
		inst.operands = pikepdf.Array(x)
	case []any:
		arr := make(pikepdf.Array, len(x))
		for i, elem := range x {
			obj, err := pikepdf.AsObject(elem)
			if err != nil {
				return err
			}
			arr[i] = obj
		}
		inst.operands = arr
	default:
		return &pikepdf.EncodeError{Value: operands}
	}
	return nil
}

// Len implements the [Entry] interface.
func (inst *Instruction) Len() int {
	return 2
}

// Index implements the [Entry] interface.
func (inst *Instruction) Index(i int) (pikepdf.Object, error) {
	switch i {
	case 0, -2:
		return inst.operands, nil
	case 1, -1:
		return inst.operator, nil
	}
	return nil, &IndexError{Index: i}
}

// unparse writes each operand followed by a single space, then the
// operator.  No trailing separator is written.
func (inst *Instruction) unparse(w io.Writer) error {
	for _, obj := range inst.operands {
		if err := pikepdf.Write(w, obj); err != nil {
			return err
		}
		if _, err := io.WriteString(w, " "); err != nil {
			return err
		}
	}
	return inst.operator.PDF(w)
}
