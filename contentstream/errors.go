package contentstream

import (
	"fmt"
	"strconv"
)

// IndexError indicates an invalid positional index into an
// (operands, operator) instruction pair.  Valid indices are 0 and -2
// (the operands) and 1 and -1 (the operator).
type IndexError struct {
	Index int
}

func (err *IndexError) Error() string {
	return "invalid instruction index " + strconv.Itoa(err.Index)
}

// MalformedInstructionError indicates an instruction which cannot be
// serialized: a generic pair with the wrong shape, an inline image
// instruction whose operand is not an inline image, or an EI operator
// without buffered image data.
type MalformedInstructionError struct {
	Index  int
	Reason string
}

func (err *MalformedInstructionError) Error() string {
	return fmt.Sprintf("content stream instruction %d: %s", err.Index, err.Reason)
}

// TypeMismatchError indicates that the operator of a generic
// instruction pair is neither a [pikepdf.Operator], a string, nor a
// byte slice.
type TypeMismatchError struct {
	Index int
}

func (err *TypeMismatchError) Error() string {
	return fmt.Sprintf("content stream instruction %d: operator is not of type Operator, []byte or string",
		err.Index)
}
