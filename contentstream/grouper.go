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
	"strings"

	"github.com/vivster7/pikepdf"
)

// A Grouper converts a flat stream of content stream tokens into
// instructions.  Tokens are delivered one at a time through
// [Grouper.HandleToken]; [Grouper.Finalize] signals the end of the
// stream.  Afterwards the grouped instructions are available through
// [Grouper.Instructions].
//
// A Grouper is used for a single content stream and is not safe for
// concurrent use.
type Grouper struct {
	whitelist map[string]bool

	tokens             pikepdf.Array // operands waiting for their operator
	inlineMetadata     pikepdf.Array
	parsingInlineImage bool

	instructions []Entry
	warning      string
	count        int
}

// NewGrouper returns a new Grouper.  operators is a space-separated
// list of operator names; if it is non-empty, instructions whose
// operator is not listed are discarded together with their operands.
func NewGrouper(operators string) *Grouper {
	whitelist := make(map[string]bool)
	for _, op := range strings.Fields(operators) {
		whitelist[op] = true
	}
	return &Grouper{whitelist: whitelist}
}

// HandleToken processes the next token of the content stream.
// Non-operator tokens are buffered as operands; an operator token
// consumes the buffered operands and emits an instruction.
//
// Operand counts are not validated against operator semantics: an
// operator with zero or many preceding operands is accepted uniformly.
func (g *Grouper) HandleToken(tok pikepdf.Object) error {
	g.count++

	op, isOperator := tok.(pikepdf.Operator)
	if !isOperator {
		g.tokens = append(g.tokens, tok)
		return nil
	}

	if len(g.whitelist) > 0 {
		if len(op) > 0 && (op[0] == 'q' || op[0] == 'Q') {
			// Tokens starting with q or Q may stand for several stack
			// save/restore operations at once.  They are kept if either
			// operator is whitelisted.
			if !g.whitelist["q"] && !g.whitelist["Q"] {
				g.tokens = nil
				return nil
			}
		} else if !g.whitelist[string(op)] {
			g.tokens = nil
			return nil
		}
	}

	switch {
	case op == "BI":
		g.parsingInlineImage = true
	case g.parsingInlineImage:
		switch op {
		case "ID":
			g.inlineMetadata = g.tokens
		case "EI":
			if len(g.tokens) == 0 {
				return &MalformedInstructionError{
					Index:  len(g.instructions),
					Reason: "EI operator without image data",
				}
			}
			data, ok := g.tokens[0].(pikepdf.String)
			if !ok {
				return &MalformedInstructionError{
					Index:  len(g.instructions),
					Reason: "inline image data is not a string token",
				}
			}
			g.instructions = append(g.instructions,
				NewInlineImageInstruction(g.inlineMetadata, data))
			g.inlineMetadata = nil
			g.parsingInlineImage = false
		default:
			// No operators other than ID and EI are expected between BI
			// and EI; anything else is dropped.
		}
	default:
		g.instructions = append(g.instructions, NewInstruction(g.tokens, op))
	}

	g.tokens = nil
	return nil
}

// Finalize signals the end of the token stream.  If operands were
// buffered but never consumed by an operator, an advisory warning is
// recorded; instructions emitted so far are kept.
func (g *Grouper) Finalize() {
	if len(g.tokens) > 0 {
		g.warning = "Unexpected end of stream"
	}
}

// Instructions returns the instructions grouped so far.
func (g *Grouper) Instructions() []Entry {
	return g.instructions
}

// Warning returns the end-of-stream diagnostic recorded by
// [Grouper.Finalize], or the empty string.
func (g *Grouper) Warning() string {
	return g.warning
}

// TokenCount returns the number of tokens seen so far.
func (g *Grouper) TokenCount() int {
	return g.count
}
