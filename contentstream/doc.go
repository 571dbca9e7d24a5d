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

// Package contentstream groups PDF content stream tokens into
// instructions and serializes instructions back into bytes.
//
// A content stream is a flat sequence of operand tokens punctuated by
// operator keywords; each operator consumes the operands which precede
// it.  The [Grouper] turns this sequence into a list of [Entry] values,
// one per operator, handling the inline image sub-grammar
// (BI ... ID ... EI) and an optional operator whitelist.  [Unparse]
// performs the inverse operation.  The [Scanner] and [Parse] read the
// token stream from raw bytes.
package contentstream
