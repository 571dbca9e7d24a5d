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

// Package pikepdf provides the PDF object model used for reading and
// writing page content streams.
//
// The [Object] interface is implemented by the basic PDF data types
// ([Boolean], [Integer], [Real], [String], [Name], [Array], [Dict]),
// by the content stream [Operator] keyword type, and by [InlineImage].
// Every object knows how to write its own byte representation via the
// PDF method; [AsObject] converts plain Go values into objects.
//
// The [github.com/vivster7/pikepdf/contentstream] package builds on
// these types to tokenize content streams, group tokens into
// instructions, and serialize instructions back to bytes.
package pikepdf
