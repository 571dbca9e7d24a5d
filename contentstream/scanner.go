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
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/vivster7/pikepdf"
)

// A Scanner breaks a content stream into tokens.
//
// Dictionaries and arrays are composed into single [pikepdf.Dict] and
// [pikepdf.Array] tokens.  After the ID operator has been returned, the
// next token is the raw inline image data as a [pikepdf.String],
// followed by the EI operator; together with [Grouper] this reassembles
// complete inline image instructions.
type Scanner struct {
	src       io.Reader
	buf       []byte
	pos, used int
	ahead     []byte
	crSeen    bool

	line int // 0-based
	col  int // 0-based

	inlineData bool // the next token is raw inline image data

	// err is the first error returned by src.Read().  Once an error has
	// been returned, all subsequent calls to refill() will return err.
	err error
}

// NewScanner returns a new Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{
		src: r,
		buf: make([]byte, 512),
	}
}

// Parse reads a content stream and returns its instructions.
// operators is a space-separated operator whitelist as for
// [NewGrouper]; the empty string disables filtering.
//
// The end-of-stream warning for trailing unconsumed operands is not
// reported here; callers which need it can drive a [Grouper] with a
// [Scanner] directly.
func Parse(r io.Reader, operators string) ([]Entry, error) {
	s := NewScanner(r)
	g := NewGrouper(operators)
	for {
		tok, err := s.Next()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		if err := g.HandleToken(tok); err != nil {
			return nil, err
		}
	}
	g.Finalize()
	return g.Instructions(), nil
}

// Next returns the next token from the input.  At the end of the input
// the error is [io.EOF].
func (s *Scanner) Next() (pikepdf.Object, error) {
	if s.inlineData {
		s.inlineData = false
		return s.readInlineData()
	}

	type stackEntry struct {
		isDict bool
		data   []pikepdf.Object
	}
	var stack []*stackEntry
	for {
		obj, err := s.next()
		if err != nil {
			return nil, err
		}

	retry:
		switch obj {
		case pikepdf.Operator("<<"):
			stack = append(stack, &stackEntry{isDict: true})
		case pikepdf.Operator(">>"):
			if len(stack) == 0 || !stack[len(stack)-1].isDict {
				return nil, &scanError{"unexpected '>>'"}
			}
			entry := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if len(entry.data)%2 != 0 {
				return nil, &scanError{"unexpected '>>'"}
			}
			dict := pikepdf.Dict{}
			for i := 0; i < len(entry.data); i += 2 {
				key, ok := entry.data[i].(pikepdf.Name)
				if !ok {
					return nil, &scanError{"unexpected dict key"}
				}
				val := entry.data[i+1]
				if val == nil {
					continue
				}
				dict[key] = val
			}
			obj = dict
			goto retry
		case pikepdf.Operator("["):
			stack = append(stack, &stackEntry{})
		case pikepdf.Operator("]"):
			if len(stack) == 0 || stack[len(stack)-1].isDict {
				return nil, &scanError{"unexpected ']'"}
			}
			entry := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			obj = pikepdf.Array(entry.data)
			goto retry
		default:
			if len(stack) == 0 {
				if obj == pikepdf.Operator("ID") {
					s.inlineData = true
				}
				return obj, nil
			}
			stack[len(stack)-1].data = append(stack[len(stack)-1].data, obj)
		}
	}
}

func (s *Scanner) next() (pikepdf.Object, error) {
	err := s.skipWhiteSpace()
	if err != nil {
		return nil, err
	}
	b, err := s.peek()
	if err != nil {
		return nil, err
	}
	switch b {
	case '(':
		return s.readString()
	case '<':
		bb := s.peekN(2)
		switch string(bb) {
		case "<<": // dict
			s.skipRequiredByte('<')
			s.skipRequiredByte('<')
			return pikepdf.Operator("<<"), nil
		default: // hex string
			return s.readHexString()
		}
	case '>':
		bb := s.peekN(2)
		switch string(bb) {
		case ">>": // end dict
			s.skipRequiredByte('>')
			s.skipRequiredByte('>')
			return pikepdf.Operator(">>"), nil
		default:
			err := s.err
			if err == nil {
				err = &scanError{"unexpected '>'"}
			}
			return nil, err
		}
	case '/':
		s.skipRequiredByte('/')
		return s.readName()
	default:
		s.nextByte()
		opBytes := []byte{b}
		if class[b] == regular {
			for {
				b, err := s.peek()
				if err == io.EOF {
					break
				} else if err != nil {
					return nil, err
				}
				if class[b] != regular {
					break
				}
				s.nextByte()
				opBytes = append(opBytes, b)
			}
		}

		if b >= '0' && b <= '9' || b == '.' || b == '-' || b == '+' {
			if x := parseNumber(opBytes); x != nil {
				return x, nil
			}
		}

		switch string(opBytes) {
		case "false":
			return pikepdf.Boolean(false), nil
		case "true":
			return pikepdf.Boolean(true), nil
		case "null":
			return nil, nil
		}

		return pikepdf.Operator(opBytes), nil
	}
}

// readInlineData reads the raw image data between the ID and EI
// operators.  ID is followed by a single white-space byte which is not
// part of the data; the data ends before a white-space byte followed by
// "EI" at a token boundary.
func (s *Scanner) readInlineData() (pikepdf.String, error) {
	b, err := s.peek()
	if err != nil {
		return nil, err
	}
	if b <= 32 {
		s.nextByte()
	}

	var data []byte
	for {
		bb := s.peekN(4)
		if len(bb) == 0 {
			if s.err != nil && s.err != io.EOF {
				return nil, s.err
			}
			return nil, io.ErrUnexpectedEOF
		}
		if bb[0] <= 32 && len(bb) >= 3 && bb[1] == 'E' && bb[2] == 'I' &&
			(len(bb) == 3 || bb[3] <= 32 || class[bb[3]] == delimiter) {
			// The separating white-space byte is not part of the data.
			s.nextByte()
			break
		}
		b, err := s.nextByte()
		if err != nil {
			return nil, err
		}
		data = append(data, b)
	}
	return pikepdf.String(data), nil
}

func (s *Scanner) readString() (pikepdf.String, error) {
	err := s.skipRequiredByte('(')
	if err != nil {
		return nil, err
	}
	var res []byte
	bracketLevel := 1
	ignoreLF := false
	for {
		b, err := s.nextByte()
		if err != nil {
			return nil, err
		}
		if ignoreLF && b == 10 {
			continue
		}
		ignoreLF = false
		switch b {
		case '(':
			bracketLevel++
			res = append(res, b)
		case ')':
			bracketLevel--
			if bracketLevel == 0 {
				return pikepdf.String(res), nil
			}
			res = append(res, b)
		case '\\':
			b, err = s.nextByte()
			if err != nil {
				return nil, err
			}
			switch b {
			case 'n':
				res = append(res, '\n')
			case 'r':
				res = append(res, '\r')
			case 't':
				res = append(res, '\t')
			case 'b':
				res = append(res, '\b')
			case 'f':
				res = append(res, '\f')
			case '(': // literal (
				res = append(res, '(')
			case ')': // literal )
				res = append(res, ')')
			case '\\': // literal \
				res = append(res, '\\')
			case 10: // LF
				// ignore
			case 13: // CR or CR+LF
				// ignore
				ignoreLF = true
			case '0', '1', '2', '3', '4', '5', '6', '7':
				oct := b - '0'
				for i := 0; i < 2; i++ {
					b, err = s.peek()
					if err == io.EOF {
						break
					} else if err != nil {
						return nil, err
					}
					if b < '0' || b > '7' {
						break
					}
					s.nextByte()
					oct = oct*8 + (b - '0')
				}
				res = append(res, oct)
			default:
				res = append(res, b)
			}
		default:
			res = append(res, b)
		}
	}
}

func (s *Scanner) readHexString() (pikepdf.String, error) {
	err := s.skipRequiredByte('<')
	if err != nil {
		return nil, err
	}

	var res []byte
	first := true
	var hi byte
readLoop:
	for {
		b, err := s.nextByte()
		if err != nil {
			return nil, err
		}
		var lo byte
		switch {
		case b == '>':
			break readLoop
		case b <= 32:
			continue
		case b >= '0' && b <= '9':
			lo = b - '0'
		case b >= 'A' && b <= 'F':
			lo = b - 'A' + 10
		case b >= 'a' && b <= 'f':
			lo = b - 'a' + 10
		default:
			return nil, &scanError{fmt.Sprintf("invalid hex digit %q", b)}
		}
		if first {
			hi = lo << 4
			first = false
		} else {
			res = append(res, hi|lo)
			first = true
		}
	}
	if !first {
		res = append(res, hi)
	}

	return pikepdf.String(res), nil
}

// readName reads a PDF name object (without the leading slash).
func (s *Scanner) readName() (pikepdf.Name, error) {
	var name []byte
	hex := 0
	var high byte
	for {
		if hex > 0 {
			c, err := s.nextByte()
			if err != nil {
				return "", err
			}
			var low byte
			if c >= '0' && c <= '9' {
				low = c - '0'
			} else if c >= 'A' && c <= 'F' {
				low = c - 'A' + 10
			} else if c >= 'a' && c <= 'f' {
				low = c - 'a' + 10
			} else {
				return "", &scanError{fmt.Sprintf("invalid hex digit %q", c)}
			}
			switch hex {
			case 2:
				high = low << 4
			case 1:
				name = append(name, high|low)
			}
			hex--
			continue
		}

		b, err := s.peek()
		if err == io.EOF {
			break
		} else if err != nil {
			return "", err
		}

		if b == '#' {
			hex = 2
		} else if class[b] != regular {
			break
		} else {
			name = append(name, b)
		}
		s.nextByte()
	}
	return pikepdf.Name(name), nil
}

// skipWhiteSpace skips all input (including comments) until a
// non-whitespace character is found.
func (s *Scanner) skipWhiteSpace() error {
	for {
		b, err := s.peek()
		if err != nil {
			return err
		}
		if b <= 32 {
			s.nextByte()
		} else if b == '%' {
			s.skipComment()
		} else {
			return nil
		}
	}
}

// skipComment skips everything from a % to the end of the line.
func (s *Scanner) skipComment() {
	err := s.skipRequiredByte('%')
	if err != nil {
		return
	}

	for {
		b, err := s.peek()
		if b == 10 || b == 13 || err != nil {
			break
		}
		s.nextByte()
	}
}

func (s *Scanner) skipRequiredByte(expected byte) error {
	seen, err := s.nextByte()
	if err != nil {
		return err
	}
	if seen != expected {
		return &scanError{fmt.Sprintf("expected %q, got %q", expected, seen)}
	}
	return nil
}

func (s *Scanner) peek() (byte, error) {
	if len(s.ahead) == 0 {
		b, err := s.readByte()
		if err != nil {
			return 0, err
		}
		s.ahead = append(s.ahead, b)
	}
	return s.ahead[0], nil
}

func (s *Scanner) peekN(n int) []byte {
	for len(s.ahead) < n {
		b, err := s.readByte()
		if err != nil {
			return s.ahead
		}
		s.ahead = append(s.ahead, b)
	}
	return s.ahead[:n]
}

// nextByte returns the next byte from the input stream.
// The function updates the line and column numbers.
// This checks the read-ahead buffer first, and only calls readByte() if
// necessary.
func (s *Scanner) nextByte() (byte, error) {
	var b byte

	if len(s.ahead) > 0 {
		b = s.ahead[0]
		copy(s.ahead, s.ahead[1:])
		s.ahead = s.ahead[:len(s.ahead)-1]
	} else {
		var err error
		b, err = s.readByte()
		if err != nil {
			return 0, err
		}
	}

	if s.crSeen && b == 10 {
		// ignore LF after CR
	} else if b == 10 || b == 13 {
		s.line++
		s.col = 0
	} else {
		s.col++
	}
	s.crSeen = (b == 13)

	return b, nil
}

// readByte reads the next byte from the underlying reader.
// It is the caller's responsibility to check the read-ahead buffer
// first.
func (s *Scanner) readByte() (byte, error) {
	for s.pos >= s.used {
		err := s.refill()
		if err != nil {
			return 0, err
		}
	}

	b := s.buf[s.pos]
	s.pos++

	return b, nil
}

// refill reads more data from the underlying reader into the buffer.
// This is the only place where the underlying reader is called.
func (s *Scanner) refill() error {
	if s.err != nil {
		return s.err
	}
	s.used = copy(s.buf, s.buf[s.pos:s.used])
	s.pos = 0

	n, err := s.src.Read(s.buf[s.used:])
	s.used += n
	if err != nil {
		s.err = err
		if n > 0 {
			err = nil
		}
	}
	return err
}

// parseNumber tries to interpret buf as a number.  It returns a
// [pikepdf.Integer] or [pikepdf.Real] if buf is a valid number, and nil
// otherwise.
func parseNumber(buf []byte) pikepdf.Object {
	x, err := strconv.ParseInt(string(buf), 10, 64)
	if err == nil {
		return pikepdf.Integer(x)
	}

	isSimple := true
	for i, c := range buf {
		if i == 0 && (c == '+' || c == '-') {
			continue
		}
		if c == '.' {
			continue
		}
		if c < '0' || c > '9' {
			isSimple = false
			break
		}
	}

	if isSimple {
		y, err := strconv.ParseFloat(string(buf), 64)
		if err == nil && !math.IsInf(y, 0) && !math.IsNaN(y) {
			return pikepdf.Real(y)
		}
	}

	return nil
}

type scanError struct {
	msg string
}

func (err *scanError) Error() string {
	return "content stream: " + err.msg
}

type characterClass byte

const (
	regular characterClass = iota
	space
	delimiter
)

// class assigns each byte its PDF character class.  The curly braces
// are treated as regular characters: inside content streams they only
// occur in type 4 function definitions, where they act as operators.
var class = func() [256]characterClass {
	var c [256]characterClass
	for _, b := range []byte{0, 9, 10, 12, 13, 32} {
		c[b] = space
	}
	for _, b := range []byte("%()<>[]/") {
		c[b] = delimiter
	}
	return c
}()
