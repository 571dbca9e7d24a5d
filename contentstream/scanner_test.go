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
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/vivster7/pikepdf"
)

func scanAll(t *testing.T, in string) []pikepdf.Object {
	t.Helper()
	s := NewScanner(strings.NewReader(in))
	var tokens []pikepdf.Object
	for {
		tok, err := s.Next()
		if err == io.EOF {
			return tokens
		} else if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		tokens = append(tokens, tok)
	}
}

func TestScanner(t *testing.T) {
	cases := []struct {
		in   string
		want []pikepdf.Object
	}{
		{
			"1 0 0 1 72 720 cm",
			[]pikepdf.Object{
				pikepdf.Integer(1), pikepdf.Integer(0), pikepdf.Integer(0),
				pikepdf.Integer(1), pikepdf.Integer(72), pikepdf.Integer(720),
				pikepdf.Operator("cm"),
			},
		},
		{
			"BT /F1 12 Tf (Hello) Tj ET",
			[]pikepdf.Object{
				pikepdf.Operator("BT"),
				pikepdf.Name("F1"), pikepdf.Integer(12), pikepdf.Operator("Tf"),
				pikepdf.String("Hello"), pikepdf.Operator("Tj"),
				pikepdf.Operator("ET"),
			},
		},
		{
			"3.14 -1 +2 .5 -.25",
			[]pikepdf.Object{
				pikepdf.Real(3.14), pikepdf.Integer(-1), pikepdf.Integer(2),
				pikepdf.Real(0.5), pikepdf.Real(-0.25),
			},
		},
		{
			"true false null",
			[]pikepdf.Object{pikepdf.Boolean(true), pikepdf.Boolean(false), nil},
		},
		{
			"(a(b)c) (line\\nbreak) (\\101)",
			[]pikepdf.Object{
				pikepdf.String("a(b)c"),
				pikepdf.String("line\nbreak"),
				pikepdf.String("A"),
			},
		},
		{
			"<901FA3> <901fa>",
			[]pikepdf.Object{
				pikepdf.String{0x90, 0x1f, 0xa3},
				pikepdf.String{0x90, 0x1f, 0xa0},
			},
		},
		{
			"/Name /A#20B",
			[]pikepdf.Object{pikepdf.Name("Name"), pikepdf.Name("A B")},
		},
		{
			"[1 (two) /three] TJ",
			[]pikepdf.Object{
				pikepdf.Array{
					pikepdf.Integer(1),
					pikepdf.String("two"),
					pikepdf.Name("three"),
				},
				pikepdf.Operator("TJ"),
			},
		},
		{
			"<< /Type /Font /K [1 2] >> gs",
			[]pikepdf.Object{
				pikepdf.Dict{
					"Type": pikepdf.Name("Font"),
					"K":    pikepdf.Array{pikepdf.Integer(1), pikepdf.Integer(2)},
				},
				pikepdf.Operator("gs"),
			},
		},
		{
			"1 % a comment\n2",
			[]pikepdf.Object{pikepdf.Integer(1), pikepdf.Integer(2)},
		},
		{
			"", nil,
		},
	}
	for _, test := range cases {
		got := scanAll(t, test.in)
		if d := cmp.Diff(test.want, got); d != "" {
			t.Errorf("%q (-want +got):\n%s", test.in, d)
		}
	}
}

func TestScannerInlineData(t *testing.T) {
	cases := []struct {
		in   string
		data pikepdf.String
	}{
		// ordinary payload
		{"BI /W 1 ID \xff\xd8\nEI Q", pikepdf.String{0xff, 0xd8}},
		// payload ending at the end of the input
		{"BI ID \x00\x01\x02\nEI", pikepdf.String{0x00, 0x01, 0x02}},
		// "EI" inside the data does not terminate it unless it is
		// preceded by white space and followed by a token boundary
		{"BI ID x EIX y\nEI", pikepdf.String("x EIX y")},
		// empty payload
		{"BI ID \nEI", pikepdf.String(nil)},
	}
	for _, test := range cases {
		s := NewScanner(strings.NewReader(test.in))
		var data pikepdf.Object
		sawEI := false
		for {
			tok, err := s.Next()
			if err == io.EOF {
				break
			} else if err != nil {
				t.Fatalf("%q: %v", test.in, err)
			}
			if str, ok := tok.(pikepdf.String); ok {
				data = str
			}
			if tok == pikepdf.Operator("EI") {
				sawEI = true
			}
		}
		if d := cmp.Diff(test.data, data); d != "" {
			t.Errorf("%q data (-want +got):\n%s", test.in, d)
		}
		if !sawEI {
			t.Errorf("%q: EI operator not returned", test.in)
		}
	}
}

func TestScannerInlineDataUnterminated(t *testing.T) {
	s := NewScanner(strings.NewReader("BI /W 1 ID \xff\xd8\xd9"))
	for {
		_, err := s.Next()
		if err != nil {
			if err != io.ErrUnexpectedEOF {
				t.Errorf("got error %v, want io.ErrUnexpectedEOF", err)
			}
			break
		}
	}
}

func TestScannerErrors(t *testing.T) {
	cases := []string{
		">> Tj",
		"] Tj",
		"<< /A >>",
		"<0g>",
	}
	for _, in := range cases {
		s := NewScanner(strings.NewReader(in))
		var err error
		for err == nil {
			_, err = s.Next()
		}
		if err == io.EOF {
			t.Errorf("%q: expected scan error, got io.EOF", in)
		}
	}
}

func TestParse(t *testing.T) {
	const in = `q
1 0 0 1 72 720 cm
BT /F1 12 Tf (Hello, world!) Tj ET
BI /W 1 /H 1 /BPC 8 /CS /G ID x
EI
Q`
	entries, err := Parse(strings.NewReader(in), "")
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 8 {
		t.Fatalf("got %d instructions, want 8", len(entries))
	}

	var ops []pikepdf.Operator
	for _, entry := range entries {
		op, err := entry.Index(1)
		if err != nil {
			t.Fatal(err)
		}
		ops = append(ops, op.(pikepdf.Operator))
	}
	want := []pikepdf.Operator{
		"q", "cm", "BT", "Tf", "Tj", "ET", OpInlineImage, "Q",
	}
	if d := cmp.Diff(want, ops); d != "" {
		t.Errorf("operators (-want +got):\n%s", d)
	}

	img := entries[6].(*InlineImageInstruction)
	if d := cmp.Diff(pikepdf.String("x"), img.ImageData()); d != "" {
		t.Errorf("image data (-want +got):\n%s", d)
	}
}

func TestParseFiltered(t *testing.T) {
	const in = "q 1 0 0 1 0 0 cm (a) Tj Q"
	entries, err := Parse(strings.NewReader(in), "Tj")
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d instructions, want 1", len(entries))
	}
	inst := entries[0].(*Instruction)
	if inst.Operator() != "Tj" {
		t.Errorf("operator = %q, want Tj", inst.Operator())
	}
}
