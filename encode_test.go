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
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAsObject(t *testing.T) {
	cases := []struct {
		in   any
		want Object
	}{
		{nil, nil},
		{true, Boolean(true)},
		{7, Integer(7)},
		{int64(-2), Integer(-2)},
		{uint8(3), Integer(3)},
		{1.5, Real(1.5)},
		{float32(0.5), Real(0.5)},
		{"hello", String("hello")},
		{[]byte{0xff, 0xd8}, String{0xff, 0xd8}},
		{Name("Filter"), Name("Filter")},
		{Operator("Tj"), Operator("Tj")},
		{[]any{1, "a", nil}, Array{Integer(1), String("a"), nil}},
		{map[string]any{"W": 1, "H": 2}, Dict{"W": Integer(1), "H": Integer(2)}},
		{map[Name]any{"F": "fl"}, Dict{"F": String("fl")}},
		{Array{Integer(1)}, Array{Integer(1)}},
	}
	for _, test := range cases {
		got, err := AsObject(test.in)
		if err != nil {
			t.Errorf("AsObject(%v): unexpected error %v", test.in, err)
			continue
		}
		if d := cmp.Diff(test.want, got); d != "" {
			t.Errorf("AsObject(%v): unexpected result (-want +got):\n%s", test.in, d)
		}
	}
}

func TestAsObjectError(t *testing.T) {
	cases := []any{
		struct{}{},
		[]any{1, struct{}{}},
		map[string]any{"key": make(chan int)},
	}
	for _, test := range cases {
		_, err := AsObject(test)
		var encErr *EncodeError
		if !errors.As(err, &encErr) {
			t.Errorf("AsObject(%v): expected *EncodeError, got %v", test, err)
		}
	}
}
