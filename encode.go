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

import "fmt"

// EncodeError indicates that a Go value could not be converted into a
// PDF object by [AsObject].
type EncodeError struct {
	Value any
}

func (err *EncodeError) Error() string {
	return fmt.Sprintf("cannot encode %T as a PDF object", err.Value)
}

// AsObject converts a Go value into the corresponding PDF object.
// [Object] values (including nil) are passed through unchanged.
// Booleans, integers, floats, strings, byte slices, []any, and maps with
// string or [Name] keys are converted element-wise.  All other values
// fail with an [*EncodeError].
func AsObject(v any) (Object, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case Object:
		return x, nil
	case bool:
		return Boolean(x), nil
	case int:
		return Integer(x), nil
	case int8:
		return Integer(x), nil
	case int16:
		return Integer(x), nil
	case int32:
		return Integer(x), nil
	case int64:
		return Integer(x), nil
	case uint:
		return Integer(x), nil
	case uint8:
		return Integer(x), nil
	case uint16:
		return Integer(x), nil
	case uint32:
		return Integer(x), nil
	case uint64:
		return Integer(x), nil
	case float32:
		return Real(x), nil
	case float64:
		return Real(x), nil
	case string:
		return String(x), nil
	case []byte:
		return String(x), nil
	case []any:
		arr := make(Array, len(x))
		for i, elem := range x {
			obj, err := AsObject(elem)
			if err != nil {
				return nil, err
			}
			arr[i] = obj
		}
		return arr, nil
	case map[string]any:
		dict := make(Dict, len(x))
		for key, elem := range x {
			obj, err := AsObject(elem)
			if err != nil {
				return nil, err
			}
			dict[Name(key)] = obj
		}
		return dict, nil
	case map[Name]any:
		dict := make(Dict, len(x))
		for key, elem := range x {
			obj, err := AsObject(elem)
			if err != nil {
				return nil, err
			}
			dict[key] = obj
		}
		return dict, nil
	default:
		return nil, &EncodeError{Value: v}
	}
}
