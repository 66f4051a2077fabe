package widgets

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
)

var errNoStringForm = errors.New("no string form")

// stringify returns the string form of v. Values without a meaningful text
// representation (nil, functions, channels, bare structs and pointers) fail.
func stringify(v any) (string, error) {
	// A nil pointer may still satisfy fmt.Stringer through a value method,
	// which panics when called.
	if rv := reflect.ValueOf(v); (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) && rv.IsNil() {
		return "", errNoStringForm
	}
	switch x := v.(type) {
	case nil:
		return "", errNoStringForm
	case string:
		return x, nil
	case []byte:
		return string(x), nil
	case fmt.Stringer:
		return x.String(), nil
	case error:
		return x.Error(), nil
	case bool:
		return strconv.FormatBool(x), nil
	case int:
		return strconv.Itoa(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64), nil
	}
	if !coercible(reflect.ValueOf(v)) {
		return "", errNoStringForm
	}
	return fmt.Sprint(v), nil
}

func coercible(rv reflect.Value) bool {
	if !rv.IsValid() {
		return false
	}
	if rv.CanInterface() {
		switch rv.Interface().(type) {
		case fmt.Stringer, error:
			return true
		}
	}
	switch rv.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Slice, reflect.Array:
		for i := range rv.Len() {
			if !coercible(rv.Index(i)) {
				return false
			}
		}
		return true
	case reflect.Map:
		iter := rv.MapRange()
		for iter.Next() {
			if !coercible(iter.Key()) || !coercible(iter.Value()) {
				return false
			}
		}
		return true
	case reflect.Struct:
		// Set-like maps use struct{} values.
		return rv.NumField() == 0
	case reflect.Interface:
		if rv.IsNil() {
			return false
		}
		return coercible(rv.Elem())
	default:
		return false
	}
}

// sequence reports whether v is a slice or array (other than []byte) and
// returns its elements.
func sequence(v any) ([]any, bool) {
	switch x := v.(type) {
	case nil, string, []byte:
		return nil, false
	case []string:
		out := make([]any, len(x))
		for i, s := range x {
			out[i] = s
		}
		return out, true
	case []any:
		return x, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range rv.Len() {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// stringsOf converts every element of items, reporting the first element
// without a string form.
func stringsOf(op string, items []any) ([]string, error) {
	out := make([]string, len(items))
	for i, item := range items {
		s, err := stringify(item)
		if err != nil {
			return nil, &Error{Op: op, Kind: KindConversion, Err: fmt.Errorf("element %d (%T): %w", i, item, err)}
		}
		out[i] = s
	}
	return out, nil
}
