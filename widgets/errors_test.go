package widgets

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestErrorFormatting(t *testing.T) {
	err := newError("checkbox.set", KindValidation, "checkbox can only be set to 0 or 1, not %d", 2)
	want := "checkbox.set [validation]: checkbox can only be set to 0 or 1, not 2"
	if err.Error() != want {
		t.Fatalf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestErrorMatchesKindSentinel(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", newError("list.select_first", KindOutOfRange, "list is empty"))
	if !errors.Is(wrapped, ErrOutOfRange) {
		t.Fatalf("wrapped error does not match its kind")
	}
	if errors.Is(wrapped, ErrConversion) {
		t.Fatalf("wrapped error matches another kind")
	}
	if KindOf(wrapped) != KindOutOfRange {
		t.Fatalf("KindOf = %s", KindOf(wrapped))
	}
	if KindOf(errors.New("plain")) != KindUnknown {
		t.Fatalf("plain error should be KindUnknown")
	}
	unknown := &Error{Op: "x", Kind: KindUnknown, Err: errors.New("y")}
	if errors.Is(unknown, ErrState) {
		t.Fatalf("unknown kind matched a sentinel")
	}
}

func TestStringify(t *testing.T) {
	tests := []struct {
		name    string
		in      any
		want    string
		wantErr bool
	}{
		{name: "string", in: "s", want: "s"},
		{name: "bytes", in: []byte("b"), want: "b"},
		{name: "bool", in: false, want: "false"},
		{name: "uint8", in: uint8(7), want: "7"},
		{name: "float", in: 0.25, want: "0.25"},
		{name: "stringer", in: KindState, want: "state"},
		{name: "error", in: errors.New("e"), want: "e"},
		{name: "empty struct", in: struct{}{}, want: "{}"},
		{name: "slice", in: []int{1, 2}, want: "[1 2]"},
		{name: "nil", in: nil, wantErr: true},
		{name: "func", in: func() {}, wantErr: true},
		{name: "pointer", in: new(int), wantErr: true},
		{name: "nil stringer pointer", in: (*time.Time)(nil), wantErr: true},
		{name: "nil error pointer", in: (*Error)(nil), wantErr: true},
		{name: "struct", in: struct{ A int }{}, wantErr: true},
		{name: "slice of funcs", in: []func(){nil}, wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := stringify(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("stringify: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestSequence(t *testing.T) {
	if _, ok := sequence("abc"); ok {
		t.Fatalf("string treated as sequence")
	}
	if _, ok := sequence([]byte("abc")); ok {
		t.Fatalf("[]byte treated as sequence")
	}
	items, ok := sequence([2]int{4, 5})
	if !ok || len(items) != 2 || items[1] != 5 {
		t.Fatalf("array: %v %v", items, ok)
	}
}

func TestStringsOfNamesElement(t *testing.T) {
	_, err := stringsOf("text.set", []any{"a", nil})
	if !errors.Is(err, ErrConversion) {
		t.Fatalf("expected conversion error, got %v", err)
	}
	if want := "text.set [conversion]: element 1 (<nil>): no string form"; err.Error() != want {
		t.Fatalf("Error() = %q, want %q", err.Error(), want)
	}
}
