package arraylist

import (
	"errors"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	cause := errors.New("budget exhausted")
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"sentinel", ErrIndexOutOfRange, "arraylist: index_out_of_range"},
		{"range", rangeError("At", 5, 3), "arraylist: At: index_out_of_range (index 5, bound 3)"},
		{"alloc", allocError("Reserve", 64, nil), "arraylist: Reserve: allocation (requested 64 slots)"},
		{"alloc with cause", allocError("Append", 8, cause), "arraylist: Append: allocation (requested 8 slots): budget exhausted"},
		{"invalidated", invalidatedError("Iterator.Get", 2), "arraylist: Iterator.Get: invalidated"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorIs(t *testing.T) {
	cause := errors.New("budget exhausted")
	err := allocError("Append", 8, cause)

	if !errors.Is(err, ErrAllocation) {
		t.Error("allocation error does not match ErrAllocation")
	}
	if errors.Is(err, ErrIndexOutOfRange) {
		t.Error("allocation error matches ErrIndexOutOfRange")
	}
	if !errors.Is(err, cause) {
		t.Error("allocation error does not unwrap to its cause")
	}

	var e *Error
	if !errors.As(err, &e) || e.Op != "Append" || e.Requested != 8 {
		t.Errorf("errors.As = %+v", e)
	}
}
