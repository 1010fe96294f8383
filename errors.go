package arraylist

import (
	"errors"
	"fmt"
	"strings"
)

// Kind categorizes a container error.
type Kind string

const (
	KindIndexOutOfRange Kind = "index_out_of_range"
	KindAllocation      Kind = "allocation"
	KindInvalidated     Kind = "invalidated"
)

// Sentinel errors for use with errors.Is.
var (
	ErrIndexOutOfRange = &Error{Kind: KindIndexOutOfRange, Index: -1, Bound: -1}
	ErrAllocation      = &Error{Kind: KindAllocation, Index: -1, Bound: -1}
	ErrInvalidated     = &Error{Kind: KindInvalidated, Index: -1, Bound: -1}
)

// Error is the structured error returned by List operations.
type Error struct {
	Cause     error
	Op        string
	Kind      Kind
	Index     int // offending index or position, -1 when not applicable
	Bound     int // valid upper bound for Index at the time of the call
	Requested int // requested slot count for allocation failures
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("arraylist: ")
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	b.WriteString(string(e.Kind))

	switch e.Kind {
	case KindIndexOutOfRange:
		if e.Index >= 0 || e.Bound >= 0 {
			fmt.Fprintf(&b, " (index %d, bound %d)", e.Index, e.Bound)
		}
	case KindAllocation:
		if e.Requested > 0 {
			fmt.Fprintf(&b, " (requested %d slots)", e.Requested)
		}
	}

	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Kind == t.Kind
	}
	return false
}

func rangeError(op string, index, bound int) error {
	return &Error{Op: op, Kind: KindIndexOutOfRange, Index: index, Bound: bound}
}

func allocError(op string, requested int, cause error) error {
	return &Error{Op: op, Kind: KindAllocation, Index: -1, Bound: -1, Requested: requested, Cause: cause}
}

func invalidatedError(op string, index int) error {
	return &Error{Op: op, Kind: KindInvalidated, Index: index, Bound: -1}
}
