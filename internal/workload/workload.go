// Package workload loads scripted list workloads from YAML and replays them
// against an arraylist.List[int64].
//
// A workload file names the storage backend, the growth factor and an
// ordered list of operations:
//
//	name: front-inserts
//	allocator: arena
//	chunk_slots: 4096
//	growth: 1.5
//	ops:
//	  - op: append
//	    values: [1, 2, 3]
//	    repeat: 100
//	  - op: insert
//	    pos: 0
//	    values: [42]
//	  - op: erase
//	    pos: 10
//	    count: 5
//	  - op: shrink
//
// Replaying is deterministic: the same workload always yields the same final
// contents, and therefore the same digest.
package workload

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Allocator names accepted in a workload file.
const (
	AllocatorHeap  = "heap"
	AllocatorArena = "arena"
)

// DefaultMaxSlots is the slot budget of a workload that sets no max_slots.
const DefaultMaxSlots = 1 << 24

// Op kinds accepted in a workload file.
const (
	OpAppend   = "append"
	OpInsert   = "insert"
	OpErase    = "erase"
	OpSet      = "set"
	OpReserve  = "reserve"
	OpShrink   = "shrink"
	OpClear    = "clear"
	OpPop      = "pop"
	OpResize   = "resize"
	OpTruncate = "truncate"
)

// Workload is a replayable sequence of list operations.
type Workload struct {
	// Name identifies the workload in logs and reports.
	Name string `yaml:"name"`

	// Allocator selects the storage backend: "heap" (default) or "arena".
	Allocator string `yaml:"allocator"`

	// ChunkSlots sets the arena chunk size. Zero uses the arena default.
	ChunkSlots int `yaml:"chunk_slots"`

	// MaxSlots caps the slots the list may hold at once across all of its
	// live regions. Zero means DefaultMaxSlots. A tight cap exercises the
	// allocation failure paths.
	MaxSlots int `yaml:"max_slots"`

	// Growth is the capacity growth factor. Zero means doubling.
	Growth float64 `yaml:"growth"`

	// FailFast stops the replay at the first failed operation. Otherwise
	// failures are counted and the replay continues.
	FailFast bool `yaml:"fail_fast"`

	Ops []Op `yaml:"ops"`
}

// Op is a single list operation.
type Op struct {
	Kind   string  `yaml:"op"`
	Pos    int     `yaml:"pos,omitempty"`
	Count  int     `yaml:"count,omitempty"`
	N      int     `yaml:"n,omitempty"`
	Values []int64 `yaml:"values,omitempty"`
	Repeat int     `yaml:"repeat,omitempty"`
}

// Load reads and validates a workload file.
func Load(path string) (*Workload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	w, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return w, nil
}

// Parse decodes and validates a workload document. Unknown keys are rejected.
func Parse(data []byte) (*Workload, error) {
	var w Workload
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&w); err != nil {
		return nil, fmt.Errorf("parsing workload: %w", err)
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return &w, nil
}

// Validate checks the workload for values Run cannot interpret. Positions
// are not checked here; an out-of-range position is a replay failure.
func (w *Workload) Validate() error {
	var errs []error
	switch w.Allocator {
	case "", AllocatorHeap, AllocatorArena:
	default:
		errs = append(errs, fmt.Errorf("unknown allocator %q (want %q or %q)", w.Allocator, AllocatorHeap, AllocatorArena))
	}
	if w.ChunkSlots < 0 {
		errs = append(errs, fmt.Errorf("chunk_slots must not be negative, got %d", w.ChunkSlots))
	}
	if w.MaxSlots < 0 {
		errs = append(errs, fmt.Errorf("max_slots must not be negative, got %d", w.MaxSlots))
	}
	if w.Growth != 0 && !(w.Growth > 1) {
		errs = append(errs, fmt.Errorf("growth must be > 1, got %v", w.Growth))
	}

	for i, op := range w.Ops {
		if err := op.validate(); err != nil {
			errs = append(errs, fmt.Errorf("ops[%d]: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

func (op Op) validate() error {
	if op.Repeat < 0 {
		return fmt.Errorf("repeat must not be negative, got %d", op.Repeat)
	}
	switch op.Kind {
	case OpAppend, OpInsert:
		if len(op.Values) == 0 {
			return fmt.Errorf("%s needs values", op.Kind)
		}
	case OpSet:
		if len(op.Values) != 1 {
			return fmt.Errorf("set needs exactly one value, got %d", len(op.Values))
		}
	case OpErase:
		if op.Count < 0 {
			return fmt.Errorf("erase count must not be negative, got %d", op.Count)
		}
	case OpReserve, OpResize, OpTruncate, OpShrink, OpClear, OpPop:
	case "":
		return errors.New("missing op")
	default:
		return fmt.Errorf("unknown op %q", op.Kind)
	}
	return nil
}

// times returns how often the op runs.
func (op Op) times() int {
	if op.Repeat == 0 {
		return 1
	}
	return op.Repeat
}
