package workload

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/pavanmanishd/arraylist"
)

// Result summarizes a replay.
type Result struct {
	Name     string
	Ops      int // operations executed, repeats included
	Failures int // operations that returned an error

	Stats arraylist.ListStats
	Arena *arraylist.ArenaMetrics // nil unless the arena backend was used

	// Snapshot is the final contents in deterministic CBOR.
	Snapshot []byte
	Digest   Hash
}

// Run replays w against a fresh list. Failed operations leave the list as
// it was, so unless w.FailFast is set they are logged and counted and the
// replay continues. A nil logger discards all output.
func Run(w *Workload, logger *zap.Logger) (*Result, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("workload", w.Name))

	var arena *arraylist.Arena[int64]
	var alloc arraylist.Allocator[int64] = arraylist.Heap[int64]{}
	if w.Allocator == AllocatorArena {
		arena = arraylist.NewArena[int64](w.ChunkSlots)
		defer arena.Release()
		alloc = arena
	}
	budget := w.MaxSlots
	if budget == 0 {
		budget = DefaultMaxSlots
	}
	alloc = arraylist.NewLimit(alloc, budget)

	opts := []arraylist.Option{
		arraylist.WithAllocator(alloc),
		arraylist.WithLogger(logger),
	}
	if w.Growth != 0 {
		opts = append(opts, arraylist.WithGrowth(arraylist.Factor(w.Growth)))
	}
	l := arraylist.New[int64](opts...)
	defer l.Release()

	res := &Result{Name: w.Name}
	for i, op := range w.Ops {
		for n := op.times(); n > 0; n-- {
			res.Ops++
			err := apply(l, op)
			if err == nil {
				continue
			}
			res.Failures++
			if w.FailFast {
				return nil, fmt.Errorf("ops[%d] %s: %w", i, op.Kind, err)
			}
			logger.Warn("operation failed",
				zap.Int("index", i),
				zap.String("op", op.Kind),
				zap.Int("len", l.Len()),
				zap.Error(err))
		}
	}

	snapshot, err := l.MarshalCBOR()
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}
	res.Snapshot = snapshot
	res.Digest = Digest(snapshot)
	res.Stats = l.Stats()
	if arena != nil {
		m := arena.Metrics()
		res.Arena = &m
	}

	logger.Info("workload replayed",
		zap.Int("ops", res.Ops),
		zap.Int("failures", res.Failures),
		zap.Int("len", res.Stats.Len),
		zap.Int("cap", res.Stats.Cap),
		zap.Int("reallocations", res.Stats.Reallocations),
		zap.Stringer("digest", res.Digest))
	return res, nil
}

func apply(l *arraylist.List[int64], op Op) error {
	switch op.Kind {
	case OpAppend:
		return l.AppendSlice(op.Values...)
	case OpInsert:
		return l.Insert(op.Pos, op.Values...)
	case OpErase:
		count := op.Count
		if count == 0 {
			count = 1
		}
		return l.EraseRange(op.Pos, op.Pos+count)
	case OpSet:
		return l.Set(op.Pos, op.Values[0])
	case OpReserve:
		return l.Reserve(op.N)
	case OpShrink:
		return l.ShrinkToFit()
	case OpClear:
		l.Clear()
		return nil
	case OpPop:
		_, err := l.PopBack()
		return err
	case OpResize:
		return l.Resize(op.N)
	case OpTruncate:
		return l.Truncate(op.N)
	}
	return fmt.Errorf("unknown op %q", op.Kind)
}
