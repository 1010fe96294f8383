package arraylist

import (
	"testing"
)

func TestArenaMetrics(t *testing.T) {
	a := NewArena[int64](1024)

	// Test initial state
	if a.SizeInUse() != 0 {
		t.Errorf("Initial SizeInUse = %d, want 0", a.SizeInUse())
	}
	if a.NumChunks() != 1 {
		t.Errorf("Initial NumChunks = %d, want 1", a.NumChunks())
	}
	if a.Capacity() != 1024 {
		t.Errorf("Initial Capacity = %d, want 1024", a.Capacity())
	}
	if a.ChunkSlots() != 1024 {
		t.Errorf("ChunkSlots = %d, want 1024", a.ChunkSlots())
	}
	if a.Utilization() != 0 {
		t.Errorf("Initial Utilization = %f, want 0", a.Utilization())
	}

	_, _ = a.Allocate(100)
	_, _ = a.Allocate(200)
	if a.SizeInUse() != 300 {
		t.Errorf("SizeInUse = %d, want 300", a.SizeInUse())
	}

	utilization := a.Utilization()
	if utilization <= 0 || utilization > 1 {
		t.Errorf("Utilization = %f, want 0 < x <= 1", utilization)
	}

	// Force chunk growth
	_, _ = a.Allocate(2000) // Larger than chunk size
	if a.NumChunks() != 2 {
		t.Errorf("NumChunks after growth = %d, want 2", a.NumChunks())
	}
	if a.Capacity() != 3024 {
		t.Errorf("Capacity after growth = %d, want 3024", a.Capacity())
	}

	// Test metrics snapshot
	metrics := a.Metrics()
	if metrics.SizeInUse != a.SizeInUse() {
		t.Errorf("Metrics.SizeInUse = %d, want %d", metrics.SizeInUse, a.SizeInUse())
	}
	if metrics.Capacity != a.Capacity() {
		t.Errorf("Metrics.Capacity = %d, want %d", metrics.Capacity, a.Capacity())
	}
	if metrics.NumChunks != a.NumChunks() {
		t.Errorf("Metrics.NumChunks = %d, want %d", metrics.NumChunks, a.NumChunks())
	}
	if metrics.ChunkSlots != a.ChunkSlots() {
		t.Errorf("Metrics.ChunkSlots = %d, want %d", metrics.ChunkSlots, a.ChunkSlots())
	}
	if metrics.Utilization != a.Utilization() {
		t.Errorf("Metrics.Utilization = %f, want %f", metrics.Utilization, a.Utilization())
	}
}

func TestArenaMetricsAfterReset(t *testing.T) {
	a := NewArena[int](1024)

	_, _ = a.Allocate(500)
	if a.Utilization() == 0 {
		t.Error("Expected non-zero Utilization before reset")
	}

	a.Reset()
	if a.SizeInUse() != 0 {
		t.Errorf("SizeInUse after Reset = %d, want 0", a.SizeInUse())
	}
	if a.Utilization() != 0 {
		t.Errorf("Utilization after Reset = %f, want 0", a.Utilization())
	}
	// Chunks should remain
	if a.NumChunks() == 0 {
		t.Error("NumChunks should not be 0 after Reset")
	}
	if a.Capacity() == 0 {
		t.Error("Capacity should not be 0 after Reset")
	}
}

func TestArenaMetricsAfterRelease(t *testing.T) {
	a := NewArena[int](1024)
	_, _ = a.Allocate(100)

	a.Release()

	m := a.Metrics()
	if m.SizeInUse != 0 || m.NumChunks != 0 || m.Capacity != 0 || m.Utilization != 0 {
		t.Errorf("Metrics after Release = %+v, want zero usage", m)
	}
}

func TestArenaFullUtilization(t *testing.T) {
	a := NewArena[int](100)
	_, _ = a.Allocate(a.Capacity())
	if a.Utilization() != 1 {
		t.Errorf("Full arena Utilization = %f, want 1", a.Utilization())
	}
}

func TestListStats(t *testing.T) {
	l := New[int]()

	s := l.Stats()
	if s != (ListStats{}) {
		t.Errorf("Stats of new list = %+v, want zero", s)
	}
	if l.Utilization() != 0 {
		t.Errorf("Utilization with no capacity = %f, want 0", l.Utilization())
	}

	for i := 0; i < 5; i++ {
		_ = l.Append(i)
	}
	s = l.Stats()
	if s.Len != 5 || s.Cap != 8 {
		t.Errorf("len/cap = %d/%d, want 5/8", s.Len, s.Cap)
	}
	// Capacities 1, 2, 4, 8 relocating 0+1+2+4 elements.
	if s.Reallocations != 4 || s.Relocated != 7 {
		t.Errorf("reallocations/relocated = %d/%d, want 4/7", s.Reallocations, s.Relocated)
	}
	if s.Utilization != 5.0/8.0 {
		t.Errorf("Utilization = %f, want 0.625", s.Utilization)
	}

	_ = l.InsertAt(1, 9) // shifts 4
	_ = l.EraseAt(0)     // shifts 5
	if got := l.Stats().Shifted; got != 9 {
		t.Errorf("Shifted = %d, want 9", got)
	}

	_ = l.ShrinkToFit()
	if s := l.Stats(); s.Cap != 5 || s.Reallocations != 5 || s.Utilization != 1 {
		t.Errorf("after ShrinkToFit = %+v", s)
	}
}

func TestListStatsAllocFailures(t *testing.T) {
	l := New[int](WithAllocator[int](NewLimit[int](nil, 2)))
	_ = l.AppendSlice(1, 2)
	if err := l.Append(3); err == nil {
		t.Fatal("Append past the budget succeeded")
	}
	if err := l.Reserve(100); err == nil {
		t.Fatal("Reserve past the budget succeeded")
	}
	if got := l.Stats().AllocFailures; got != 2 {
		t.Errorf("AllocFailures = %d, want 2", got)
	}
}

func BenchmarkMetrics(b *testing.B) {
	a := NewArena[int64](1 << 16)
	// Pre-allocate some data
	for i := 0; i < 100; i++ {
		_, _ = a.Allocate(1000)
	}

	b.Run("SizeInUse", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			a.SizeInUse()
		}
	})

	b.Run("Metrics", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			a.Metrics()
		}
	})

	l, _ := WithCapacity[int](1024)
	b.Run("ListStats", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			l.Stats()
		}
	})
}
