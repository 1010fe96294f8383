package arraylist

import (
	"errors"
	"fmt"
	"testing"
)

func TestNewArena(t *testing.T) {
	tests := []struct {
		name       string
		chunkSlots int
		expected   int
	}{
		{"default chunk size", 0, DefaultChunkSlots},
		{"negative chunk size", -1, DefaultChunkSlots},
		{"custom chunk size", 256, 256},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewArena[int](tt.chunkSlots)
			if a.chunkSlots != tt.expected {
				t.Errorf("NewArena(%d) chunk size = %d, want %d", tt.chunkSlots, a.chunkSlots, tt.expected)
			}
			if len(a.chunks) != 1 {
				t.Errorf("NewArena(%d) chunks = %d, want 1", tt.chunkSlots, len(a.chunks))
			}
		})
	}
}

func TestArenaAllocate(t *testing.T) {
	a := NewArena[int](64)

	// Test normal allocation
	r1, err := a.Allocate(10)
	if err != nil {
		t.Fatalf("Allocate(10) error = %v", err)
	}
	if len(r1) != 10 || cap(r1) != 10 {
		t.Errorf("Allocate(10) len/cap = %d/%d, want 10/10", len(r1), cap(r1))
	}

	// Test zero allocation
	r2, err := a.Allocate(0)
	if r2 != nil || err != nil {
		t.Errorf("Allocate(0) = %v, %v, want nil, nil", r2, err)
	}

	// Test negative allocation
	r3, err := a.Allocate(-1)
	if r3 != nil || err != nil {
		t.Errorf("Allocate(-1) = %v, %v, want nil, nil", r3, err)
	}

	// Test allocation that forces chunk growth
	r4, err := a.Allocate(100) // Larger than initial chunk
	if err != nil {
		t.Fatalf("Allocate(100) error = %v", err)
	}
	if len(r4) != 100 {
		t.Errorf("Allocate(100) length = %d, want 100", len(r4))
	}
	if a.NumChunks() != 2 {
		t.Errorf("NumChunks after large allocation = %d, want 2", a.NumChunks())
	}
}

func TestArenaRegionsDoNotOverlap(t *testing.T) {
	a := NewArena[int](32)

	r1, _ := a.Allocate(8)
	r2, _ := a.Allocate(8)
	for i := range r1 {
		r1[i] = 1
	}
	for i := range r2 {
		r2[i] = 2
	}
	for i := range r1 {
		if r1[i] != 1 {
			t.Fatalf("r1[%d] = %d after writing r2, want 1", i, r1[i])
		}
	}

	// Three-index slicing keeps append on a region from spilling over.
	grown := append(r1, 99)
	if &grown[0] == &r1[0] {
		t.Error("append on a full region reused arena memory")
	}
	if r2[0] != 2 {
		t.Errorf("r2[0] = %d after append on r1, want 2", r2[0])
	}
}

func TestArenaFreeRollsBackTail(t *testing.T) {
	a := NewArena[int](64)

	r1, _ := a.Allocate(10)
	r2, _ := a.Allocate(20)
	if a.SizeInUse() != 30 {
		t.Fatalf("SizeInUse = %d, want 30", a.SizeInUse())
	}

	// Freeing a region that is not the most recent one leaves the offset alone.
	a.Free(r1)
	if a.SizeInUse() != 30 {
		t.Errorf("SizeInUse after freeing non-tail region = %d, want 30", a.SizeInUse())
	}

	a.Free(r2)
	if a.SizeInUse() != 10 {
		t.Errorf("SizeInUse after freeing tail region = %d, want 10", a.SizeInUse())
	}

	r3, _ := a.Allocate(20)
	if &r3[0] != &r2[0] {
		t.Error("expected tail allocation to reuse the freed slots")
	}
}

func TestArenaEnsureCapacity(t *testing.T) {
	a := NewArena[int](64)
	initialChunks := a.NumChunks()

	// Ensure capacity within current chunk
	if err := a.EnsureCapacity(10); err != nil {
		t.Fatalf("EnsureCapacity(10) error = %v", err)
	}
	if a.NumChunks() != initialChunks {
		t.Errorf("EnsureCapacity(10) changed chunk count")
	}

	// Ensure capacity that requires new chunk
	if err := a.EnsureCapacity(200); err != nil {
		t.Fatalf("EnsureCapacity(200) error = %v", err)
	}
	if a.NumChunks() != initialChunks+1 {
		t.Errorf("EnsureCapacity(200) chunks = %d, want %d", a.NumChunks(), initialChunks+1)
	}
}

func TestArenaReset(t *testing.T) {
	a := NewArena[int](64)

	r, _ := a.Allocate(10)
	r[3] = 42
	if _, err := a.Allocate(100); err != nil {
		t.Fatalf("Allocate(100) error = %v", err)
	}

	// Reset and check
	a.Reset()
	if a.SizeInUse() != 0 {
		t.Errorf("SizeInUse after Reset() = %d, want 0", a.SizeInUse())
	}
	if r[3] != 0 {
		t.Errorf("slot not zeroed by Reset(): %d", r[3])
	}

	// Verify chunks are still there and get reused
	chunks := a.NumChunks()
	if _, err := a.Allocate(100); err != nil {
		t.Fatalf("Allocate(100) after Reset error = %v", err)
	}
	if a.NumChunks() != chunks {
		t.Errorf("NumChunks after reuse = %d, want %d", a.NumChunks(), chunks)
	}
}

func TestArenaRelease(t *testing.T) {
	a := NewArena[int](64)
	_, _ = a.Allocate(10)

	a.Release()

	if a.chunks != nil {
		t.Error("Expected chunks to be nil after Release()")
	}

	// Test panic on use after release
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic on use after Release()")
		}
	}()
	_, _ = a.Allocate(10)
}

func TestBoundedArena(t *testing.T) {
	a := NewBoundedArena[int](16, 40)

	if _, err := a.Allocate(16); err != nil {
		t.Fatalf("Allocate(16) error = %v", err)
	}
	if _, err := a.Allocate(20); err != nil {
		t.Fatalf("Allocate(20) error = %v", err)
	}
	if a.Capacity() > 40 {
		t.Errorf("Capacity = %d, exceeds bound 40", a.Capacity())
	}

	_, err := a.Allocate(10)
	if !errors.Is(err, ErrAllocation) {
		t.Fatalf("Allocate past bound error = %v, want ErrAllocation", err)
	}
}

func TestListOnArena(t *testing.T) {
	a := NewArena[int](1024)
	defer a.Release()

	l := New[int](WithAllocator[int](a))
	for i := 0; i < 100; i++ {
		if err := l.Append(i); err != nil {
			t.Fatalf("Append(%d) error = %v", i, err)
		}
	}
	for i := 0; i < 100; i++ {
		if v := l.Index(i); v != i {
			t.Fatalf("Index(%d) = %d, want %d", i, v, i)
		}
	}

	// Regions 1, 2, 4, ..., 64 were superseded; the final 128-slot region is
	// the chunk tail and rolls back on Release.
	l.Release()
	if a.SizeInUse() != 127 {
		t.Errorf("SizeInUse after Release = %d, want 127", a.SizeInUse())
	}
	a.Reset()
	if a.SizeInUse() != 0 {
		t.Errorf("SizeInUse after Reset = %d, want 0", a.SizeInUse())
	}
}

func BenchmarkArenaAllocate(b *testing.B) {
	a := NewArena[int64](1 << 16)
	sizes := []int{1, 8, 64, 512}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("size-%d", size), func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = a.Allocate(size)
				if i%1000 == 999 { // Reset periodically to avoid growing too much
					a.Reset()
				}
			}
		})
	}
}

func BenchmarkArenaVsBuiltin(b *testing.B) {
	b.Run("arena", func(b *testing.B) {
		a := NewArena[int64](1 << 16)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = a.Allocate(8)
			if i%1000 == 999 {
				a.Reset()
			}
		}
	})

	b.Run("builtin", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = make([]int64, 8)
		}
	})
}
