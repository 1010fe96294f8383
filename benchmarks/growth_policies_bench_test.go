package arraylist_test

import (
	"fmt"
	"testing"

	"github.com/pavanmanishd/arraylist"
)

// BenchmarkGrowthPolicies compares append cost across growth factors
func BenchmarkGrowthPolicies(b *testing.B) {
	factors := []float64{1.25, 1.5, 2, 4}

	for _, f := range factors {
		b.Run(fmt.Sprintf("Heap_x%g", f), func(b *testing.B) {
			policy := arraylist.Factor(f)
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				l := arraylist.New[int64](arraylist.WithGrowth(policy))
				for j := 0; j < 10000; j++ {
					_ = l.Append(int64(j))
				}
			}
		})

		b.Run(fmt.Sprintf("Arena_x%g", f), func(b *testing.B) {
			policy := arraylist.Factor(f)
			a := arraylist.NewArena[int64](1 << 16)
			defer a.Release()
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				l := arraylist.New[int64](arraylist.WithAllocator[int64](a), arraylist.WithGrowth(policy))
				for j := 0; j < 10000; j++ {
					_ = l.Append(int64(j))
				}
				a.Reset()
			}
		})
	}
}

// BenchmarkConcurrencyPatterns tests lists sharing one arena versus one arena each
func BenchmarkConcurrencyPatterns(b *testing.B) {
	b.Run("SyncArena_Shared", func(b *testing.B) {
		s := arraylist.NewSyncArena[int64](1 << 20)
		defer s.Release()

		b.ResetTimer()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				l := arraylist.New[int64](arraylist.WithAllocator[int64](s))
				for j := 0; j < 64; j++ {
					_ = l.Append(int64(j))
				}
				l.Release()
			}
		})
	})

	b.Run("Arena_PerGoroutine", func(b *testing.B) {
		b.ResetTimer()
		b.RunParallel(func(pb *testing.PB) {
			a := arraylist.NewArena[int64](1 << 20)
			defer a.Release()

			i := 0
			for pb.Next() {
				l := arraylist.New[int64](arraylist.WithAllocator[int64](a))
				for j := 0; j < 64; j++ {
					_ = l.Append(int64(j))
				}
				i++
				if i%1000 == 999 {
					a.Reset()
				}
			}
		})
	})
}
