package forgetful_test

import (
	"fmt"
	"testing"

	forgetful "github.com/probablyarth/forgetful-go"
	"golang.org/x/sync/errgroup"
)

// ---------------------------------------------------------------------------
// Single-goroutine benchmarks: measure per-call latency.
// ---------------------------------------------------------------------------

// Notice followed by Release of the same item.
func BenchmarkNoticeRelease(b *testing.B) {
	o := forgetful.New[string]()

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		obs, _ := o.Notice("k")
		obs.Release()
	}
}

// Repeat path: the item is already held.
func BenchmarkNoticeRepeat(b *testing.B) {
	o := forgetful.New[string]()
	obs, _ := o.Notice("k")
	defer obs.Release()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		o.Notice("k")
	}
}

// Walk a chain of depth 64, holding every ancestor.
func BenchmarkWithinChain(b *testing.B) {
	const depth = 64
	o := forgetful.New[int]()

	var walk func(n int) error
	walk = func(n int) error {
		if n == depth {
			return nil
		}
		return o.Within(n, func() error { return walk(n + 1) })
	}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if err := walk(0); err != nil {
			b.Fatal(err)
		}
	}
}

// Baseline: a bare map used as an ancestor set, no tokens.
func BenchmarkMapChain(b *testing.B) {
	const depth = 64
	seen := make(map[int]struct{})

	var walk func(n int) error
	walk = func(n int) error {
		if n == depth {
			return nil
		}
		if _, ok := seen[n]; ok {
			return forgetful.ErrCycle
		}
		seen[n] = struct{}{}
		defer delete(seen, n)
		return walk(n + 1)
	}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if err := walk(0); err != nil {
			b.Fatal(err)
		}
	}
}

// ---------------------------------------------------------------------------
// Concurrent benchmarks: measure throughput under contention.
// ---------------------------------------------------------------------------

// 100 goroutines each noticing a unique item.
func BenchmarkConcurrent_UniqueItems(b *testing.B) {
	items := make([]string, 100)
	for i := range items {
		items[i] = fmt.Sprintf("item-%d", i)
	}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		o := forgetful.New[string]()
		var g errgroup.Group
		for j := range items {
			g.Go(func() error {
				obs, _ := o.Notice(items[j])
				obs.Release()
				return nil
			})
		}
		g.Wait()
	}
}

// b.RunParallel: every goroutine contends for the same item.
func BenchmarkParallel_SameItem(b *testing.B) {
	o := forgetful.New[string]()

	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if obs, ok := o.Notice("k"); ok {
				obs.Release()
			}
		}
	})
}
