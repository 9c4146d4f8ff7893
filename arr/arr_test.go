package arr_test

import (
	"errors"
	"testing"

	"github.com/hasbyte1/go-utils/arr"
)

func assertSlice[T comparable](t *testing.T, got, want []T) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("slice length: got %d want %d  (got=%v want=%v)", len(got), len(want), got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v want %v", i, got[i], want[i])
		}
	}
}

// ─── First / Last ─────────────────────────────────────────────────────────────

func TestFirst(t *testing.T) {
	v, ok := arr.First([]int{10, 20, 30})
	if !ok || v != 10 {
		t.Fatalf("First = %v, %v; want 10, true", v, ok)
	}
	_, ok = arr.First([]int{})
	if ok {
		t.Fatal("First on empty should return false")
	}
	v, ok = arr.First([]int{1, 2, 3, 4}, func(n int) bool { return n > 2 })
	if !ok || v != 3 {
		t.Fatalf("First predicate = %v, %v; want 3, true", v, ok)
	}
}

func TestLast(t *testing.T) {
	v, ok := arr.Last([]int{10, 20, 30})
	if !ok || v != 30 {
		t.Fatalf("Last = %v, %v; want 30, true", v, ok)
	}
	v, ok = arr.Last([]int{1, 2, 3, 4}, func(n int) bool { return n < 3 })
	if !ok || v != 2 {
		t.Fatalf("Last predicate = %v, %v; want 2, true", v, ok)
	}
	if _, ok = arr.Last([]int{1}, func(n int) bool { return n > 5 }); ok {
		t.Fatal("Last without match should return false")
	}
}

// ─── Transformation ───────────────────────────────────────────────────────────

func TestMap(t *testing.T) {
	got := arr.Map([]int{1, 2, 3}, func(n, _ int) int { return n * 2 })
	assertSlice(t, got, []int{2, 4, 6})
}

func TestFilter(t *testing.T) {
	got := arr.Filter([]int{1, 2, 3, 4, 5}, func(n, _ int) bool { return n%2 == 0 })
	assertSlice(t, got, []int{2, 4})
}

func TestReject(t *testing.T) {
	got := arr.Reject([]int{1, 2, 3, 4, 5}, func(n, _ int) bool { return n%2 == 0 })
	assertSlice(t, got, []int{1, 3, 5})
}

func TestReduce(t *testing.T) {
	sum := arr.Reduce([]int{1, 2, 3, 4, 5}, func(acc, n, _ int) int { return acc + n }, 0)
	if sum != 15 {
		t.Fatalf("Reduce = %d; want 15", sum)
	}
}

func TestCompact(t *testing.T) {
	assertSlice(t, arr.Compact([]string{"a", "", "b", ""}), []string{"a", "b"})
	assertSlice(t, arr.Compact([]int{0, 1, 0, 2}), []int{1, 2})
}

func TestUnique(t *testing.T) {
	got := arr.Unique([]int{1, 2, 2, 3, 3, 3})
	assertSlice(t, got, []int{1, 2, 3})
}

// ─── Restructuring ────────────────────────────────────────────────────────────

func TestChunk(t *testing.T) {
	chunks := arr.Chunk([]int{1, 2, 3, 4, 5}, 2)
	if len(chunks) != 3 {
		t.Fatalf("Chunk len = %d; want 3", len(chunks))
	}
	assertSlice(t, chunks[0], []int{1, 2})
	assertSlice(t, chunks[2], []int{5})
}

func TestChunkEmptyOrZero(t *testing.T) {
	if len(arr.Chunk([]int{}, 2)) != 0 {
		t.Fatal("Chunk empty should return empty")
	}
	if len(arr.Chunk([]int{1}, 0)) != 0 {
		t.Fatal("Chunk size 0 should return empty")
	}
}

func TestReverse(t *testing.T) {
	got := arr.Reverse([]int{1, 2, 3})
	assertSlice(t, got, []int{3, 2, 1})
}

func TestZip(t *testing.T) {
	pairs := arr.Zip([]string{"a", "b"}, []int{1, 2})
	if len(pairs) != 2 || pairs[0].First != "a" || pairs[0].Second != 1 {
		t.Fatalf("Zip = %v", pairs)
	}
	if n := len(arr.Zip([]int{1, 2, 3}, []int{10, 20})); n != 2 {
		t.Fatalf("Zip unequal len = %d; want 2", n)
	}
}

func TestCombine(t *testing.T) {
	m, err := arr.Combine([]string{"x", "y"}, []int{10, 20})
	if err != nil || m["y"] != 20 {
		t.Fatalf("Combine failed: %v %v", m, err)
	}
	_, err = arr.Combine([]string{"a"}, []int{1, 2})
	if !errors.Is(err, arr.ErrMismatchedLengths) {
		t.Fatalf("Combine mismatch err = %v; want ErrMismatchedLengths", err)
	}
}
