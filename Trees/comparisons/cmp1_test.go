package comparisons

import (
	"math/rand"
	"testing"

	"github.com/emirpasic/gods/trees/avltree"
	"github.com/google/btree"
	"github.com/orderstat/go-ordered/Trees"
	"github.com/petar/GoLLRB/llrb"
)

const benchmarkItemCount = 1 << 14

var rg = *rand.New(rand.NewSource(1))

// intItem adapts int to llrb.Item.
type intItem int

func (x intItem) Less(than llrb.Item) bool {
	return x < than.(intItem)
}

// compares with https://github.com/google/btree, https://github.com/petar/GoLLRB
// and https://github.com/emirpasic/gods using insert/delete/query workloads.
// The b-tree and llrb keep keys only; gods/avltree and Trees.AVLTree keep pairs.
func setupAVLTree(b *testing.B) *Trees.AVLTree[int, int, uint] {
	b.Helper()
	m := Trees.MakeAVLTree[int, int, uint]()
	for i := 0; i < benchmarkItemCount; i++ {
		m.Insert(i, i)
	}
	return m
}

func setupBTree(b *testing.B) *btree.BTreeG[int] {
	b.Helper()
	m := btree.NewOrderedG[int](32)
	for i := 0; i < benchmarkItemCount; i++ {
		m.ReplaceOrInsert(i)
	}
	return m
}

func setupLLRB(b *testing.B) *llrb.LLRB {
	b.Helper()
	m := llrb.New()
	for i := 0; i < benchmarkItemCount; i++ {
		m.InsertNoReplace(intItem(i))
	}
	return m
}

func setupGods(b *testing.B) *avltree.Tree {
	b.Helper()
	m := avltree.NewWithIntComparator()
	for i := 0; i < benchmarkItemCount; i++ {
		m.Put(i, i)
	}
	return m
}

// TestCrossBTree runs the same random workload against Trees.AVLTree and
// btree.BTreeG and expects identical contents afterwards.
func TestCrossBTree(t *testing.T) {
	mine := Trees.MakeAVLTree[int, int, uint]()
	ref := btree.NewOrderedG[int](8)
	for n := 0; n < benchmarkItemCount*4; n++ {
		k := rg.Intn(benchmarkItemCount)
		if rg.Intn(3) == 0 {
			_, refDel := ref.Delete(k)
			if mine.Remove(k) != refDel {
				t.Fatalf("delete of key %d disagrees", k)
			}
		} else {
			_, refHad := ref.ReplaceOrInsert(k)
			if mine.Insert(k, k) == refHad {
				t.Fatalf("insert of key %d disagrees", k)
			}
		}
	}
	if mine.Corrupt() {
		t.Fatal("tree is corrupt")
	}
	if int(mine.Size()) != ref.Len() {
		t.Fatalf("sizes disagree: %d %d", mine.Size(), ref.Len())
	}
	next := mine.InOrder()
	ref.Ascend(func(k int) bool {
		a, in := next()
		if !in || a != k {
			t.Fatalf("keys disagree: %d %d", a, k)
		}
		return true
	})
}

// TestCrossLLRB checks rank queries against an llrb kept in lockstep.
func TestCrossLLRB(t *testing.T) {
	mine := Trees.MakeAVLTree[int, int, uint]()
	ref := llrb.New()
	for n := 0; n < benchmarkItemCount; n++ {
		k := rg.Intn(benchmarkItemCount)
		if mine.Insert(k, k) {
			ref.InsertNoReplace(intItem(k))
		}
	}
	if int(mine.Size()) != ref.Len() {
		t.Fatalf("sizes disagree: %d %d", mine.Size(), ref.Len())
	}
	for i := uint(1); i <= mine.Size(); i++ {
		k, _, in := mine.Kth(i)
		if !in {
			t.Fatalf("nothing at rank %d", i)
		}
		if ref.Get(intItem(k)) == nil {
			t.Fatalf("llrb misses key %d at rank %d", k, i)
		}
		if mine.RankOf(k) != i {
			t.Fatalf("rank of key %d doesn't invert %d", k, i)
		}
	}
}

func Benchmark1InsertAVLTree(b *testing.B) {
	for n := 0; n < b.N; n++ {
		m := Trees.MakeAVLTree[int, int, uint]()
		for i := 0; i < benchmarkItemCount; i++ {
			m.Insert(i, i)
		}
	}
}

func Benchmark1InsertBTree(b *testing.B) {
	for n := 0; n < b.N; n++ {
		m := btree.NewOrderedG[int](32)
		for i := 0; i < benchmarkItemCount; i++ {
			m.ReplaceOrInsert(i)
		}
	}
}

func Benchmark1InsertLLRB(b *testing.B) {
	for n := 0; n < b.N; n++ {
		m := llrb.New()
		for i := 0; i < benchmarkItemCount; i++ {
			m.InsertNoReplace(intItem(i))
		}
	}
}

func Benchmark1InsertGods(b *testing.B) {
	for n := 0; n < b.N; n++ {
		m := avltree.NewWithIntComparator()
		for i := 0; i < benchmarkItemCount; i++ {
			m.Put(i, i)
		}
	}
}

func Benchmark2ReadAVLTree(b *testing.B) {
	m := setupAVLTree(b)
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		for i := 0; i < benchmarkItemCount; i++ {
			if j, _ := m.Get(i); j != i {
				b.Fail()
			}
		}
	}
}

func Benchmark2ReadBTree(b *testing.B) {
	m := setupBTree(b)
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		for i := 0; i < benchmarkItemCount; i++ {
			if j, _ := m.Get(i); j != i {
				b.Fail()
			}
		}
	}
}

func Benchmark2ReadLLRB(b *testing.B) {
	m := setupLLRB(b)
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		for i := 0; i < benchmarkItemCount; i++ {
			if m.Get(intItem(i)) == nil {
				b.Fail()
			}
		}
	}
}

func Benchmark2ReadGods(b *testing.B) {
	m := setupGods(b)
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		for i := 0; i < benchmarkItemCount; i++ {
			if j, _ := m.Get(i); j != i {
				b.Fail()
			}
		}
	}
}

func Benchmark3DeleteAVLTree(b *testing.B) {
	for n := 0; n < b.N; n++ {
		b.StopTimer()
		m := setupAVLTree(b)
		b.StartTimer()
		for i := 0; i < benchmarkItemCount; i++ {
			m.Remove(i)
		}
	}
}

func Benchmark3DeleteBTree(b *testing.B) {
	for n := 0; n < b.N; n++ {
		b.StopTimer()
		m := setupBTree(b)
		b.StartTimer()
		for i := 0; i < benchmarkItemCount; i++ {
			m.Delete(i)
		}
	}
}

func Benchmark3DeleteLLRB(b *testing.B) {
	for n := 0; n < b.N; n++ {
		b.StopTimer()
		m := setupLLRB(b)
		b.StartTimer()
		for i := 0; i < benchmarkItemCount; i++ {
			m.Delete(intItem(i))
		}
	}
}

func Benchmark3DeleteGods(b *testing.B) {
	for n := 0; n < b.N; n++ {
		b.StopTimer()
		m := setupGods(b)
		b.StartTimer()
		for i := 0; i < benchmarkItemCount; i++ {
			m.Remove(i)
		}
	}
}
