package TreeMap

import (
	"io"

	"github.com/orderstat/go-ordered/Trees"
	"golang.org/x/exp/constraints"
)

// TreeMap is an ordered map backed by Trees.AVLTree. Keys iterate in
// ascending order and rank queries run in O(log n). It is not safe for
// concurrent use; wrap it in a lock if multiple goroutines mutate it.
// Sizes are tracked in uint32, so a TreeMap holds at most 2^32-1 pairs.
type TreeMap[K constraints.Ordered, V any] struct {
	t *Trees.AVLTree[K, V, uint32]
}

// New returns an empty TreeMap.
func New[K constraints.Ordered, V any]() *TreeMap[K, V] {
	return &TreeMap[K, V]{Trees.MakeAVLTree[K, V, uint32]()}
}

// From builds a TreeMap from sorted unique keys and their values in O(n);
// the arguments follow the contract of Trees.BuildAVLTree.
func From[K constraints.Ordered, V any](ks []K, vs []V, safe bool) *TreeMap[K, V] {
	return &TreeMap[K, V]{Trees.BuildAVLTree[K, V, uint32](ks, vs, safe)}
}

// Put stores v under k and returns true if k wasn't present. A present
// key keeps its existing value and Put returns false; use Remove first
// to replace a value.
func (u *TreeMap[K, V]) Put(k K, v V) bool {
	return u.t.Insert(k, v)
}

func (u *TreeMap[K, V]) HasKey(k K) bool {
	return u.t.Has(k)
}

func (u *TreeMap[K, V]) Get(k K) (V, bool) {
	return u.t.Get(k)
}

func (u *TreeMap[K, V]) Remove(k K) bool {
	return u.t.Remove(k)
}

func (u *TreeMap[K, V]) Min() (K, bool) {
	return u.t.Minimum()
}

func (u *TreeMap[K, V]) Max() (K, bool) {
	return u.t.Maximum()
}

// RankOf [Maps.Map.RankOf]
func (u *TreeMap[K, V]) RankOf(k K) uint {
	return u.t.RankOf(k)
}

// Kth [Maps.Map.Kth]
func (u *TreeMap[K, V]) Kth(k uint) (K, V, bool) {
	return u.t.Kth(k)
}

// Keys returns an iterator closure over the keys in ascending order.
// The map must not be modified until the closure is exhausted.
func (u *TreeMap[K, V]) Keys() func() (K, bool) {
	return u.t.InOrder()
}

// Pairs returns an iterator closure over the pairs in ascending key order.
// The map must not be modified until the closure is exhausted.
func (u *TreeMap[K, V]) Pairs() func() (K, V, bool) {
	return u.t.Pairs()
}

func (u *TreeMap[K, V]) Size() uint {
	return u.t.Size()
}

func (u *TreeMap[K, V]) Clear() {
	u.t.Clear()
}

// Fprint writes the shape of the underlying tree to w for debugging.
func (u *TreeMap[K, V]) Fprint(w io.Writer) {
	u.t.Fprint(w)
}
