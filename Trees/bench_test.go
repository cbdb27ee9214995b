package Trees

import "testing"
import "math/rand"

const size = 1 << 15

func BenchmarkAVLTree_Insert(b *testing.B) {
	var t *AVLTree[int, int, uint]
	for i := 0; i < b.N; i++ {
		t = MakeAVLTree[int, int, uint]()
		for j := range rand.Perm(size) {
			t.Insert(j, j)
		}
	}
	b.Log(t.averageDepth())
}

func BenchmarkAVLTree_Remove(b *testing.B) {
	var t Tree[int, int]
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		t = MakeAVLTree[int, int, uint]()
		for j := range rand.Perm(size) {
			t.Insert(j, j)
		}
		b.StartTimer()
		for j := 0; j < size; j++ {
			t.Remove(j)
		}
	}
}

func BenchmarkAVLTree_Get(b *testing.B) {
	t := MakeAVLTree[int, int, uint]()
	for j := range rand.Perm(size) {
		t.Insert(j, j)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j := 0; j < size; j++ {
			t.Get(j)
		}
	}
}

func BenchmarkAVLTree_Kth(b *testing.B) {
	t := MakeAVLTree[int, int, uint]()
	for j := range rand.Perm(size) {
		t.Insert(j, j)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j := uint(1); j <= size; j++ {
			t.Kth(j)
		}
	}
}

func BenchmarkAVLTree_All(b *testing.B) {
	var t *AVLTree[int, int, uint]
	for i := 0; i < b.N; i++ {
		t = MakeAVLTree[int, int, uint]()
		for j := range rand.Perm(size / 2) {
			t.Insert(j, j)
		}
		for j, k := range rand.Perm(size / 2) {
			if k&1 == 1 {
				t.Remove(j)
			}
		}
		for j := range rand.Perm(size / 2) {
			t.Insert(j+size, j)
		}
		for j, k := range rand.Perm(size / 2) {
			if k&1 == 1 {
				t.Insert(j, j)
			}
		}
	}
	b.Log(t.averageDepth())
}
