package Trees

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/exp/constraints"
)

// AVLTree is a binary search tree with no repeated keys holding a value
// of type V under each key. It maintains balance through rotations by
// checking the heights of subtrees, and additionally tracks the size of
// every subtree so that rank queries (RankOf, Kth) run in O(D).
// This struct holds a root pointer and a corresponding nilPtr used
// as nil described in nodePtr.
// The additional memory cost per node is size(S)+1 bytes for the size
// and height fields. Heights fit an int8 comfortably: the height of an
// AVL tree is less than 1.44*log2(n+2), far below 127 for any n that
// fits in memory.
// S is the type of the variables used for storing the sizes of different
// subtrees. Note that due to the way uint works in Go, and that the Tree
// interface defines the return value of some functions to be uint, S
// shouldn't be any type that will cause overflow when converted to uint.
// Generally, you should let S be a wide upperbound for the size of the tree.
type AVLTree[K constraints.Ordered, V any, S constraints.Unsigned] struct {
	root   nodePtr[K, V, S] //the root of the tree. It should be nilPtr initially.
	nilPtr nodePtr[K, V, S] // nilPtr is the pointer used instead of nil here, it follows the description in nodePtr
}

// MakeAVLTree returns an AVLTree satisfying the above definitions for nilPtr, root, and types.
// AVLTree shouldn't be created directly using struct literal.
func MakeAVLTree[K constraints.Ordered, V any, S constraints.Unsigned]() *AVLTree[K, V, S] {
	z := new(node[K, V, S])
	z.l, z.r = z, z
	return &AVLTree[K, V, S]{z, z}
}

// BuildAVLTree builds an AVLTree from the given sorted keys and their values
// recursively. This is faster than repeatedly calling Insert. ks must be sorted
// in ascending order and mustn't contain duplicate elements(satisfying AVLTree
// conditions); vs[i] is stored under ks[i] and len(vs) must equal len(ks).
// If safe==true, this function will check if the order conditions are met and
// panic with InvalidSliceError if the conditions are broken. Otherwise, this
// function won't perform the check, and it is up to the user to ensure the
// conditions are met(otherwise the tree will be corrupt). It's suggested to
// set safe to false if the conditions are known to be met as this can reduce
// some redundant checks.
// Time: O(n).
func BuildAVLTree[K constraints.Ordered, V any, S constraints.Unsigned](ks []K, vs []V, safe bool) *AVLTree[K, V, S] {
	z := new(node[K, V, S])
	z.l, z.r = z, z
	var build func([]K, []V) nodePtr[K, V, S]
	if safe {
		build = func(k []K, v []V) nodePtr[K, V, S] {
			if len(k) > 0 {
				mid := len(k) >> 1
				l, r := build(k[0:mid], v[0:mid]), build(k[mid+1:], v[mid+1:])
				if l != z && !(l.k < k[mid]) {
					panic(InvalidSliceError[K]{l.k, k[mid]})
				}
				if r != z && !(k[mid] < r.k) {
					panic(InvalidSliceError[K]{k[mid], r.k})
				}
				return &node[K, V, S]{k[mid], v[mid], l, r, S(len(k)), 1 + max(l.h, r.h)}
			} else {
				return z
			}
		}
	} else {
		build = func(k []K, v []V) nodePtr[K, V, S] {
			if len(k) > 0 {
				mid := len(k) >> 1
				l, r := build(k[0:mid], v[0:mid]), build(k[mid+1:], v[mid+1:])
				return &node[K, V, S]{k[mid], v[mid], l, r, S(len(k)), 1 + max(l.h, r.h)}
			} else {
				return z
			}
		}
	}
	return &AVLTree[K, V, S]{build(ks, vs), z}
}

// Size returns the size of the tree.
// Time: O(1); Space: O(1)
func (u AVLTree[K, V, S]) Size() uint {
	return uint(u.root.sz)
}

// Clear detaches the root; the garbage collector reclaims every node.
func (u *AVLTree[K, V, S]) Clear() {
	u.root = u.nilPtr
}

// balance factor of cur: height(left)-height(right). The sentinel has
// h=0 on both children of itself, so bf(nilPtr)=0.
func balance[K, V any, S constraints.Unsigned](cur nodePtr[K, V, S]) int8 {
	return cur.l.h - cur.r.h
}

// recompute the height and size of cur from its children.
func update[K, V any, S constraints.Unsigned](cur nodePtr[K, V, S]) {
	cur.h = 1 + max(cur.l.h, cur.r.h)
	cur.sz = cur.l.sz + cur.r.sz + 1
}

// rightRotation rotates the subtree at curPtr to the right, lifting the
// left child. curPtr is passed by reference in order to modify its content.
// If the left child is nilPtr the rotation is skipped and the subtree is
// left untouched. The demoted node is updated before the new subtree root.
// Time: O(1); Space: O(1)
func (u *AVLTree[K, V, S]) rightRotation(curPtr *nodePtr[K, V, S]) {
	cur := *curPtr
	lc := cur.l
	if lc == u.nilPtr {
		return
	}
	cur.l = lc.r
	lc.r = cur
	update(cur)
	update(lc)
	*curPtr = lc
}

// leftRotation rotates the subtree at curPtr to the left, lifting the
// right child. curPtr is passed by reference in order to modify its content.
// If the right child is nilPtr the rotation is skipped and the subtree is
// left untouched. The demoted node is updated before the new subtree root.
// Time: O(1); Space: O(1)
func (u *AVLTree[K, V, S]) leftRotation(curPtr *nodePtr[K, V, S]) {
	cur := *curPtr
	rc := cur.r
	if rc == u.nilPtr {
		return
	}
	cur.r = rc.l
	rc.l = cur
	update(cur)
	update(rc)
	*curPtr = rc
}

// leftRightRotation handles the left-right shape: a left rotation on the
// left child followed by a right rotation at curPtr. The guards of the
// single rotations carry over, so a missing pivot leaves the subtree untouched.
// Time: O(1); Space: O(1)
func (u *AVLTree[K, V, S]) leftRightRotation(curPtr *nodePtr[K, V, S]) {
	u.leftRotation(&(*curPtr).l)
	u.rightRotation(curPtr)
}

// rightLeftRotation handles the right-left shape: a right rotation on the
// right child followed by a left rotation at curPtr. The guards of the
// single rotations carry over, so a missing pivot leaves the subtree untouched.
// Time: O(1); Space: O(1)
func (u *AVLTree[K, V, S]) rightLeftRotation(curPtr *nodePtr[K, V, S]) {
	u.rightRotation(&(*curPtr).r)
	u.leftRotation(curPtr)
}

// insert the pair (k,v) to the subtree rooting at cur recursively. cur is
// passed by reference. A successful insertion returns true. A failed insertion
// happens when the key is already in u, in which case it returns false and the
// stored value is left as is. On the way back up each ancestor refreshes its
// height and size and restores balance; the rotation is chosen by comparing k
// with the key of the taller child.
func (u *AVLTree[K, V, S]) insert(curPtr *nodePtr[K, V, S], k K, v V) bool {
	if cur := *curPtr; cur == u.nilPtr {
		*curPtr = &node[K, V, S]{k, v, u.nilPtr, u.nilPtr, 1, 1}
		return true
	} else {
		inserted := false
		if k < cur.k {
			inserted = u.insert(&cur.l, k, v)
		} else if k == cur.k {
			return false
		} else {
			inserted = u.insert(&cur.r, k, v)
		}
		if inserted {
			update(cur)
			if bf := balance(cur); bf > 1 {
				if k > cur.l.k {
					u.leftRightRotation(curPtr)
				} else {
					u.rightRotation(curPtr)
				}
			} else if bf < -1 {
				if k < cur.r.k {
					u.rightLeftRotation(curPtr)
				} else {
					u.leftRotation(curPtr)
				}
			}
		}
		return inserted
	}
}

// Insert [Tree.Insert]. Recursive.
// It is a wrapper for insert. Inserting a key already in u returns false
// without updating the stored value.
// Time: O(D)
func (u *AVLTree[K, V, S]) Insert(k K, v V) bool {
	return u.insert(&u.root, k, v)
}

// remove the pair with key k from the subtree rooting at cur recursively.
// cur is passed by reference. Returns false if the removal failed(k doesn't
// exist in u), otherwise true. A node with two children swaps in its in-order
// successor, key and value both, then removes the successor key from the
// right subtree. On the way back up each ancestor refreshes its height and
// size and restores balance; the rotation is chosen by the balance factor
// sign of the taller child.
func (u *AVLTree[K, V, S]) remove(curPtr *nodePtr[K, V, S], k K) bool {
	cur := *curPtr
	if cur == u.nilPtr {
		return false
	}
	deleted := false
	if k < cur.k {
		deleted = u.remove(&cur.l, k)
	} else if k > cur.k {
		deleted = u.remove(&cur.r, k)
	} else {
		if cur.l == u.nilPtr {
			*curPtr = cur.r
			return true
		}
		if cur.r == u.nilPtr {
			*curPtr = cur.l
			return true
		}
		t := cur.r
		for t.l != u.nilPtr {
			t = t.l
		}
		cur.k, cur.v = t.k, t.v
		u.remove(&cur.r, t.k)
		deleted = true
	}
	if deleted {
		update(cur)
		if bf := balance(cur); bf > 1 {
			if balance(cur.l) >= 0 {
				u.rightRotation(curPtr)
			} else {
				u.leftRightRotation(curPtr)
			}
		} else if bf < -1 {
			if balance(cur.r) <= 0 {
				u.leftRotation(curPtr)
			} else {
				u.rightLeftRotation(curPtr)
			}
		}
	}
	return deleted
}

// Remove [Tree.Remove]. Recursive.
// It is a wrapper for remove.
// Time: O(D)
func (u *AVLTree[K, V, S]) Remove(k K) bool {
	return u.remove(&u.root, k)
}

// Get [Tree.Get]
// Time: O(D); Space: O(1)
func (u AVLTree[K, V, S]) Get(k K) (V, bool) {
	for cur := u.root; cur != u.nilPtr; {
		if k < cur.k {
			cur = cur.l
		} else if k == cur.k {
			return cur.v, true
		} else {
			cur = cur.r
		}
	}
	return u.nilPtr.v, false
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u AVLTree[K, V, S]) Has(k K) bool {
	for cur := u.root; cur != u.nilPtr; {
		if k < cur.k {
			cur = cur.l
		} else if k == cur.k {
			return true
		} else {
			cur = cur.r
		}
	}
	return false
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u AVLTree[K, V, S]) Minimum() (K, bool) {
	if cur := u.root; cur == u.nilPtr {
		return cur.k, false
	} else {
		for cur.l != u.nilPtr {
			cur = cur.l
		}
		return cur.k, true
	}
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u AVLTree[K, V, S]) Maximum() (K, bool) {
	if cur := u.root; cur == u.nilPtr {
		return cur.k, false
	} else {
		for cur.r != u.nilPtr {
			cur = cur.r
		}
		return cur.k, true
	}
}

// Predecessor [Tree.Predecessor]
// Time: O(D); Space: O(1)
func (u AVLTree[K, V, S]) Predecessor(k K) (K, bool) {
	cur, p := u.root, u.nilPtr
	for cur != u.nilPtr {
		if k <= cur.k {
			cur = cur.l
		} else {
			p = cur
			cur = cur.r
		}
	}
	return p.k, p != u.nilPtr
}

// Successor [Tree.Successor]
// Time: O(D); Space: O(1)
func (u AVLTree[K, V, S]) Successor(k K) (K, bool) {
	cur, p := u.root, u.nilPtr
	for cur != u.nilPtr {
		if k < cur.k {
			p = cur
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	return p.k, p != u.nilPtr
}

// Kth [Tree.Kth]
// Returns (k,v,true) if 1<=k<=Size(), otherwise zero values and false.
// This function utilizes the subtree sizes kept for balancing bookkeeping
// to provide O(D) performance with very small constant.
// Time: O(D); Space: O(1)
func (u AVLTree[K, V, S]) Kth(k uint) (K, V, bool) {
	if cur, t := u.root, S(k); k >= 1 && t <= cur.sz {
		for cur != u.nilPtr {
			if t < cur.l.sz+1 {
				cur = cur.l
			} else if t == cur.l.sz+1 {
				break
			} else {
				t -= cur.l.sz + 1
				cur = cur.r
			}
		}
		return cur.k, cur.v, true
	} else {
		return u.nilPtr.k, u.nilPtr.v, false
	}
}

// RankOf [Tree.RankOf]
// Returns the 1-based in-order position of k, or 0 when k isn't in u.
// Time: O(D); Space: O(1)
func (u AVLTree[K, V, S]) RankOf(k K) uint {
	cur := u.root
	var ra S = 0
	for cur != u.nilPtr {
		if k < cur.k {
			cur = cur.l
		} else if k == cur.k {
			return uint(ra + cur.l.sz + 1)
		} else {
			ra += cur.l.sz + 1
			cur = cur.r
		}
	}
	return 0
}

// InOrder [Tree.InOrder]
// Time: f(): amortized O(1) at each call to the returned function. Space: O(1)
func (u AVLTree[K, V, S]) InOrder() func() (K, bool) {
	cur := u.root
	return func() (r K, has bool) {
		if cur == u.nilPtr {
			return
		} else {
			has = true
			for cur != u.nilPtr {
				if cur.l == u.nilPtr {
					r = cur.k
					cur = cur.r
					break
				} else {
					p := cur.l
					for p.r != u.nilPtr && p.r != cur {
						p = p.r
					}
					if p.r != cur {
						p.r = cur
						cur = cur.l
					} else {
						p.r = u.nilPtr
						r = cur.k
						cur = cur.r
						break
					}
				}
			}
			return
		}
	}
}

// Pairs is like [Tree.InOrder] but yields the value together with the key.
// The same iteration rules apply: the tree must not be modified while the
// returned closure is being consumed.
// Time: f(): amortized O(1) at each call to the returned function. Space: O(1)
func (u AVLTree[K, V, S]) Pairs() func() (K, V, bool) {
	cur := u.root
	return func() (r K, val V, has bool) {
		if cur == u.nilPtr {
			return
		} else {
			has = true
			for cur != u.nilPtr {
				if cur.l == u.nilPtr {
					r, val = cur.k, cur.v
					cur = cur.r
					break
				} else {
					p := cur.l
					for p.r != u.nilPtr && p.r != cur {
						p = p.r
					}
					if p.r != cur {
						p.r = cur
						cur = cur.l
					} else {
						p.r = u.nilPtr
						r, val = cur.k, cur.v
						cur = cur.r
						break
					}
				}
			}
			return
		}
	}
}

// corrupt checks the subtree at cur against all node properties: key order
// within (lo,hi), height and size bookkeeping, and the balance bound.
// nil bounds mean unbounded.
func (u AVLTree[K, V, S]) corrupt(cur nodePtr[K, V, S], lo, hi *K) bool {
	if cur == u.nilPtr {
		return false
	}
	if lo != nil && !(*lo < cur.k) {
		return true
	}
	if hi != nil && !(cur.k < *hi) {
		return true
	}
	if cur.h != 1+max(cur.l.h, cur.r.h) {
		return true
	}
	if cur.sz != cur.l.sz+cur.r.sz+1 {
		return true
	}
	if bf := balance(cur); bf > 1 || bf < -1 {
		return true
	}
	return u.corrupt(cur.l, lo, &cur.k) || u.corrupt(cur.r, &cur.k, hi)
}

// Corrupt [Tree.Corrupt]. Recursive.
// Time: O(n)
func (u AVLTree[K, V, S]) Corrupt() bool {
	return u.corrupt(u.root, nil, nil)
}

func (u AVLTree[K, V, S]) fprint(w io.Writer, cur nodePtr[K, V, S], d int) {
	if cur == u.nilPtr {
		return
	}
	u.fprint(w, cur.r, d+1)
	fmt.Fprintf(w, "%*s%v [%d / %d]\n", d*4, "", cur.k, cur.h, cur.sz)
	u.fprint(w, cur.l, d+1)
}

// Fprint writes a reverse in-order dump of u to w, one node per line as
// "key [height / size]", indented by 4 spaces per level of depth. Read
// sideways with the root at the left margin it sketches the tree shape.
func (u AVLTree[K, V, S]) Fprint(w io.Writer) {
	u.fprint(w, u.root, 0)
}

func (u AVLTree[K, V, S]) Print() {
	u.Fprint(os.Stdout)
}

func (u AVLTree[K, V, S]) minDepth(c nodePtr[K, V, S], cd uint) uint {
	if c == u.nilPtr {
		return cd - 1
	}
	return min(u.minDepth(c.l, cd+1), u.minDepth(c.r, cd+1))
}

func (u AVLTree[K, V, S]) MinDepth() uint {
	return u.minDepth(u.root, 0)
}

func (u AVLTree[K, V, S]) maxDepth(c nodePtr[K, V, S], cd uint) uint {
	if c == u.nilPtr {
		return cd - 1
	}
	return max(u.maxDepth(c.l, cd+1), u.maxDepth(c.r, cd+1))
}

func (u AVLTree[K, V, S]) MaxDepth() uint {
	return u.maxDepth(u.root, 0)
}
