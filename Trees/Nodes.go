package Trees

import "golang.org/x/exp/constraints"

// A node in the AVLTree
// The zero value is meaningless.
type node[K, V any, S constraints.Unsigned] struct {
	k    K
	v    V
	l, r nodePtr[K, V, S]
	sz   S
	h    int8
}

// Pointer to a node
// nil Pointer is meaningless. A nodePtr is considered to be nil if the
// pointer is equal to the nilPtr in AVLTree. The value of this node has
// both node.l, node.r = itself, sz=0, and h=0. k and v are the zero
// values of their types. Leaves therefore have h=1 and sz=1 without any
// nil checks on their children.
type nodePtr[K, V any, S constraints.Unsigned] *node[K, V, S]
