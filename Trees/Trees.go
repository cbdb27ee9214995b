package Trees

import "fmt"

// Tree represents A search tree like structure holding key value pairs
// with unique keys, implemented using nodes.
// Receivers that has A bool as the last return value indicates whether
// the other return values are defined. For example, if calling Minimum on
// an empty tree, the return value will be (x K, false bool). In this
// case the value of x should be undefined. However, depending on
// specific implementations, the value of x might have A meaning, but it's
// advised that x not to be used.
// If an implementation didn't specify anything special, then the implemented
// receivers follows the behaviors defined here. Methods implemented recursively
// should be noted, otherwise functions are implemented iteratively.
type Tree[K, V any] interface {
	//Insert the pair (k,v) to the Tree. Returning true if successful, false otherwise.
	//Exact behavior depend on implementation.
	Insert(k K, v V) bool
	//Remove the pair with key k from the Tree. Returning true if successful, false otherwise.
	//Exact behavior depend on implementation.
	Remove(k K) bool
	//Get the value stored under key k.
	Get(k K) (V, bool)
	//Has key k. Note that even though by utilizing the second
	//return value of other methods achieves the same functionality
	//as Has, it is encouraged to use Has for the purposes of checking
	//if some key exists, as Has should be optimized for this purpose
	//in implementations.
	Has(k K) bool
	//Minimum key of the tree.
	Minimum() (K, bool)
	//Maximum key of the tree.
	Maximum() (K, bool)
	//Predecessor returns the greatest key less than k.
	Predecessor(k K) (K, bool)
	//Successor returns the smallest key greater than k.
	Successor(k K) (K, bool)
	//Kth returns the pair whose key has in-order rank k.
	//1<=k<=Size().
	Kth(k uint) (K, V, bool)
	//RankOf k in the tree according to in-order. 1<=r<=Size()
	//for present keys; 0 means k isn't in the tree.
	RankOf(k K) uint
	//Size of the tree.
	Size() uint
	//InOrder returns A closure function f acting like an iterator. f
	//gives keys in the in-order traversal of the tree.
	//Calling f is like calling "Next()" of iterators: val, valid=f()
	//val is meaningful only if valid is true. When valid==false,
	//then f is exhausted. valid can't turn true after it first became false.
	//The tree must not be modified during the iteration of f, otherwise
	//it could corrupt the tree. There will be no panic if such cases
	//happens so design the algorithm with this in mind.
	InOrder() func() (K, bool)
	//Corrupt returns whether the tree has corrupt structures, when the value
	//at some node violates the properties of that specific implementation.
	Corrupt() bool
}

// InvalidSliceError reports A pair of adjacent keys in A slice passed to
// A Build* function that breaks the strictly ascending order requirement.
type InvalidSliceError[K any] struct {
	Prev, Cur K
}

func (e InvalidSliceError[K]) Error() string {
	return fmt.Sprintf("slice isn't sorted in strictly ascending order: %v isn't less than %v", e.Prev, e.Cur)
}
