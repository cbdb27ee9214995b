package Maps

// Map is an ordered key value mapping. Implementations keep keys in
// ascending order, so Keys and Pairs iterate sorted and rank queries
// are available. Methods returning a trailing bool follow the same
// convention as Trees.Tree: the other return values are defined only
// when it is true.
type Map[K, V any] interface {
	//Put stores v under k if k isn't present yet, returning true.
	//Exact behavior on present keys depend on implementation.
	Put(k K, v V) bool
	HasKey(k K) bool
	Get(k K) (V, bool)
	Remove(k K) bool
	//Min and Max return the boundary keys of the ordering.
	Min() (K, bool)
	Max() (K, bool)
	//RankOf k according to the key order. 0 means k isn't present.
	RankOf(k K) uint
	//Kth pair according to the key order, 1<=k<=Size().
	Kth(k uint) (K, V, bool)
	Keys() func() (K, bool)
	Pairs() func() (K, V, bool)
	Size() uint
}
