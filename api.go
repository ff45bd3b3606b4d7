// Package radix implements a compressed prefix tree (radix tree) over
// sequence-shaped keys, with pluggable strategies for slicing, measuring
// and ordering them.
package radix

// KeySplitter extracts sub-sequences of a key. Callers only pass in-range
// offsets.
type KeySplitter[K any] interface {
	// Slice returns length symbols of key starting at start.
	Slice(key K, start, length int) K
	// SliceFrom returns the symbols of key from start to the end.
	SliceFrom(key K, start int) K
}

// KeyLength reports the number of symbols in a key.
type KeyLength[K any] interface {
	Len(key K) int
}

// KeyOrder orders keys. Two keys are equal iff Compare returns 0.
//
// Sibling edges are kept sorted by this order, which makes iteration
// lexicographic with respect to it.
type KeyOrder[K any] interface {
	Compare(a, b K) int
}

// Keys bundles the strategies a Tree needs to work with keys of type K.
type Keys[K any] interface {
	KeySplitter[K]
	KeyLength[K]
	KeyOrder[K]
}

// New returns an empty tree with string keys.
func New[V any]() *Tree[string, V] {
	return NewWithKeys[string, V](StringKeys{})
}

// NewWithKeys returns an empty tree using keys to slice, measure and order
// keys of type K.
func NewWithKeys[K, V any](keys Keys[K]) *Tree[K, V] {
	return &Tree[K, V]{keys: keys}
}
