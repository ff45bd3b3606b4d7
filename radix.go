package radix

import (
	"errors"
)

var (
	ErrNoMoreNodes = errors.New("There are no more nodes in the tree")
)

type (
	// Tree is a compressed prefix tree mapping keys of type K to values of
	// type V. The zero value is not usable, create one with New or
	// NewWithKeys.
	//
	// A Tree is not safe for concurrent use.
	Tree[K, V any] struct {
		keys Keys[K]
		size int
		root *node[K, V]
	}

	// edge is a child reference together with the label it is reached by.
	edge[K, V any] struct {
		label K
		child *node[K, V]
	}

	node[K, V any] struct {
		// full key for a leaf, path prefix of length depth for a branch
		key   K
		value V
		// terminal is set iff the node is a non-root leaf
		terminal bool
		depth    int
		parent   *node[K, V]
		// sorted by label
		children []edge[K, V]
	}

	// Iterator is a cursor resting on a leaf of a Tree, or on End.
	Iterator[K, V any] struct {
		tree *Tree[K, V]
		node *node[K, V]
	}
)

func newRoot[K, V any]() *node[K, V] {
	return &node[K, V]{}
}

func newBranch[K, V any](key K, depth int, parent *node[K, V]) *node[K, V] {
	return &node[K, V]{
		key:    key,
		depth:  depth,
		parent: parent,
	}
}

func newLeaf[K, V any](key K, value V, depth int, parent *node[K, V]) *node[K, V] {
	return &node[K, V]{
		key:      key,
		value:    value,
		terminal: true,
		depth:    depth,
		parent:   parent,
	}
}
