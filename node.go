package radix

import (
	"slices"
)

func (n *node[K, V]) isLeaf() bool {
	return len(n.children) == 0
}

func (n *node[K, V]) isRoot() bool {
	return n.parent == nil
}

// searchKey recomputes the label n is reached by from its parent.
func (n *node[K, V]) searchKey(keys Keys[K]) K {
	return keys.Slice(n.key, n.parent.depth, n.depth-n.parent.depth)
}

// search returns the position of the edge labelled label, or the position
// it would be inserted at.
func (n *node[K, V]) search(keys Keys[K], label K) (int, bool) {
	return slices.BinarySearchFunc(n.children, label, func(e edge[K, V], target K) int {
		return keys.Compare(e.label, target)
	})
}

// addChild parents child under n, keyed by its recomputed label.
func (n *node[K, V]) addChild(keys Keys[K], child *node[K, V]) {
	child.parent = n
	label := child.searchKey(keys)
	idx, found := n.search(keys, label)
	if found {
		n.children[idx].child = child
		return
	}
	n.children = slices.Insert(n.children, idx, edge[K, V]{label: label, child: child})
}

// removeChild detaches child from n. The child keeps its parent reference
// until it is either re-parented or released.
func (n *node[K, V]) removeChild(keys Keys[K], child *node[K, V]) bool {
	idx, found := n.search(keys, child.searchKey(keys))
	if !found || n.children[idx].child != child {
		return false
	}
	n.children = slices.Delete(n.children, idx, idx+1)
	return true
}

// next returns the sibling following child in n's edge order.
func (n *node[K, V]) next(keys Keys[K], child *node[K, V]) *node[K, V] {
	idx, found := n.search(keys, child.searchKey(keys))
	if !found || idx+1 >= len(n.children) {
		return nil
	}
	return n.children[idx+1].child
}

// first descends along the first edges until a leaf is reached.
func (n *node[K, V]) first() *node[K, V] {
	for !n.isLeaf() {
		n = n.children[0].child
	}
	return n
}

// release severs every reference held by the subtree rooted at n.
// It walks with an explicit stack so deep trees do not grow the goroutine stack.
func release[K, V any](n *node[K, V]) {
	var zeroK K
	var zeroV V

	stack := []*node[K, V]{n}
	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, e := range curr.children {
			stack = append(stack, e.child)
		}
		curr.children = nil
		curr.parent = nil
		curr.key = zeroK
		curr.value = zeroV
		curr.terminal = false
	}
}

// find the number of leading symbols a and b have in common
func commonPrefixLen[K any](keys Keys[K], a, b K) int {
	limit := min(keys.Len(a), keys.Len(b))
	idx := 0
	for ; idx < limit; idx++ {
		if keys.Compare(keys.Slice(a, idx, 1), keys.Slice(b, idx, 1)) != 0 {
			break
		}
	}
	return idx
}
