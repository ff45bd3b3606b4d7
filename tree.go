package radix

import (
	"fmt"
	"iter"

	"github.com/xlab/treeprint"
)

func (t *Tree[K, V]) Size() int {
	if t == nil || t.root == nil {
		return 0
	}
	return t.size
}

// Find returns a cursor on the leaf stored under key, or End.
func (t *Tree[K, V]) Find(key K) Iterator[K, V] {
	return Iterator[K, V]{tree: t, node: t.findNode(key)}
}

// Get returns the value stored under key.
func (t *Tree[K, V]) Get(key K) (V, bool) {
	if n := t.findNode(key); n != nil {
		return n.value, true
	}
	var zero V
	return zero, false
}

func (t *Tree[K, V]) findNode(key K) *node[K, V] {
	if t == nil || t.root == nil {
		return nil
	}

	keyLen := t.keys.Len(key)
	depth := 0
	curr := t.root
	for curr != nil {
		if curr.isLeaf() {
			if curr.terminal && depth == keyLen && t.keys.Compare(curr.key, key) == 0 {
				return curr
			}
			return nil
		}

		var next *node[K, V]
		for _, e := range curr.children {
			edgeLen := t.keys.Len(e.label)
			// an empty edge only leads to the key that ends here
			if depth+edgeLen > keyLen || (edgeLen == 0 && depth != keyLen) {
				continue
			}
			if t.keys.Compare(t.keys.Slice(key, depth, edgeLen), e.label) == 0 {
				next = e.child
				depth += edgeLen
				break
			}
		}
		curr = next
	}
	return nil
}

// findParent returns the deepest node whose whole path is a prefix of key.
func (t *Tree[K, V]) findParent(key K) *node[K, V] {
	keyLen := t.keys.Len(key)
	curr := t.root
	for {
		var next *node[K, V]
		for _, e := range curr.children {
			edgeLen := t.keys.Len(e.label)
			if edgeLen == 0 || curr.depth+edgeLen > keyLen {
				continue
			}
			if t.keys.Compare(t.keys.Slice(key, curr.depth, edgeLen), e.label) == 0 {
				next = e.child
				break
			}
		}
		if next == nil {
			return curr
		}
		curr = next
	}
}

// Insert stores value under key. If key is already present its value is
// overwritten and inserted is false. The returned cursor rests on the leaf
// holding key.
func (t *Tree[K, V]) Insert(key K, value V) (Iterator[K, V], bool) {
	if t.root == nil {
		t.root = newRoot[K, V]()
	}

	parent := t.findParent(key)
	sub := t.keys.SliceFrom(key, parent.depth)

	if t.keys.Len(sub) == 0 {
		if existing := t.leafAt(parent); existing != nil {
			existing.value = value
			return Iterator[K, V]{tree: t, node: existing}, false
		}
	}

	// the new key diverges in the middle of an existing edge:
	// split it with a branch holding the common part
	for _, e := range parent.children {
		common := commonPrefixLen(t.keys, e.label, sub)
		if common == 0 {
			continue
		}

		found := e.child
		parent.removeChild(t.keys, found)

		depth := parent.depth + common
		branch := newBranch[K, V](t.keys.Slice(found.key, 0, depth), depth, parent)
		parent.addChild(t.keys, branch)
		branch.addChild(t.keys, found)

		leaf := newLeaf(key, value, t.keys.Len(key), branch)
		branch.addChild(t.keys, leaf)

		t.size++
		return Iterator[K, V]{tree: t, node: leaf}, true
	}

	// no edge shares a prefix with the new key; a leaf on the path is
	// demoted to a branch keeping its entry under an empty edge
	if !parent.isRoot() && parent.terminal {
		demoted := newLeaf(parent.key, parent.value, parent.depth, parent)
		var zero V
		parent.value = zero
		parent.terminal = false
		parent.addChild(t.keys, demoted)
	}

	leaf := newLeaf(key, value, t.keys.Len(key), parent)
	parent.addChild(t.keys, leaf)

	t.size++
	return Iterator[K, V]{tree: t, node: leaf}, true
}

// leafAt returns the leaf holding exactly the path of n, if any.
func (t *Tree[K, V]) leafAt(n *node[K, V]) *node[K, V] {
	if n.terminal {
		return n
	}
	var empty K
	if idx, found := n.search(t.keys, t.keys.Slice(empty, 0, 0)); found {
		return n.children[idx].child
	}
	return nil
}

// Erase removes key and reports how many entries were removed (0 or 1).
func (t *Tree[K, V]) Erase(key K) int {
	leaf := t.findNode(key)
	if leaf == nil {
		return 0
	}

	parent := leaf.parent
	parent.removeChild(t.keys, leaf)
	release(leaf)

	if !parent.isRoot() && len(parent.children) == 1 {
		t.merge(parent)
	}

	t.size--
	return 1
}

// merge splices the single-child branch n out of the tree, handing its
// child to the grandparent under the longer label.
func (t *Tree[K, V]) merge(n *node[K, V]) {
	only := n.children[0].child
	grand := n.parent

	grand.removeChild(t.keys, n)
	n.children = nil
	n.parent = nil

	grand.addChild(t.keys, only)
}

// Clear removes every entry. It is safe to call on an empty tree.
func (t *Tree[K, V]) Clear() {
	if t.root != nil {
		release(t.root)
	}
	t.root = nil
	t.size = 0
}

// Begin returns a cursor on the first leaf in key order, or End if the
// tree is empty.
func (t *Tree[K, V]) Begin() Iterator[K, V] {
	it := Iterator[K, V]{tree: t, node: t.root}
	if it.node != nil {
		it.advance()
	}
	return it
}

func (t *Tree[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{tree: t}
}

// All yields every entry in key order. The tree must not be modified
// while ranging.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for it := t.Begin(); it.Valid(); it.Next() {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
	}
}

// String renders the node graph, one edge per line.
func (t *Tree[K, V]) String() string {
	out := treeprint.NewWithRoot(fmt.Sprintf("(root) size=%d", t.Size()))
	if t.root == nil {
		return out.String()
	}

	type level struct {
		node   *node[K, V]
		branch treeprint.Tree
	}
	stack := []level{{t.root, out}}
	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, e := range curr.node.children {
			if e.child.terminal {
				curr.branch.AddNode(fmt.Sprintf("%s = %v", formatLabel(e.label), e.child.value))
				continue
			}
			stack = append(stack, level{e.child, curr.branch.AddBranch(formatLabel(e.label))})
		}
	}
	return out.String()
}

func formatLabel(label any) string {
	if runes, ok := label.([]rune); ok {
		return fmt.Sprintf("%q", string(runes))
	}
	return fmt.Sprintf("%q", label)
}
