package radix

// Valid reports whether the cursor rests on an entry, i.e. is not End.
func (it Iterator[K, V]) Valid() bool {
	return it.node != nil
}

// Key returns the key of the current entry, or the zero key at End.
func (it Iterator[K, V]) Key() K {
	if it.node == nil {
		var zero K
		return zero
	}
	return it.node.key
}

// Value returns the value of the current entry, or the zero value at End.
func (it Iterator[K, V]) Value() V {
	if it.node == nil {
		var zero V
		return zero
	}
	return it.node.value
}

// SetValue replaces the value of the current entry in place. It does
// nothing at End.
func (it Iterator[K, V]) SetValue(value V) {
	if it.node != nil {
		it.node.value = value
	}
}

// Equal reports whether both cursors rest on the same node.
func (it Iterator[K, V]) Equal(other Iterator[K, V]) bool {
	return it.node == other.node
}

// Next moves the cursor to the following leaf in pre-order, or to End
// after the last one. Calling Next at End returns ErrNoMoreNodes.
//
// Cursors are invalidated by Insert, Erase and Clear.
func (it *Iterator[K, V]) Next() error {
	if it == nil || it.node == nil {
		return ErrNoMoreNodes
	}
	it.advance()
	return nil
}

func (it *Iterator[K, V]) advance() {
	curr := it.node
	if !curr.isLeaf() {
		it.node = curr.first()
		return
	}

	// climb until some ancestor has a sibling left to visit
	for {
		parent := curr.parent
		if parent == nil {
			it.node = nil
			return
		}
		if sibling := parent.next(it.tree.keys, curr); sibling != nil {
			it.node = sibling.first()
			return
		}
		curr = parent
	}
}
