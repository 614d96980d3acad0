package bptree

/*
deleteAt removes the key addressed by the last step of route and repairs a
leaf underflow by borrowing from or merging with a sibling. Left is always
tried before right.
*/
func (t *Tree[K]) deleteAt(route path[K]) {
	last := route.pop()
	current := last.node
	current.removeKeyAt(last.idx)

	minimum := t.minLeaf()
	if len(current.keys) >= minimum {
		return
	}

	parent, parentIdx := route[len(route)-1].node, route[len(route)-1].idx
	// the single leaf under the root has no sibling and no lower bound
	if len(parent.children) == 1 {
		return
	}

	var leftSib, rightSib *node[K]

	// borrow from left sibling
	if parentIdx > 0 {
		leftSib = parent.children[parentIdx-1]
		if len(leftSib.keys) > minimum {
			borrowed := leftSib.removeKeyAt(len(leftSib.keys) - 1)
			current.insertKeyAt(0, borrowed)
			parent.keys[parentIdx-1] = borrowed
			return
		}
	}

	// then try right
	if parentIdx+1 < len(parent.children) {
		rightSib = parent.children[parentIdx+1]
		if len(rightSib.keys) > minimum {
			borrowed := rightSib.removeKeyAt(0)
			current.keys = append(current.keys, borrowed)
			parent.keys[parentIdx] = rightSib.keys[0]
			return
		}
	}

	// if borrowing failed, merge
	if leftSib != nil {
		leftSib.keys = append(leftSib.keys, current.keys...)
		parent.removeKeyAt(parentIdx - 1)
		parent.removeChildAt(parentIdx)
	} else {
		current.keys = append(current.keys, rightSib.keys...)
		parent.removeKeyAt(parentIdx)
		parent.removeChildAt(parentIdx + 1)
	}
	t.rebalanceIndex(route)
}

/*
rebalanceIndex repairs an index node that has just lost a child. route ends
at that node. When the root runs out of separators after a merge, the merged
child becomes the new root and the tree shrinks by one level.
*/
func (t *Tree[K]) rebalanceIndex(route path[K]) {
	current := route.pop().node
	if len(route) == 0 {
		return
	}

	minimum := t.minIdx()
	if len(current.children) >= minimum {
		return
	}

	parent, parentIdx := route[len(route)-1].node, route[len(route)-1].idx
	var leftSib, rightSib *node[K]

	// borrow from left sibling
	if parentIdx > 0 {
		leftSib = parent.children[parentIdx-1]
		if len(leftSib.children) > minimum {
			child := leftSib.removeChildAt(len(leftSib.children) - 1)
			key := leftSib.removeKeyAt(len(leftSib.keys) - 1)
			current.insertKeyAt(0, parent.keys[parentIdx-1])
			current.insertChildAt(0, child)
			parent.keys[parentIdx-1] = key
			return
		}
	}

	// then try right
	if parentIdx+1 < len(parent.children) {
		rightSib = parent.children[parentIdx+1]
		if len(rightSib.children) > minimum {
			child := rightSib.removeChildAt(0)
			key := rightSib.removeKeyAt(0)
			current.keys = append(current.keys, parent.keys[parentIdx])
			current.children = append(current.children, child)
			parent.keys[parentIdx] = key
			return
		}
	}

	// if borrowing failed, merge
	merged := current
	if leftSib != nil {
		leftSib.keys = append(leftSib.keys, parent.removeKeyAt(parentIdx-1))
		leftSib.keys = append(leftSib.keys, current.keys...)
		leftSib.children = append(leftSib.children, current.children...)
		parent.removeChildAt(parentIdx)
		merged = leftSib
	} else {
		current.keys = append(current.keys, parent.removeKeyAt(parentIdx))
		current.keys = append(current.keys, rightSib.keys...)
		current.children = append(current.children, rightSib.children...)
		parent.removeChildAt(parentIdx + 1)
	}

	if len(route) == 1 && len(parent.keys) == 0 {
		t.root = merged
		return
	}
	t.rebalanceIndex(route)
}
