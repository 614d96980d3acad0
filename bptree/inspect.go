package bptree

import (
	"cmp"

	"github.com/pkg/errors"
)

// walkLeaves calls fn on every record leaf from left to right.
func (t *Tree[K]) walkLeaves(fn func(leaf *node[K])) {
	var walk func(n *node[K])
	walk = func(n *node[K]) {
		if n.isLeaf() {
			fn(n)
			return
		}
		for _, child := range n.children {
			walk(child)
		}
	}
	if t.root != nil {
		walk(t.root)
	}
}

// keys returns every key in leaf order.
func (t *Tree[K]) keys() []K {
	out := make([]K, 0, t.length)
	t.walkLeaves(func(leaf *node[K]) {
		out = append(out, leaf.keys...)
	})
	return out
}

/*
Verify checks the structural invariants of the tree: ascending leaf
contents, all leaves at the same depth, node occupancy bounds, separator
consistency, child kinds matching their parent and the key count.
The first violation found is returned wrapped around ErrCorrupt.
*/
func (t *Tree[K]) Verify() error {
	if t.root == nil {
		if t.length != 0 {
			return errors.Wrapf(ErrCorrupt, "empty root with length %d", t.length)
		}
		return nil
	}
	if t.root.isLeaf() {
		return errors.Wrap(ErrCorrupt, "root is a record leaf")
	}

	v := verifier[K]{tree: t, leafDepth: -1}
	if err := v.check(t.root, 0, nil, nil); err != nil {
		return err
	}
	if v.count != t.length {
		return errors.Wrapf(ErrCorrupt, "counted %d keys, length is %d", v.count, t.length)
	}

	all := t.keys()
	for i := 1; i < len(all); i++ {
		if !cmp.Less(all[i-1], all[i]) {
			return errors.Wrapf(ErrCorrupt, "leaf order broken at %v, %v", all[i-1], all[i])
		}
	}
	return nil
}

type verifier[K cmp.Ordered] struct {
	tree      *Tree[K]
	leafDepth int
	count     int
}

// check validates n and its subtree. lo and hi bound the keys allowed in it:
// lo inclusive, hi exclusive, nil meaning unbounded.
func (v *verifier[K]) check(n *node[K], depth int, lo, hi *K) error {
	isRoot := n == v.tree.root

	for _, key := range n.keys {
		if lo != nil && cmp.Less(key, *lo) {
			return errors.Wrapf(ErrCorrupt, "key %v below separator %v", key, *lo)
		}
		if hi != nil && !cmp.Less(key, *hi) {
			return errors.Wrapf(ErrCorrupt, "key %v not below separator %v", key, *hi)
		}
	}

	if n.isLeaf() {
		if v.leafDepth < 0 {
			v.leafDepth = depth
		} else if v.leafDepth != depth {
			return errors.Wrapf(ErrCorrupt, "leaf at depth %d, expected %d", depth, v.leafDepth)
		}
		size := len(n.keys)
		if size > v.tree.leafCapacity {
			return errors.Wrapf(ErrCorrupt, "leaf holds %d keys, capacity %d", size, v.tree.leafCapacity)
		}
		// the only leaf under the root may run below the minimum
		if !(depth == 1 && len(v.tree.root.children) == 1) && size < v.tree.minLeaf() {
			return errors.Wrapf(ErrCorrupt, "leaf holds %d keys, minimum %d", size, v.tree.minLeaf())
		}
		v.count += size
		return nil
	}

	fanout := len(n.children)
	if len(n.keys) != fanout-1 {
		return errors.Wrapf(ErrCorrupt, "%v node has %d keys and %d children", n.kind, len(n.keys), fanout)
	}
	if fanout > v.tree.order {
		return errors.Wrapf(ErrCorrupt, "%v node has %d children, order %d", n.kind, fanout, v.tree.order)
	}
	switch {
	case isRoot && n.kind == leafParent && fanout < 1:
		return errors.Wrap(ErrCorrupt, "root has no children")
	case isRoot && n.kind == internal && fanout < 2:
		return errors.Wrapf(ErrCorrupt, "internal root has %d children", fanout)
	case !isRoot && fanout < v.tree.minIdx():
		return errors.Wrapf(ErrCorrupt, "%v node has %d children, minimum %d", n.kind, fanout, v.tree.minIdx())
	}
	for i := 1; i < len(n.keys); i++ {
		if !cmp.Less(n.keys[i-1], n.keys[i]) {
			return errors.Wrapf(ErrCorrupt, "separators out of order at %v, %v", n.keys[i-1], n.keys[i])
		}
	}

	for i, child := range n.children {
		if n.kind == leafParent && !child.isLeaf() {
			return errors.Wrapf(ErrCorrupt, "leaf-parent child %d is %v", i, child.kind)
		}
		if n.kind == internal && child.isLeaf() {
			return errors.Wrapf(ErrCorrupt, "internal child %d is a record leaf", i)
		}
		childLo, childHi := lo, hi
		if i > 0 {
			childLo = &n.keys[i-1]
		}
		if i < len(n.keys) {
			childHi = &n.keys[i]
		}
		if err := v.check(child, depth+1, childLo, childHi); err != nil {
			return err
		}
	}
	return nil
}
