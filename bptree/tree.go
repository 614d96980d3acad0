package bptree

import (
	"cmp"

	"github.com/pkg/errors"
)

/*
Tree is an in-memory B+ tree over ordered keys.
The root is nil while the tree is empty. order bounds the number of children of
an index node, leafCapacity bounds the number of keys in a record leaf.
A Tree is not safe for concurrent use.
*/
type Tree[K cmp.Ordered] struct {
	root         *node[K]
	order        int
	leafCapacity int
	length       int
}

// New returns an empty tree. order must be at least 3 and leafCapacity at least 2.
func New[K cmp.Ordered](order, leafCapacity int) (*Tree[K], error) {
	if order < 3 {
		return nil, errors.Wrapf(ErrInvalidConfig, "order %d is below 3", order)
	}
	if leafCapacity < 2 {
		return nil, errors.Wrapf(ErrInvalidConfig, "leaf capacity %d is below 2", leafCapacity)
	}
	return &Tree[K]{order: order, leafCapacity: leafCapacity}, nil
}

// Order returns the maximum number of children of an index node.
func (t *Tree[K]) Order() int { return t.order }

// LeafCapacity returns the maximum number of keys of a record leaf.
func (t *Tree[K]) LeafCapacity() int { return t.leafCapacity }

// Len returns the number of keys in the tree.
func (t *Tree[K]) Len() int { return t.length }

// Height returns the number of levels including the leaf level, 0 when empty.
func (t *Tree[K]) Height() int {
	h := 0
	for n := t.root; n != nil; h++ {
		if n.isLeaf() {
			return h + 1
		}
		n = n.children[0]
	}
	return h
}

func (t *Tree[K]) minLeaf() int { return (t.leafCapacity + 1) / 2 }

func (t *Tree[K]) minIdx() int { return (t.order + 1) / 2 }

// Find reports whether key is in the tree.
func (t *Tree[K]) Find(key K) bool {
	return t.trace(key).present(key)
}

/*
Insert adds key to the tree. Inserting a key that is already present leaves
the tree unchanged.
If the root splits, a new internal root is created over the old root and its
new sibling, which is the only way the tree grows in height.
*/
func (t *Tree[K]) Insert(key K) {
	if t.root == nil {
		t.root = newIndex(leafParent, newLeaf(key))
		t.length = 1
		return
	}

	sibling, added := t.insert(t.root, key)
	if added {
		t.length++
	}
	if sibling == nil {
		return
	}
	root := newIndex(internal, t.root, sibling)
	root.keys = []K{sibling.minKey()}
	t.root = root
}

/*
insert descends into n and returns the sibling created if n had to split,
and whether key was actually added.
*/
func (t *Tree[K]) insert(n *node[K], key K) (*node[K], bool) {
	if n.isLeaf() {
		pos, found := n.lowerBound(key)
		if found {
			return nil, false
		}
		n.insertKeyAt(pos, key)
		if len(n.keys) <= t.leafCapacity {
			return nil, true
		}
		return n.splitLeaf(t.leafCapacity), true
	}

	i := n.upperBound(key)
	child, added := t.insert(n.children[i], key)
	if child == nil {
		return nil, added
	}

	n.insertChildAt(i+1, child)
	n.insertKeyAt(i, child.minKey())
	if len(n.children) <= t.order {
		return nil, added
	}
	return n.splitIndex(t.order), added
}

/*
Delete removes key from the tree and rebalances along the traced path.
It returns ErrKeyNotFound, without touching the tree, if key is absent.
*/
func (t *Tree[K]) Delete(key K) error {
	route := t.trace(key)
	if !route.present(key) {
		return errors.Wrapf(ErrKeyNotFound, "delete %v", key)
	}

	t.length--
	if t.length == 0 {
		t.root = nil
		return nil
	}
	t.deleteAt(route)
	return nil
}
