package bptree

import "cmp"

type kind uint8

const (
	recordLeaf kind = iota // holds keys, no children
	leafParent             // index node whose children are record leaves
	internal               // index node whose children are index nodes
)

func (k kind) String() string {
	switch k {
	case recordLeaf:
		return "leaf"
	case leafParent:
		return "leaf-parent"
	case internal:
		return "internal"
	}
	return "unknown"
}

/*
A single node type serves both roles.
Record leaves only use keys. Index nodes keep len(children) == len(keys)+1,
and every key under children[i] (i > 0) is >= keys[i-1] while every key
under children[0] is < keys[0].
*/
type node[K cmp.Ordered] struct {
	kind     kind
	keys     []K
	children []*node[K]
}

func newLeaf[K cmp.Ordered](keys ...K) *node[K] {
	return &node[K]{kind: recordLeaf, keys: keys}
}

func newIndex[K cmp.Ordered](k kind, children ...*node[K]) *node[K] {
	return &node[K]{kind: k, children: children}
}

func (n *node[K]) isLeaf() bool {
	return n.kind == recordLeaf
}

// upperBound returns the number of keys <= key.
// Index nodes route with it so that a key equal to a separator goes right.
func (n *node[K]) upperBound(key K) int {
	low, high := 0, len(n.keys)
	for low < high {
		mid := int(uint(low+high) >> 1)
		if cmp.Less(key, n.keys[mid]) {
			high = mid
		} else {
			low = mid + 1
		}
	}
	return low
}

/*
lowerBound returns the first position whose key is >= key, and whether
the key at that position equals key. Leaves are searched with it.
*/
func (n *node[K]) lowerBound(key K) (int, bool) {
	low, high := 0, len(n.keys)
	for low < high {
		mid := int(uint(low+high) >> 1)
		if cmp.Less(n.keys[mid], key) {
			low = mid + 1
		} else {
			high = mid
		}
	}
	return low, low < len(n.keys) && !cmp.Less(key, n.keys[low])
}

// helper method to insert a key at an arbitrary position of a node
func (n *node[K]) insertKeyAt(pos int, key K) {
	var zero K
	n.keys = append(n.keys, zero)
	copy(n.keys[pos+1:], n.keys[pos:])
	n.keys[pos] = key
}

// helper method to insert a child pointer at an arbitrary position of an index node
func (n *node[K]) insertChildAt(pos int, child *node[K]) {
	n.children = append(n.children, nil)
	copy(n.children[pos+1:], n.children[pos:])
	n.children[pos] = child
}

func (n *node[K]) removeKeyAt(pos int) K {
	key := n.keys[pos]
	copy(n.keys[pos:], n.keys[pos+1:])
	var zero K
	n.keys[len(n.keys)-1] = zero
	n.keys = n.keys[:len(n.keys)-1]
	return key
}

func (n *node[K]) removeChildAt(pos int) *node[K] {
	child := n.children[pos]
	copy(n.children[pos:], n.children[pos+1:])
	n.children[len(n.children)-1] = nil
	n.children = n.children[:len(n.children)-1]
	return child
}

// minKey descends the leftmost path of n and returns the first key of that leaf.
func (n *node[K]) minKey() K {
	for !n.isLeaf() {
		n = n.children[0]
	}
	return n.keys[0]
}

/*
splitLeaf is called on a leaf holding leafCapacity+1 keys.
The leaf keeps the first leafCapacity/2+1 keys and the returned sibling takes
the remainder. The caller uses the sibling's first key as separator.
*/
func (n *node[K]) splitLeaf(leafCapacity int) *node[K] {
	mid := leafCapacity/2 + 1
	sibling := newLeaf(append([]K(nil), n.keys[mid:]...)...)
	clear(n.keys[mid:])
	n.keys = n.keys[:mid]
	return sibling
}

/*
splitIndex is called on an index node holding order+1 children.
The node keeps children[:mid+1] and keys[:mid], the sibling (same kind) takes
children[mid+1:] and keys[mid+1:]. keys[mid] is dropped: it belongs to
neither half and the parent recomputes the separator from the sibling.
*/
func (n *node[K]) splitIndex(order int) *node[K] {
	mid := order / 2
	sibling := newIndex(n.kind, append([]*node[K](nil), n.children[mid+1:]...)...)
	sibling.keys = append([]K(nil), n.keys[mid+1:]...)

	clear(n.children[mid+1:])
	n.children = n.children[:mid+1]
	clear(n.keys[mid:])
	n.keys = n.keys[:mid]
	return sibling
}
