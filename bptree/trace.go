package bptree

import "cmp"

// step records the node visited at one level and the child (or key) index taken.
type step[K cmp.Ordered] struct {
	node *node[K]
	idx  int
}

/*
path is the root-to-leaf route taken while locating a key.
It does not own the nodes it points at and is only valid until the next
mutation of the tree.
*/
type path[K cmp.Ordered] []step[K]

/*
trace walks from the root towards key, recording (node, child index) at
every index node. If the leaf holds key, a final (leaf, position) step is
appended; otherwise the path ends at the leaf's parent.
*/
func (t *Tree[K]) trace(key K) path[K] {
	var route path[K]
	for n := t.root; n != nil; {
		if n.isLeaf() {
			if pos, found := n.lowerBound(key); found {
				route = append(route, step[K]{n, pos})
			}
			break
		}
		i := n.upperBound(key)
		route = append(route, step[K]{n, i})
		n = n.children[i]
	}
	return route
}

// present reports whether route ends at a leaf position holding key.
func (p path[K]) present(key K) bool {
	if len(p) == 0 {
		return false
	}
	last := p[len(p)-1]
	return last.node.isLeaf() && cmp.Compare(last.node.keys[last.idx], key) == 0
}

// pop removes and returns the last step.
func (p *path[K]) pop() step[K] {
	s := (*p)[len(*p)-1]
	*p = (*p)[:len(*p)-1]
	return s
}
