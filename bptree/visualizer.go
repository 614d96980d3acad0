package bptree

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/fatih/color"
)

func (n *node[K]) String() string {
	return fmt.Sprint(n.keys)
}

/*
String renders the tree one node per line in depth-first order, each line
indented by one tab per level. It is meant for debugging only.
*/
func (t *Tree[K]) String() string {
	if t.root == nil {
		return "<empty>"
	}
	var sb strings.Builder
	var walk func(n *node[K], depth int)
	walk = func(n *node[K], depth int) {
		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(strings.Repeat("\t", depth))
		sb.WriteString(n.String())
		for _, child := range n.children {
			walk(child, depth+1)
		}
	}
	walk(t.root, 0)
	return sb.String()
}

// Visualizer draws a tree level by level, coloring index nodes and record leaves apart.
type Visualizer[K cmp.Ordered] struct {
	Tree *Tree[K]
}

var (
	levelColor = color.New(color.Faint).SprintFunc()
	indexColor = color.New(color.FgCyan, color.Bold).SprintFunc()
	leafColor  = color.New(color.FgGreen).SprintFunc()
)

// Visualize returns one line per level, with the nodes of a level separated by spaces.
func (v *Visualizer[K]) Visualize() string {
	if v.Tree == nil || v.Tree.root == nil {
		return levelColor("(empty tree)")
	}

	var lines []string
	level := []*node[K]{v.Tree.root}
	for depth := 0; len(level) > 0; depth++ {
		var next []*node[K]
		parts := make([]string, 0, len(level))
		for _, n := range level {
			if n.isLeaf() {
				parts = append(parts, leafColor(n.String()))
				continue
			}
			parts = append(parts, indexColor(n.String()))
			next = append(next, n.children...)
		}
		lines = append(lines, fmt.Sprintf("%s %s", levelColor(fmt.Sprintf("L%d", depth)), strings.Join(parts, " ")))
		level = next
	}
	return strings.Join(lines, "\n")
}
