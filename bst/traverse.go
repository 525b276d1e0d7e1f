// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// PreOrder - keys of the whole tree: node, left sub-tree, right sub-tree
func (tree *Tree) PreOrder() []Item {
	return tree.root.PreOrder()
}

// InOrder - keys of the whole tree in ascending or descending order
func (tree *Tree) InOrder(ascending bool) []Item {
	return tree.root.InOrder(ascending)
}

// PostOrder - keys of the whole tree: left sub-tree, right sub-tree, node
func (tree *Tree) PostOrder() []Item {
	return tree.root.PostOrder()
}

// Levels - keys of the whole tree grouped by depth, root first
func (tree *Tree) Levels() [][]Item {
	return tree.root.Levels()
}

// PreOrder - keys of the sub-tree rooted at this node in pre-order,
// a nil node gives an empty list
func (p *Node) PreOrder() []Item {
	items := []Item{}
	stack := []*Node{}
	if nil != p {
		stack = append(stack, p)
	}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		items = append(items, n.key)

		// right is pushed first so that left is visited first
		if nil != n.right {
			stack = append(stack, n.right)
		}
		if nil != n.left {
			stack = append(stack, n.left)
		}
	}
	return items
}

// InOrder - keys of the sub-tree rooted at this node, ascending
// (left, node, right) or descending (right, node, left)
func (p *Node) InOrder(ascending bool) []Item {
	items := []Item{}
	stack := []*Node{}
	n := p
	for nil != n || len(stack) > 0 {
		for nil != n {
			stack = append(stack, n)
			if ascending {
				n = n.left
			} else {
				n = n.right
			}
		}
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		items = append(items, n.key)
		if ascending {
			n = n.right
		} else {
			n = n.left
		}
	}
	return items
}

// PostOrder - keys of the sub-tree rooted at this node in post-order
func (p *Node) PostOrder() []Item {

	// collect node, right, left then reverse to get left, right, node
	items := []Item{}
	stack := []*Node{}
	if nil != p {
		stack = append(stack, p)
	}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		items = append(items, n.key)
		if nil != n.left {
			stack = append(stack, n.left)
		}
		if nil != n.right {
			stack = append(stack, n.right)
		}
	}
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
	return items
}

// Levels - keys of the sub-tree rooted at this node, one list per
// depth with each list ordered left to right
func (p *Node) Levels() [][]Item {
	levels := [][]Item{}
	level := []*Node{}
	if nil != p {
		level = append(level, p)
	}
	for len(level) > 0 {
		items := make([]Item, len(level))
		next := make([]*Node, 0, 2*len(level))
		for i, n := range level {
			items[i] = n.key
			if nil != n.left {
				next = append(next, n.left)
			}
			if nil != n.right {
				next = append(next, n.right)
			}
		}
		levels = append(levels, items)
		level = next
	}
	return levels
}

// Height - number of levels in the tree, zero for an empty tree
func (tree *Tree) Height() int {
	return len(tree.root.Levels())
}
