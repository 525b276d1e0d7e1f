// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Tree - type to hold the root node of a tree
type Tree struct {
	root  *Node
	count int
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		root:  nil,
		count: 0,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// Clear - remove every node, leaving an empty tree
func (tree *Tree) Clear() {
	stack := []*Node{}
	if nil != tree.root {
		stack = append(stack, tree.root)
	}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if nil != p.left {
			stack = append(stack, p.left)
		}
		if nil != p.right {
			stack = append(stack, p.right)
		}
		freeNode(p)
	}
	tree.root = nil
	tree.count = 0
}

// Key - read the key from a node item
func (p *Node) Key() Item {
	return p.key
}

// Left - the left sub-tree of a node, nil if absent
func (p *Node) Left() *Node {
	return p.left
}

// Right - the right sub-tree of a node, nil if absent
func (p *Node) Right() *Node {
	return p.right
}

// GetChildrenByDepth - returns all nodes at a specific depth below a node
func (p *Node) GetChildrenByDepth(depth uint) []*Node {
	nodes := []*Node{}
	if nil == p {
		return nodes
	}

	level := []*Node{p}
	for ; depth > 0 && len(level) > 0; depth -= 1 {
		next := make([]*Node, 0, 2*len(level))
		for _, n := range level {
			if nil != n.left {
				next = append(next, n.left)
			}
			if nil != n.right {
				next = append(next, n.right)
			}
		}
		level = next
	}
	return append(nodes, level...)
}
