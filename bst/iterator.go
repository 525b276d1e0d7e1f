// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"github.com/bitmark-inc/bstree/fault"
)

// First - return the node with the lowest key value
func (tree *Tree) First() *Node {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (tree *Node) first() *Node {
	if tree == nil {
		return nil
	}
	for tree.left != nil {
		tree = tree.left
	}
	return tree
}

// Last - return the node with the highest key value
func (tree *Tree) Last() *Node {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (tree *Node) last() *Node {
	if tree == nil {
		return nil
	}
	for tree.right != nil {
		tree = tree.right
	}
	return tree
}

// FindMin - the lowest key in the tree
func (tree *Tree) FindMin() (Item, error) {
	return tree.root.FindMin()
}

// FindMax - the highest key in the tree
func (tree *Tree) FindMax() (Item, error) {
	return tree.root.FindMax()
}

// FindMin - the lowest key in the sub-tree rooted at this node
func (tree *Node) FindMin() (Item, error) {
	p := tree.first()
	if nil == p {
		return nil, fault.ErrEmptyTree
	}
	return p.key, nil
}

// FindMax - the highest key in the sub-tree rooted at this node
func (tree *Node) FindMax() (Item, error) {
	p := tree.last()
	if nil == p {
		return nil, fault.ErrEmptyTree
	}
	return p.key, nil
}
