// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"github.com/bitmark-inc/bstree/fault"
)

// Has - find the node holding a specific key, nil if not present
func (tree *Tree) Has(key Item) *Node {
	return search(key, tree.root)
}

// Contains - true if the key is in the tree
func (tree *Tree) Contains(key Item) bool {
	return nil != search(key, tree.root)
}

// Search - find the node holding a specific key, with an error to
// distinguish an empty tree from a missing key
func (tree *Tree) Search(key Item) (*Node, error) {
	if nil == tree.root {
		return nil, fault.ErrEmptyTree
	}
	p := search(key, tree.root)
	if nil == p {
		return nil, fault.ErrKeyNotFound
	}
	return p, nil
}

func search(key Item, tree *Node) *Node {
	for nil != tree {
		c := tree.key.Compare(key)
		switch {
		case c > 0: // tree.key > key
			tree = tree.left
		case c < 0: // tree.key < key
			tree = tree.right
		default:
			return tree
		}
	}
	return nil
}
