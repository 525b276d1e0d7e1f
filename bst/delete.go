// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Remove - removes a specific key from the tree
// returns false, leaving the tree unchanged, if the key is not present
func (tree *Tree) Remove(key Item) bool {
	removed := remove(key, &tree.root)
	if removed {
		tree.count -= 1
	}
	return removed
}

// internal remove routine, rewrites the slot that holds the key
func remove(key Item, pp **Node) bool {
	q := *pp
	if nil == q { // key not in tree
		return false
	}

	c := q.key.Compare(key)
	switch {
	case c > 0: // q.key > key
		return remove(key, &q.left)
	case c < 0: // q.key < key
		return remove(key, &q.right)
	}

	// found: delete q
	switch {
	case nil == q.left && nil == q.right:
		*pp = nil
	case nil == q.right:
		*pp = q.left
	case nil == q.left:
		*pp = q.right
	default:
		// the in-order successor has no left child so removing it
		// from the right sub-tree never reaches this case again
		successor := q.right.first()
		q.key = successor.key
		return remove(successor.key, &q.right)
	}
	freeNode(q) // return deleted node to pool
	return true
}
