// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Insert - insert a new key into the tree
// returns false, leaving the tree unchanged, if the key already exists
func (tree *Tree) Insert(key Item) bool {
	pp := &tree.root
	for nil != *pp {
		c := (*pp).key.Compare(key)
		switch {
		case c > 0: // (*pp).key > key
			pp = &(*pp).left
		case c < 0: // (*pp).key < key
			pp = &(*pp).right
		default:
			return false
		}
	}
	*pp = newNode(key)
	tree.count += 1
	return true
}
