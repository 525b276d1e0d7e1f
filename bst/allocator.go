// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

//go:generate mockgen -destination=../mocks/item.go -package=mocks github.com/bitmark-inc/bstree/bst Item

import (
	"sync"
)

// Item - a key item must implement the Compare function
//
// Compare returns a negative value, zero or a positive value when the
// item is less than, equal to or greater than its argument
type Item interface {
	Compare(interface{}) int // for left/right ordering of items
}

// Node - a node in the tree
type Node struct {
	left  *Node // left sub-tree
	right *Node // right sub-tree
	key   Item  // key part for ordering
}

// global data for allocator
var m sync.Mutex   // to keep values in sync
var pool *Node     // linked list of reclaimed nodes
var totalNodes int // total nodes created
var freeNodes int  // number of nodes in the pool

// allocate a new node, reuses reclaimed nodes if any are available
func newNode(key Item) *Node {
	m.Lock()
	if nil == pool {
		if 0 != freeNodes {
			m.Unlock()
			panic("pool corrupt")
		}
		totalNodes += 1
		m.Unlock()
		return &Node{
			key: key,
		}
	}
	p := pool
	pool = p.right
	p.key = key
	p.left = nil
	p.right = nil // ensure freelist pointer is cleared
	freeNodes -= 1
	m.Unlock()
	return p
}

// reclaim a node and keep it in a pool
func freeNode(node *Node) {
	m.Lock()
	node.right = pool // use as free list pointer

	node.left = nil
	node.key = nil
	freeNodes += 1

	pool = node
	m.Unlock()
}

// PoolStatistics - total nodes ever allocated and the number
// currently waiting in the pool for reuse
func PoolStatistics() (total int, free int) {
	m.Lock()
	defer m.Unlock()
	return totalNodes, freeNodes
}
