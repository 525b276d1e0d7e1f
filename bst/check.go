// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"github.com/bitmark-inc/bstree/fault"
)

// Check - verify the ordering of every node and the node count
//
// an in-order walk of a valid tree is strictly ascending, so each
// key is compared with its in-order predecessor
func (tree *Tree) Check() error {
	n := 0
	var previous Item
	stack := []*Node{}
	p := tree.root
	for nil != p || len(stack) > 0 {
		for nil != p {
			stack = append(stack, p)
			p = p.left
		}
		p = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if nil != previous && previous.Compare(p.key) >= 0 {
			return fault.ErrOrderViolation
		}
		previous = p.key
		n += 1
		p = p.right
	}
	if n != tree.count {
		return fault.ErrCountMismatch
	}
	return nil
}
