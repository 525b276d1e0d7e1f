// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bst - an unbalanced binary search tree holding a set of
// ordered keys
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// No rebalancing is done, so keys inserted in sorted order produce a
// tree that degenerates into a list.  The traversals use an explicit
// stack so that such trees do not exhaust the goroutine stack.
//
// A node returned by Has or Search is only valid until the next
// Remove or Clear, as removed nodes are returned to a pool for reuse
// and a two child delete overwrites the key of the node in place.
package bst
