// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bstree/bst"
	"github.com/bitmark-inc/bstree/fault"
	"github.com/bitmark-inc/bstree/keys"
)

// operation names
const (
	opInsert    = "insert"
	opRemove    = "remove"
	opHas       = "has"
	opPreOrder  = "preorder"
	opInOrder   = "inorder"
	opReverse   = "reverse"
	opPostOrder = "postorder"
	opLevels    = "levels"
	opMin       = "min"
	opMax       = "max"
	opCount     = "count"
	opHeight    = "height"
	opCheck     = "check"
	opPrint     = "print"
)

// how an operation uses the optional key
type keyUse int

const (
	keyNone     keyUse = iota // no key allowed
	keyRequired keyUse = iota // key must be present
	keySubtree  keyUse = iota // optional key selects a sub-tree
)

var operationKeys = map[string]keyUse{
	opInsert:    keyRequired,
	opRemove:    keyRequired,
	opHas:       keyRequired,
	opPreOrder:  keySubtree,
	opInOrder:   keySubtree,
	opReverse:   keySubtree,
	opPostOrder: keySubtree,
	opLevels:    keySubtree,
	opMin:       keySubtree,
	opMax:       keySubtree,
	opCount:     keyNone,
	opHeight:    keyNone,
	opCheck:     keyNone,
	opPrint:     keyNone,
}

// the outcome of one operation
type result struct {
	Operation string      `json:"operation"`
	Key       bst.Item    `json:"key,omitempty"`
	Result    interface{} `json:"result"`
}

// apply a sequence of "name[:key]" operations to a tree
//
// stops at the first failing operation, returning the results of the
// operations before it
func runOperations(tree *bst.Tree, keyType string, operations []string, log *logger.L) ([]result, error) {
	results := make([]result, 0, len(operations))
	for _, operation := range operations {
		r, err := runOperation(tree, keyType, operation, log)
		if nil != err {
			log.Errorf("operation: %q  error: %s", operation, err)
			return results, err
		}
		results = append(results, r)
	}
	return results, nil
}

func runOperation(tree *bst.Tree, keyType string, operation string, log *logger.L) (result, error) {

	name := strings.ToLower(operation)
	text := ""
	hasKey := false
	if i := strings.Index(operation, ":"); i >= 0 {
		name = strings.ToLower(operation[:i])
		text = operation[i+1:]
		hasKey = true
	}

	use, ok := operationKeys[name]
	if !ok {
		return result{}, fault.ErrInvalidOperation
	}

	r := result{
		Operation: name,
	}

	switch {
	case keyNone == use && hasKey:
		return r, fault.ErrInvalidOperation
	case keyRequired == use && !hasKey:
		return r, fault.ErrMissingKey
	}

	if hasKey {
		key, err := keys.Parse(keyType, text)
		if nil != err {
			return r, err
		}
		r.Key = key
	}

	// the start of a traversal, the current root unless a key was given
	start := tree.Root()
	if keySubtree == use && hasKey {
		start = tree.Has(r.Key)
		if nil == start {
			return r, fault.ErrKeyNotFound
		}
	}

	switch name {
	case opInsert:
		inserted := tree.Insert(r.Key)
		if !inserted {
			log.Warnf("insert: %v already exists", r.Key)
		}
		r.Result = inserted

	case opRemove:
		removed := tree.Remove(r.Key)
		if !removed {
			log.Warnf("remove: %v not found", r.Key)
		}
		r.Result = removed

	case opHas:
		r.Result = tree.Contains(r.Key)

	case opPreOrder:
		r.Result = start.PreOrder()

	case opInOrder:
		r.Result = start.InOrder(true)

	case opReverse:
		r.Result = start.InOrder(false)

	case opPostOrder:
		r.Result = start.PostOrder()

	case opLevels:
		r.Result = start.Levels()

	case opMin:
		item, err := start.FindMin()
		if nil != err {
			return r, err
		}
		r.Result = item

	case opMax:
		item, err := start.FindMax()
		if nil != err {
			return r, err
		}
		r.Result = item

	case opCount:
		r.Result = tree.Count()

	case opHeight:
		r.Result = tree.Height()

	case opCheck:
		if err := tree.Check(); nil != err {
			return r, err
		}
		r.Result = "ok"

	case opPrint:
		var buffer bytes.Buffer
		lines := []string{}
		if tree.Print(&buffer) > 0 {
			lines = strings.Split(strings.TrimSuffix(buffer.String(), "\n"), "\n")
		}
		r.Result = lines
	}

	log.Debugf("operation: %q  result: %v", operation, r.Result)
	return r, nil
}
