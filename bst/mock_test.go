// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/bstree/bst"
	"github.com/bitmark-inc/bstree/keys"
	"github.com/bitmark-inc/bstree/mocks"
)

// an empty tree must never compare the requested key
func TestEmptyTreeDoesNotCompare(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockItem(ctl)
	m.EXPECT().Compare(gomock.Any()).Times(0)

	tree := bst.New()
	assert.Nil(t, tree.Has(m), "found key in empty tree")
	assert.False(t, tree.Remove(m), "removed key from empty tree")
	_, err := tree.Search(m)
	assert.Error(t, err, "search of empty tree")
}

func TestInsertComparesStoredKey(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockItem(ctl)
	tree := bst.New()

	// first insert only fills the root slot
	assert.True(t, tree.Insert(m), "insert into empty tree")

	m.EXPECT().Compare(m).Return(0).Times(1)
	assert.False(t, tree.Insert(m), "duplicate accepted")

	// stored key is greater: descend left
	m.EXPECT().Compare(keys.Int(7)).Return(1).Times(2)
	assert.True(t, tree.Insert(keys.Int(7)), "insert below mock")

	node := tree.Has(keys.Int(7))
	if assert.NotNil(t, node, "7 not found") {
		assert.Equal(t, keys.Int(7), node.Key(), "wrong node")
	}
	assert.Equal(t, node, tree.Root().Left(), "7 not on the left")
	assert.Nil(t, tree.Root().Right(), "unexpected right child")
	assert.Equal(t, 2, tree.Count(), "wrong count")
}

func TestCompareMagnitudeIgnored(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockItem(ctl)
	tree := bst.New()
	tree.Insert(m)

	// any negative result means the stored key is smaller
	m.EXPECT().Compare(keys.Int(9)).Return(-42).Times(1)
	assert.True(t, tree.Insert(keys.Int(9)), "insert above mock")
	assert.Equal(t, keys.Int(9), tree.Root().Right().Key(), "9 not on the right")
}
