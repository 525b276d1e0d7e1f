// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keys_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/bstree/bst"
	"github.com/bitmark-inc/bstree/fault"
	"github.com/bitmark-inc/bstree/keys"
)

func TestIntCompare(t *testing.T) {
	assert.Equal(t, -1, keys.Int(3).Compare(keys.Int(9)), "wrong less")
	assert.Equal(t, 0, keys.Int(9).Compare(keys.Int(9)), "wrong equal")
	assert.Equal(t, 1, keys.Int(10).Compare(keys.Int(9)), "wrong greater")
	assert.Equal(t, -1, keys.Int(-10).Compare(keys.Int(9)), "wrong negative")
}

func TestStringCompare(t *testing.T) {
	assert.Equal(t, -1, keys.String("10").Compare(keys.String("9")), "wrong less")
	assert.Equal(t, 0, keys.String("abc").Compare(keys.String("abc")), "wrong equal")
	assert.Equal(t, 1, keys.String("b").Compare(keys.String("abc")), "wrong greater")
}

func TestCompareMixedTypesPanics(t *testing.T) {
	assert.Panics(t, func() {
		keys.Int(1).Compare(keys.String("1"))
	}, "mixed types did not panic")
}

func TestParse(t *testing.T) {
	item, err := keys.Parse(keys.IntType, " 42 ")
	require.NoError(t, err, "parse int")
	assert.Equal(t, keys.Int(42), item, "wrong int")

	item, err = keys.Parse(keys.IntType, "-7")
	require.NoError(t, err, "parse negative int")
	assert.Equal(t, keys.Int(-7), item, "wrong negative int")

	item, err = keys.Parse(keys.StringType, " 42 ")
	require.NoError(t, err, "parse string")
	assert.Equal(t, keys.String(" 42 "), item, "wrong string")

	_, err = keys.Parse(keys.IntType, "forty-two")
	assert.Equal(t, fault.ErrInvalidKey, err, "wrong error for bad int")

	_, err = keys.Parse("float", "4.2")
	assert.Equal(t, fault.ErrInvalidKeyType, err, "wrong error for bad type")
	assert.True(t, fault.IsErrInvalid(err), "not an invalid class error")
}

func TestParseList(t *testing.T) {
	items, err := keys.ParseList(keys.IntType, []string{"25", "45", "8"})
	require.NoError(t, err, "parse list")
	assert.Equal(t, []bst.Item{keys.Int(25), keys.Int(45), keys.Int(8)}, items, "wrong list")

	_, err = keys.ParseList(keys.IntType, []string{"25", "x"})
	assert.Equal(t, fault.ErrInvalidKey, err, "wrong error for bad list")
}

func TestValid(t *testing.T) {
	assert.True(t, keys.Valid(keys.IntType), "int not valid")
	assert.True(t, keys.Valid(keys.StringType), "string not valid")
	assert.False(t, keys.Valid("Int"), "names are case sensitive")
}

func TestIntJSON(t *testing.T) {
	b, err := json.Marshal([]bst.Item{keys.Int(5), keys.Int(-66)})
	require.NoError(t, err, "marshal")
	assert.Equal(t, `[5,-66]`, string(b), "wrong JSON")

	b, err = json.Marshal([]bst.Item{keys.String("a")})
	require.NoError(t, err, "marshal")
	assert.Equal(t, `["a"]`, string(b), "wrong JSON")
}
