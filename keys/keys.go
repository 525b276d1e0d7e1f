// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package keys - ready made key types for the bst package
package keys

import (
	"strconv"
	"strings"

	"github.com/bitmark-inc/bstree/bst"
	"github.com/bitmark-inc/bstree/fault"
)

// names of the supported key types
const (
	IntType    = "int"
	StringType = "string"
)

// Int - a signed integer key
type Int int64

// String - a string key ordered bytewise
type String string

// Compare - integer comparison for the bst.Item interface
func (i Int) Compare(x interface{}) int {
	j := x.(Int)
	switch {
	case i < j:
		return -1
	case i > j:
		return +1
	default:
		return 0
	}
}

// Compare - string comparison for the bst.Item interface
func (s String) Compare(x interface{}) int {
	return strings.Compare(string(s), string(x.(String)))
}

// conversion for fmt and JSON output
func (i Int) String() string {
	return strconv.FormatInt(int64(i), 10)
}

// MarshalJSON - integer keys are emitted as JSON numbers
func (i Int) MarshalJSON() ([]byte, error) {
	return []byte(i.String()), nil
}

// Valid - true if the name is a supported key type
func Valid(kind string) bool {
	switch kind {
	case IntType, StringType:
		return true
	default:
		return false
	}
}

// Parse - convert text to a key of the named type
func Parse(kind string, text string) (bst.Item, error) {
	switch kind {
	case IntType:
		i, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
		if nil != err {
			return nil, fault.ErrInvalidKey
		}
		return Int(i), nil
	case StringType:
		return String(text), nil
	default:
		return nil, fault.ErrInvalidKeyType
	}
}

// ParseList - convert a list of texts to keys of the named type
func ParseList(kind string, texts []string) ([]bst.Item, error) {
	items := make([]bst.Item, 0, len(texts))
	for _, text := range texts {
		item, err := Parse(kind, text)
		if nil != err {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
