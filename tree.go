// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package bst

import "golang.org/x/exp/constraints"

// Tree is a handle on an optional root node. The zero value is an empty
// tree ready to use.
//
// Tree does no balancing: inserting already sorted input degrades it to a
// linked list with O(n) insert and lookup. It is not safe for concurrent
// use while a writer is active.
type Tree[T constraints.Ordered] struct {
	root *Node[T]
}

// NewTree returns an empty tree.
func NewTree[T constraints.Ordered]() *Tree[T] {
	return &Tree[T]{}
}

// Root returns the root node of the tree, or nil if nothing has been
// inserted yet.
func (t *Tree[T]) Root() *Node[T] {
	return t.root
}

// Insert adds value, making it the root if the tree is empty.
func (t *Tree[T]) Insert(value T) {
	if t.root == nil {
		t.root = NewNode(value)
		return
	}
	t.root.Insert(value)
}

// Contains reports whether value is in the tree. An empty tree contains
// nothing.
func (t *Tree[T]) Contains(value T) bool {
	return t.root.Contains(value)
}
