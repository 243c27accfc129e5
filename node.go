// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package bst

import "golang.org/x/exp/constraints"

// Node is a single value in the tree together with the subtrees hanging
// off it. Values smaller than value live under left, everything else
// (including equal values) lives under right. Node has no way to be
// empty; use Tree when the empty case matters.
type Node[T constraints.Ordered] struct {
	value T
	left  *Node[T]
	right *Node[T]
}

// NewNode returns a childless node holding value.
func NewNode[T constraints.Ordered](value T) *Node[T] {
	return &Node[T]{value: value}
}

// Value returns the stored value, or the zero value for a nil node.
func (n *Node[T]) Value() T {
	var zero T
	if n == nil {
		return zero
	}
	return n.value
}

// Left returns the subtree of smaller values.
func (n *Node[T]) Left() *Node[T] {
	if n == nil {
		return nil
	}
	return n.left
}

func (n *Node[T]) Right() *Node[T] {
	if n == nil {
		return nil
	}
	return n.right
}

// Insert adds value to the subtree rooted at n. Exactly one new leaf is
// attached; duplicates end up under the right child of the first equal
// node on the path.
func (n *Node[T]) Insert(value T) {
	cur := n
	for {
		if value < cur.value {
			if cur.left == nil {
				cur.left = NewNode(value)
				return
			}
			cur = cur.left
			continue
		}
		if cur.right == nil {
			cur.right = NewNode(value)
			return
		}
		cur = cur.right
	}
}

// Contains reports whether value is stored in the subtree rooted at n.
// A nil node is an empty subtree.
func (n *Node[T]) Contains(value T) bool {
	cur := n
	for cur != nil {
		if value == cur.value {
			return true
		}
		if value < cur.value {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	return false
}
