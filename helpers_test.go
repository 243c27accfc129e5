// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package bst

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/constraints"
)

// collect returns the values of the subtree in order.
func collect[T constraints.Ordered](n *Node[T]) []T {
	var out []T
	var walk func(*Node[T])
	walk = func(n *Node[T]) {
		if n == nil {
			return
		}
		walk(n.left)
		out = append(out, n.value)
		walk(n.right)
	}
	walk(n)
	return out
}

// bound is a subtree together with the range its values must fall in:
// lo inclusive, hi exclusive, nil meaning unbounded.
type bound[T constraints.Ordered] struct {
	n      *Node[T]
	lo, hi *T
}

// requireOrdered fails the test if any node has a left descendant that is
// not strictly smaller than it, or a right descendant that is smaller.
func requireOrdered[T constraints.Ordered](t testing.TB, n *Node[T]) {
	t.Helper()

	stack := []bound[T]{{n: n}}
	for len(stack) > 0 {
		b := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if b.n == nil {
			continue
		}
		v := b.n.value
		if b.lo != nil {
			require.False(t, v < *b.lo, "%v found right of %v", v, *b.lo)
		}
		if b.hi != nil {
			require.True(t, v < *b.hi, "%v found left of %v", v, *b.hi)
		}
		stack = append(stack,
			bound[T]{n: b.n.left, lo: b.lo, hi: &b.n.value},
			bound[T]{n: b.n.right, lo: &b.n.value, hi: b.hi},
		)
	}
}
