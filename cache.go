// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package bst

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/exp/constraints"
)

// CachedTree is a Tree that remembers recent positive Contains answers in
// a fixed size LRU cache. Values are never removed from the tree, so a
// cached hit stays correct however the tree is later grown. Misses are not
// cached. The cache is internally locked but the tree is not, so the same
// single-writer rule as Tree applies.
type CachedTree[T constraints.Ordered] struct {
	tree  *Tree[T]
	cache *lru.Cache[T, struct{}]
}

// NewCachedTree returns an empty tree whose hits are cached for up to size
// distinct values.
func NewCachedTree[T constraints.Ordered](size int) (*CachedTree[T], error) {
	cache, err := lru.New[T, struct{}](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create membership cache: %w", err)
	}
	return &CachedTree[T]{
		tree:  NewTree[T](),
		cache: cache,
	}, nil
}

// Tree returns the underlying tree. Inserting through it is safe since
// only hits are cached.
func (c *CachedTree[T]) Tree() *Tree[T] {
	return c.tree
}

// Insert adds value to the underlying tree.
func (c *CachedTree[T]) Insert(value T) {
	c.tree.Insert(value)
}

// Contains reports whether value is in the tree, consulting the cache
// first.
func (c *CachedTree[T]) Contains(value T) bool {
	if _, ok := c.cache.Get(value); ok {
		return true
	}
	if !c.tree.Contains(value) {
		return false
	}
	c.cache.Add(value, struct{}{})
	return true
}
