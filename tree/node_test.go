// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "cogentcore.org/movi/tree"
)

// testNode is a node type with copyable fields.
type testNode struct {
	NodeBase
	Mbr1  string
	Mbr2  int
	Items []string
	inits int
}

func (t *testNode) Init() { t.inits++ }

func TestNodeAddChild(t *testing.T) {
	parent := New[*testNode]()
	parent.Name = "parent"
	child := &testNode{}
	parent.AddChild(child)
	assert.Equal(t, 1, child.inits)
	assert.Len(t, parent.Children, 1)
	assert.Equal(t, Node(parent), child.Parent)
	assert.Equal(t, "test-node-0", child.Name)
	assert.Equal(t, "/parent/test-node-0", child.Path())
	assert.Equal(t, 0, child.IndexInParent())
}

func TestNodeNewWithParent(t *testing.T) {
	root := New[*testNode]()
	a := New[*testNode](root)
	b := New[*testNode](root)
	assert.Equal(t, 1, b.IndexInParent())
	assert.Equal(t, Node(a), root.Child(0))
	assert.Nil(t, root.Child(5))
	assert.Equal(t, Node(root), Root(b))
	assert.True(t, IsRoot(root))
	assert.False(t, IsRoot(a))
}

func TestNodeInsertChild(t *testing.T) {
	root := New[*testNode]()
	a := New[*testNode](root)
	b := &testNode{}
	root.InsertChild(b, 0)
	assert.Equal(t, []Node{b, a}, root.Children)
	c := &testNode{}
	root.InsertChild(c, 99)
	assert.Equal(t, Node(c), root.Child(2))
}

func TestNodeDeleteChild(t *testing.T) {
	root := New[*testNode]()
	a := New[*testNode](root)
	b := New[*testNode](root)
	destroyed := 0
	a.OnDestroy(func() { destroyed++ })
	assert.True(t, root.DeleteChild(a))
	assert.Equal(t, 1, destroyed)
	assert.True(t, a.IsDestroyed())
	assert.Equal(t, []Node{b}, root.Children)
	assert.False(t, root.DeleteChild(a))
	assert.False(t, root.DeleteChildAt(3))
}

func TestNodeDestroyHooks(t *testing.T) {
	root := New[*testNode]()
	a := New[*testNode](root)
	aa := New[*testNode](a)
	var order []string
	a.OnDestroy(func() { order = append(order, "a") })
	aa.OnDestroy(func() { order = append(order, "aa") })
	root.DeleteChildren()
	assert.Equal(t, []string{"aa", "a"}, order)
	assert.Empty(t, root.Children)

	// hooks only run once
	a.Destroy()
	assert.Len(t, order, 2)
}

func TestNodeRemoveAndMove(t *testing.T) {
	r1 := New[*testNode]()
	r2 := New[*testNode]()
	a := New[*testNode](r1)
	MoveToParent(a, r2)
	assert.Empty(t, r1.Children)
	assert.Equal(t, Node(r2), a.Parent)
	assert.False(t, a.IsDestroyed())
	assert.False(t, r1.RemoveChild(a))
}

func TestNodeWalkDown(t *testing.T) {
	root := New[*testNode]()
	root.Name = "r"
	a := New[*testNode](root)
	a.Name = "a"
	aa := New[*testNode](a)
	aa.Name = "aa"
	b := New[*testNode](root)
	b.Name = "b"

	var names []string
	root.WalkDown(func(n Node) bool {
		names = append(names, n.AsTree().Name)
		return Continue
	})
	assert.Equal(t, []string{"r", "a", "aa", "b"}, names)

	names = nil
	root.WalkDown(func(n Node) bool {
		names = append(names, n.AsTree().Name)
		return n.AsTree().Name != "a"
	})
	assert.Equal(t, []string{"r", "a", "b"}, names)

	names = nil
	aa.WalkUp(func(n Node) bool {
		names = append(names, n.AsTree().Name)
		return Continue
	})
	assert.Equal(t, []string{"aa", "a", "r"}, names)
	assert.Len(t, ChildrenOf[*testNode](root), 2)
}

func TestNodeClone(t *testing.T) {
	root := New[*testNode]()
	root.Name = "root"
	root.Mbr1 = "one"
	root.Mbr2 = 2
	root.Items = []string{"x"}
	root.SetProperty("p", 1)
	kid := New[*testNode](root)
	kid.Name = "kid"
	kid.Mbr1 = "kid-one"
	root.OnDestroy(func() {})

	c, ok := root.Clone().(*testNode)
	require.True(t, ok)
	assert.Equal(t, "root", c.Name)
	assert.Equal(t, "one", c.Mbr1)
	assert.Equal(t, 2, c.Mbr2)
	assert.Equal(t, []string{"x"}, c.Items)
	assert.Equal(t, 1, c.Property("p"))
	require.Len(t, c.Children, 1)
	ck := c.Child(0).(*testNode)
	assert.Equal(t, "kid", ck.Name)
	assert.Equal(t, "kid-one", ck.Mbr1)
	assert.Equal(t, Node(c), ck.Parent)
	assert.Nil(t, c.Parent)

	c.Items[0] = "y"
	assert.Equal(t, "x", root.Items[0])
	c.SetProperty("p", 2)
	assert.Equal(t, 1, root.Property("p"))
}

func TestNodeCloneKeepsOwnHooks(t *testing.T) {
	root := New[*testNode]()
	destroyed := 0
	root.OnDestroy(func() { destroyed++ })

	c := root.Clone()
	c.AsTree().Destroy()
	assert.Equal(t, 0, destroyed)

	root.Destroy()
	assert.Equal(t, 1, destroyed)
}

func TestNodeProperties(t *testing.T) {
	n := New[*testNode]()
	assert.Nil(t, n.Property("a"))
	assert.False(t, n.HasProperty("a"))
	n.SetProperty("a", "b")
	assert.True(t, n.HasProperty("a"))
	n.DeleteProperty("a")
	assert.False(t, n.HasProperty("a"))
}
