// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"reflect"
	"strconv"

	"github.com/iancoleman/strcase"
)

// admin.go has infrastructure code outside of the Node interface.

// InitNode initializes the node, setting [NodeBase.This] and calling
// [Node.Init] exactly once in the lifetime of the node.
func InitNode(n Node) {
	nb := n.AsTree()
	if nb.This != n {
		nb.This = n
		n.Init()
	}
}

// SetParent sets the parent of the given node to the given parent node.
// This is only for nodes with no existing parent; see [MoveToParent] to
// move nodes that already have a parent. It does not add the node to the
// parent's list of children; see [NodeBase.AddChild] for a version that does.
func SetParent(child Node, parent Node) {
	nb := child.AsTree()
	nb.Parent = parent
	if parent != nil {
		pb := parent.AsTree()
		pb.numLifetimeChildren++
		if nb.Name == "" {
			nb.Name = TypeIDName(child) + "-" + strconv.FormatUint(pb.numLifetimeChildren-1, 10)
		}
	}
	child.OnAdd()
	if parent != nil && parent.AsTree().OnChildAdded != nil {
		parent.AsTree().OnChildAdded(child)
	}
}

// MoveToParent removes the given node from its current parent
// and adds it as a child of the given new parent.
// The old and new parents can be in different trees (or not).
func MoveToParent(child Node, parent Node) {
	if old := child.AsTree().Parent; old != nil {
		old.AsTree().RemoveChild(child)
	}
	parent.AsTree().AddChild(child)
}

// New returns a new initialized node of the given type,
// added to the given parent if there is one.
func New[T Node](parent ...Node) T {
	var n T
	nn := reflect.New(reflect.TypeOf(n).Elem()).Interface().(T)
	InitNode(nn)
	if len(parent) > 0 && parent[0] != nil {
		parent[0].AsTree().AddChild(nn)
	}
	return nn
}

// TypeIDName returns the kebab-case name of the type of the given node.
func TypeIDName(n Node) string {
	return strcase.ToKebab(reflect.TypeOf(n).Elem().Name())
}

// IsRoot tests whether the given node is the root node in its tree.
func IsRoot(n Node) bool {
	return n.AsTree().This == nil || n.AsTree().Parent == nil
}

// Root returns the root node of the given node's tree.
func Root(n Node) Node {
	if IsRoot(n) {
		return n.AsTree().This
	}
	return Root(n.AsTree().Parent)
}
