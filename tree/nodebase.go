// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"log/slog"
	"maps"
	"reflect"
	"slices"
	"strings"

	"github.com/jinzhu/copier"
)

// NodeBase implements the [Node] interface and provides the core functionality
// for the tree system. You must use NodeBase as an embedded struct
// in all higher-level tree types.
//
// All nodes must be properly initialized by using one of [New], [InitNode],
// [NodeBase.AddChild], [NodeBase.InsertChild], or [NodeBase.Clone].
// This ensures that the [NodeBase.This] field is set correctly and the
// [Node.Init] method is called.
type NodeBase struct {

	// Name is the name of this node, which is typically unique relative to other
	// children of the same parent. If not otherwise set, it defaults to the
	// kebab-case name of the node type combined with the total number
	// of children that have ever been added to the node's parent.
	Name string `copier:"-"`

	// This is the value of this Node as its true underlying type. This allows methods
	// defined on base types to call methods defined on higher-level types.
	// It is set to nil when the node is destroyed.
	This Node `copier:"-" json:"-" xml:"-"`

	// Parent is the parent of this node, which is set automatically when this node is
	// added as a child of a parent. To change the parent of a node, use [MoveToParent].
	Parent Node `copier:"-" json:"-" xml:"-"`

	// Children is the list of children of this node. All of them are set to have this node
	// as their parent. Use the NodeBase child helper functions to modify it so that
	// parents and destroy hooks are kept consistent.
	Children []Node `copier:"-" json:",omitempty"`

	// Properties is a property map for arbitrary key-value properties.
	// It is copied by [NodeBase.Clone].
	Properties map[string]any `copier:"-" json:",omitempty"`

	// OnChildAdded is called when a node is added as a direct child of this node.
	OnChildAdded func(n Node) `copier:"-" json:"-"`

	// destroyers are the functions called when the node is destroyed,
	// after its children have been destroyed.
	destroyers []func()

	// numLifetimeChildren is the number of children that have ever been added to this
	// node, which is used for automatic unique naming.
	numLifetimeChildren uint64

	// index is the last value of our index, which is used as a starting point for
	// finding us in our parent next time.
	index int
}

// String implements the [fmt.Stringer] interface by returning the path of the node.
func (n *NodeBase) String() string {
	if n == nil || n.This == nil {
		return "nil"
	}
	return n.Path()
}

// AsTree returns the [NodeBase] for this Node.
func (n *NodeBase) AsTree() *NodeBase {
	return n
}

// NewInstance returns a new, uninitialized instance of this node type.
func (n *NodeBase) NewInstance() Node {
	return reflect.New(reflect.TypeOf(n.This).Elem()).Interface().(Node)
}

// Parents:

// IndexInParent returns our index within our parent node. It caches the
// last value and uses that as the starting point of the next search.
// It returns -1 if we don't have a parent.
func (n *NodeBase) IndexInParent() int {
	if n.Parent == nil {
		return -1
	}
	kids := n.Parent.AsTree().Children
	if n.index < len(kids) && kids[n.index] == n.This {
		return n.index
	}
	n.index = slices.Index(kids, n.This)
	return n.index
}

// Children:

// HasChildren returns whether this node has any children.
func (n *NodeBase) HasChildren() bool {
	return len(n.Children) > 0
}

// NumChildren returns the number of children this node has.
func (n *NodeBase) NumChildren() int {
	return len(n.Children)
}

// Child returns the child of this node at the given index and returns nil if
// the index is out of range.
func (n *NodeBase) Child(i int) Node {
	if i >= len(n.Children) || i < 0 {
		return nil
	}
	return n.Children[i]
}

// Path returns the path to this node from the tree root,
// using [NodeBase.Name]s separated by / delimeters.
func (n *NodeBase) Path() string {
	if n.Parent != nil {
		return n.Parent.AsTree().Path() + "/" + strings.ReplaceAll(n.Name, "/", `\\`)
	}
	return "/" + strings.ReplaceAll(n.Name, "/", `\\`)
}

// Adding and Inserting Children:

// AddChild adds given child at end of children list.
// The kid node is assumed to not be on another tree (see [MoveToParent]).
func (n *NodeBase) AddChild(kid Node) {
	InitNode(kid)
	n.Children = append(n.Children, kid)
	SetParent(kid, n.This)
}

// InsertChild adds given child at position in children list.
// The kid node is assumed to not be on another tree (see [MoveToParent]).
func (n *NodeBase) InsertChild(kid Node, index int) {
	InitNode(kid)
	index = min(max(index, 0), len(n.Children))
	n.Children = slices.Insert(n.Children, index, kid)
	SetParent(kid, n.This)
}

// Deleting Children:

// RemoveChild removes the given child from the children of this node
// without destroying it, returning false if it is not a child.
func (n *NodeBase) RemoveChild(child Node) bool {
	idx := slices.Index(n.Children, child)
	if idx < 0 {
		return false
	}
	n.Children = slices.Delete(n.Children, idx, idx+1)
	child.AsTree().Parent = nil
	return true
}

// DeleteChildAt deletes child at the given index. It returns false
// if there is no child at the given index.
func (n *NodeBase) DeleteChildAt(index int) bool {
	child := n.Child(index)
	if child == nil {
		return false
	}
	n.Children = slices.Delete(n.Children, index, index+1)
	child.Destroy()
	return true
}

// DeleteChild deletes the given child node, returning false if
// it can not find it.
func (n *NodeBase) DeleteChild(child Node) bool {
	if child == nil {
		return false
	}
	idx := slices.Index(n.Children, child)
	if idx < 0 {
		return false
	}
	return n.DeleteChildAt(idx)
}

// DeleteChildren deletes all children nodes.
func (n *NodeBase) DeleteChildren() {
	kids := n.Children
	n.Children = nil
	for _, kid := range kids {
		if kid == nil {
			continue
		}
		kid.Destroy()
	}
}

// Delete deletes this node from its parent's children list
// and then destroys itself.
func (n *NodeBase) Delete() {
	if n.Parent == nil {
		n.This.Destroy()
	} else {
		n.Parent.AsTree().DeleteChild(n.This)
	}
}

// Destroy recursively deletes and destroys the node, all of its children,
// and all of its children's children, etc. The functions registered with
// [NodeBase.OnDestroy] run after the children are destroyed.
func (n *NodeBase) Destroy() {
	if n.This == nil { // already destroyed
		return
	}
	n.DeleteChildren()
	ds := n.destroyers
	n.destroyers = nil
	for _, d := range ds {
		d()
	}
	n.Parent = nil
	n.This = nil
}

// OnDestroy adds a function that is called once when the node is destroyed.
func (n *NodeBase) OnDestroy(fun func()) {
	n.destroyers = append(n.destroyers, fun)
}

// IsDestroyed returns whether the node has been destroyed.
func (n *NodeBase) IsDestroyed() bool {
	return n.This == nil
}

// Property Storage:

// SetProperty sets given the given property to the given value.
func (n *NodeBase) SetProperty(key string, value any) {
	if n.Properties == nil {
		n.Properties = map[string]any{}
	}
	n.Properties[key] = value
}

// Property returns the property value for the given key.
// It returns nil if it doesn't exist.
func (n *NodeBase) Property(key string) any {
	return n.Properties[key]
}

// HasProperty returns whether the property with the given key is set.
func (n *NodeBase) HasProperty(key string) bool {
	_, ok := n.Properties[key]
	return ok
}

// DeleteProperty deletes the property with the given key.
func (n *NodeBase) DeleteProperty(key string) {
	if n.Properties == nil {
		return
	}
	delete(n.Properties, key)
}

// Tree Walking:

const (
	// Continue = true can be returned from tree iteration functions to continue
	// processing down the tree, as compared to Break = false which stops this branch.
	Continue = true

	// Break = false can be returned from tree iteration functions to stop processing
	// this branch of the tree.
	Break = false
)

// WalkUp calls the given function on the node and all of its parents.
// It stops walking if the function returns [Break] and keeps walking if it
// returns [Continue]. It returns whether walking was finished (false if it
// was aborted with [Break]).
func (n *NodeBase) WalkUp(fun func(n Node) bool) bool {
	cur := n.This
	for {
		if !fun(cur) { // false return means stop
			return false
		}
		parent := cur.AsTree().Parent
		if parent == nil || parent == cur { // prevent loops
			return true
		}
		cur = parent
	}
}

// WalkUpParent calls the given function on all of the node's parents (but not
// the node itself), with the same semantics as [NodeBase.WalkUp].
func (n *NodeBase) WalkUpParent(fun func(n Node) bool) bool {
	if n.Parent == nil {
		return true
	}
	return n.Parent.AsTree().WalkUp(fun)
}

// WalkDown calls the given function on the node and all of its children
// in a depth-first pre-order manner, sequentially in the current goroutine.
// It stops walking the current branch of the tree if the function returns
// [Break] and keeps walking if it returns [Continue]. It is non-recursive.
// The children of a node are captured before descending, so the function
// may safely modify the children of the node it is called on.
func (n *NodeBase) WalkDown(fun func(n Node) bool) {
	if n.This == nil {
		return
	}
	stack := []Node{n.This}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cb := cur.AsTree()
		// fun can destroy the node, so we have to check for nil before and after.
		if cb.This == nil || !fun(cur) || cb.This == nil {
			continue
		}
		for i := len(cb.Children) - 1; i >= 0; i-- {
			if k := cb.Children[i]; k != nil && k.AsTree().This != nil {
				stack = append(stack, k)
			}
		}
	}
}

// Deep Copy:

// CopyFrom copies the fields, properties, and children of the given node
// to this node, replacing any existing children. Only copying from the same
// type is supported. The struct field tag copier:"-" can be added for any
// fields that should not be copied. Also, unexported fields are not copied.
func (n *NodeBase) CopyFrom(from Node) {
	if from == nil {
		slog.Error("tree.NodeBase.CopyFrom: nil source", "destinationNode", n)
		return
	}
	copyFrom(n.This, from)
}

// copyFrom is the implementation of [NodeBase.CopyFrom].
func copyFrom(to, from Node) {
	tot := to.AsTree()
	fromt := from.AsTree()
	tot.DeleteChildren()
	if fromt.Properties != nil {
		tot.Properties = maps.Clone(fromt.Properties)
	}
	tot.This.CopyFieldsFrom(from)
	for _, fk := range fromt.Children {
		kid := fk.AsTree().NewInstance()
		InitNode(kid)
		kid.AsTree().Name = fk.AsTree().Name
		tot.AddChild(kid)
		copyFrom(kid, fk)
	}
}

// Clone creates and returns a deep copy of the tree from this node down.
// The clone has no parent, and no destroy hooks or child-added functions.
func (n *NodeBase) Clone() Node {
	nc := n.NewInstance()
	InitNode(nc)
	nc.AsTree().Name = n.Name
	nc.AsTree().CopyFrom(n.This)
	return nc
}

// CopyFieldsFrom copies the fields of the node from the given node
// using a deep copy of all of the exported fields of the node that do
// not have a `copier:"-"` struct tag. The destroy hooks and naming
// state of the node are kept.
func (n *NodeBase) CopyFieldsFrom(from Node) {
	destroyers, lifetime, index := n.destroyers, n.numLifetimeChildren, n.index
	err := copier.CopyWithOption(n.This, from.AsTree().This, copier.Option{CaseSensitive: true, DeepCopy: true})
	if err != nil {
		slog.Error("tree.NodeBase.CopyFieldsFrom", "err", err)
	}
	n.destroyers, n.numLifetimeChildren, n.index = destroyers, lifetime, index
}

// Event methods:

// Init is a placeholder implementation of
// [Node.Init] that does nothing.
func (n *NodeBase) Init() {}

// OnAdd is a placeholder implementation of
// [Node.OnAdd] that does nothing.
func (n *NodeBase) OnAdd() {}
