// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dom provides an HTML element tree built on [tree.NodeBase],
// with attributes, dataset access, view-path properties, event
// listeners, HTML parsing and rendering, and CSS selector queries.
package dom

import (
	"slices"
	"strings"

	"github.com/iancoleman/strcase"
	"golang.org/x/net/html"

	"cogentcore.org/movi/events"
	"cogentcore.org/movi/tree"
)

// Element is an HTML element node.
type Element struct {
	tree.NodeBase

	// Tag is the lower case tag name of the element, like "div".
	Tag string

	// Attrs are the attributes of the element, in document order.
	Attrs []html.Attribute

	// listeners are the event listeners of the element,
	// which are not copied when cloning.
	listeners events.Listeners
}

// Text is a text node.
type Text struct {
	tree.NodeBase

	// Data is the text.
	Data string
}

// Comment is a comment node.
type Comment struct {
	tree.NodeBase

	// Data is the text of the comment.
	Data string
}

// Document is the root of a tree of elements. Elements are connected
// when the root of their tree is a Document.
type Document struct {
	Element
}

// NewDocument returns a new empty [Document].
func NewDocument() *Document {
	d := tree.New[*Document]()
	d.Name = "document"
	d.Tag = "#document"
	return d
}

// NewElement returns a new [Element] with the given tag,
// added to the given parent if there is one.
func NewElement(tag string, parent ...tree.Node) *Element {
	e := tree.New[*Element](parent...)
	e.Tag = strings.ToLower(tag)
	return e
}

// NewText returns a new [Text] with the given data,
// added to the given parent if there is one.
func NewText(data string, parent ...tree.Node) *Text {
	t := tree.New[*Text](parent...)
	t.Data = data
	return t
}

// AsElement returns the element of the given node, which may be
// an [*Element] or a [*Document], or nil if it is neither.
func AsElement(n tree.Node) *Element {
	switch x := n.(type) {
	case *Element:
		return x
	case *Document:
		return &x.Element
	}
	return nil
}

// IsConnected returns whether the element is in the tree of a [Document].
func (e *Element) IsConnected() bool {
	if e.IsDestroyed() {
		return false
	}
	_, ok := tree.Root(e.This).(*Document)
	return ok
}

// ParentElement returns the parent element, or nil if there is none.
func (e *Element) ParentElement() *Element {
	if e.Parent == nil {
		return nil
	}
	return AsElement(e.Parent)
}

// ElementChildren returns the direct children that are elements.
func (e *Element) ElementChildren() []*Element {
	return tree.ChildrenOf[*Element](e.This)
}

// WalkElements calls the given function on the element and all of
// its descendant elements in depth-first order, with the semantics
// of [tree.NodeBase.WalkDown].
func (e *Element) WalkElements(fun func(el *Element) bool) {
	e.WalkDown(func(n tree.Node) bool {
		el := AsElement(n)
		if el == nil {
			return tree.Break
		}
		return fun(el)
	})
}

// CloneElement returns a deep copy of the element and its
// descendants, without event listeners.
func (e *Element) CloneElement() *Element {
	return AsElement(e.Clone())
}

// CopyFieldsFrom copies the tag and attributes of the given element.
// Event listeners are not copied, as they refer to the source element.
func (e *Element) CopyFieldsFrom(from tree.Node) {
	e.NodeBase.CopyFieldsFrom(from)
	e.listeners = nil
	if fe := AsElement(from); fe != nil {
		e.Attrs = slices.Clone(fe.Attrs)
	}
}

// Attributes:

// Attr returns the value of the given attribute and whether it is set.
func (e *Element) Attr(name string) (string, bool) {
	name = strings.ToLower(name)
	for _, a := range e.Attrs {
		if a.Namespace == "" && a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// HasAttr returns whether the given attribute is set.
func (e *Element) HasAttr(name string) bool {
	_, ok := e.Attr(name)
	return ok
}

// SetAttr sets the given attribute to the given value,
// adding it after the existing attributes if it is not set.
func (e *Element) SetAttr(name, value string) *Element {
	name = strings.ToLower(name)
	for i, a := range e.Attrs {
		if a.Namespace == "" && a.Key == name {
			e.Attrs[i].Val = value
			return e
		}
	}
	e.Attrs = append(e.Attrs, html.Attribute{Key: name, Val: value})
	return e
}

// RemoveAttr removes the given attribute.
func (e *Element) RemoveAttr(name string) {
	name = strings.ToLower(name)
	e.Attrs = slices.DeleteFunc(e.Attrs, func(a html.Attribute) bool {
		return a.Namespace == "" && a.Key == name
	})
}

// Dataset:

// DataAttrName returns the data-* attribute name for the given
// lowerCamel dataset key, like data-bind-event for bindEvent.
func DataAttrName(key string) string {
	return "data-" + strcase.ToKebab(key)
}

// DataKey returns the lowerCamel dataset key for the given data-*
// attribute name, like bindEvent for data-bind-event.
func DataKey(attr string) string {
	return strcase.ToLowerCamel(strings.TrimPrefix(attr, "data-"))
}

// Data returns the dataset value with the given lowerCamel key,
// and whether it is set.
func (e *Element) Data(key string) (string, bool) {
	return e.Attr(DataAttrName(key))
}

// SetData sets the dataset value with the given lowerCamel key.
func (e *Element) SetData(key, value string) *Element {
	return e.SetAttr(DataAttrName(key), value)
}

// Dataset returns all of the dataset values keyed by lowerCamel key.
func (e *Element) Dataset() map[string]string {
	ds := map[string]string{}
	for _, a := range e.Attrs {
		if a.Namespace == "" && strings.HasPrefix(a.Key, "data-") {
			ds[DataKey(a.Key)] = a.Val
		}
	}
	return ds
}

// Text content:

// TextContent returns the concatenated text of all of the
// descendant text nodes.
func (e *Element) TextContent() string {
	var b strings.Builder
	e.WalkDown(func(n tree.Node) bool {
		if t, ok := n.(*Text); ok {
			b.WriteString(t.Data)
		}
		return tree.Continue
	})
	return b.String()
}

// SetTextContent replaces all of the children with one text node
// holding the given text (or none for the empty string).
func (e *Element) SetTextContent(text string) {
	e.DeleteChildren()
	if text != "" {
		NewText(text, e.This)
	}
}

// Events:

// On adds a listener for the event with the given name.
func (e *Element) On(name string, fun func(ev events.Event)) {
	e.listeners.AddNamed(events.CanonicalName(name), fun)
}

// OnInput adds a listener for [events.Input] events.
func (e *Element) OnInput(fun func(ev events.Event)) {
	e.listeners.Add(events.Input, fun)
}

// NumListeners returns the number of listeners for the event
// with the given name.
func (e *Element) NumListeners(name string) int {
	return e.listeners.Count(events.CanonicalName(name))
}

// Dispatch sends the given event to the listeners of the element,
// setting the element as its target, and returns the event.
func (e *Element) Dispatch(ev events.Event) events.Event {
	ev.SetTarget(e)
	e.listeners.Call(ev)
	return ev
}

// Emit dispatches a new event with the given name and data.
func (e *Element) Emit(name string, data any) events.Event {
	return e.Dispatch(events.NewNamed(name, data))
}

// InputValue simulates the user editing the value of the element: it sets
// the value and then dispatches an [events.Input] event with it.
func (e *Element) InputValue(value string) events.Event {
	e.SetValue(value)
	return e.Dispatch(events.New(events.Input, value))
}
