// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bind implements declarative two-way data binding between
// a [dom] element tree and a [model] data graph, driven by data-bind,
// data-bind-event, data-repeat and data-if annotations on elements.
//
// An [Engine] discovers the annotations of every element under a root,
// parses them into [Assignment]s, resolves those against the model into
// [Binding]s and activates a synchronizer for each of them. Repeat and if
// annotations re-render their element from a pristine template when the
// model changes, and bind the freshly rendered subtree again.
package bind

import (
	"strconv"

	"github.com/iancoleman/strcase"

	"cogentcore.org/movi/dom"
)

// Kinds are the kinds of binders.
type Kinds int32

const (
	// KindAttribute binders push a model value to a view path,
	// and pull edits of the value slot back into the model.
	KindAttribute Kinds = iota

	// KindEvent binders wire an event to a handler call.
	KindEvent

	// KindCollection binders expand a template once per item
	// of a model array.
	KindCollection

	// KindCondition binders show or clear content by the
	// truthiness of a model value.
	KindCondition
)

func (k Kinds) String() string {
	switch k {
	case KindAttribute:
		return "attribute"
	case KindEvent:
		return "event"
	case KindCollection:
		return "collection"
	case KindCondition:
		return "condition"
	}
	return "Kinds(" + strconv.Itoa(int(k)) + ")"
}

// Binder describes one kind of binding annotation.
type Binder struct {

	// Name is the name of the binder, which is the name of its
	// annotation attribute without the data- prefix.
	Name string

	// Separator separates the view side from the model side of an
	// assignment. It is empty for condition binders.
	Separator string

	// Kind is the kind of the binder.
	Kind Kinds
}

// Binders are all of the binders, in the order in which the
// annotations of an element are discovered.
var Binders = [...]Binder{
	{Name: "bind", Separator: ":", Kind: KindAttribute},
	{Name: "bind-event", Separator: ":", Kind: KindEvent},
	{Name: "repeat", Separator: " of ", Kind: KindCollection},
	{Name: "if", Kind: KindCondition},
}

// BinderByName returns the binder with the given name.
func BinderByName(name string) (Binder, bool) {
	for _, b := range Binders {
		if b.Name == name {
			return b, true
		}
	}
	return Binder{}, false
}

// DataKey returns the lowerCamel dataset key of the annotation of
// the binder, like bindEvent.
func (b Binder) DataKey() string {
	return strcase.ToLowerCamel(b.Name)
}

// AttrName returns the attribute name of the annotation of the binder.
func (b Binder) AttrName() string {
	return dom.DataAttrName(b.DataKey())
}

// Annotation returns the annotation of the binder on the given
// element, and whether there is one.
func (b Binder) Annotation(el *dom.Element) (string, bool) {
	return el.Data(b.DataKey())
}

// joiner is the separator used when writing assignments back out.
func (b Binder) joiner() string {
	if b.Separator == ":" {
		return ": "
	}
	return b.Separator
}

func (b Binder) String() string {
	return b.Name
}
