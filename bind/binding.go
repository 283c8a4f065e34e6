// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bind

import (
	"log/slog"

	"cogentcore.org/movi/base/errors"
	"cogentcore.org/movi/dom"
	"cogentcore.org/movi/keypath"
	"cogentcore.org/movi/model"
)

// SelfName is the first segment of model paths that refer to
// the bound element itself instead of the model.
const SelfName = "this"

// Binding describes one binding between an element and a model value.
// It is built by [Build] and not modified afterwards.
type Binding struct {

	// Binder is the binder of the annotation the binding came from.
	Binder Binder

	// Node is the bound element.
	Node *dom.Element

	// Model is the container holding the bound model value.
	// It is nil for attribute bindings that only copy a value
	// of the element itself.
	Model model.Container

	// Property is the key of the bound value within Model.
	Property string

	// Value is the bound value when the binding was built.
	Value any

	// Attribute is the view path of attribute bindings.
	Attribute keypath.Path

	// Event is the event name of event bindings.
	Event string

	// Handler is the indexed model path of the handler of event bindings.
	Handler string

	// Args are the call arguments of event bindings.
	Args []string

	// Condition is whether condition bindings are not negated.
	Condition bool

	// Collection is the dotted model path of collection bindings.
	Collection string

	// Item is the item alias of collection bindings.
	Item string
}

// Build resolves the given assignment of the given binder on the given
// element against the given model root, and returns the resulting
// [Binding]. Missing containers on the model path are created. If the
// model has no value at the path yet, the current view value of the
// element is written to the model first, so that bindings always start
// from a defined value.
func Build(root *model.Object, b Binder, el *dom.Element, a Assignment) Binding {
	bd := Binding{Binder: b, Node: el}
	switch b.Kind {
	case KindCollection:
		bd.Collection = a.Object.Dotted()
		bd.Item = a.Property.First()
	case KindEvent:
		bd.Event = a.Property.Dotted()
		bd.Handler = a.Object.Indexed()
		bd.Args = a.Args
	case KindCondition:
		bd.Condition = a.Condition
	case KindAttribute:
		bd.Attribute = a.Property
		if a.Object.First() == SelfName {
			bd.Value, _ = el.Get(a.Object[1:])
			return bd
		}
	}

	r := model.Resolve(root, a.Object)
	bd.Model, bd.Property, bd.Value = r.Container, r.Key, r.Value
	if !r.Found {
		seedModel(&bd)
	}
	return bd
}

// seedModel writes the current view value of the binding to the model.
// Bindings without a view path use the condition dataset entry.
func seedModel(bd *Binding) {
	attr := bd.Attribute
	if attr == nil {
		bd.Node.SetData("condition", "")
		attr = keypath.Path{"dataset", "condition"}
	}
	v, _ := bd.Node.Get(attr)
	slog.Debug("bind: seeding model from view", "binder", bd.Binder, "property", bd.Property, "view", attr, "value", v)
	bd.Model.SetKey(bd.Property, v)
	bd.Value = v
}

// Discover parses all of the annotations of the given element and
// builds their bindings against the given model root, in the order of
// [Binders]. In strict mode, malformed sentences are logged.
func Discover(root *model.Object, el *dom.Element, strict bool) []Binding {
	var res []Binding
	for _, b := range Binders {
		ann, ok := b.Annotation(el)
		if !ok {
			continue
		}
		var as []Assignment
		if strict {
			var err error
			as, err = ParseAssignmentsStrict(ann, b.Separator)
			errors.Log(err)
		} else {
			as = ParseAssignments(ann, b.Separator)
		}
		for _, a := range as {
			res = append(res, Build(root, b, el, a))
		}
	}
	return res
}
