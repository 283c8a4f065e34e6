// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bind

import (
	"log/slog"

	"cogentcore.org/movi/dom"
	"cogentcore.org/movi/events"
	"cogentcore.org/movi/model"
	"cogentcore.org/movi/tree"
)

// Engine binds element trees to a model.
type Engine struct {

	// Root is the root of the model that model paths are resolved against.
	Root *model.Object

	// Strict is whether malformed annotation sentences are reported
	// as [MalformedBindingExpression] errors in the log. They are
	// skipped either way.
	Strict bool
}

// NewEngine returns a new [Engine] for the given model root.
func NewEngine(root *model.Object) *Engine {
	return &Engine{Root: root}
}

// Hub returns the hub of the model root.
func (e *Engine) Hub() *model.Hub {
	return e.Root.Hub()
}

// Bind binds the descendants of the given element, depth first: the
// annotations of all of the child elements of a node are bound before
// those of their own children.
func (e *Engine) Bind(root *dom.Element) {
	kids := root.ElementChildren()
	for _, el := range kids {
		for _, b := range Discover(e.Root, el, e.Strict) {
			e.activate(b)
		}
	}
	// activation can re-render children, so they are listed again
	for _, el := range root.ElementChildren() {
		e.Bind(el)
	}
}

// activate starts the synchronizer of the given binding, and
// disposes of it when the bound element is destroyed.
func (e *Engine) activate(b Binding) {
	var dispose func()
	switch b.Binder.Kind {
	case KindAttribute:
		dispose = e.bindAttribute(b)
	case KindEvent:
		dispose = e.bindEvent(b)
	case KindCondition:
		dispose = e.bindCondition(b)
	case KindCollection:
		dispose = e.bindCollection(b)
	}
	if dispose != nil {
		b.Node.OnDestroy(dispose)
	}
}

// Deliver delivers the pending model change records, running the
// synchronizers that react to them. It returns the number of
// record batches delivered.
func (e *Engine) Deliver() int {
	return e.Hub().Deliver()
}

// Input simulates the user editing the value of the given element,
// and delivers the resulting model changes.
func (e *Engine) Input(el *dom.Element, value string) {
	el.InputValue(value)
	e.Deliver()
}

// Dispatch dispatches the given event to the given element, delivers
// the resulting model changes, and returns the event.
func (e *Engine) Dispatch(el *dom.Element, ev events.Event) events.Event {
	el.Dispatch(ev)
	e.Deliver()
	return ev
}

// attached returns whether the element is still part of the tree
// with the given root. It is not once the element or one of its
// ancestors has been removed from that tree.
func attached(el *dom.Element, root tree.Node) bool {
	return !el.IsDestroyed() && el.Parent != nil && tree.Root(el.This) == root
}

// lifetime tracks whether a synchronizer is active, and disposes
// of its model subscription once.
type lifetime struct {
	sub    *model.Subscription
	active bool

	// root is the root of the tree the element was bound in.
	root tree.Node
}

func newLifetime(el *dom.Element) *lifetime {
	return &lifetime{active: true, root: tree.Root(el.This)}
}

func (l *lifetime) dispose() {
	if !l.active {
		return
	}
	l.active = false
	if l.sub != nil {
		l.sub.Unsubscribe()
	}
}

// live returns whether the synchronizer of the given binding should
// still react, disposing of it when its element has been detached.
func (l *lifetime) live(b Binding) bool {
	if !l.active {
		return false
	}
	if !attached(b.Node, l.root) {
		slog.Debug("bind: element detached; disposing", "binder", b.Binder, "property", b.Property)
		l.dispose()
		return false
	}
	return true
}

// subscribe subscribes the lifetime to the given target, if the
// target belongs to a hub.
func (l *lifetime) subscribe(target model.Observable, fun func(records []model.Record)) {
	h := target.Hub()
	if h == nil {
		return
	}
	l.sub = h.Subscribe(target, fun)
}
