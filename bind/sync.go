// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bind

import (
	"log/slog"
	"strconv"
	"strings"

	"cogentcore.org/movi/dom"
	"cogentcore.org/movi/events"
	"cogentcore.org/movi/keypath"
	"cogentcore.org/movi/model"
)

// bindAttribute pushes the value to the view path, and keeps pushing
// the model value on model changes. Self references are only pushed
// once. Input events on elements with a value slot pull the value into
// the model for value bindings. The model change caused by an input is
// not pushed back to the view; that suppression lasts until the end of
// the next delivery, so an input that changes nothing in the model does
// not hide a later change.
func (e *Engine) bindAttribute(b Binding) func() {
	b.Node.Set(b.Attribute, b.Value)
	if b.Model == nil {
		return nil
	}
	l := newLifetime(b.Node)

	fromInput := false
	if b.Node.HasValueSlot() {
		isValue := b.Attribute.Dotted() == "value"
		b.Node.OnInput(func(ev events.Event) {
			if !l.active {
				return
			}
			fromInput = true
			if h := b.Model.Hub(); h != nil {
				h.AfterDeliver(func() { fromInput = false })
			}
			if isValue {
				b.Model.SetKey(b.Property, b.Node.Value())
			}
		})
	}

	l.subscribe(b.Model, func(records []model.Record) {
		if !l.live(b) {
			return
		}
		for _, r := range records {
			if r.Key() != b.Property {
				continue
			}
			if fromInput {
				fromInput = false
				continue
			}
			v, _ := b.Model.GetKey(b.Property)
			b.Node.Set(b.Attribute, v)
		}
	})
	return l.dispose
}

// bindEvent sets the handler attribute of the event to the call
// expression of the handler, and listens to the event: the default
// action is prevented and the handler is called if the model holds
// a [model.Func] at its path.
func (e *Engine) bindEvent(b Binding) func() {
	b.Node.SetAttr("on"+b.Event, b.Handler+"("+strings.Join(b.Args, ", ")+")")
	l := newLifetime(b.Node)
	b.Node.On(b.Event, func(ev events.Event) {
		if !l.active {
			return
		}
		ev.PreventDefault()
		fv, _ := model.Get(e.Root, keypath.Split(b.Handler))
		fun, ok := fv.(model.Func)
		if !ok {
			slog.Debug("bind: no handler function", "event", b.Event, "handler", b.Handler)
			return
		}
		args := make([]any, len(b.Args))
		for i, arg := range b.Args {
			args[i] = e.evalArg(arg, b.Node, ev)
		}
		fun(ev, args...)
	})
	return l.dispose
}

// evalArg returns the value of the given handler argument: a literal,
// the element (this), a view path of it (this.x), the event (event),
// or else a model path.
func (e *Engine) evalArg(arg string, el *dom.Element, ev events.Event) any {
	switch arg {
	case "true":
		return true
	case "false":
		return false
	case "null", "undefined":
		return nil
	case SelfName:
		return el
	case "event":
		return ev
	}
	if len(arg) >= 2 && (arg[0] == '\'' || arg[0] == '"') && arg[len(arg)-1] == arg[0] {
		return arg[1 : len(arg)-1]
	}
	if f, err := strconv.ParseFloat(arg, 64); err == nil {
		return f
	}
	p := keypath.Split(arg)
	if p.First() == SelfName {
		v, _ := el.Get(p[1:])
		return v
	}
	v, _ := model.Get(e.Root, p)
	return v
}

// showCondition returns whether the content of a condition binding
// is shown for the given value.
func showCondition(b Binding, value any) bool {
	return model.Truthy(value) == b.Condition
}

// renderCondition sets the content of the element to a clone of the
// children of the given template or clears it, by the value of the binding.
func renderCondition(b Binding, value any, template *dom.Element) {
	b.Node.DeleteChildren()
	if !showCondition(b, value) {
		return
	}
	for _, kid := range template.Children {
		b.Node.AddChild(kid.AsTree().Clone())
	}
}

// bindCondition captures the content of the element as its template
// and renders it by the value of the condition. When the value changes,
// all of the condition bindings of the element are evaluated again,
// and the element is re-rendered and bound for each one whose
// truthiness changed.
func (e *Engine) bindCondition(b Binding) func() {
	template := b.Node.CloneElement()
	renderCondition(b, b.Value, template)
	state := model.Truthy(b.Value)
	l := newLifetime(b.Node)

	l.subscribe(b.Model, func(records []model.Record) {
		for _, r := range records {
			if !l.live(b) {
				return
			}
			if r.Key() != b.Property {
				continue
			}
			for _, cb := range Discover(e.Root, b.Node, e.Strict) {
				if cb.Binder.Kind != KindCondition || model.Truthy(cb.Value) == state {
					continue
				}
				state = !state
				renderCondition(cb, cb.Value, template)
				e.Bind(b.Node)
			}
		}
	})
	return l.dispose
}

// bindCollection captures the content of the element as its template
// and expands it for each item of the bound array, which is created if
// the model does not hold one. Structural changes of the array expand
// the template again from scratch, and bind the result.
func (e *Engine) bindCollection(b Binding) func() {
	arr, ok := b.Value.(*model.Array)
	if !ok {
		arr = model.NewArray(e.Hub())
		b.Model.SetKey(b.Property, arr)
		b.Value = arr
	}
	template := b.Node.CloneElement()
	expand(b, arr, template)
	l := newLifetime(b.Node)

	l.subscribe(arr, func(records []model.Record) {
		if !l.live(b) {
			return
		}
		for _, r := range records {
			if r.IsStructural() {
				slog.Debug("bind: rebuilding collection", "collection", b.Collection, "items", arr.Len())
				expand(b, arr, template)
				e.Bind(b.Node)
				return
			}
		}
	})
	return l.dispose
}
