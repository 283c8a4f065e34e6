// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package model provides the observable data graph that views are bound
// to: string-keyed [Object]s and ordered [Array]s whose mutations produce
// change [Record]s, a [Hub] delivering those records to subscribers,
// and path-based access to nested values with auto-vivification.
package model

import (
	"reflect"
	"slices"
	"strings"

	"cogentcore.org/movi/events"
)

// Observable is a value whose mutations can be subscribed to
// through [Hub.Subscribe]. It is implemented by [*Object] and [*Array].
type Observable interface {

	// Hub returns the hub that change records are sent to,
	// which may be nil for detached values.
	Hub() *Hub
}

// Container is an [Observable] whose elements can be accessed by
// string key: property names for [*Object] and decimal indexes for [*Array].
type Container interface {
	Observable

	// GetKey returns the element with the given key and whether it exists.
	GetKey(key string) (any, bool)

	// SetKey sets the element with the given key.
	SetKey(key string, value any)
}

// Func is a function value stored in a model, which event bindings
// call when their event happens.
type Func func(ev events.Event, args ...any)

// Object is an observable record of string-keyed values, which keeps
// the order in which properties were added.
type Object struct {
	hub    *Hub
	keys   []string
	values map[string]any
}

// NewObject returns a new empty [Object] sending its change records
// to the given hub.
func (h *Hub) NewObject() *Object {
	return &Object{hub: h, values: map[string]any{}}
}

// NewObject returns a new [Object] with the given hub, initialized
// with the given alternating key, value pairs (which do not produce
// change records).
func NewObject(hub *Hub, kvs ...any) *Object {
	o := &Object{hub: hub, values: map[string]any{}}
	for i := 0; i+1 < len(kvs); i += 2 {
		k, _ := kvs[i].(string)
		o.keys = append(o.keys, k)
		o.values[k] = kvs[i+1]
	}
	return o
}

// Hub returns the hub of the object.
func (o *Object) Hub() *Hub {
	return o.hub
}

// Len returns the number of properties.
func (o *Object) Len() int {
	return len(o.keys)
}

// Keys returns the property names in the order they were added.
func (o *Object) Keys() []string {
	return slices.Clone(o.keys)
}

// Has returns whether the object has the given property.
func (o *Object) Has(key string) bool {
	_, ok := o.values[key]
	return ok
}

// Get returns the value of the given property and whether it exists.
func (o *Object) Get(key string) (any, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Value returns the value of the given property, or nil.
func (o *Object) Value(key string) any {
	return o.values[key]
}

// Set sets the given property, producing an [Add] record for a new
// property and an [Update] record for a changed one. Setting a property
// to an identical value produces no record.
func (o *Object) Set(key string, value any) {
	old, has := o.values[key]
	if has && same(old, value) {
		return
	}
	if !has {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
	if o.hub == nil {
		return
	}
	if has {
		o.hub.notify(Record{Type: Update, Target: o, Name: key, OldValue: old})
	} else {
		o.hub.notify(Record{Type: Add, Target: o, Name: key})
	}
}

// Delete deletes the given property, producing a [Delete] record.
func (o *Object) Delete(key string) {
	old, has := o.values[key]
	if !has {
		return
	}
	delete(o.values, key)
	o.keys = slices.DeleteFunc(o.keys, func(k string) bool { return k == key })
	if o.hub != nil {
		o.hub.notify(Record{Type: Delete, Target: o, Name: key, OldValue: old})
	}
}

// GetKey implements [Container].
func (o *Object) GetKey(key string) (any, bool) {
	return o.Get(key)
}

// SetKey implements [Container].
func (o *Object) SetKey(key string, value any) {
	o.Set(key, value)
}

func (o *Object) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(format(o.values[k]))
	}
	b.WriteByte('}')
	return b.String()
}

// same returns whether the two values are identical, without
// panicking on uncomparable values (which are never identical).
func same(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() || ta.Kind() == reflect.Func {
		return false
	}
	if ta.Kind() == reflect.Interface || ta.Kind() == reflect.Struct || ta.Kind() == reflect.Array {
		// these can panic at run time if they hold uncomparable values
		return false
	}
	return a == b
}
