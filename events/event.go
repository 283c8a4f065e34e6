// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the events that are delivered to nodes
// in a tree, and the listener lists that receive them.
package events

import (
	"fmt"
	"time"
)

// Event is the interface for all events. Most events are
// a [*Base] created with [New].
type Event interface {
	fmt.Stringer

	// Type returns the type of the event.
	Type() Types

	// Name returns the name of the event, which is the standard name
	// of its type except for [Custom] events.
	Name() string

	// Time returns the time at which the event was created.
	Time() time.Time

	// Data returns any data associated with the event,
	// such as the new value for an [Input] event.
	Data() any

	// Target returns the node the event was dispatched to, if set.
	Target() any

	// SetTarget sets the node the event is dispatched to.
	SetTarget(target any)

	// IsHandled returns whether the event has been handled.
	// Listeners stop being called once it has.
	IsHandled() bool

	// SetHandled marks the event as handled.
	SetHandled()

	// PreventDefault marks that the default action associated
	// with the event should not be taken.
	PreventDefault()

	// DefaultPrevented returns whether [Event.PreventDefault] was called.
	DefaultPrevented() bool
}

// Base is the basic implementation of [Event].
type Base struct {
	typ       Types
	name      string
	time      time.Time
	data      any
	target    any
	handled   bool
	prevented bool
}

// New returns a new event of the given type with the given data.
func New(typ Types, data any) *Base {
	return &Base{typ: typ, name: typ.String(), time: time.Now(), data: data}
}

// NewNamed returns a new event with the given name, which determines
// its type through [TypeFromName]. Unknown names make [Custom] events
// that keep the given name.
func NewNamed(name string, data any) *Base {
	ev := New(TypeFromName(name), data)
	if ev.typ == Custom {
		ev.name = name
	}
	return ev
}

func (ev *Base) Type() Types            { return ev.typ }
func (ev *Base) Name() string           { return ev.name }
func (ev *Base) Time() time.Time        { return ev.time }
func (ev *Base) Data() any              { return ev.data }
func (ev *Base) Target() any            { return ev.target }
func (ev *Base) SetTarget(target any)   { ev.target = target }
func (ev *Base) IsHandled() bool        { return ev.handled }
func (ev *Base) SetHandled()            { ev.handled = true }
func (ev *Base) PreventDefault()        { ev.prevented = true }
func (ev *Base) DefaultPrevented() bool { return ev.prevented }

func (ev *Base) String() string {
	return fmt.Sprintf("%s{Data: %v, Time: %v}", ev.name, ev.data, ev.time.Format(time.TimeOnly))
}
