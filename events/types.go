// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"strings"
)

// Types determines the type of an event delivered to a node.
// The names follow the standard
// [JavaScript Event](https://developer.mozilla.org/en-US/docs/Web/Events)
// names, which is also how they appear in event annotations
// (see [TypeFromName]).
type Types int32

const (
	// zero value is an unknown type
	UnknownType Types = iota

	// Input is sent whenever the value of an element with a value
	// slot (input, textarea, select) is edited by the user.
	Input

	// Change is when a value represented by the element has changed
	// and the edit has been committed.
	Change

	// Click is a mouse down followed by a mouse up on the same element.
	Click

	// DoubleClick represents two Click events in a row in rapid succession.
	DoubleClick

	// Submit is sent by a form when it is submitted.
	Submit

	// KeyDown is sent when a key is pressed.
	KeyDown

	// KeyUp is sent when a key is released.
	KeyUp

	// Focus is sent when an element receives focus.
	Focus

	// FocusLost is sent when an element loses focus (blur).
	FocusLost

	// Custom is a user-defined event, identified by its name.
	Custom

	typesN
)

var typeNames = [...]string{
	UnknownType: "unknown",
	Input:       "input",
	Change:      "change",
	Click:       "click",
	DoubleClick: "dblclick",
	Submit:      "submit",
	KeyDown:     "keydown",
	KeyUp:       "keyup",
	Focus:       "focus",
	FocusLost:   "blur",
	Custom:      "custom",
}

// String returns the standard name of the event type.
func (t Types) String() string {
	if t < 0 || t >= typesN {
		return "unknown"
	}
	return typeNames[t]
}

// TypeFromName returns the event type with the given standard name
// (case insensitive, with an optional "on" prefix), and [Custom]
// for any name that is not a standard one.
func TypeFromName(name string) Types {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, nm := range typeNames {
		if nm == name || "on"+nm == name {
			return Types(i)
		}
	}
	return Custom
}

// CanonicalName returns the name under which events with the given
// name are dispatched: the standard name of its type, or the name
// itself for [Custom] events.
func CanonicalName(name string) string {
	if t := TypeFromName(name); t != Custom {
		return t.String()
	}
	return name
}
