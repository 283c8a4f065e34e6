// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Listeners registers lists of event listener functions
// to receive different events, keyed by event name so that
// [Custom] events can be told apart.
// Listeners are closure methods with all context captured,
// registered on specific nodes.
type Listeners map[string][]func(ev Event)

// Init ensures that the map is constructed.
func (ls *Listeners) Init() {
	if *ls != nil {
		return
	}
	*ls = make(map[string][]func(Event))
}

// Add adds a function for the given event type.
func (ls *Listeners) Add(typ Types, fun func(Event)) {
	ls.AddNamed(typ.String(), fun)
}

// AddNamed adds a function for the event with the given name.
func (ls *Listeners) AddNamed(name string, fun func(Event)) {
	ls.Init()
	(*ls)[name] = append((*ls)[name], fun)
}

// Count returns the number of functions registered for the given event name.
func (ls *Listeners) Count(name string) int {
	return len((*ls)[name])
}

// Call calls all functions for the given event.
// It goes in _reverse_ order so the last functions added are the first called
// and it stops when the event is marked as Handled. This allows for a natural
// and optional override behavior, as compared to requiring more complex
// priority-based mechanisms.
func (ls *Listeners) Call(ev Event) {
	if ev.IsHandled() {
		return
	}
	ets := (*ls)[ev.Name()]
	for i := len(ets) - 1; i >= 0; i-- {
		ets[i](ev)
		if ev.IsHandled() {
			break
		}
	}
}
