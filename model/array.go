// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"slices"
	"strconv"
	"strings"

	"cogentcore.org/movi/keypath"
)

// Array is an observable ordered list of values.
// Structural changes (insertions and removals) produce [Splice]
// records; replacing an element in place produces an [Update] record.
type Array struct {
	hub   *Hub
	items []any
}

// NewArray returns a new [Array] sending its change records
// to the hub, initialized with the given items.
func (h *Hub) NewArray(items ...any) *Array {
	return NewArray(h, items...)
}

// NewArray returns a new [Array] with the given hub and items.
func NewArray(hub *Hub, items ...any) *Array {
	return &Array{hub: hub, items: slices.Clone(items)}
}

// Hub returns the hub of the array.
func (a *Array) Hub() *Hub {
	return a.hub
}

// Len returns the number of elements.
func (a *Array) Len() int {
	return len(a.items)
}

// Items returns a copy of the elements.
func (a *Array) Items() []any {
	return slices.Clone(a.items)
}

// At returns the element at the given index, or nil if it is out of range.
func (a *Array) At(i int) any {
	if i < 0 || i >= len(a.items) {
		return nil
	}
	return a.items[i]
}

// SetAt sets the element at the given index. Setting an element past
// the end extends the array with nil elements, which is a [Splice].
func (a *Array) SetAt(i int, value any) {
	if i < 0 {
		return
	}
	if i >= len(a.items) {
		start := len(a.items)
		a.items = append(a.items, make([]any, i-start+1)...)
		a.items[i] = value
		a.notify(Record{Type: Splice, Index: start, AddedCount: i - start + 1})
		return
	}
	old := a.items[i]
	if same(old, value) {
		return
	}
	a.items[i] = value
	a.notify(Record{Type: Update, Index: i, OldValue: old})
}

// Push appends the given values, returning the new length.
func (a *Array) Push(values ...any) int {
	a.Splice(len(a.items), 0, values...)
	return len(a.items)
}

// Pop removes and returns the last element, or nil if the array is empty.
func (a *Array) Pop() any {
	if len(a.items) == 0 {
		return nil
	}
	return a.Splice(len(a.items)-1, 1)[0]
}

// Shift removes and returns the first element, or nil if the array is empty.
func (a *Array) Shift() any {
	if len(a.items) == 0 {
		return nil
	}
	return a.Splice(0, 1)[0]
}

// Unshift inserts the given values at the start, returning the new length.
func (a *Array) Unshift(values ...any) int {
	a.Splice(0, 0, values...)
	return len(a.items)
}

// Splice removes deleteCount elements starting at start and inserts the
// given values in their place, returning the removed elements. Negative
// starts count from the end; out of range arguments are clamped.
func (a *Array) Splice(start, deleteCount int, values ...any) []any {
	n := len(a.items)
	if start < 0 {
		start = max(n+start, 0)
	}
	start = min(start, n)
	deleteCount = min(max(deleteCount, 0), n-start)
	if deleteCount == 0 && len(values) == 0 {
		return nil
	}
	removed := slices.Clone(a.items[start : start+deleteCount])
	a.items = slices.Replace(a.items, start, start+deleteCount, values...)
	a.notify(Record{Type: Splice, Index: start, Removed: removed, AddedCount: len(values)})
	return removed
}

// Replace replaces all of the elements with the given values
// in one [Splice].
func (a *Array) Replace(values ...any) {
	a.Splice(0, len(a.items), values...)
}

// GetKey implements [Container] with decimal index keys.
func (a *Array) GetKey(key string) (any, bool) {
	i, ok := keypath.IsIndex(key)
	if !ok || i >= len(a.items) {
		return nil, false
	}
	return a.items[i], true
}

// SetKey implements [Container] with decimal index keys.
// Keys that are not indexes are ignored.
func (a *Array) SetKey(key string, value any) {
	if i, ok := keypath.IsIndex(key); ok {
		a.SetAt(i, value)
	}
}

func (a *Array) notify(r Record) {
	if a.hub == nil {
		return
	}
	r.Target = a
	a.hub.notify(r)
}

func (a *Array) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range a.items {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(format(v))
	}
	b.WriteByte(']')
	return b.String()
}

// format formats a value for String methods, quoting strings.
func format(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return strconv.Quote(x)
	}
	return toString(v)
}
