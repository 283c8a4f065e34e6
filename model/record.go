// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"fmt"
	"strconv"
)

// RecordTypes are the types of change [Record]s.
type RecordTypes int32

const (
	// Add is a new property of an [Object].
	Add RecordTypes = iota

	// Update is a changed property of an [Object] or a changed
	// element of an [Array] (without a change of length).
	Update

	// Delete is a deleted property of an [Object].
	Delete

	// Splice is a structural change of an [Array]: elements were
	// inserted and/or removed.
	Splice
)

func (t RecordTypes) String() string {
	switch t {
	case Add:
		return "add"
	case Update:
		return "update"
	case Delete:
		return "delete"
	case Splice:
		return "splice"
	}
	return "RecordTypes(" + strconv.Itoa(int(t)) + ")"
}

// Record describes one change of an observed [Object] or [Array].
type Record struct {

	// Type is the type of change.
	Type RecordTypes

	// Target is the changed value.
	Target Observable

	// Name is the changed property for [Object] records.
	Name string

	// Index is the changed (or first spliced) element for [Array] records.
	Index int

	// OldValue is the value before an [Update] or [Delete].
	OldValue any

	// Removed are the elements removed by a [Splice].
	Removed []any

	// AddedCount is the number of elements inserted by a [Splice].
	AddedCount int
}

// Key returns the changed property name of an [Object] record,
// or the decimal index of an [Array] record.
func (r Record) Key() string {
	if _, ok := r.Target.(*Array); ok {
		return strconv.Itoa(r.Index)
	}
	return r.Name
}

// IsStructural returns whether the record is a [Splice].
func (r Record) IsStructural() bool {
	return r.Type == Splice
}

func (r Record) String() string {
	if r.Type == Splice {
		return fmt.Sprintf("splice{index: %d, removed: %d, added: %d}", r.Index, len(r.Removed), r.AddedCount)
	}
	return fmt.Sprintf("%v{%s}", r.Type, r.Key())
}
