// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeFromName(t *testing.T) {
	assert.Equal(t, Click, TypeFromName("click"))
	assert.Equal(t, Click, TypeFromName("onclick"))
	assert.Equal(t, Input, TypeFromName(" Input "))
	assert.Equal(t, FocusLost, TypeFromName("blur"))
	assert.Equal(t, Custom, TypeFromName("swipe"))
	assert.Equal(t, "dblclick", DoubleClick.String())
	assert.Equal(t, "unknown", Types(100).String())
}

func TestNewNamed(t *testing.T) {
	ev := NewNamed("swipe", 3)
	assert.Equal(t, Custom, ev.Type())
	assert.Equal(t, "swipe", ev.Name())
	assert.Equal(t, 3, ev.Data())
	assert.Equal(t, "click", NewNamed("click", nil).Name())
}

func TestListenersOrder(t *testing.T) {
	var ls Listeners
	var order []int
	ls.Add(Click, func(ev Event) { order = append(order, 1) })
	ls.Add(Click, func(ev Event) { order = append(order, 2) })
	ls.Add(Input, func(ev Event) { order = append(order, 3) })
	ls.Call(New(Click, nil))
	assert.Equal(t, []int{2, 1}, order)
	assert.Equal(t, 2, ls.Count("click"))
}

func TestListenersHandled(t *testing.T) {
	var ls Listeners
	called := false
	ls.Add(Click, func(ev Event) { called = true })
	ls.Add(Click, func(ev Event) {
		ev.PreventDefault()
		ev.SetHandled()
	})
	ev := New(Click, nil)
	ls.Call(ev)
	assert.False(t, called)
	assert.True(t, ev.DefaultPrevented())
	assert.True(t, ev.IsHandled())

	ls.Call(ev)
	assert.False(t, called)
}

func TestListenersCustom(t *testing.T) {
	var ls Listeners
	got := ""
	ls.AddNamed("swipe", func(ev Event) { got = ev.Name() })
	ls.Call(NewNamed("swipe", nil))
	assert.Equal(t, "swipe", got)
	ls.Call(NewNamed("pinch", nil))
	assert.Equal(t, "swipe", got)
}
