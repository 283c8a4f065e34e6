// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/movi/keypath"
)

func TestObjectRecords(t *testing.T) {
	h := NewHub()
	o := h.NewObject()
	var got []Record
	h.Subscribe(o, func(rs []Record) { got = append(got, rs...) })

	o.Set("name", "Ann")
	o.Set("name", "Bob")
	o.Set("name", "Bob")
	o.Delete("name")
	o.Delete("missing")
	assert.Empty(t, got, "records are only delivered by Deliver")
	assert.True(t, h.Pending())

	assert.Equal(t, 1, h.Deliver())
	require.Len(t, got, 3)
	assert.Equal(t, Add, got[0].Type)
	assert.Equal(t, "name", got[0].Key())
	assert.Equal(t, Update, got[1].Type)
	assert.Equal(t, "Ann", got[1].OldValue)
	assert.Equal(t, Delete, got[2].Type)
	assert.Equal(t, "Bob", got[2].OldValue)
	assert.False(t, h.Pending())
	assert.Equal(t, 0, h.Deliver())
}

func TestObjectOrder(t *testing.T) {
	o := NewObject(nil, "b", 1.0, "a", 2.0)
	o.Set("c", 3.0)
	assert.Equal(t, []string{"b", "a", "c"}, o.Keys())
	o.Delete("a")
	assert.Equal(t, []string{"b", "c"}, o.Keys())
	assert.Equal(t, 2, o.Len())
	assert.Equal(t, `{b: 1, c: 3}`, o.String())
}

func TestUnobservedRecordsDropped(t *testing.T) {
	h := NewHub()
	o := h.NewObject()
	o.Set("a", 1.0)
	assert.False(t, h.Pending())
}

func TestArraySplices(t *testing.T) {
	h := NewHub()
	a := h.NewArray("x", "y")
	var got []Record
	h.Subscribe(a, func(rs []Record) { got = append(got, rs...) })

	assert.Equal(t, 3, a.Push("z"))
	assert.Equal(t, "x", a.Shift())
	assert.Equal(t, 3, a.Unshift("w"))
	assert.Equal(t, "z", a.Pop())
	a.SetAt(0, "v")
	removed := a.Splice(-1, 5, "q", "r")
	assert.Equal(t, []any{"y"}, removed)
	assert.Equal(t, []any{"v", "q", "r"}, a.Items())
	assert.Nil(t, a.Splice(1, 0))

	h.Deliver()
	require.Len(t, got, 6)
	assert.Equal(t, Splice, got[0].Type)
	assert.Equal(t, 2, got[0].Index)
	assert.Equal(t, 1, got[0].AddedCount)
	assert.Equal(t, []any{"x"}, got[1].Removed)
	assert.Equal(t, Update, got[4].Type)
	assert.Equal(t, "0", got[4].Key())
	assert.True(t, got[5].IsStructural())
	assert.Equal(t, `["v", "q", "r"]`, a.String())
}

func TestArraySetAtExtends(t *testing.T) {
	h := NewHub()
	a := h.NewArray()
	var got []Record
	h.Subscribe(a, func(rs []Record) { got = append(got, rs...) })
	a.SetAt(2, "c")
	assert.Equal(t, []any{nil, nil, "c"}, a.Items())
	h.Deliver()
	require.Len(t, got, 1)
	assert.Equal(t, Splice, got[0].Type)
	assert.Equal(t, 3, got[0].AddedCount)
	assert.Nil(t, a.At(10))
}

func TestSubscriptionUnsubscribe(t *testing.T) {
	h := NewHub()
	o := h.NewObject()
	n := 0
	s := h.Subscribe(o, func(rs []Record) { n++ })
	assert.Equal(t, 1, h.NumSubscriptions(o))
	o.Set("a", 1.0)
	s.Unsubscribe()
	s.Unsubscribe()
	assert.False(t, s.Active())
	assert.Equal(t, 0, h.NumSubscriptions(o))
	h.Deliver()
	assert.Equal(t, 0, n)
	assert.Equal(t, Observable(o), s.Target())
}

func TestDeliverReentrant(t *testing.T) {
	h := NewHub()
	a, b := h.NewObject(), h.NewObject()
	var order []string
	h.Subscribe(a, func(rs []Record) {
		order = append(order, "a")
		b.Set("x", 1.0)
	})
	h.Subscribe(b, func(rs []Record) { order = append(order, "b") })
	a.Set("x", 1.0)
	assert.Equal(t, 2, h.Deliver())
	assert.Equal(t, []string{"a", "b"}, order)
}

func TestDeliverRunaway(t *testing.T) {
	h := NewHub()
	o := h.NewObject()
	i := 0.0
	h.Subscribe(o, func(rs []Record) {
		i++
		o.Set("n", i)
	})
	o.Set("n", i)
	assert.Equal(t, MaxDeliveryRounds, h.Deliver())
	assert.True(t, h.Pending())
}

func TestAfterDeliver(t *testing.T) {
	h := NewHub()
	o := h.NewObject()
	var events []string
	h.Subscribe(o, func(rs []Record) { events = append(events, "records") })
	h.AfterDeliver(func() { events = append(events, "after") })

	o.Set("a", 1)
	h.Deliver()
	assert.Equal(t, []string{"records", "after"}, events)

	events = nil
	h.AfterDeliver(func() { events = append(events, "after") })
	assert.Equal(t, 0, h.Deliver())
	h.Deliver()
	assert.Equal(t, []string{"after"}, events, "after functions run once, even without records")
}

func TestGetSet(t *testing.T) {
	h := NewHub()
	root := h.NewObject()
	require.NoError(t, Set(root, keypath.Split("user.name"), "Ann"))
	v, ok := Get(root, keypath.Split("user.name"))
	assert.True(t, ok)
	assert.Equal(t, "Ann", v)
	user, _ := root.Get("user")
	assert.IsType(t, &Object{}, user)
	assert.Equal(t, h, user.(*Object).Hub())

	require.NoError(t, Set(root, keypath.Split("todos[1].done"), true))
	todos, _ := root.Get("todos")
	require.IsType(t, &Array{}, todos)
	assert.Equal(t, 2, todos.(*Array).Len())
	v, ok = Get(root, keypath.Split("todos.1.done"))
	assert.True(t, ok)
	assert.Equal(t, true, v)

	_, ok = Get(root, keypath.Split("user.missing"))
	assert.False(t, ok)
	assert.Error(t, Set(root, nil, 1))

	// scalars in the way are replaced
	require.NoError(t, Set(root, keypath.Split("user.name.first"), "A"))
	v, _ = Get(root, keypath.Split("user.name.first"))
	assert.Equal(t, "A", v)
}

type person struct {
	Name string
	Age  int
	Tags []string
}

func TestGetSetGo(t *testing.T) {
	p := &person{Name: "Ann", Tags: []string{"a"}}
	v, ok := Get(p, keypath.Split("Tags.0"))
	assert.True(t, ok)
	assert.Equal(t, "a", v)
	require.NoError(t, SetKey(p, "Age", "41"))
	assert.Equal(t, 41, p.Age)
	assert.Error(t, SetKey(p, "Nope", 1))

	m := map[string]any{"list": []any{1.0}}
	require.NoError(t, Set(m, keypath.Split("list.0"), 2.0))
	assert.Equal(t, 2.0, m["list"].([]any)[0])
	assert.Error(t, Set(m, keypath.Split("list.5"), 2.0))

	sm := map[string]int{}
	require.NoError(t, SetKey(sm, "a", "3"))
	assert.Equal(t, 3, sm["a"])
}

func TestResolve(t *testing.T) {
	h := NewHub()
	root := ObjectFromGo(h, map[string]any{"user": map[string]any{"name": "Ann"}})

	r := Resolve(root, keypath.Split("user.name"))
	assert.True(t, r.Found)
	assert.Equal(t, "Ann", r.Value)
	assert.Equal(t, "name", r.Key)
	user, _ := root.Get("user")
	assert.Equal(t, user, r.Container)

	r = Resolve(root, keypath.Split("a.b.c"))
	assert.False(t, r.Found)
	assert.Nil(t, r.Value)
	ab, ok := Get(root, keypath.Split("a.b"))
	require.True(t, ok)
	assert.Equal(t, ab, r.Container)

	r = Resolve(root, keypath.Split("top"))
	assert.Equal(t, Container(root), r.Container)
}

func TestTruthy(t *testing.T) {
	for _, v := range []any{nil, false, 0.0, "", math.NaN(), 0, (*Object)(nil)} {
		assert.False(t, Truthy(v), "%v", v)
	}
	for _, v := range []any{true, 1.0, "x", "false", NewObject(nil), NewArray(nil), -1, struct{}{}} {
		assert.True(t, Truthy(v), "%v", v)
	}
}

func TestFromToGo(t *testing.T) {
	h := NewHub()
	v := FromGo(h, map[string]any{
		"b": []any{1, "x", map[string]any{"k": true}},
		"a": person{Name: "Ann", Age: 3},
	})
	o, ok := v.(*Object)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, o.Keys())
	a, _ := Get(o, keypath.Split("a.Age"))
	assert.Equal(t, 3.0, a)
	k, _ := Get(o, keypath.Split("b[2].k"))
	assert.Equal(t, true, k)

	back := ToGo(o)
	assert.Equal(t, map[string]any{
		"a": map[string]any{"Name": "Ann", "Age": 3.0, "Tags": []any{}},
		"b": []any{1.0, "x", map[string]any{"k": true}},
	}, back)
	assert.Equal(t, "hi", FromGo(h, []byte("hi")))
}

func TestUpdateFrom(t *testing.T) {
	h := NewHub()
	dst := ObjectFromGo(h, map[string]any{
		"user":  map[string]any{"name": "Ann", "age": 3},
		"todos": []any{"a"},
		"gone":  1,
	})
	user, _ := dst.Get("user")
	todos, _ := dst.Get("todos")
	var records []Record
	h.Subscribe(user.(*Object), func(rs []Record) { records = append(records, rs...) })
	h.Subscribe(todos.(*Array), func(rs []Record) { records = append(records, rs...) })

	src := ObjectFromGo(NewHub(), map[string]any{
		"user":  map[string]any{"name": "Bob", "age": 3},
		"todos": []any{"a", "b"},
		"new":   map[string]any{"x": 1},
	})
	UpdateFrom(dst, src)
	h.Deliver()

	assert.Equal(t, []string{"todos", "user", "new"}, dst.Keys())
	same, _ := dst.Get("user")
	assert.Equal(t, user, same, "nested objects are updated in place")
	assert.Equal(t, []any{"a", "b"}, todos.(*Array).Items())
	nw, _ := dst.Get("new")
	assert.Equal(t, h, nw.(*Object).Hub())
	require.Len(t, records, 2)
	assert.Equal(t, Splice, records[0].Type)
	assert.Equal(t, "name", records[1].Key())
}

func TestDecode(t *testing.T) {
	h := NewHub()
	o, err := Decode(h, []byte(`{"user": {"name": "Ann"}, "n": [1, 2]}`), JSON)
	require.NoError(t, err)
	v, _ := Get(o, keypath.Split("n[1]"))
	assert.Equal(t, 2.0, v)

	o, err = Decode(h, []byte("n = 3\n[user]\nname = \"Ann\"\n"), TOML)
	require.NoError(t, err)
	v, _ = Get(o, keypath.Split("user.name"))
	assert.Equal(t, "Ann", v)
	v, _ = o.Get("n")
	assert.Equal(t, 3.0, v)

	o, err = Decode(h, []byte("user:\n  name: Ann\ntodos:\n  - done: true\n"), YAML)
	require.NoError(t, err)
	v, _ = Get(o, keypath.Split("todos.0.done"))
	assert.Equal(t, true, v)

	_, err = Decode(h, []byte(`[1]`), JSON)
	assert.Error(t, err)

	f, err := FormatFromFilename("a/b.YML")
	require.NoError(t, err)
	assert.Equal(t, YAML, f)
	_, err = FormatFromFilename("a.txt")
	assert.Error(t, err)

	b, err := Encode(NewObject(nil, "a", 1.0))
	require.NoError(t, err)
	assert.JSONEq(t, `{"a": 1}`, string(b))
}
