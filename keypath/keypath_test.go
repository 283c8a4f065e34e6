// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keypath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	assert.Equal(t, Path{"a", "b", "3", "c"}, Split("a.b.3.c"))
	assert.Equal(t, Path{"a", "b", "3", "c"}, Split(" a.b[3].c "))
	assert.Equal(t, Path{"a", "0", "1"}, Split("a[0][1]"))
	assert.Equal(t, Path{"user"}, Split("user"))
	assert.Equal(t, Path{""}, Split(""))
	assert.Equal(t, Path{"a", "", "b"}, Split("a..b"))
	assert.Equal(t, Path{"a", "", "b", "0"}, Split("a..b[0]"))
}

func TestIndexed(t *testing.T) {
	assert.Equal(t, "a.b[3].c", Path{"a", "b", "3", "c"}.Indexed())
	assert.Equal(t, "todos[0]", Path{"todos", "0"}.Indexed())
	assert.Equal(t, "a[0][1]", Path{"a", "0", "1"}.Indexed())
	assert.Equal(t, "user.name", Path{"user", "name"}.Indexed())
	assert.Equal(t, "todos[1].done", Indexed("todos.1.done"))
	assert.Equal(t, "a[007].b", Indexed("a.007.b"))
	assert.Equal(t, "a.+1", Indexed("a.+1"))
}

func TestDotted(t *testing.T) {
	assert.Equal(t, "a.b.3.c", Path{"a", "b", "3", "c"}.Dotted())
	assert.Equal(t, "a.b.3.c", Split("a.b[3].c").Dotted())
}

func TestRoundTrip(t *testing.T) {
	paths := []Path{
		{"a"},
		{"a", "b"},
		{"todos", "0", "done"},
		{"a", "12", "b", "7"},
		{"matrix", "0", "1", "value"},
		{"a", "007", "b"},
		{"a", "+1"},
	}
	for _, p := range paths {
		assert.Equal(t, p, Split(p.Indexed()), p.Dotted())
		assert.Equal(t, p, Split(p.Dotted()), p.Dotted())
	}
}

func TestIsIndex(t *testing.T) {
	n, ok := IsIndex("12")
	assert.True(t, ok)
	assert.Equal(t, 12, n)
	_, ok = IsIndex("-1")
	assert.False(t, ok)
	_, ok = IsIndex("name")
	assert.False(t, ok)
	_, ok = IsIndex("+1")
	assert.False(t, ok)
	n, ok = IsIndex("007")
	assert.True(t, ok)
	assert.Equal(t, 7, n)
}

func TestHelpers(t *testing.T) {
	p := Path{"a", "b", "c"}
	assert.Equal(t, "a", p.First())
	assert.Equal(t, "c", p.Last())
	assert.Equal(t, Path{"a", "b"}, p.Parent())
	c := p.Clone()
	c[0] = "x"
	assert.Equal(t, "a", p[0])
	assert.True(t, p.Equal(Path{"a", "b", "c"}))
	assert.False(t, p.Equal(c))
	assert.Equal(t, "", Path{}.First())
	assert.Nil(t, Path{}.Parent())
}
