// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bind

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/movi/keypath"
)

func TestSplitSentences(t *testing.T) {
	assert.Equal(t, []string{"a:1", "b:2"}, SplitSentences("a:1; ;b:2;"))
	assert.Nil(t, SplitSentences(" ; "))
}

func TestParseAssignments(t *testing.T) {
	tests := []struct {
		text string
		sep  string
		want []Assignment
	}{
		{"text: user.name", ":", []Assignment{
			{Property: keypath.Path{"text"}, Object: keypath.Path{"user", "name"}},
		}},
		{"value: a.b; style.color: c", ":", []Assignment{
			{Property: keypath.Path{"value"}, Object: keypath.Path{"a", "b"}},
			{Property: keypath.Path{"style", "color"}, Object: keypath.Path{"c"}},
		}},
		{"click: todos.remove( item, this.id )", ":", []Assignment{
			{Property: keypath.Path{"click"}, Object: keypath.Path{"todos", "remove"}, Args: []string{"item", "this.id"}},
		}},
		{"submit: save()", ":", []Assignment{
			{Property: keypath.Path{"submit"}, Object: keypath.Path{"save"}},
		}},
		{"todo of list.todos", " of ", []Assignment{
			{Property: keypath.Path{"todo"}, Object: keypath.Path{"list", "todos"}},
		}},
		{"!user.active", "", []Assignment{
			{Object: keypath.Path{"user", "active"}, Condition: false},
		}},
		{"user.active", "", []Assignment{
			{Object: keypath.Path{"user", "active"}, Condition: true},
		}},
		{"broken; text: x", ":", []Assignment{
			{Property: keypath.Path{"text"}, Object: keypath.Path{"x"}},
		}},
	}
	for _, test := range tests {
		got := ParseAssignments(test.text, test.sep)
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("ParseAssignments(%q) mismatch (-want +got):\n%s", test.text, diff)
		}
	}
}

func TestParseAssignmentsStrict(t *testing.T) {
	as, err := ParseAssignmentsStrict("text: x; broken; : y; value: f(a", ":")
	require.Error(t, err)
	var mal *MalformedBindingExpression
	require.ErrorAs(t, err, &mal)
	assert.Equal(t, "broken", mal.Sentence)
	assert.Contains(t, err.Error(), "missing view side")
	assert.Contains(t, err.Error(), "unbalanced parentheses")
	require.Len(t, as, 1)
	assert.Equal(t, keypath.Path{"x"}, as[0].Object)

	as, err = ParseAssignmentsStrict("!", "")
	assert.Error(t, err)
	assert.Empty(t, as)

	// the default parser keeps what it can read
	as = ParseAssignments("value: f(a", ":")
	require.Len(t, as, 1)
	assert.Equal(t, keypath.Path{"f(a"}, as[0].Object)
	assert.False(t, as[0].HasArgs())
}

func TestRewriteAnnotation(t *testing.T) {
	bindB, _ := BinderByName("bind")
	eventB, _ := BinderByName("bind-event")
	repeatB, _ := BinderByName("repeat")
	ifB, _ := BinderByName("if")
	tests := []struct {
		binder     Binder
		annotation string
		want       string
	}{
		{bindB, "checked: item.done", "checked: todos.2.done"},
		{bindB, "text: item.name; className: theme", "text: todos.2.name; className: theme"},
		{bindB, "text: item", "text: todos.2"},
		{eventB, "click: remove(item, this.id, 'x')", "click: remove(todos[2], this.id, 'x')"},
		{eventB, "click: item.toggle(item.id)", "click: todos.2.toggle(todos[2].id)"},
		{repeatB, "tag of item.tags", "tag of todos.2.tags"},
		{ifB, "item.done", "todos.2.done"},
		{ifB, "!item.done", "!todos.2.done"},
	}
	for _, test := range tests {
		got := RewriteAnnotation(test.binder, test.annotation, "item", "todos", 2)
		assert.Equal(t, test.want, got, test.annotation)
	}
	assert.Equal(t, "text: lists.0.todos.1.name",
		RewriteAnnotation(bindB, "text: todo.name", "todo", "lists.0.todos", 1))
}

func TestBinders(t *testing.T) {
	b, ok := BinderByName("bind-event")
	require.True(t, ok)
	assert.Equal(t, KindEvent, b.Kind)
	assert.Equal(t, "bindEvent", b.DataKey())
	assert.Equal(t, "data-bind-event", b.AttrName())
	assert.Equal(t, "condition", KindCondition.String())
	_, ok = BinderByName("nope")
	assert.False(t, ok)
}
