// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dom

import (
	"strings"

	"cogentcore.org/movi/base/errors"
	"cogentcore.org/movi/base/reflectx"
	"cogentcore.org/movi/keypath"
)

// booleanAttrs are the attributes whose presence is their value.
var booleanAttrs = map[string]bool{
	"checked":  true,
	"disabled": true,
	"selected": true,
	"hidden":   true,
	"readonly": true,
	"required": true,
	"multiple": true,
	"open":     true,
}

// HasValueSlot returns whether the element holds an editable value,
// which is the case for form controls and for elements whose value
// property has been set.
func (e *Element) HasValueSlot() bool {
	switch e.Tag {
	case "input", "textarea", "select", "option", "button":
		return true
	}
	return e.HasProperty("value")
}

// Value returns the current value of the element.
func (e *Element) Value() string {
	if v, ok := e.Properties["value"]; ok {
		return reflectx.ToString(v)
	}
	switch e.Tag {
	case "textarea":
		return e.TextContent()
	case "select":
		var first string
		found := false
		for _, o := range e.options() {
			if o.HasAttr("selected") {
				return o.Value()
			}
			if !found {
				first, found = o.Value(), true
			}
		}
		return first
	case "option":
		if v, ok := e.Attr("value"); ok {
			return v
		}
		return e.TextContent()
	}
	v, _ := e.Attr("value")
	return v
}

// SetValue sets the current value of the element, keeping its
// attributes or children consistent with it so that it renders.
func (e *Element) SetValue(value string) {
	e.SetProperty("value", value)
	switch e.Tag {
	case "textarea":
		e.SetTextContent(value)
	case "select":
		for _, o := range e.options() {
			if o.Value() == value {
				o.SetAttr("selected", "")
			} else {
				o.RemoveAttr("selected")
			}
		}
	case "input", "option", "button":
		e.SetAttr("value", value)
	}
}

func (e *Element) options() []*Element {
	var opts []*Element
	e.WalkElements(func(el *Element) bool {
		if el.Tag == "option" {
			opts = append(opts, el)
		}
		return true
	})
	return opts
}

// Get returns the value at the given view path on the element, and
// whether it exists. The supported paths are:
//
//   - value: the value of a form control
//   - checked, disabled, hidden, and the other boolean attributes
//   - textContent, innerText, text: the text of the element
//   - innerHTML, outerHTML: the rendered HTML
//   - className, id, tagName
//   - dataset.key: a data-* attribute by lowerCamel key
//   - style.prop: an inline style declaration
//   - attributes.name: any attribute
//
// Any other path is looked up in the properties of the element.
func (e *Element) Get(p keypath.Path) (any, bool) {
	if len(p) == 0 {
		return nil, false
	}
	head := p[0]
	if len(p) == 1 {
		switch head {
		case "value":
			if !e.HasValueSlot() {
				return nil, false
			}
			return e.Value(), true
		case "textContent", "innerText", "text":
			return e.TextContent(), true
		case "innerHTML":
			return e.InnerHTML(), true
		case "outerHTML":
			return e.OuterHTML(), true
		case "className":
			v, _ := e.Attr("class")
			return v, true
		case "id":
			v, _ := e.Attr("id")
			return v, true
		case "tagName":
			return strings.ToUpper(e.Tag), true
		case "dataset":
			return e.Dataset(), true
		}
		if booleanAttrs[strings.ToLower(head)] {
			return e.HasAttr(head), true
		}
	}
	if len(p) == 2 {
		switch head {
		case "dataset":
			return e.Data(p[1])
		case "style":
			return e.Style(p[1])
		case "attributes":
			return e.Attr(p[1])
		}
	}
	v, ok := e.Properties[p.Dotted()]
	return v, ok
}

// Set sets the value at the given view path on the element;
// see [Element.Get] for the supported paths.
func (e *Element) Set(p keypath.Path, value any) {
	if len(p) == 0 {
		return
	}
	head := p[0]
	if len(p) == 1 {
		switch head {
		case "value":
			e.SetValue(reflectx.ToString(value))
			return
		case "textContent", "innerText", "text":
			e.SetTextContent(reflectx.ToString(value))
			return
		case "innerHTML":
			errors.Log(e.SetInnerHTML(reflectx.ToString(value)))
			return
		case "className":
			e.SetAttr("class", reflectx.ToString(value))
			return
		case "id":
			e.SetAttr("id", reflectx.ToString(value))
			return
		}
		if booleanAttrs[strings.ToLower(head)] {
			if truthy(value) {
				e.SetAttr(head, "")
			} else {
				e.RemoveAttr(head)
			}
			return
		}
	}
	if len(p) == 2 {
		switch head {
		case "dataset":
			e.SetData(p[1], reflectx.ToString(value))
			return
		case "style":
			e.SetStyle(p[1], reflectx.ToString(value))
			return
		case "attributes":
			if value == nil {
				e.RemoveAttr(p[1])
			} else {
				e.SetAttr(p[1], reflectx.ToString(value))
			}
			return
		}
	}
	e.SetProperty(p.Dotted(), value)
}

// truthy returns whether the value turns a boolean attribute on.
func truthy(v any) bool {
	if v == nil {
		return false
	}
	if b, err := reflectx.ToBool(v); err == nil {
		return b
	}
	return reflectx.ToString(v) != ""
}
