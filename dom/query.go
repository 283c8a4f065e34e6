// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dom

import (
	selcss "github.com/ericchiang/css"
	"golang.org/x/net/html"
)

// Selector is a compiled CSS selector that can be matched
// against elements many times.
type Selector struct {
	sel *selcss.Selector
}

// CompileSelector compiles the given CSS selector, which may be
// a comma separated group of selectors.
func CompileSelector(selector string) (*Selector, error) {
	s, err := selcss.Parse(selector)
	if err != nil {
		return nil, err
	}
	return &Selector{sel: s}, nil
}

// Select returns the descendants of the given element that match
// the selector, in document order. The element itself is never
// included, but its ancestors can not take part in the match.
func (s *Selector) Select(e *Element) []*Element {
	elements := map[*html.Node]*Element{}
	root := toHTML(e.This, elements)
	if root == nil {
		return nil
	}
	matched := map[*Element]bool{}
	for _, hn := range s.sel.Select(root) {
		if el, ok := elements[hn]; ok && el != e {
			matched[el] = true
		}
	}
	// group selectors match one group at a time, so restore document order
	var res []*Element
	e.WalkElements(func(el *Element) bool {
		if matched[el] {
			res = append(res, el)
		}
		return true
	})
	return res
}

// QuerySelectorAll returns the descendants of the element that
// match the given CSS selector, in document order.
func (e *Element) QuerySelectorAll(selector string) ([]*Element, error) {
	s, err := CompileSelector(selector)
	if err != nil {
		return nil, err
	}
	return s.Select(e), nil
}

// QuerySelector returns the first descendant of the element that
// matches the given CSS selector, or nil if there is none.
func (e *Element) QuerySelector(selector string) (*Element, error) {
	all, err := e.QuerySelectorAll(selector)
	if err != nil || len(all) == 0 {
		return nil, err
	}
	return all[0], nil
}
