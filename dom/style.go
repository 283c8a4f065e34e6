// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dom

import (
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/iancoleman/strcase"

	"cogentcore.org/movi/base/errors"
)

// StyleProperty returns the CSS property name for the given style key,
// which may be lowerCamel (backgroundColor) or kebab-case already.
func StyleProperty(key string) string {
	if strings.Contains(key, "-") {
		return strings.ToLower(key)
	}
	return strcase.ToKebab(key)
}

// StyleDeclarations returns the parsed declarations of the inline
// style attribute of the element.
func (e *Element) StyleDeclarations() []*css.Declaration {
	s, ok := e.Attr("style")
	if !ok || strings.TrimSpace(s) == "" {
		return nil
	}
	// the parser is strict about semicolons, but they
	// aren't needed at the end of normal inline styles
	if !strings.HasSuffix(strings.TrimSpace(s), ";") {
		s += ";"
	}
	decls, err := parser.ParseDeclarations(s)
	if errors.Log(err) != nil {
		return nil
	}
	return decls
}

// Style returns the value of the given inline style property,
// and whether it is set.
func (e *Element) Style(key string) (string, bool) {
	prop := StyleProperty(key)
	for _, d := range e.StyleDeclarations() {
		if d.Property == prop {
			return d.Value, true
		}
	}
	return "", false
}

// SetStyle sets the given inline style property to the given value,
// removing it when the value is empty.
func (e *Element) SetStyle(key, value string) {
	prop := StyleProperty(key)
	decls := e.StyleDeclarations()
	found := false
	out := decls[:0]
	for _, d := range decls {
		if d.Property == prop {
			if found || value == "" {
				continue
			}
			d.Value = value
			found = true
		}
		out = append(out, d)
	}
	if !found && value != "" {
		out = append(out, &css.Declaration{Property: prop, Value: value})
	}
	if len(out) == 0 {
		e.RemoveAttr("style")
		return
	}
	e.SetAttr("style", formatDeclarations(out))
}

func formatDeclarations(decls []*css.Declaration) string {
	parts := make([]string, len(decls))
	for i, d := range decls {
		parts[i] = d.Property + ": " + d.Value
		if d.Important {
			parts[i] += " !important"
		}
	}
	return strings.Join(parts, "; ")
}
