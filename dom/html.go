// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dom

import (
	"bytes"
	"io"
	"slices"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"cogentcore.org/movi/base/errors"
	"cogentcore.org/movi/tree"
)

// Parse parses a complete HTML document from the given reader.
// The resulting [Document] has the html element as its child.
func Parse(r io.Reader) (*Document, error) {
	n, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	d := NewDocument()
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		fromHTML(c, d)
	}
	return d, nil
}

// ParseString parses a complete HTML document from the given string.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// ParseFragment parses the given HTML fragment as the content of
// a body element, and returns a [Document] holding the resulting
// nodes as its children. This is the usual way to load a template.
func ParseFragment(r io.Reader) (*Document, error) {
	d := NewDocument()
	if err := parseInto(r, "body", d); err != nil {
		return nil, err
	}
	return d, nil
}

// ParseFragmentString parses the given HTML fragment string;
// see [ParseFragment].
func ParseFragmentString(s string) (*Document, error) {
	return ParseFragment(strings.NewReader(s))
}

// parseInto parses the fragment in the context of the given tag
// and adds the resulting nodes to the given parent.
func parseInto(r io.Reader, context string, parent tree.Node) error {
	ctx := &html.Node{Type: html.ElementNode, Data: context, DataAtom: atom.Lookup([]byte(context))}
	nodes, err := html.ParseFragment(r, ctx)
	if err != nil {
		return err
	}
	for _, n := range nodes {
		fromHTML(n, parent)
	}
	return nil
}

// fromHTML adds the node converted from the given html node, with all
// of its descendants, to the given parent.
func fromHTML(n *html.Node, parent tree.Node) {
	switch n.Type {
	case html.ElementNode:
		e := NewElement(n.Data, parent)
		e.Attrs = slices.Clone(n.Attr)
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			fromHTML(c, e)
		}
	case html.TextNode:
		NewText(n.Data, parent)
	case html.CommentNode:
		c := tree.New[*Comment](parent)
		c.Data = n.Data
	}
}

// toHTML returns the html node for the given node with all of its
// descendants, recording the element of each html element node in
// the given map if it is non-nil.
func toHTML(n tree.Node, elements map[*html.Node]*Element) *html.Node {
	var hn *html.Node
	switch x := n.(type) {
	case *Text:
		return &html.Node{Type: html.TextNode, Data: x.Data}
	case *Comment:
		return &html.Node{Type: html.CommentNode, Data: x.Data}
	case *Document:
		hn = &html.Node{Type: html.DocumentNode}
	case *Element:
		hn = &html.Node{Type: html.ElementNode, Data: x.Tag, DataAtom: atom.Lookup([]byte(x.Tag)), Attr: slices.Clone(x.Attrs)}
		if elements != nil {
			elements[hn] = x
		}
	default:
		return nil
	}
	for _, k := range n.AsTree().Children {
		if kn := toHTML(k, elements); kn != nil {
			hn.AppendChild(kn)
		}
	}
	return hn
}

// Render writes the HTML of the document to the given writer.
func (d *Document) Render(w io.Writer) error {
	for _, k := range d.Children {
		if hn := toHTML(k, nil); hn != nil {
			if err := html.Render(w, hn); err != nil {
				return err
			}
		}
	}
	return nil
}

// HTML returns the rendered HTML of the document.
func (d *Document) HTML() string {
	var b bytes.Buffer
	errors.Log(d.Render(&b))
	return b.String()
}

// OuterHTML returns the rendered HTML of the element, including itself.
func (e *Element) OuterHTML() string {
	if d, ok := e.This.(*Document); ok {
		return d.HTML()
	}
	var b bytes.Buffer
	errors.Log(html.Render(&b, toHTML(e.This, nil)))
	return b.String()
}

// InnerHTML returns the rendered HTML of the children of the element.
func (e *Element) InnerHTML() string {
	var b bytes.Buffer
	for _, k := range e.Children {
		if hn := toHTML(k, nil); hn != nil {
			errors.Log(html.Render(&b, hn))
		}
	}
	return b.String()
}

// SetInnerHTML replaces the children of the element with the nodes
// parsed from the given HTML. The old children are destroyed.
func (e *Element) SetInnerHTML(s string) error {
	e.DeleteChildren()
	context := e.Tag
	if context == "#document" {
		context = "body"
	}
	return parseInto(strings.NewReader(s), context, e.This)
}
