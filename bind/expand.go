// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bind

import (
	"strconv"
	"strings"

	"cogentcore.org/movi/base/errors"
	"cogentcore.org/movi/dom"
	"cogentcore.org/movi/model"
	"cogentcore.org/movi/tree"
)

// ItemKey is the dataset key that marks the root elements of each
// expanded collection item with the index of the item.
const ItemKey = "item"

// IndexKey returns the dataset key that marks the elements of expanded
// collection items with the index of the item for the given alias.
func IndexKey(alias string) string {
	return alias + "Index"
}

// itemSelector returns the selector of the elements carrying the
// annotation of the given binder in the item with the given index.
func itemSelector(b Binder, index string) string {
	item := "[" + dom.DataAttrName(ItemKey) + "=\"" + index + "\"]"
	ann := "[" + b.AttrName() + "]"
	return item + ann + ", " + item + " " + ann
}

// expand replaces the content of the element of the given collection
// binding with one clone of the element children of the given template
// for each item of the given array. The annotations of each clone that
// refer to the item alias are rewritten to refer to the item in the
// collection.
func expand(b Binding, arr *model.Array, template *dom.Element) {
	el := b.Node
	el.DeleteChildren()
	for i, n := 0, arr.Len(); i < n; i++ {
		index := strconv.Itoa(i)
		for _, tc := range template.ElementChildren() {
			child := tc.CloneElement()
			child.SetData(ItemKey, index)
			child.WalkElements(func(d *dom.Element) bool {
				d.SetData(IndexKey(b.Item), index)
				return tree.Continue
			})
			el.AddChild(child)
		}

		for _, binder := range Binders {
			sel, err := dom.CompileSelector(itemSelector(binder, index))
			if errors.Log(err) != nil {
				continue
			}
			for _, d := range sel.Select(el) {
				ann, _ := binder.Annotation(d)
				if !strings.Contains(ann, b.Item) {
					continue
				}
				d.SetData(binder.DataKey(), RewriteAnnotation(binder, ann, b.Item, b.Collection, i))
			}
		}
	}
}
