// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bind

import (
	"strconv"
	"strings"

	"cogentcore.org/movi/keypath"
)

// RewriteAnnotation returns the given annotation of the given binder
// rewritten for the item with the given index of the given collection:
// model paths and arguments starting with the item alias are made to
// start with the collection path and index instead. Other sentences are
// kept. Condition annotations keep only their last sentence.
//
// For example, with alias item and collection todos,
// "checked: item.done" becomes "checked: todos.0.done" for index 0.
func RewriteAnnotation(b Binder, annotation, alias, collection string, index int) string {
	prefix := keypath.Split(collection)
	prefix = append(prefix, strconv.Itoa(index))
	rebase := func(p keypath.Path) keypath.Path {
		if p.First() != alias {
			return p
		}
		return append(prefix.Clone(), p[1:]...)
	}

	var res string
	for _, a := range ParseAssignments(annotation, b.Separator) {
		object := rebase(a.Object).Dotted()
		if b.Kind == KindCondition {
			if !a.Condition {
				object = "!" + object
			}
			res = object
		} else {
			sentence := a.Property.Dotted() + b.joiner() + object
			if res == "" {
				res = sentence
			} else {
				res += "; " + sentence
			}
		}
		if a.HasArgs() {
			args := make([]string, len(a.Args))
			for i, arg := range a.Args {
				args[i] = arg
				if strings.Contains(arg, SelfName) {
					continue
				}
				if p := keypath.Split(arg); p.First() == alias {
					args[i] = rebase(p).Indexed()
				}
			}
			res += "(" + strings.Join(args, ", ") + ")"
		}
	}
	return res
}
