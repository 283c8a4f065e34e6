// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

// ChildrenOf returns the direct children of the given node that are of
// type T, in order.
func ChildrenOf[T Node](n Node) []T {
	var res []T
	for _, k := range n.AsTree().Children {
		if t, ok := k.(T); ok {
			res = append(res, t)
		}
	}
	return res
}
