// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"math"

	"cogentcore.org/movi/base/reflectx"
)

// Truthy returns whether the given value counts as true in a condition:
// nil, false, zero numbers, NaN, and the empty string are false;
// everything else, including empty objects and arrays, is true.
func Truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case float64:
		return x != 0 && !math.IsNaN(x)
	case float32:
		return x != 0 && !math.IsNaN(float64(x))
	case *Object, *Array, Func:
		return !reflectx.IsNil(v)
	}
	if reflectx.IsNil(v) {
		return false
	}
	f, err := reflectx.ToFloat(v)
	if err != nil {
		return true // not a number, so an object of some kind
	}
	return f != 0
}

// toString returns the string form of a value for display.
func toString(v any) string {
	return reflectx.ToString(v)
}
