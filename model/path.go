// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"fmt"
	"reflect"

	"cogentcore.org/movi/base/errors"
	"cogentcore.org/movi/base/reflectx"
	"cogentcore.org/movi/keypath"
)

// GetKey returns the element of the given container value with the given
// key, and whether it exists. Containers are [Container]s (like [*Object]
// and [*Array]), string-keyed maps, slices, and structs (by field name).
func GetKey(container any, key string) (any, bool) {
	switch c := container.(type) {
	case nil:
		return nil, false
	case Container:
		if reflectx.IsNil(c) {
			return nil, false
		}
		return c.GetKey(key)
	case map[string]any:
		v, ok := c[key]
		return v, ok
	case []any:
		i, ok := keypath.IsIndex(key)
		if !ok || i >= len(c) {
			return nil, false
		}
		return c[i], true
	}
	rv := reflectx.Underlying(reflect.ValueOf(container))
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		mv := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
		if !mv.IsValid() {
			return nil, false
		}
		return mv.Interface(), true
	case reflect.Slice, reflect.Array:
		i, ok := keypath.IsIndex(key)
		if !ok || i >= rv.Len() {
			return nil, false
		}
		return rv.Index(i).Interface(), true
	case reflect.Struct:
		fv := rv.FieldByName(key)
		if !fv.IsValid() || !fv.CanInterface() {
			return nil, false
		}
		return fv.Interface(), true
	}
	return nil, false
}

// SetKey sets the element of the given container value with the given key.
// It returns an error if the value is not a settable container.
func SetKey(container any, key string, value any) error {
	switch c := container.(type) {
	case nil:
		return fmt.Errorf("model.SetKey: cannot set %q on nil", key)
	case Container:
		c.SetKey(key, value)
		return nil
	case map[string]any:
		c[key] = value
		return nil
	case []any:
		i, ok := keypath.IsIndex(key)
		if !ok || i >= len(c) {
			return fmt.Errorf("model.SetKey: index %q out of range [0:%d]", key, len(c))
		}
		c[i] = value
		return nil
	}
	rv := reflectx.Underlying(reflect.ValueOf(container))
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		nv := reflect.New(rv.Type().Elem()).Elem()
		if err := reflectx.SetValueRobust(nv, value); err != nil {
			return err
		}
		rv.SetMapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()), nv)
		return nil
	case reflect.Slice, reflect.Array:
		i, ok := keypath.IsIndex(key)
		if !ok || i >= rv.Len() {
			return fmt.Errorf("model.SetKey: index %q out of range [0:%d]", key, rv.Len())
		}
		return reflectx.SetValueRobust(rv.Index(i), value)
	case reflect.Struct:
		fv := rv.FieldByName(key)
		if !fv.IsValid() {
			return fmt.Errorf("model.SetKey: %v has no field %q", rv.Type(), key)
		}
		return reflectx.SetValueRobust(fv, value)
	}
	return fmt.Errorf("model.SetKey: cannot set %q on %T", key, container)
}

// isContainer returns whether the given value can hold keyed elements.
func isContainer(v any) bool {
	switch v.(type) {
	case nil:
		return false
	case Container, map[string]any, []any:
		return true
	}
	switch reflectx.Underlying(reflect.ValueOf(v)).Kind() {
	case reflect.Map, reflect.Slice, reflect.Struct:
		return true
	}
	return false
}

// Get returns the value at the given path from the given root,
// and whether it exists. The empty path is the root itself.
func Get(root any, p keypath.Path) (any, bool) {
	cur := root
	for _, seg := range p {
		v, ok := GetKey(cur, seg)
		if !ok {
			return nil, false
		}
		cur = v
	}
	return cur, true
}

// Set sets the value at the given path from the given root, creating
// missing intermediate containers on the way: an [*Array] when the next
// segment is an index and an [*Object] otherwise, with the hub of the
// container they are added to. Intermediate values that are not containers
// are replaced the same way.
func Set(root any, p keypath.Path, value any) error {
	if len(p) == 0 {
		return fmt.Errorf("model.Set: empty path")
	}
	cur := root
	for i, seg := range p[:len(p)-1] {
		next, ok := GetKey(cur, seg)
		if !ok || !isContainer(next) {
			next = newContainer(hubOf(cur), p[i+1])
			if err := SetKey(cur, seg, next); err != nil {
				return err
			}
		}
		cur = next
	}
	return SetKey(cur, p.Last(), value)
}

// newContainer returns a new container suitable for holding the given
// next path segment.
func newContainer(hub *Hub, next string) Container {
	if _, ok := keypath.IsIndex(next); ok {
		return NewArray(hub)
	}
	return NewObject(hub)
}

// hubOf returns the hub of the given value if it is [Observable].
func hubOf(v any) *Hub {
	if o, ok := v.(Observable); ok {
		return o.Hub()
	}
	return nil
}

// Resolved is the result of [Resolve]: the container holding the value
// at a path, the key of the value within it, and the value itself.
type Resolved struct {

	// Container is the container holding the value.
	Container Container

	// Key is the last segment of the path.
	Key string

	// Value is the current value, which is nil if Found is false.
	Value any

	// Found is whether the container had the key.
	Found bool
}

// Resolve resolves the given path against the given root object. The
// container (the value at all but the last segment) is created with
// [Set] if it is missing or not an observable [Container], so Resolve
// never fails; the value itself may be missing.
func Resolve(root *Object, p keypath.Path) Resolved {
	var c Container = root
	if parent := p.Parent(); len(parent) > 0 {
		v, _ := Get(root, parent)
		cv, ok := v.(Container)
		if !ok {
			cv = NewObject(root.Hub())
			errors.Log(Set(root, parent, cv))
		}
		c = cv
	}
	key := p.Last()
	v, found := c.GetKey(key)
	return Resolved{Container: c, Key: key, Value: v, Found: found}
}
