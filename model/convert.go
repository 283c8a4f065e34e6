// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"reflect"
	"sort"

	"cogentcore.org/movi/base/errors"
	"cogentcore.org/movi/base/reflectx"
)

// FromGo converts the given plain Go value into an observable value with
// the given hub: maps with string keys and structs become [*Object]s
// (map keys in sorted order, struct fields in declaration order), slices
// and arrays become [*Array]s, and integers become float64. [Func]s,
// existing observables, and other scalars are returned as is.
func FromGo(hub *Hub, v any) any {
	switch x := v.(type) {
	case nil, string, bool, float64, Func, *Object, *Array:
		return v
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		o := NewObject(hub)
		for _, k := range keys {
			o.keys = append(o.keys, k)
			o.values[k] = FromGo(hub, x[k])
		}
		return o
	case []any:
		a := NewArray(hub)
		for _, e := range x {
			a.items = append(a.items, FromGo(hub, e))
		}
		return a
	}
	rv := reflectx.Underlying(reflect.ValueOf(v))
	if !rv.IsValid() {
		return nil
	}
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return v
		}
		m := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			m[iter.Key().String()] = iter.Value().Interface()
		}
		return FromGo(hub, m)
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
			return string(rv.Bytes())
		}
		a := NewArray(hub)
		for i, n := 0, rv.Len(); i < n; i++ {
			a.items = append(a.items, FromGo(hub, rv.Index(i).Interface()))
		}
		return a
	case reflect.Struct:
		o := NewObject(hub)
		typ := rv.Type()
		for i, n := 0, typ.NumField(); i < n; i++ {
			f := typ.Field(i)
			if !f.IsExported() {
				continue
			}
			o.keys = append(o.keys, f.Name)
			o.values[f.Name] = FromGo(hub, rv.Field(i).Interface())
		}
		return o
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32:
		return errors.Ignore1(reflectx.ToFloat(rv.Interface()))
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return rv.Bool()
	}
	return v
}

// ToGo converts the given observable value back into plain Go values:
// [*Object]s become map[string]any and [*Array]s become []any.
func ToGo(v any) any {
	switch x := v.(type) {
	case *Object:
		m := make(map[string]any, len(x.keys))
		for _, k := range x.keys {
			m[k] = ToGo(x.values[k])
		}
		return m
	case *Array:
		s := make([]any, len(x.items))
		for i, e := range x.items {
			s[i] = ToGo(e)
		}
		return s
	}
	return v
}

// ObjectFromGo is a helper for [FromGo] that always returns an [*Object],
// which is empty if the value does not convert to one.
func ObjectFromGo(hub *Hub, v any) *Object {
	if o, ok := FromGo(hub, v).(*Object); ok {
		return o
	}
	return NewObject(hub)
}

// UpdateFrom updates the given object in place to match the given source
// object, so that existing bindings observe the changes: nested objects
// are updated recursively, arrays are replaced element-wise in one
// [Splice] when their length changes (and by element otherwise), properties
// missing from the source are deleted, and everything else is set.
func UpdateFrom(dst, src *Object) {
	for _, k := range dst.Keys() {
		if !src.Has(k) {
			dst.Delete(k)
		}
	}
	for _, k := range src.keys {
		sv := src.values[k]
		dv, has := dst.values[k]
		if !has {
			dst.Set(k, adopt(dst.hub, sv))
			continue
		}
		switch d := dv.(type) {
		case *Object:
			if s, ok := sv.(*Object); ok {
				UpdateFrom(d, s)
				continue
			}
		case *Array:
			if s, ok := sv.(*Array); ok {
				updateArray(d, s)
				continue
			}
		}
		dst.Set(k, adopt(dst.hub, sv))
	}
}

// updateArray is the [Array] part of [UpdateFrom].
func updateArray(dst, src *Array) {
	if dst.Len() != src.Len() {
		items := make([]any, src.Len())
		for i, e := range src.items {
			items[i] = adopt(dst.hub, e)
		}
		dst.Replace(items...)
		return
	}
	for i, se := range src.items {
		de := dst.items[i]
		if do, ok := de.(*Object); ok {
			if so, ok := se.(*Object); ok {
				UpdateFrom(do, so)
				continue
			}
		}
		dst.SetAt(i, adopt(dst.hub, se))
	}
}

// adopt returns the given value with all of its observables
// re-created with the given hub.
func adopt(hub *Hub, v any) any {
	switch x := v.(type) {
	case *Object:
		if x.hub == hub {
			return x
		}
		return FromGo(hub, ToGo(x))
	case *Array:
		if x.hub == hub {
			return x
		}
		return FromGo(hub, ToGo(x))
	}
	return v
}
