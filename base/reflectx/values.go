// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// ToString returns the string representation of the given value.
// Nil values are the empty string, floats use the shortest
// representation, and [fmt.Stringer] values use their String method.
func ToString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []byte:
		return string(x)
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return formatFloat(x)
	case float32:
		return formatFloat(float64(x))
	case fmt.Stringer:
		if IsNil(v) {
			return ""
		}
		return x.String()
	case error:
		return x.Error()
	}
	rv := Underlying(reflect.ValueOf(v))
	if !rv.IsValid() {
		return ""
	}
	switch {
	case rv.CanInt():
		return strconv.FormatInt(rv.Int(), 10)
	case rv.CanUint():
		return strconv.FormatUint(rv.Uint(), 10)
	case rv.CanFloat():
		return formatFloat(rv.Float())
	case rv.Kind() == reflect.String:
		return rv.String()
	case rv.Kind() == reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	}
	return fmt.Sprint(rv.Interface())
}

func formatFloat(f float64) string {
	if math.IsNaN(f) {
		return "NaN"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// ToFloat returns the given value as a float64, parsing strings
// and converting booleans to 0 or 1.
func ToFloat(v any) (float64, error) {
	switch x := v.(type) {
	case nil:
		return 0, nil
	case float64:
		return x, nil
	case bool:
		if x {
			return 1, nil
		}
		return 0, nil
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0, nil
		}
		return strconv.ParseFloat(s, 64)
	}
	rv := Underlying(reflect.ValueOf(v))
	switch {
	case !rv.IsValid():
		return 0, nil
	case rv.CanInt():
		return float64(rv.Int()), nil
	case rv.CanUint():
		return float64(rv.Uint()), nil
	case rv.CanFloat():
		return rv.Float(), nil
	case rv.Kind() == reflect.String:
		return ToFloat(rv.String())
	case rv.Kind() == reflect.Bool:
		return ToFloat(rv.Bool())
	}
	return 0, fmt.Errorf("reflectx.ToFloat: cannot convert %T to float", v)
}

// ToBool returns the given value as a bool. Strings are parsed with
// [strconv.ParseBool], with the empty string being false; numbers are
// true when non-zero.
func ToBool(v any) (bool, error) {
	switch x := v.(type) {
	case nil:
		return false, nil
	case bool:
		return x, nil
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return false, nil
		}
		return strconv.ParseBool(s)
	}
	f, err := ToFloat(v)
	if err != nil {
		return false, fmt.Errorf("reflectx.ToBool: cannot convert %T to bool", v)
	}
	return f != 0, nil
}

// SetValueRobust sets the given settable [reflect.Value] to the given
// value, converting between strings, numbers, and booleans as needed.
func SetValueRobust(dst reflect.Value, from any) error {
	if !dst.CanSet() {
		return fmt.Errorf("reflectx.SetValueRobust: value of type %v is not settable", dst.Type())
	}
	if from == nil {
		dst.SetZero()
		return nil
	}
	fv := reflect.ValueOf(from)
	if fv.Type().AssignableTo(dst.Type()) {
		dst.Set(fv)
		return nil
	}
	switch {
	case dst.Kind() == reflect.String:
		dst.SetString(ToString(from))
		return nil
	case dst.Kind() == reflect.Bool:
		b, err := ToBool(from)
		if err != nil {
			return err
		}
		dst.SetBool(b)
		return nil
	case dst.CanInt():
		f, err := ToFloat(from)
		if err != nil {
			return err
		}
		dst.SetInt(int64(f))
		return nil
	case dst.CanUint():
		f, err := ToFloat(from)
		if err != nil {
			return err
		}
		dst.SetUint(uint64(f))
		return nil
	case dst.CanFloat():
		f, err := ToFloat(from)
		if err != nil {
			return err
		}
		dst.SetFloat(f)
		return nil
	case dst.Kind() == reflect.Interface && fv.Type().Implements(dst.Type()):
		dst.Set(fv)
		return nil
	case fv.Type().ConvertibleTo(dst.Type()):
		dst.Set(fv.Convert(dst.Type()))
		return nil
	}
	return fmt.Errorf("reflectx.SetValueRobust: cannot set %v from %T", dst.Type(), from)
}
