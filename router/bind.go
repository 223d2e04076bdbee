package router

import (
	"reflect"
	"strconv"
	"strings"
)

// coerce converts raw into a reflect.Value assignable to target. The
// supported primitive coercions are string, signed/unsigned integer of
// configured width, boolean (case-insensitive true/false), and optional
// (pointer) wrapping any of those. raw == nil means the argument was
// absent (only valid for optional/pointer targets).
func coerce(target reflect.Type, raw *string) (reflect.Value, bool) {
	if target.Kind() == reflect.Ptr {
		if raw == nil {
			return reflect.Zero(target), true
		}
		elem, ok := coerceScalar(target.Elem(), *raw)
		if !ok {
			return reflect.Value{}, false
		}
		ptr := reflect.New(target.Elem())
		ptr.Elem().Set(elem)
		return ptr, true
	}

	if raw == nil {
		return reflect.Value{}, false
	}
	return coerceScalar(target, *raw)
}

func coerceScalar(target reflect.Type, raw string) (reflect.Value, bool) {
	switch target.Kind() {
	case reflect.String:
		return reflect.ValueOf(raw).Convert(target), true

	case reflect.Bool:
		switch strings.ToLower(raw) {
		case "true":
			return reflect.ValueOf(true), true
		case "false":
			return reflect.ValueOf(false), true
		default:
			return reflect.Value{}, false
		}

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, target.Bits())
		if err != nil {
			return reflect.Value{}, false
		}
		v := reflect.New(target).Elem()
		v.SetInt(n)
		return v, true

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(raw, 10, target.Bits())
		if err != nil {
			return reflect.Value{}, false
		}
		v := reflect.New(target).Elem()
		v.SetUint(n)
		return v, true

	default:
		return reflect.Value{}, false
	}
}

// isOptional reports whether a handler parameter type marks a query
// argument as optional (a pointer type).
func isOptional(t reflect.Type) bool {
	return t.Kind() == reflect.Ptr
}
