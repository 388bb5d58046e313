// Package query serializes Go values into Twitch's query-string convention:
// application/x-www-form-urlencoded with one repeated key per array
// element, never brackets and never comma-joining (spec §4.2).
package query

import (
	"encoding"
	"fmt"
	"net/url"
	"reflect"
	"strconv"
)

// Encode serializes a struct or map into url.Values following Twitch's
// repeated-key convention. The top-level value must be a struct (or
// pointer to struct) or a map[string]V; anything else is rejected.
func Encode(v interface{}) (url.Values, error) {
	if v == nil {
		return url.Values{}, nil
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return url.Values{}, nil
		}
		rv = rv.Elem()
	}

	values := url.Values{}
	switch rv.Kind() {
	case reflect.Struct:
		if err := encodeStruct(rv, values); err != nil {
			return nil, err
		}
	case reflect.Map:
		if err := encodeMap(rv, values); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("query: top-level value must be a struct or map, got %s", rv.Kind())
	}
	return values, nil
}

func encodeStruct(rv reflect.Value, values url.Values) error {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if field.PkgPath != "" { // unexported
			continue
		}
		tag := field.Tag.Get("query")
		if tag == "-" {
			continue
		}
		name := field.Name
		if tag != "" {
			name = tag
		}
		fv := rv.Field(i)
		if err := encodeField(name, fv, values); err != nil {
			return err
		}
	}
	return nil
}

func encodeMap(rv reflect.Value, values url.Values) error {
	if rv.Type().Key().Kind() != reflect.String {
		return fmt.Errorf("query: map keys must be strings, got %s", rv.Type().Key())
	}
	iter := rv.MapRange()
	for iter.Next() {
		name := iter.Key().String()
		if err := encodeField(name, iter.Value(), values); err != nil {
			return err
		}
	}
	return nil
}

func encodeField(name string, fv reflect.Value, values url.Values) error {
	for fv.Kind() == reflect.Ptr {
		if fv.IsNil() {
			return nil // absent optional field: emit nothing
		}
		fv = fv.Elem()
	}
	if fv.Kind() == reflect.Interface {
		if fv.IsNil() {
			return nil
		}
		fv = fv.Elem()
	}

	switch fv.Kind() {
	case reflect.Slice, reflect.Array:
		if fv.Kind() == reflect.Slice && fv.Type().Elem().Kind() == reflect.Uint8 {
			return fmt.Errorf("query: field %q: byte slices are not supported", name)
		}
		for i := 0; i < fv.Len(); i++ {
			if err := encodeScalar(name, fv.Index(i), values); err != nil {
				return err
			}
		}
		return nil
	case reflect.Struct:
		if _, ok := asTextMarshaler(fv); ok {
			return encodeScalar(name, fv, values)
		}
		return fmt.Errorf("query: field %q: nested struct at scalar position is not supported", name)
	default:
		return encodeScalar(name, fv, values)
	}
}

func encodeScalar(name string, v reflect.Value, values url.Values) error {
	s, err := scalarString(v)
	if err != nil {
		return fmt.Errorf("query: field %q: %w", name, err)
	}
	values.Add(name, s)
	return nil
}

func asTextMarshaler(v reflect.Value) (encoding.TextMarshaler, bool) {
	if v.CanInterface() {
		if tm, ok := v.Interface().(encoding.TextMarshaler); ok {
			return tm, true
		}
	}
	if v.CanAddr() && v.Addr().CanInterface() {
		if tm, ok := v.Addr().Interface().(encoding.TextMarshaler); ok {
			return tm, true
		}
	}
	return nil, false
}

func scalarString(v reflect.Value) (string, error) {
	if tm, ok := asTextMarshaler(v); ok {
		b, err := tm.MarshalText()
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	switch v.Kind() {
	case reflect.String:
		return v.String(), nil
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64), nil
	}

	// Remaining kinds (struct without MarshalText, byte slices, chans,
	// funcs, …) are rejected per spec §4.2.
	return "", fmt.Errorf("unsupported scalar kind %s", v.Kind())
}
