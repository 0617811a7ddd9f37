// Package query serialises filter structs into URL query strings.
//
// Fields opt in with a `query:"name[,option...]"` tag. Embedded structs
// without a tag are flattened. Zero values, nil pointers, blank strings and
// the "all" sentinel are omitted. Options:
//
//	date      time.Time as 2006-01-02 (default for time.Time)
//	datetime  time.Time as RFC 3339
//	multi     slices become repeated keys instead of a comma list
//	keepzero  numbers and bools are sent even when zero/false
package query

import (
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Sentinel is the value meaning "do not filter on this field".
const Sentinel = "all"

var timeType = reflect.TypeOf(time.Time{})

type fieldOptions struct {
	name     string
	datetime bool
	multi    bool
	keepZero bool
}

func parseTag(tag string) fieldOptions {
	parts := strings.Split(tag, ",")
	opts := fieldOptions{name: parts[0]}
	for _, p := range parts[1:] {
		switch strings.TrimSpace(p) {
		case "datetime":
			opts.datetime = true
		case "multi":
			opts.multi = true
		case "keepzero":
			opts.keepZero = true
		}
	}
	return opts
}

// Encode returns the query values for filter, which must be a struct or a
// pointer to one. Anything else yields empty values.
func Encode(filter interface{}) url.Values {
	values := url.Values{}
	if filter == nil {
		return values
	}
	v := reflect.ValueOf(filter)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return values
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return values
	}
	encodeStruct(values, v)
	return values
}

func encodeStruct(values url.Values, v reflect.Value) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fv := v.Field(i)
		tag, tagged := field.Tag.Lookup("query")
		if tag == "-" {
			continue
		}
		if !tagged {
			if field.Anonymous && indirectType(field.Type).Kind() == reflect.Struct {
				if fv.Kind() == reflect.Pointer {
					if fv.IsNil() {
						continue
					}
					fv = fv.Elem()
				}
				encodeStruct(values, fv)
			}
			continue
		}
		if !field.IsExported() {
			continue
		}
		opts := parseTag(tag)
		if opts.name == "" {
			opts.name = field.Name
		}
		encodeValue(values, opts, fv)
	}
}

func encodeValue(values url.Values, opts fieldOptions, fv reflect.Value) {
	explicit := false
	for fv.Kind() == reflect.Pointer || fv.Kind() == reflect.Interface {
		if fv.IsNil() {
			return
		}
		fv = fv.Elem()
		// a set pointer means the caller chose this value, zero or not
		explicit = true
	}

	if fv.Type() == timeType {
		if !fv.CanInterface() {
			return
		}
		ts := fv.Interface().(time.Time)
		if ts.IsZero() {
			return
		}
		if opts.datetime {
			values.Set(opts.name, ts.Format(time.RFC3339))
		} else {
			values.Set(opts.name, ts.Format("2006-01-02"))
		}
		return
	}

	switch fv.Kind() {
	case reflect.Slice, reflect.Array:
		items := make([]string, 0, fv.Len())
		for i := 0; i < fv.Len(); i++ {
			if s, ok := scalar(fv.Index(i), true); ok {
				items = append(items, s)
			}
		}
		if len(items) == 0 {
			return
		}
		if opts.multi {
			for _, s := range items {
				values.Add(opts.name, s)
			}
			return
		}
		values.Set(opts.name, strings.Join(items, ","))
	default:
		if s, ok := scalar(fv, explicit || opts.keepZero); ok {
			values.Set(opts.name, s)
		}
	}
}

// scalar renders a basic value; ok is false when it should be omitted.
func scalar(v reflect.Value, keepZero bool) (string, bool) {
	switch v.Kind() {
	case reflect.String:
		s := strings.TrimSpace(v.String())
		if s == "" || strings.EqualFold(s, Sentinel) {
			return "", false
		}
		return s, true
	case reflect.Bool:
		if !v.Bool() && !keepZero {
			return "", false
		}
		return strconv.FormatBool(v.Bool()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if v.Int() == 0 && !keepZero {
			return "", false
		}
		return strconv.FormatInt(v.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if v.Uint() == 0 && !keepZero {
			return "", false
		}
		return strconv.FormatUint(v.Uint(), 10), true
	case reflect.Float32, reflect.Float64:
		if v.Float() == 0 && !keepZero {
			return "", false
		}
		return strconv.FormatFloat(v.Float(), 'f', -1, 64), true
	default:
		return "", false
	}
}

func indirectType(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}
