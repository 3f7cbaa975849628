// Package params builds the flat query-parameter set sent to the EnsembleData API.
//
// Endpoint arguments are described as a list of Arg values. Normalize renames
// each logical name to its wire key, drops arguments that were not provided and
// formats the remaining scalars exactly once, so the resulting Set never holds
// an absent value.
//
//	set := params.Normalize(
//		params.Arg{Name: "username", Value: "zachking"},
//		params.Arg{Name: "cursor", Wire: "start_cursor", Value: params.None[int]()},
//		params.Arg{Name: "awemeIds", Wire: "ids", Value: params.Joined([]string{"a", "b"}, ";")},
//	)
//	// set == Set{"username": "zachking", "ids": "a;b"}
package params

import (
	"fmt"
	"maps"
	"net/url"
	"reflect"
	"strconv"

	"github.com/ensembledata/ensembledata-go/pkg/utils"
)

// ListSeparator is the delimiter the API expects for list-valued arguments.
const ListSeparator = ";"

// Set is the final, flat key/value mapping sent as the query string.
// Ordering is irrelevant; Encode sorts keys.
type Set map[string]string

// Arg is one logical endpoint argument.
type Arg struct {
	// Name is the logical (camelCase) argument name.
	Name string
	// Wire overrides the query key. When empty, utils.SnakeCase(Name) is used.
	Wire string
	// Value is a scalar, an Optional, a Joined list or nil (not provided).
	Value any
}

// Key returns the query key the argument is written under.
func (a Arg) Key() string {
	if a.Wire != "" {
		return a.Wire
	}
	return utils.SnakeCase(a.Name)
}

// wireValuer is implemented by values that decide on their own whether they
// are present on the wire.
type wireValuer interface {
	wireValue() (string, bool)
}

// Normalize produces the wire-level Set for args. Absent values (nil, unset
// Optional) are omitted entirely rather than serialized as empty strings.
func Normalize(args ...Arg) Set {
	out := make(Set, len(args))
	for _, a := range args {
		if v, ok := Format(a.Value); ok {
			out[a.Key()] = v
		}
	}
	return out
}

// FromMap converts a free-form map into a Set. Keys are used verbatim; absent
// values are dropped like in Normalize.
func FromMap(m map[string]any) Set {
	out := make(Set, len(m))
	for k, v := range m {
		if s, ok := Format(v); ok {
			out[k] = s
		}
	}
	return out
}

// Merge returns a new Set holding base overlaid with override. Keys present in
// override win; keys only in base are kept.
func Merge(base, override Set) Set {
	out := make(Set, len(base)+len(override))
	maps.Copy(out, base)
	maps.Copy(out, override)
	return out
}

// Clone returns a copy of s.
func (s Set) Clone() Set {
	return maps.Clone(s)
}

// Values converts s into url.Values.
func (s Set) Values() url.Values {
	v := make(url.Values, len(s))
	for k, val := range s {
		v.Set(k, val)
	}
	return v
}

// Encode serializes s with standard URL query encoding (keys sorted,
// reserved characters percent-encoded, spaces as '+').
func (s Set) Encode() string {
	return s.Values().Encode()
}

// Format renders a single argument value for the wire. The boolean result is
// false when the value is absent and must not be sent.
func Format(v any) (string, bool) {
	switch x := v.(type) {
	case nil:
		return "", false
	case wireValuer:
		return x.wireValue()
	case string:
		return x, true
	case bool:
		return strconv.FormatBool(x), true
	case int:
		return strconv.Itoa(x), true
	case int64:
		return strconv.FormatInt(x, 10), true
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	case fmt.Stringer:
		return x.String(), true
	}

	// Named scalar types (type Period string) and the remaining integer widths.
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return "", false
		}
		return Format(rv.Elem().Interface())
	case reflect.String:
		return rv.String(), true
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), true
	}
	return fmt.Sprint(v), true
}
