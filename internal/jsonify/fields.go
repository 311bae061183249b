package jsonify

import (
	"reflect"
	"slices"
	"strings"
)

// Field is a struct field as JSON encoding sees it, with embedded structs
// flattened into their parent.
type Field struct {
	Name  string
	Index []int // for FieldByIndex

	OmitEmpty bool
	Quoted    bool // `json:",string"` on a bool, number or string field

	// ReadOnly fields are promoted through an unexported embedded struct; their
	// values cannot be turned back into interfaces.
	ReadOnly bool
}

// Fields lists the encodable fields of struct type t in index order. key
// names a field ("-" hides it) and defaults to the Go field name.
//
// Promotion follows encoding/json: a shallower field hides deeper ones of the
// same name, a tagged field wins a tie at the same depth, and any remaining tie
// drops the name altogether.
func Fields(t reflect.Type, key func(reflect.StructField) string) []Field {
	if key == nil {
		key = func(sf reflect.StructField) string { return sf.Name }
	}
	type candidate struct {
		Field
		depth  int
		tagged bool
	}
	var all []candidate
	onPath := map[reflect.Type]bool{}

	var walk func(t reflect.Type, index []int, ro bool)
	walk = func(t reflect.Type, index []int, ro bool) {
		if onPath[t] {
			return
		}
		onPath[t] = true
		defer delete(onPath, t)

		for i := 0; i < t.NumField(); i++ {
			sf := t.Field(i)
			ft := sf.Type
			if ft.Name() == "" && ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			if sf.Anonymous {
				if !sf.IsExported() && ft.Kind() != reflect.Struct {
					continue
				}
			} else if !sf.IsExported() {
				continue
			}
			name := key(sf)
			if name == "-" {
				continue
			}
			jsonName, opts := parseJSONTag(sf.Tag.Get("json"))
			tagged := jsonName != "" || name != sf.Name
			idx := append(slices.Clone(index), i)
			if sf.Anonymous && !tagged && ft.Kind() == reflect.Struct {
				walk(ft, idx, ro || !sf.IsExported())
				continue
			}
			if !sf.IsExported() {
				continue
			}
			all = append(all, candidate{
				Field: Field{
					Name:      name,
					Index:     idx,
					OmitEmpty: opts.has("omitempty"),
					Quoted:    opts.has("string") && quotable(ft.Kind()),
					ReadOnly:  ro,
				},
				depth:  len(index),
				tagged: tagged,
			})
		}
	}
	walk(t, nil, false)

	out := make([]Field, 0, len(all))
	for i, c := range all {
		dominant := true
		for j, o := range all {
			if i == j || o.Name != c.Name {
				continue
			}
			if o.depth < c.depth || (o.depth == c.depth && (o.tagged || !c.tagged)) {
				dominant = false
				break
			}
		}
		if dominant {
			out = append(out, c.Field)
		}
	}
	return out
}

// FieldByIndex walks index from rv; ok is false when a nil embedded pointer
// is in the way.
func FieldByIndex(rv reflect.Value, index []int) (reflect.Value, bool) {
	for i, x := range index {
		if i > 0 && rv.Kind() == reflect.Pointer {
			if rv.IsNil() {
				return reflect.Value{}, false
			}
			rv = rv.Elem()
		}
		rv = rv.Field(x)
	}
	return rv, true
}

type tagOptions string

func (o tagOptions) has(name string) bool {
	for opt := range strings.SplitSeq(string(o), ",") {
		if opt == name {
			return true
		}
	}
	return false
}

func parseJSONTag(tag string) (string, tagOptions) {
	name, opts, _ := strings.Cut(tag, ",")
	if name == "-" && opts == "" {
		return "", ""
	}
	return name, tagOptions(opts)
}

func quotable(k reflect.Kind) bool {
	switch k {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.String:
		return true
	}
	return false
}

// isEmptyValue is the omitempty test.
func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Interface, reflect.Pointer:
		return v.IsZero()
	}
	return false
}
