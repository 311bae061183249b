package objectutil

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/reoring/objectutil/internal/jsonify"
)

// ResolveStructKey names a struct field when the struct is viewed as a
// mapping: the name= option of an `objectutil` tag, else the json tag name,
// else the Go field name. "-" in either tag hides the field.
func ResolveStructKey(sf reflect.StructField) string {
	if tag, ok := sf.Tag.Lookup("objectutil"); ok {
		if tag == "-" {
			return "-"
		}
		for opt := range strings.SplitSeq(tag, ",") {
			if name, found := strings.CutPrefix(strings.TrimSpace(opt), "name="); found && name != "" {
				return name
			}
		}
	}
	if name, _, _ := strings.Cut(sf.Tag.Get("json"), ","); name != "" {
		return name
	}
	return sf.Name
}

// structFields lists the properties of a struct type, laid out the way JSON
// encoding sees them. Fields promoted through unexported embedded structs are
// not properties.
func structFields(t reflect.Type) []jsonify.Field {
	return slices.DeleteFunc(jsonify.Fields(t, ResolveStructKey), func(f jsonify.Field) bool {
		return f.ReadOnly
	})
}

// object is a read-only view over the own enumerable properties of a
// Mapping-kind value. Maps expose their keys, structs their exported fields.
// Anything else (nil, channels, nil pointers) has no properties.
type object struct {
	rv reflect.Value
}

func objectOf(v any) object {
	rv := reflect.ValueOf(v)
	for rv.IsValid() && (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) {
		if rv.IsNil() {
			return object{}
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map, reflect.Struct:
		return object{rv: rv}
	default:
		return object{}
	}
}

// keys returns map keys sorted, since Go maps carry no insertion order, and
// struct properties in field order.
func (o object) keys() []string {
	switch o.rv.Kind() {
	case reflect.Map:
		out := make([]string, 0, o.rv.Len())
		iter := o.rv.MapRange()
		for iter.Next() {
			out = append(out, mapKeyString(iter.Key()))
		}
		slices.Sort(out)
		return out
	case reflect.Struct:
		var out []string
		for _, f := range structFields(o.rv.Type()) {
			if _, ok := jsonify.FieldByIndex(o.rv, f.Index); ok {
				out = append(out, f.Name)
			}
		}
		return out
	default:
		return nil
	}
}

func (o object) len() int {
	if o.rv.Kind() == reflect.Map {
		return o.rv.Len()
	}
	return len(o.keys())
}

func (o object) has(key string) bool {
	_, ok := o.get(key)
	return ok
}

// get returns the property value. Absent properties report ok=false.
func (o object) get(key string) (any, bool) {
	switch o.rv.Kind() {
	case reflect.Map:
		kt := o.rv.Type().Key()
		if kt.Kind() == reflect.String {
			mv := o.rv.MapIndex(reflect.ValueOf(key).Convert(kt))
			if !mv.IsValid() {
				return nil, false
			}
			return mv.Interface(), true
		}
		iter := o.rv.MapRange()
		for iter.Next() {
			if mapKeyString(iter.Key()) == key {
				return iter.Value().Interface(), true
			}
		}
		return nil, false
	case reflect.Struct:
		for _, f := range structFields(o.rv.Type()) {
			if f.Name != key {
				continue
			}
			fv, ok := jsonify.FieldByIndex(o.rv, f.Index)
			if !ok {
				return nil, false
			}
			return fv.Interface(), true
		}
		return nil, false
	default:
		return nil, false
	}
}

func mapKeyString(k reflect.Value) string {
	if k.Kind() == reflect.String {
		return k.String()
	}
	return fmt.Sprint(k.Interface())
}

// properties is the own-property view shared by objects and keyed maps.
type properties interface {
	keys() []string
	len() int
	has(key string) bool
	get(key string) (any, bool)
}

// keyed exposes a KeyedMap as properties in insertion order.
type keyed struct {
	m *KeyedMap
}

func (k keyed) keys() []string {
	if k.m == nil {
		return nil
	}
	out := make([]string, 0, k.m.Len())
	for key := range k.m.All() {
		out = append(out, key)
	}
	return out
}

func (k keyed) len() int { return keyedLen(k.m) }

func (k keyed) has(key string) bool {
	_, ok := k.get(key)
	return ok
}

func (k keyed) get(key string) (any, bool) {
	if k.m == nil {
		return nil, false
	}
	return k.m.Get(key)
}

func propertiesOf(v any) properties {
	if m, ok := v.(*KeyedMap); ok {
		return keyed{m: m}
	}
	return objectOf(v)
}

// Keys returns the own enumerable property names of a Mapping (sorted for
// maps, declaration order for structs) or KeyedMapping (insertion order)
// value, and nil for every other kind.
func Keys(v any) []string {
	switch Classify(v) {
	case KindMapping, KindKeyedMapping:
		return propertiesOf(v).keys()
	default:
		return nil
	}
}

// Property returns the own property key of a Mapping or KeyedMapping value.
func Property(v any, key string) (any, bool) {
	switch Classify(v) {
	case KindMapping, KindKeyedMapping:
		return propertiesOf(v).get(key)
	default:
		return nil, false
	}
}
