package objectutil

import (
	"fmt"
	"reflect"
	"time"

	"github.com/reoring/objectutil/internal/jsonify"
)

// Clone returns a copy of v whose depth depends on the kind:
//
//   - nil, Undefined and scalar kinds are returned unchanged.
//   - Temporal: a new time.Time carrying the same instant and location.
//   - KeyedMapping: a new KeyedMap with the same entries in the same order;
//     entry values are shared with the original.
//   - Sequence: a []any decoded from the JSON text of v. Elements without a
//     JSON form are coerced (see JSONValue), so the copy is lossy: temporal
//     elements come back as strings, numbers as float64, funcs as nil.
//   - Mapping: a new map, struct or struct pointer of the same type with every
//     top-level property copied by reference; nested containers are shared.
//
// Any other value (interactive elements, channels, pointers to non-structs)
// fails with *UnsupportedTypeError.
func Clone(v any) (any, error) {
	if v == nil || IsUndefined(v) {
		return v, nil
	}

	k := Classify(v)
	switch k {
	case KindString, KindNumber, KindBoolean, KindFunction:
		return v, nil
	case KindTemporal:
		// Round(0) drops the monotonic reading but keeps wall time and location.
		return v.(time.Time).Round(0), nil
	case KindKeyedMapping:
		return cloneKeyed(v.(*KeyedMap)), nil
	case KindSequence:
		return cloneSequence(v)
	case KindMapping:
		return cloneMapping(v)
	default:
		return nil, &UnsupportedTypeError{Kind: k, Type: reflect.TypeOf(v)}
	}
}

func cloneKeyed(m *KeyedMap) *KeyedMap {
	if m == nil {
		return nil
	}
	out := NewKeyedMap()
	for k, v := range m.All() {
		out.Set(k, v)
	}
	return out
}

func cloneSequence(v any) (any, error) {
	tree, err := JSONValue(v, nil)
	if err != nil {
		return nil, err
	}
	drv := CurrentJSONDriver()
	data, err := drv.Marshal(tree)
	if err != nil {
		return nil, fmt.Errorf("objectutil: encode sequence with %s: %w", drv.Name(), err)
	}
	var out []any
	if err := drv.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("objectutil: decode sequence with %s: %w", drv.Name(), err)
	}
	if out == nil {
		out = []any{}
	}
	return out, nil
}

func cloneMapping(v any) (any, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		if rv.IsNil() {
			return v, nil
		}
		out := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out.SetMapIndex(iter.Key(), iter.Value())
		}
		return out.Interface(), nil
	case reflect.Struct:
		out := reflect.New(rv.Type()).Elem()
		out.Set(rv)
		return out.Interface(), nil
	case reflect.Pointer:
		if rv.IsNil() {
			return v, nil
		}
		if rv.Elem().Kind() == reflect.Struct {
			out := reflect.New(rv.Type().Elem())
			out.Elem().Set(rv.Elem())
			return out.Interface(), nil
		}
	}
	return nil, &UnsupportedTypeError{Kind: KindMapping, Type: rv.Type()}
}

// JSONValue projects v onto the tree its JSON text would describe: maps,
// structs and keyed maps become map[string]any, sequences []any. Undefined,
// funcs, channels and complex numbers become nil inside sequences and are
// omitted inside mappings; NaN and infinities become nil. renderTime, when
// non-nil, replaces the default RFC 3339 text of time.Time values.
// A value that references itself yields an error matching ErrCyclicValue.
func JSONValue(v any, renderTime func(time.Time) any) (any, error) {
	return jsonify.Value(v, jsonify.Options{
		Absent:   IsUndefined,
		FieldKey: ResolveStructKey,
		Entries:  keyedEntries,
		Time:     renderTime,
	})
}

func keyedEntries(v any) ([]string, []any, bool) {
	m, ok := v.(*KeyedMap)
	if !ok {
		return nil, nil, false
	}
	if m == nil {
		return nil, nil, true
	}
	keys := make([]string, 0, m.Len())
	values := make([]any, 0, m.Len())
	for k, v := range m.All() {
		keys = append(keys, k)
		values = append(values, v)
	}
	return keys, values, true
}
