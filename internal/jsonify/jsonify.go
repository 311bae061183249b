// Package jsonify projects arbitrary Go values onto a tree that JSON text can
// represent, applying the coercion rules of a host JSON serializer: values
// without a JSON form become null inside arrays and disappear from objects.
package jsonify

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	gojson "github.com/goccy/go-json"
)

// ErrCycle is returned when a value references itself.
var ErrCycle = errors.New("objectutil: cyclic value has no JSON form")

// Options customizes the projection. The zero value is usable.
type Options struct {
	// Absent reports values treated as "undefined": null inside arrays,
	// omitted inside objects.
	Absent func(v any) bool
	// FieldKey resolves the object key of an exported struct field; "-" skips
	// the field. Defaults to the field name. Embedded structs, omitempty and
	// the string option follow encoding/json (see Fields).
	FieldKey func(sf reflect.StructField) string
	// Entries flattens opaque keyed containers into ordered key/value pairs.
	// ok=false leaves v to the default rules.
	Entries func(v any) (keys []string, values []any, ok bool)
	// Time renders time.Time values. When nil they keep their MarshalJSON form.
	Time func(t time.Time) any
}

// Value returns the JSON-representable projection of v. The result contains
// only nil, bool, int64, uint64, float64, string, []any, map[string]any and
// json.Marshaler values.
func Value(v any, opt Options) (any, error) {
	w := &walker{opt: opt, seen: map[visit]struct{}{}}
	out, keep, err := w.walk(reflect.ValueOf(v), nil)
	if err != nil {
		return nil, err
	}
	if !keep {
		return nil, nil
	}
	return out, nil
}

type visit struct {
	ptr uintptr
	typ reflect.Type
	n   int
}

type walker struct {
	opt  Options
	seen map[visit]struct{}
}

var marshalerType = reflect.TypeFor[gojson.Marshaler]()

// walk returns keep=false for values without a JSON form.
func (w *walker) walk(rv reflect.Value, path []string) (any, bool, error) {
	if !rv.IsValid() {
		return nil, true, nil
	}
	if rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, true, nil
		}
		return w.walk(rv.Elem(), path)
	}
	if rv.CanInterface() {
		v := rv.Interface()
		if w.opt.Absent != nil && w.opt.Absent(v) {
			return nil, false, nil
		}
		if w.opt.Entries != nil {
			if keys, values, ok := w.opt.Entries(v); ok {
				return w.entries(rv, keys, values, path)
			}
		}
		if t, ok := v.(time.Time); ok && w.opt.Time != nil {
			return w.opt.Time(t), true, nil
		}
		if rv.Type().Implements(marshalerType) {
			if rv.Kind() == reflect.Pointer && rv.IsNil() {
				return nil, true, nil
			}
			return v, true, nil
		}
	}

	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool(), true, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint(), true, nil
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, true, nil
		}
		return f, true, nil
	case reflect.String:
		return rv.String(), true, nil
	case reflect.Slice, reflect.Array:
		return w.array(rv, path)
	case reflect.Map:
		return w.object(rv, path)
	case reflect.Struct:
		return w.record(rv, path)
	case reflect.Pointer:
		if rv.IsNil() {
			return nil, true, nil
		}
		leave, err := w.enter(rv, 0, path)
		if err != nil {
			return nil, false, err
		}
		defer leave()
		return w.walk(rv.Elem(), path)
	default:
		// complex numbers, funcs, channels, unsafe pointers
		return nil, false, nil
	}
}

func (w *walker) enter(rv reflect.Value, n int, path []string) (func(), error) {
	key := visit{ptr: rv.Pointer(), typ: rv.Type(), n: n}
	if _, dup := w.seen[key]; dup {
		return nil, fmt.Errorf("%w (at %s)", ErrCycle, Pointer(path))
	}
	w.seen[key] = struct{}{}
	return func() { delete(w.seen, key) }, nil
}

func (w *walker) array(rv reflect.Value, path []string) (any, bool, error) {
	if rv.Kind() == reflect.Slice && rv.Len() > 0 {
		leave, err := w.enter(rv, rv.Len(), path)
		if err != nil {
			return nil, false, err
		}
		defer leave()
	}
	out := make([]any, rv.Len())
	for i := range out {
		v, keep, err := w.walk(rv.Index(i), append(path, strconv.Itoa(i)))
		if err != nil {
			return nil, false, err
		}
		if keep {
			out[i] = v
		}
	}
	return out, true, nil
}

func (w *walker) object(rv reflect.Value, path []string) (any, bool, error) {
	if rv.IsNil() {
		return nil, true, nil
	}
	leave, err := w.enter(rv, 0, path)
	if err != nil {
		return nil, false, err
	}
	defer leave()
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		k := keyString(iter.Key())
		v, keep, err := w.walk(iter.Value(), append(path, k))
		if err != nil {
			return nil, false, err
		}
		if keep {
			out[k] = v
		}
	}
	return out, true, nil
}

func (w *walker) record(rv reflect.Value, path []string) (any, bool, error) {
	fields := Fields(rv.Type(), w.opt.FieldKey)
	out := make(map[string]any, len(fields))
	for _, f := range fields {
		fv, ok := FieldByIndex(rv, f.Index)
		if !ok || (f.OmitEmpty && isEmptyValue(fv)) {
			continue
		}
		fpath := append(path, f.Name)
		var (
			v    any
			keep bool
			err  error
		)
		if f.Quoted {
			v, keep, err = w.quoted(fv, fpath)
		} else {
			v, keep, err = w.walk(fv, fpath)
		}
		if err != nil {
			return nil, false, err
		}
		if keep {
			out[f.Name] = v
		}
	}
	return out, true, nil
}

// quoted renders a `json:",string"` field: the JSON text of the scalar,
// wrapped in a string.
func (w *walker) quoted(rv reflect.Value, path []string) (any, bool, error) {
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, true, nil
		}
		rv = rv.Elem()
	}
	var scalar any
	switch rv.Kind() {
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), true, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), true, nil
	case reflect.Float32:
		scalar = float32(rv.Float())
	case reflect.Float64:
		scalar = rv.Float()
	case reflect.String:
		scalar = rv.String()
	default:
		return w.walk(rv, path)
	}
	data, err := gojson.Marshal(scalar)
	if err != nil {
		// NaN and infinities
		return nil, true, nil
	}
	return string(data), true, nil
}

func (w *walker) entries(rv reflect.Value, keys []string, values []any, path []string) (any, bool, error) {
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, true, nil
		}
		leave, err := w.enter(rv, 0, path)
		if err != nil {
			return nil, false, err
		}
		defer leave()
	}
	out := make(map[string]any, len(keys))
	for i, k := range keys {
		v, keep, err := w.walk(reflect.ValueOf(values[i]), append(path, k))
		if err != nil {
			return nil, false, err
		}
		if keep {
			out[k] = v
		}
	}
	return out, true, nil
}

func keyString(k reflect.Value) string {
	if k.Kind() == reflect.String {
		return k.String()
	}
	return fmt.Sprint(k.Interface())
}

// Pointer renders path segments as an RFC 6901 JSON Pointer.
func Pointer(parts []string) string {
	if len(parts) == 0 {
		return "/"
	}
	esc := make([]string, len(parts))
	for i, p := range parts {
		esc[i] = strings.ReplaceAll(strings.ReplaceAll(p, "~", "~0"), "/", "~1")
	}
	return "/" + strings.Join(esc, "/")
}
