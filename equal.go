package objectutil

import (
	"math"
	"reflect"
	"slices"
	"strings"
	"time"
)

// IsSameObject reports whether a and b are semantically the same:
//
//  1. exactly one of them falsy (nil, Undefined, false, 0, NaN, "") -> false
//  2. different host types (string, number, boolean, function, undefined,
//     object) -> false
//  3. one sequence and one non-sequence object -> false
//  4. strings compare case-insensitively after trimming
//  5. sequences: every element of a is found in b and the lengths match;
//     duplicate counts are not verified
//  6. objects: same key set (case-sensitive), then every value whose key is
//     not in skipFields compares equal recursively; skipFields applies to this
//     level only and is not forwarded to nested comparisons
//  7. anything else: strict identity
//
// Two temporal values compare by instant and two interactive values by
// identity; a keyed map exposes its entries as keys.
func IsSameObject(a, b any, skipFields ...string) bool {
	if truthy(a) != truthy(b) {
		return false
	}
	ka, kb := Classify(a), Classify(b)
	if ka.hostType() != kb.hostType() {
		return false
	}
	if ka.hostType() == "object" && (ka == KindSequence) != (kb == KindSequence) {
		return false
	}

	switch {
	case ka == KindString:
		return normalizeString(a) == normalizeString(b)
	case ka == KindSequence:
		return sameSequence(reflect.ValueOf(a), reflect.ValueOf(b))
	case ka == KindTemporal && kb == KindTemporal:
		return a.(time.Time).Equal(b.(time.Time))
	case ka == KindInteractive && kb == KindInteractive:
		return strictEqual(a, b)
	case ka.hostType() == "object":
		return sameProperties(propertiesOf(a), propertiesOf(b), skipFields)
	default:
		return strictEqual(a, b)
	}
}

func normalizeString(v any) string {
	return strings.TrimSpace(strings.ToLower(reflect.ValueOf(v).String()))
}

// sameSequence checks containment of every element of a in b plus equal
// length. [1,1,2] and [1,2,2] therefore compare as the same.
func sameSequence(a, b reflect.Value) bool {
	for i := 0; i < a.Len(); i++ {
		x := a.Index(i).Interface()
		found := false
		for j := 0; j < b.Len(); j++ {
			if sameValueZero(x, b.Index(j).Interface()) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return a.Len() == b.Len()
}

func sameProperties(a, b properties, skipFields []string) bool {
	keys := a.keys()
	if len(keys) != b.len() {
		return false
	}
	for _, k := range keys {
		if !b.has(k) {
			return false
		}
	}
	for _, k := range keys {
		if slices.Contains(skipFields, k) {
			continue
		}
		va, _ := a.get(k)
		vb, _ := b.get(k)
		if !IsSameObject(va, vb) {
			return false
		}
	}
	return true
}

// truthy follows host truthiness: nil, Undefined, false, zero, NaN and the
// empty string are falsy, and so is a nil pointer; every other object,
// sequence included, is truthy.
func truthy(v any) bool {
	if v == nil || IsUndefined(v) {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.Len() > 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.Complex64, reflect.Complex128:
		return rv.Complex() != 0
	case reflect.Pointer:
		return !rv.IsNil()
	default:
		return true
	}
}

// strictEqual is identity: numbers compare by value across Go numeric types
// (NaN is never equal), reference types by address, everything else with ==.
func strictEqual(a, b any) bool {
	eq, _ := identical(a, b)
	return eq
}

// sameValueZero is strictEqual except that NaN equals NaN.
func sameValueZero(a, b any) bool {
	eq, nan := identical(a, b)
	return eq || nan
}

func identical(a, b any) (eq, bothNaN bool) {
	if a == nil || b == nil {
		return a == nil && b == nil, false
	}
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if fromReflectKind(ra.Kind()) == KindNumber && fromReflectKind(rb.Kind()) == KindNumber {
		return compareNumbers(ra, rb)
	}
	if ra.Type() != rb.Type() {
		return false, false
	}
	switch ra.Kind() {
	case reflect.Map, reflect.Pointer, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return ra.Pointer() == rb.Pointer(), false
	case reflect.Slice:
		if ra.Cap() == 0 || rb.Cap() == 0 {
			// zero-capacity slices share one base address
			return ra.IsNil() && rb.IsNil(), false
		}
		return ra.Pointer() == rb.Pointer() && ra.Len() == rb.Len(), false
	}
	if !ra.Type().Comparable() {
		return false, false
	}
	defer func() {
		// interface fields holding incomparable values panic on ==
		if recover() != nil {
			eq = false
		}
	}()
	return a == b, false
}

func compareNumbers(a, b reflect.Value) (eq, bothNaN bool) {
	isComplex := func(v reflect.Value) bool {
		return v.Kind() == reflect.Complex64 || v.Kind() == reflect.Complex128
	}
	if isComplex(a) || isComplex(b) {
		return toComplex(a) == toComplex(b), false
	}
	switch {
	case isInt(a) && isInt(b):
		return a.Int() == b.Int(), false
	case isUint(a) && isUint(b):
		return a.Uint() == b.Uint(), false
	case isInt(a) && isUint(b):
		return a.Int() >= 0 && uint64(a.Int()) == b.Uint(), false
	case isUint(a) && isInt(b):
		return b.Int() >= 0 && uint64(b.Int()) == a.Uint(), false
	}
	fa, fb := toFloat(a), toFloat(b)
	if math.IsNaN(fa) && math.IsNaN(fb) {
		return false, true
	}
	return fa == fb, false
}

func isInt(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUint(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func toFloat(v reflect.Value) float64 {
	switch {
	case isInt(v):
		return float64(v.Int())
	case isUint(v):
		return float64(v.Uint())
	default:
		return v.Float()
	}
}

func toComplex(v reflect.Value) complex128 {
	if v.Kind() == reflect.Complex64 || v.Kind() == reflect.Complex128 {
		return v.Complex()
	}
	return complex(toFloat(v), 0)
}
