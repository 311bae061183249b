package objectutil

import (
	"math"
	"reflect"
	"strings"
	"time"
)

// IsEmpty reports whether v is empty for its kind.
//
// nil, Undefined and "" are always empty. Otherwise:
//   - Mapping: no own enumerable properties
//   - Sequence: length 0
//   - String: only whitespace
//   - KeyedMapping: no entries (the value is passed to the Observer first)
//   - Interactive: not clickable
//   - Number, Boolean, Function, Temporal: never empty
func IsEmpty(v any, opts ...Option) bool {
	return isEmpty(v, buildOptions(opts).Observer)
}

func isEmpty(v any, obs Observer) bool {
	if v == nil || IsUndefined(v) {
		return true
	}
	if s, ok := v.(string); ok && s == "" {
		return true
	}

	switch Classify(v) {
	case KindMapping:
		return objectOf(v).len() == 0
	case KindSequence:
		return reflect.ValueOf(v).Len() == 0
	case KindString:
		return strings.TrimSpace(reflect.ValueOf(v).String()) == ""
	case KindKeyedMapping:
		obs.Observe(v)
		return keyedLen(v.(*KeyedMap)) == 0
	case KindInteractive:
		return !v.(Element).Clickable()
	default:
		return false
	}
}

func keyedLen(m *KeyedMap) int {
	if m == nil {
		return 0
	}
	return m.Len()
}

// EmptyValue returns a freshly allocated canonical empty value for k.
// Number yields NaN and Temporal yields the current instant. Kinds without
// an empty form yield nil.
func EmptyValue(k Kind) any {
	switch k {
	case KindString:
		return ""
	case KindMapping:
		return map[string]any{}
	case KindSequence:
		return []any{}
	case KindNumber:
		return math.NaN()
	case KindTemporal:
		return time.Now()
	case KindKeyedMapping:
		return NewKeyedMap()
	case KindInteractive:
		return NewPlaceholder()
	default:
		return nil
	}
}
