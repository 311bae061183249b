package objectutil

import (
	"reflect"
	"strconv"
	"time"

	"github.com/speakeasy-api/openapi/sequencedmap"
)

// Kind is the closed taxonomy every operation dispatches on.
type Kind int

const (
	_ Kind = iota // zero value is invalid; Classify never returns it

	KindSequence
	KindKeyedMapping
	KindTemporal
	KindMapping
	KindString
	KindNumber
	KindBoolean
	KindFunction
	KindUndefined
	KindInteractive

	// KindTotal is the number of defined kinds plus the invalid zero value.
	KindTotal = int(iota)
)

var kindNames = [...]string{
	KindSequence:     "array",
	KindKeyedMapping: "map",
	KindTemporal:     "date",
	KindMapping:      "object",
	KindString:       "string",
	KindNumber:       "number",
	KindBoolean:      "boolean",
	KindFunction:     "function",
	KindUndefined:    "undefined",
	KindInteractive:  "htmlElement",
}

// String returns the host name of the kind ("array", "object", "date", ...).
func (k Kind) String() string {
	if k <= 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// ParseKind resolves a host kind name back to its Kind.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n != "" && n == name {
			return Kind(k), true
		}
	}
	return 0, false
}

// IsScalar reports whether values of the kind are immutable leaves.
func (k Kind) IsScalar() bool {
	switch k {
	default:
		return false
	case KindString, KindNumber, KindBoolean, KindFunction, KindUndefined:
		return true
	}
}

// hostType mirrors the host's dynamic type name, where every container,
// temporal and interactive value (and null) reports as "object".
func (k Kind) hostType() string {
	switch k {
	case KindSequence, KindKeyedMapping, KindTemporal, KindInteractive, KindMapping:
		return "object"
	default:
		return k.String()
	}
}

// KeyedMap is the host keyed-mapping type: an insertion-ordered map whose
// identity is distinct from plain Go maps.
type KeyedMap = sequencedmap.Map[string, any]

// NewKeyedMap returns an empty KeyedMap.
func NewKeyedMap() *KeyedMap { return sequencedmap.New[string, any]() }

// Classify assigns v to exactly one Kind. Precedence is fixed:
// Sequence, KeyedMapping, Temporal, Interactive, then the dynamic kind with
// KindMapping as the fallback (nil included).
func Classify(v any) Kind {
	switch v.(type) {
	case nil:
		return KindMapping
	case undefined:
		return KindUndefined
	}

	rv := reflect.ValueOf(v)
	if k := rv.Kind(); k == reflect.Slice || k == reflect.Array {
		return KindSequence
	}
	if _, ok := v.(*KeyedMap); ok {
		return KindKeyedMapping
	}
	if _, ok := v.(time.Time); ok {
		return KindTemporal
	}
	if _, ok := v.(Element); ok {
		return KindInteractive
	}
	return fromReflectKind(rv.Kind())
}

func fromReflectKind(k reflect.Kind) Kind {
	switch k {
	case reflect.String:
		return KindString
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return KindNumber
	case reflect.Bool:
		return KindBoolean
	case reflect.Func:
		return KindFunction
	default:
		return KindMapping
	}
}
