package objectutil_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/reoring/objectutil"
)

func TestIsSameObject_FalsyAndTypeMismatches(t *testing.T) {
	assert.False(t, objectutil.IsSameObject(nil, objectutil.Undefined), "null and undefined")
	assert.False(t, objectutil.IsSameObject(false, 0), "false and 0")
	assert.False(t, objectutil.IsSameObject("", nil), "empty string and null")
	assert.False(t, objectutil.IsSameObject([]any{}, map[string]any{}), "empty array and empty object")
	assert.False(t, objectutil.IsSameObject("", " "), "'' and ' '")
	assert.False(t, objectutil.IsSameObject(1, "1"))
	assert.False(t, objectutil.IsSameObject(0, 1))
	assert.False(t, objectutil.IsSameObject(map[string]any{}, nil), "truthy object against null")
}

func TestIsSameObject_Objects(t *testing.T) {
	assert.False(t, objectutil.IsSameObject(
		map[string]any{"name": "Jimmy", "job": "Programmer", "age": 25},
		map[string]any{"job": "Programmer", "name": "Jimmy"}))
	assert.False(t, objectutil.IsSameObject(
		map[string]any{"name": "Jimmy", "job": "Programmer", "age": 25},
		map[string]any{"job": "Programmer", "name": "Jimmy", "AGE": 25}))
	assert.True(t, objectutil.IsSameObject(
		map[string]any{"name": "Jimmy"},
		map[string]any{"name": "Jimmy"}))
	assert.True(t, objectutil.IsSameObject(
		map[string]any{"name": "Jimmy", "job": "X"},
		map[string]any{"job": "X", "name": "Jimmy"}))
	assert.False(t, objectutil.IsSameObject(
		map[string]any{"a": 1, "b": 2},
		map[string]any{"a": 1, "B": 2}))
	assert.True(t, objectutil.IsSameObject(nil, nil))
}

func TestIsSameObject_NumbersCompareAcrossGoTypes(t *testing.T) {
	assert.True(t, objectutil.IsSameObject(map[string]any{"a": 1}, map[string]any{"a": 1.0}))
	assert.True(t, objectutil.IsSameObject(uint8(7), int64(7)))
	assert.False(t, objectutil.IsSameObject(int64(-1), uint64(math.MaxUint64)))
	assert.False(t, objectutil.IsSameObject(math.NaN(), math.NaN()), "NaN is falsy on both sides but never identical")
}

func TestIsSameObject_StringsIgnoreCaseAndSurroundingSpace(t *testing.T) {
	assert.True(t, objectutil.IsSameObject("  Jimmy ", "jimmy"))
	assert.True(t, objectutil.IsSameObject(named("ABC"), "abc"))
	assert.False(t, objectutil.IsSameObject("Jim my", "jimmy"))
}

func TestIsSameObject_Sequences(t *testing.T) {
	assert.True(t, objectutil.IsSameObject([]any{1, 2, 3}, []any{3, 2, 1}))
	assert.False(t, objectutil.IsSameObject([]any{1, 2}, []any{1, 2, 3}))
	assert.False(t, objectutil.IsSameObject([]any{1, 4}, []any{1, 2}))
	assert.True(t, objectutil.IsSameObject([]int{1, 2}, []float64{2, 1}))
	assert.True(t, objectutil.IsSameObject([]any{math.NaN()}, []any{math.NaN()}), "containment treats NaN as found")

	// Duplicate counts are not verified.
	assert.True(t, objectutil.IsSameObject([]any{1, 1, 2}, []any{1, 2, 2}))
}

func TestIsSameObject_SequenceElementsUseIdentity(t *testing.T) {
	shared := map[string]any{"a": 1}
	assert.True(t, objectutil.IsSameObject([]any{shared}, []any{shared}))
	assert.False(t, objectutil.IsSameObject([]any{map[string]any{"a": 1}}, []any{map[string]any{"a": 1}}))
	assert.False(t, objectutil.IsSameObject([]any{"A"}, []any{"a"}), "elements are not case-folded")

	assert.False(t, objectutil.IsSameObject([]any{[]any{}}, []any{[]any{}}), "separate empty slices")
	assert.False(t, objectutil.IsSameObject([]any{[]int{}}, []any{make([]int, 0)}))
	buf := make([]any, 0, 4)
	assert.True(t, objectutil.IsSameObject([]any{buf}, []any{buf}), "same backing array")
	assert.True(t, objectutil.IsSameObject([]any{[]int(nil)}, []any{[]int(nil)}))
}

func TestIsSameObject_SkipFieldsApplyToTopLevelOnly(t *testing.T) {
	a := map[string]any{"id": 1, "meta": map[string]any{"id": 2}}
	b := map[string]any{"id": 9, "meta": map[string]any{"id": 3}}
	assert.False(t, objectutil.IsSameObject(a, b, "id"))

	b["meta"] = map[string]any{"id": 2}
	assert.True(t, objectutil.IsSameObject(a, b, "id"))
	assert.False(t, objectutil.IsSameObject(a, b))

	// A skipped key must still be present on both sides.
	assert.False(t, objectutil.IsSameObject(map[string]any{"id": 1}, map[string]any{"ID": 1}, "id"))
}

func TestIsSameObject_StructsAndKeyedMaps(t *testing.T) {
	type person struct {
		Name string `json:"name"`
		Job  string `json:"job"`
	}
	assert.True(t, objectutil.IsSameObject(person{"Jimmy", "X"}, map[string]any{"job": "X", "name": "jimmy"}))
	assert.True(t, objectutil.IsSameObject(&person{"Jimmy", "X"}, person{"Jimmy", "X"}))

	a := objectutil.NewKeyedMap()
	a.Set("name", "Jimmy")
	a.Set("job", "X")
	b := objectutil.NewKeyedMap()
	b.Set("job", "X")
	b.Set("name", "Jimmy")
	assert.True(t, objectutil.IsSameObject(a, b))

	b.Set("name", "Tom")
	assert.False(t, objectutil.IsSameObject(a, b))
	assert.True(t, objectutil.IsSameObject(a, b, "name"))
}

func TestIsSameObject_TemporalAndInteractive(t *testing.T) {
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	assert.True(t, objectutil.IsSameObject(at, at.In(time.FixedZone("HKT", 8*60*60))))
	assert.False(t, objectutil.IsSameObject(at, at.Add(time.Second)))

	p := objectutil.NewPlaceholder()
	assert.True(t, objectutil.IsSameObject(p, p))
	assert.False(t, objectutil.IsSameObject(p, objectutil.NewPlaceholder()))
}

func TestIsSameObject_Functions(t *testing.T) {
	f := func() {}
	assert.True(t, objectutil.IsSameObject(f, f))
	assert.False(t, objectutil.IsSameObject(f, "f"))
	assert.True(t, objectutil.IsSameObject(objectutil.Undefined, objectutil.Undefined))
}
