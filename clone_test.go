package objectutil_test

import (
	"errors"
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/objectutil"
)

func testingData() map[string]any {
	return map[string]any{
		"name": map[string]any{
			"familyName": "Fung",
			"givenName":  "Jimmy",
		},
		"favouriteLanguage": "javascript",
	}
}

func TestClone_MappingIsSameData(t *testing.T) {
	origin := testingData()
	cloned, err := objectutil.Clone(origin)
	require.NoError(t, err)

	if diff := cmp.Diff(origin, cloned); diff != "" {
		t.Fatalf("clone mismatch (-origin +clone):\n%s", diff)
	}
	assert.True(t, objectutil.IsSameObject(origin, cloned))
}

func TestClone_MappingTopLevelIsIndependent(t *testing.T) {
	origin := testingData()
	cloned, err := objectutil.Clone(origin)
	require.NoError(t, err)

	cloned.(map[string]any)["favouriteLanguage"] = "java"
	assert.Equal(t, "javascript", origin["favouriteLanguage"])
}

func TestClone_MappingNestedValuesAreShared(t *testing.T) {
	origin := testingData()
	cloned, err := objectutil.Clone(origin)
	require.NoError(t, err)

	nested := cloned.(map[string]any)["name"].(map[string]any)
	nested["givenName"] = "Jim"
	assert.Equal(t, "Jim", origin["name"].(map[string]any)["givenName"])
}

func TestClone_StructsKeepTheirType(t *testing.T) {
	type profile struct {
		Name string
		Tags []string
		note string
	}
	origin := profile{Name: "Jimmy", Tags: []string{"go"}, note: "private"}

	cloned, err := objectutil.Clone(origin)
	require.NoError(t, err)
	assert.Equal(t, origin, cloned)

	ptr := &origin
	clonedPtr, err := objectutil.Clone(ptr)
	require.NoError(t, err)
	cp, ok := clonedPtr.(*profile)
	require.True(t, ok)
	assert.NotSame(t, ptr, cp)

	cp.Name = "Jim"
	cp.Tags[0] = "rust"
	assert.Equal(t, "Jimmy", origin.Name)
	assert.Equal(t, "rust", origin.Tags[0], "nested slices are shared")
}

func TestClone_Temporal(t *testing.T) {
	loc := time.FixedZone("HKT", 8*60*60)
	origin := time.Date(2024, 1, 2, 3, 4, 5, 6, loc)

	cloned, err := objectutil.Clone(origin)
	require.NoError(t, err)
	ts, ok := cloned.(time.Time)
	require.True(t, ok)
	assert.True(t, ts.Equal(origin))
	assert.Equal(t, origin.UnixNano(), ts.UnixNano())
	assert.Equal(t, loc, ts.Location())

	now := time.Now()
	cloned, err = objectutil.Clone(now)
	require.NoError(t, err)
	assert.True(t, cloned.(time.Time).Equal(now))
}

func TestClone_KeyedMapIsShallowAtEntries(t *testing.T) {
	inner := map[string]any{"level": 1}
	origin := objectutil.NewKeyedMap()
	origin.Set("name", "Jimmy")
	origin.Set("inner", inner)

	cloned, err := objectutil.Clone(origin)
	require.NoError(t, err)
	km, ok := cloned.(*objectutil.KeyedMap)
	require.True(t, ok)
	assert.NotSame(t, origin, km)

	name, _ := km.Get("name")
	assert.Equal(t, "Jimmy", name)
	assert.Equal(t, []string{"name", "inner"}, objectutil.Keys(km))

	km.Set("name", "Jim")
	name, _ = origin.Get("name")
	assert.Equal(t, "Jimmy", name)

	got, _ := km.Get("inner")
	got.(map[string]any)["level"] = 2
	assert.Equal(t, 2, inner["level"])
}

func TestClone_SequenceIsALossyJSONRoundTrip(t *testing.T) {
	when := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	origin := []any{
		1,
		"a",
		true,
		nil,
		when,
		func() {},
		objectutil.Undefined,
		math.NaN(),
		map[string]any{"fn": func() {}, "x": 2, "missing": objectutil.Undefined},
		[]int{3},
	}

	cloned, err := objectutil.Clone(origin)
	require.NoError(t, err)

	want := []any{
		float64(1),
		"a",
		true,
		nil,
		"2024-01-02T03:04:05Z",
		nil,
		nil,
		nil,
		map[string]any{"x": float64(2)},
		[]any{float64(3)},
	}
	if diff := cmp.Diff(want, cloned); diff != "" {
		t.Fatalf("lossy clone mismatch (-want +got):\n%s", diff)
	}
}

func TestClone_SequenceIsDeep(t *testing.T) {
	inner := map[string]any{"a": "b"}
	origin := []any{inner}

	cloned, err := objectutil.Clone(origin)
	require.NoError(t, err)
	cloned.([]any)[0].(map[string]any)["a"] = "c"
	assert.Equal(t, "b", inner["a"])
}

func TestClone_EmptySequenceStaysASequence(t *testing.T) {
	cloned, err := objectutil.Clone([]string(nil))
	require.NoError(t, err)
	assert.Equal(t, []any{}, cloned)
}

func TestClone_UnchangedValues(t *testing.T) {
	fn := func() {}
	for _, v := range []any{nil, objectutil.Undefined, "", "x", 0, 1.5, false} {
		cloned, err := objectutil.Clone(v)
		require.NoError(t, err)
		assert.Equal(t, v, cloned)
	}
	cloned, err := objectutil.Clone(fn)
	require.NoError(t, err)
	assert.Equal(t, reflect.ValueOf(fn).Pointer(), reflect.ValueOf(cloned).Pointer())
}

func TestClone_UnsupportedTypes(t *testing.T) {
	_, err := objectutil.Clone(objectutil.NewPlaceholder())
	require.Error(t, err)
	assert.True(t, errors.Is(err, objectutil.ErrUnsupportedType))
	ute, ok := objectutil.AsUnsupportedType(err)
	require.True(t, ok)
	assert.Equal(t, objectutil.KindInteractive, ute.Kind)
	assert.Contains(t, err.Error(), "htmlElement")

	_, err = objectutil.Clone(make(chan int))
	ute, ok = objectutil.AsUnsupportedType(err)
	require.True(t, ok)
	assert.Equal(t, objectutil.KindMapping, ute.Kind)

	n := 3
	_, err = objectutil.Clone(&n)
	assert.ErrorIs(t, err, objectutil.ErrUnsupportedType)

	_, ok = objectutil.AsUnsupportedType(nil)
	assert.False(t, ok)
}

func TestClone_CyclicSequence(t *testing.T) {
	s := []any{nil}
	s[0] = s

	_, err := objectutil.Clone(s)
	require.Error(t, err)
	assert.ErrorIs(t, err, objectutil.ErrCyclicValue)
}

type countingDriver struct {
	objectutil.JSONDriver
	marshals int
}

func (d *countingDriver) Marshal(v any) ([]byte, error) {
	d.marshals++
	return d.JSONDriver.Marshal(v)
}

func TestClone_UsesConfiguredDriver(t *testing.T) {
	drv := &countingDriver{JSONDriver: objectutil.DefaultJSONDriver()}
	objectutil.SetJSONDriver(drv)
	t.Cleanup(objectutil.UseDefaultJSONDriver)

	_, err := objectutil.Clone([]any{1})
	require.NoError(t, err)
	_, err = objectutil.Clone(map[string]any{"a": 1})
	require.NoError(t, err)

	assert.Equal(t, 1, drv.marshals, "only sequences go through the driver")
	assert.Same(t, drv, objectutil.CurrentJSONDriver())
}

func TestJSONDriverRegistry(t *testing.T) {
	t.Cleanup(objectutil.UseDefaultJSONDriver)

	assert.Equal(t, "go-json", objectutil.CurrentJSONDriver().Name())
	objectutil.SetJSONDriver(nil)
	assert.Equal(t, "go-json", objectutil.CurrentJSONDriver().Name())
}

func TestJSONValue_RenderTime(t *testing.T) {
	when := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	keyed := objectutil.NewKeyedMap()
	keyed.Set("at", when)

	got, err := objectutil.JSONValue(keyed, func(t time.Time) any { return t.Format("2006-01-02") })
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"at": "2024-01-02"}, got)
}

type Audit struct {
	CreatedBy string `json:"createdBy"`
	Rev       int    `json:"rev,omitempty"`
}

type Owner struct {
	Name string
}

type ticket struct {
	Audit
	*Owner
	ID   int      `json:"id,string"`
	Note string   `json:"note,omitempty"`
	Tags []string `json:"tags,omitempty"`
	Rev  int      `json:"rev"`
}

func TestClone_SequenceOfStructsFollowsJSONEncoding(t *testing.T) {
	origin := []any{
		ticket{Audit: Audit{CreatedBy: "jimmy", Rev: 3}, ID: 7},
		ticket{Owner: &Owner{Name: "fung"}, Note: "n", Tags: []string{"a"}, Rev: 2},
	}

	cloned, err := objectutil.Clone(origin)
	require.NoError(t, err)

	want := []any{
		map[string]any{"createdBy": "jimmy", "id": "7", "rev": float64(0)},
		map[string]any{"createdBy": "", "Name": "fung", "id": "0", "note": "n", "tags": []any{"a"}, "rev": float64(2)},
	}
	if diff := cmp.Diff(want, cloned); diff != "" {
		t.Fatalf("clone mismatch (-want +got):\n%s", diff)
	}

	// Same tree the driver produces when it encodes the structs itself.
	drv := objectutil.DefaultJSONDriver()
	data, err := drv.Marshal(origin)
	require.NoError(t, err)
	var direct []any
	require.NoError(t, drv.Unmarshal(data, &direct))
	if diff := cmp.Diff(direct, cloned); diff != "" {
		t.Fatalf("clone differs from driver encoding (-driver +clone):\n%s", diff)
	}
}

func TestClone_SequenceFlattensUnexportedEmbeddedStruct(t *testing.T) {
	type inner struct{ A int }
	type outer struct {
		inner
		B int `json:"b,omitempty"`
	}

	cloned, err := objectutil.Clone([]any{outer{inner{1}, 0}})
	require.NoError(t, err)
	assert.Equal(t, []any{map[string]any{"A": float64(1)}}, cloned)
}
