// field_test.go — verification of typed detail accessors.
package xgxtaxon

import (
	"testing"
)

var (
	fPath    = DetailOf[string]("path")
	fAttempt = DetailOf[int64]("attempt")
	fRatio   = DetailOf[float64]("ratio")
	fDryRun  = DetailOf[bool]("dry_run")
	fTags    = DetailOf[[]Value]("tags")
	fExtra   = DetailOf[Map]("extra")
	fRaw     = DetailOf[Value]("raw")
)

func TestDetailField_SetGetRoundTrip(t *testing.T) {
	t.Parallel()

	e := Capture(newMissingProfileError())
	e = fPath.Set(e, "/etc/app.conf")
	e = fAttempt.Set(e, 3)
	e = fRatio.Set(e, 0.75)
	e = fDryRun.Set(e, true)

	if v, ok := fPath.Get(e); !ok || v != "/etc/app.conf" {
		t.Fatalf("path=%q ok=%v", v, ok)
	}
	if v, ok := fAttempt.Get(e); !ok || v != 3 {
		t.Fatalf("attempt=%d ok=%v", v, ok)
	}
	if v, ok := fRatio.Get(e); !ok || v != 0.75 {
		t.Fatalf("ratio=%v ok=%v", v, ok)
	}
	if v, ok := fDryRun.Get(e); !ok || !v {
		t.Fatalf("dry_run=%v ok=%v", v, ok)
	}
}

func TestDetailField_GetMissesOnAbsentAndWrongArm(t *testing.T) {
	t.Parallel()

	e := Capture(newMissingProfileError())
	if _, ok := fPath.Get(e); ok {
		t.Fatalf("value conjured from absent details")
	}

	e = fPath.Set(e, "/x")
	if _, ok := fAttempt.Get(e); ok {
		t.Fatalf("missing key matched")
	}
	// Arm-exact: the value under "path" is a string, not an int64.
	if _, ok := DetailOf[int64]("path").Get(e); ok {
		t.Fatalf("string arm matched int64 field")
	}
	// Numbers land on the int64 arm; DetailOf[int] must not match.
	e = fAttempt.Set(e, 1)
	if _, ok := DetailOf[int]("attempt").Get(e); ok {
		t.Fatalf("int64 arm matched int field; reads are arm-exact")
	}
}

func TestDetailField_GetOnNilError(t *testing.T) {
	t.Parallel()

	if _, ok := fPath.Get(nil); ok {
		t.Fatalf("nil error produced a value")
	}
}

func TestDetailField_StructuredArms(t *testing.T) {
	t.Parallel()

	e := Capture(newMissingProfileError())
	e = fTags.Set(e, []Value{StringValue("io"), StringValue("config")})
	e = fExtra.Set(e, MapOf("k", 1))

	tags, ok := fTags.Get(e)
	if !ok || len(tags) != 2 {
		t.Fatalf("tags=%v ok=%v", tags, ok)
	}
	extra, ok := fExtra.Get(e)
	if !ok || !extra.Equal(MapOf("k", 1)) {
		t.Fatalf("extra=%#v ok=%v", extra, ok)
	}
}

func TestDetailField_ValuePassthrough(t *testing.T) {
	t.Parallel()

	e := Capture(newMissingProfileError()).WithDetail("raw", 42)
	v, ok := fRaw.Get(e)
	if !ok {
		t.Fatalf("Value field missed")
	}
	if !v.Equal(IntValue(42)) {
		t.Fatalf("raw=%v", v)
	}
}

func TestDetailField_SetIn(t *testing.T) {
	t.Parallel()

	var m Map
	m = fPath.SetIn(m, "/var/lib")
	if v, ok := m.Get("path"); !ok || !v.Equal(StringValue("/var/lib")) {
		t.Fatalf("SetIn on nil map: %v ok=%v", v, ok)
	}
}

func TestDetailField_WorksOnVariants(t *testing.T) {
	t.Parallel()

	v := newMissingProfileError()
	v.details = MapOf("path", "/etc/app.conf")

	if got, ok := fPath.Get(v); !ok || got != "/etc/app.conf" {
		t.Fatalf("variant read failed: %q ok=%v", got, ok)
	}
}

func TestDetailField_MustGetPanicsWhenMissing(t *testing.T) {
	t.Parallel()

	e := Capture(newMissingProfileError())
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("MustGet must panic for a missing field")
		}
	}()
	_ = fPath.MustGet(e)
}

func TestDetailField_KeyAccessor(t *testing.T) {
	t.Parallel()

	if fPath.Key() != "path" {
		t.Fatalf("Key=%q", fPath.Key())
	}
}
