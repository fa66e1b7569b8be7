package assert

import (
	"reflect"
	"testing"
)

// That fatals the test if v is false.
func That(t testing.TB, v bool) {
	t.Helper()
	if !v {
		t.Fatal("assertion failed")
	}
}

// Equal fatals the test if got does not equal want, converting between
// numeric types when possible so literals compare against sized integers.
func Equal(t testing.TB, got, want interface{}) {
	t.Helper()
	if !equal(got, want) {
		t.Fatalf("got %v; want %v", got, want)
	}
}

func equal(got, want interface{}) bool {
	if reflect.DeepEqual(got, want) {
		return true
	}
	gv, wv := reflect.ValueOf(got), reflect.ValueOf(want)
	if !gv.IsValid() || !wv.IsValid() {
		return false
	}
	if gv.Type().ConvertibleTo(wv.Type()) {
		return reflect.DeepEqual(gv.Convert(wv.Type()).Interface(), want)
	}
	return false
}
