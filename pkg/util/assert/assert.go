// Package assert provides the small set of test assertions used across this
// repository.  It intentionally stops short of a full matcher library.
package assert

import (
	"reflect"
	"testing"
)

// Equal fails the test immediately if actual is not equal to expected.
func Equal(t *testing.T, expected, actual any, msg ...any) {
	t.Helper()
	//
	if reflect.DeepEqual(expected, actual) {
		return
	}
	//
	t.Errorf("expected: %v, actual: %v", expected, actual)
	fail(t, msg...)
}

// True fails the test immediately if condition is false.
func True(t *testing.T, condition bool, msg ...any) {
	t.Helper()
	//
	if condition {
		return
	}
	//
	t.Errorf("condition is false")
	fail(t, msg...)
}

// False fails the test immediately if condition is true.
func False(t *testing.T, condition bool, msg ...any) {
	t.Helper()
	//
	if !condition {
		return
	}
	//
	t.Errorf("condition is true")
	fail(t, msg...)
}

// Nil fails the test immediately if the given value is not nil.
func Nil(t *testing.T, value any, msg ...any) {
	t.Helper()
	//
	if isNil(value) {
		return
	}
	//
	t.Errorf("expected nil, actual: %v", value)
	fail(t, msg...)
}

// NonNil fails the test immediately if the given value is nil.
func NonNil(t *testing.T, value any, msg ...any) {
	t.Helper()
	//
	if !isNil(value) {
		return
	}
	//
	t.Errorf("expected non-nil value")
	fail(t, msg...)
}

// isNil handles typed nils hiding inside non-nil interface values.
func isNil(value any) bool {
	if value == nil {
		return true
	}
	//
	rv := reflect.ValueOf(value)
	//
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return rv.IsNil()
	default:
		return false
	}
}

func fail(t *testing.T, msg ...any) {
	t.Helper()
	//
	if len(msg) != 0 {
		t.Errorf(msg[0].(string), msg[1:]...)
	}
	//
	t.FailNow()
}
