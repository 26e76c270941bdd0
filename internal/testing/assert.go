package testing

import (
	"reflect"
	"strings"
	"testing"
)

// AssertEqual asserts that values are deeply equal.
func AssertEqual[T any](t testing.TB, a, b T) {
	t.Helper()

	if !reflect.DeepEqual(a, b) {
		t.Fatalf("expected '%v' to be equal to '%v'", a, b)
	}
}

// AssertTrue asserts that the condition holds.
func AssertTrue(t testing.TB, ok bool) {
	t.Helper()

	if !ok {
		t.Fatalf("expected condition to be true")
	}
}

// AssertNil asserts that the value is a nil pointer.
func AssertNil(t testing.TB, a any) {
	t.Helper()

	if a == nil {
		return
	}

	if v := reflect.ValueOf(a); v.Kind() != reflect.Ptr || !v.IsNil() {
		t.Fatalf("expected '%v' to be nil", a)
	}
}

// AssertPanics asserts that f panics with a message containing substr.
func AssertPanics(t testing.TB, substr string, f func()) {
	t.Helper()

	defer func() {
		t.Helper()

		r := recover()
		if r == nil {
			t.Fatalf("expected panic containing %q", substr)
		}

		msg, ok := r.(string)
		if !ok || !strings.Contains(msg, substr) {
			t.Fatalf("expected panic containing %q, got '%v'", substr, r)
		}
	}()

	f()
}
