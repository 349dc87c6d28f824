package ledger

import (
	"reflect"
	"testing"
)

func TestMetadataInsertionOrder(t *testing.T) {
	var m Metadata
	m.Set("zebra", "1")
	m.Set("alpha", "2")
	m.Set("mike", "3")

	want := []string{"zebra", "alpha", "mike"}
	if got := m.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}

func TestMetadataSetKeepsPosition(t *testing.T) {
	var m Metadata
	m.Set("first", "1")
	m.Set("second", "2")
	m.Set("first", "updated")

	want := []string{"first", "second"}
	if got := m.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() after update = %v, want %v", got, want)
	}

	if v, ok := m.Get("first"); !ok || v != "updated" {
		t.Errorf("Get(first) = %q, %v; want %q, true", v, ok, "updated")
	}
	if m.Len() != 2 {
		t.Errorf("Len() = %d, want 2", m.Len())
	}
}

func TestMetadataZeroValue(t *testing.T) {
	var m Metadata

	if m.Len() != 0 {
		t.Errorf("zero value Len() = %d, want 0", m.Len())
	}
	if keys := m.Keys(); keys != nil {
		t.Errorf("zero value Keys() = %v, want nil", keys)
	}
	if _, ok := m.Get("missing"); ok {
		t.Error("zero value Get(missing) reported a value")
	}
}
