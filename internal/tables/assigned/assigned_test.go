package assigned

import (
	"reflect"
	"testing"
	"unicode"
)

func TestAssigned(t *testing.T) {
	if Assigned(unicode.Version) == nil {
		t.Fatal("missing assigned Unicode points for version:", unicode.Version)
	}
	if Assigned("1.0.0") != nil {
		t.Fatal("expected nil table for unsupported version")
	}
	rt := Assigned(unicode.Version)
	for _, r := range []rune{'a', 'Z', '0', 0x0300, 0x00E9, 0x4E00, 0xE000, 0x1F600} {
		if !unicode.Is(rt, r) {
			t.Errorf("Assigned: missing %U", r)
		}
	}
	for _, r := range []rune{0xD800, 0x0378, 0x10FFFF + 1} {
		if unicode.Is(rt, r) {
			t.Errorf("Assigned: unexpected %U", r)
		}
	}
}

func TestAssignedRunes(t *testing.T) {
	want := func(version string) []rune {
		var a []rune
		visit(Assigned(version), func(r rune) {
			a = append(a, r)
		})
		if len(a) == 0 {
			t.Fatal("invalid Unicode version:", version)
		}
		return a
	}
	version := unicode.Version
	w := want(version)
	a1 := AssignedRunes(version)
	if !reflect.DeepEqual(a1, w) {
		t.Error("AssignedRunes: invalid result") // don't print the massive slices
	}
	a2 := AssignedRunes(version)
	if &a1[0] != &a2[0] {
		t.Fatalf("AssignedRunes: result was not cached: %p == %p",
			&a1[0], &a2[0])
	}
	if AssignedRunes("1.0.0") != nil {
		t.Fatal("AssignedRunes: expected nil for unsupported version")
	}
}
