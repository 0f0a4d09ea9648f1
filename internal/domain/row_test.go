package domain

import (
	"errors"
	"os"
	"reflect"
	"testing"
)

func TestRowKeepsInsertionOrder(t *testing.T) {
	r := NewRow(3)
	r.Set("zeta", "1")
	r.Set("alpha", "2")
	r.Set("mid", "3")
	r.Set("zeta", "4")

	if got, want := r.Keys(), []string{"zeta", "alpha", "mid"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("keys = %v, want %v", got, want)
	}
	if got, want := r.Values(), []string{"4", "2", "3"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("values = %v, want %v", got, want)
	}
	if v, ok := r.Get("alpha"); !ok || v != "2" {
		t.Fatalf("Get(alpha) = %q, %v", v, ok)
	}
	if _, ok := r.Get("missing"); ok {
		t.Fatal("expected missing key")
	}
}

func TestZeroRowSet(t *testing.T) {
	var r Row
	r.Set("a", "x")
	if r.Len() != 1 {
		t.Fatalf("expected one key, got %d", r.Len())
	}
}

func TestTableRecordsFillsMissingKeys(t *testing.T) {
	a := NewRow(2)
	a.Set("first", "Ann")
	a.Set("age", "30")
	b := NewRow(1)
	b.Set("first", "Bob")

	table := Table{a, b}
	header := table.Header()
	if !reflect.DeepEqual(header, []string{"first", "age"}) {
		t.Fatalf("unexpected header %v", header)
	}
	got := table.Records(header)
	want := [][]string{{"Ann", "30"}, {"Bob", ""}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("records = %v, want %v", got, want)
	}
	if (Table{}).Header() != nil {
		t.Fatal("expected nil header for empty table")
	}
}

func TestParseGeneratorKind(t *testing.T) {
	for _, k := range AllGeneratorKinds() {
		got, ok := ParseGeneratorKind(string(k))
		if !ok || got != k {
			t.Fatalf("ParseGeneratorKind(%q) = %q, %v", k, got, ok)
		}
	}
	for _, s := range []string{"", "firstname", "Phone", "Number "} {
		if _, ok := ParseGeneratorKind(s); ok {
			t.Fatalf("expected %q to be rejected", s)
		}
	}
	if len(AllGeneratorKinds()) != 11 {
		t.Fatalf("expected 11 kinds, got %d", len(AllGeneratorKinds()))
	}
}

func TestErrorsMatchSentinels(t *testing.T) {
	cases := []struct {
		err  error
		want error
	}{
		{&MalformedColumnTokenError{Token: "bad"}, ErrMalformedColumnToken},
		{&UnsupportedGeneratorKindError{Kind: "X"}, ErrUnsupportedGeneratorKind},
		{&DuplicateColumnError{Name: "a"}, ErrDuplicateColumn},
		{&IOError{Op: "write", Path: "/x", Err: os.ErrPermission}, ErrIO},
	}
	for _, c := range cases {
		if !errors.Is(c.err, c.want) {
			t.Fatalf("%v does not match %v", c.err, c.want)
		}
	}
	ioErr := &IOError{Op: "write", Path: "/x", Err: os.ErrPermission}
	if !errors.Is(ioErr, os.ErrPermission) {
		t.Fatal("expected IOError to unwrap to its cause")
	}
}
