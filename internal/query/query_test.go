package query

import (
	"testing"
)

type getUsersParams struct {
	IDs    []string `query:"id"`
	Logins []string `query:"login"`
}

func TestEncodeRepeatedKeys(t *testing.T) {
	v, err := Encode(getUsersParams{IDs: []string{"1", "2", "3"}})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got := v["id"]
	want := []string{"1", "2", "3"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("element %d: got %q, want %q", i, got[i], want[i])
		}
	}

	encoded := v.Encode()
	if encoded != "id=1&id=2&id=3" {
		t.Errorf("Encode().Encode() = %q, want %q", encoded, "id=1&id=2&id=3")
	}
}

func TestEncodeOmitsAbsentPointer(t *testing.T) {
	type params struct {
		After *string `query:"after"`
	}
	v, err := Encode(params{})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if v.Has("after") {
		t.Errorf("expected absent pointer field to be omitted, got %v", v)
	}
}

func TestEncodePercentEncoding(t *testing.T) {
	type params struct {
		Query string `query:"query"`
	}
	v, err := Encode(params{Query: "hello world & friends"})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := "query=hello+world+%26+friends"
	if got := v.Encode(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncodeRejectsNestedStruct(t *testing.T) {
	type inner struct{ X int }
	type params struct {
		Inner inner `query:"inner"`
	}
	if _, err := Encode(params{Inner: inner{X: 1}}); err == nil {
		t.Error("expected error for nested struct at scalar position")
	}
}

func TestEncodeRejectsNonStructTopLevel(t *testing.T) {
	if _, err := Encode(42); err == nil {
		t.Error("expected error for primitive top-level value")
	}
}

func TestEncodeTuplesShareFieldName(t *testing.T) {
	type params struct {
		Pair [2]int `query:"pair"`
	}
	v, err := Encode(params{Pair: [2]int{1, 2}})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if got := v.Encode(); got != "pair=1&pair=2" {
		t.Errorf("got %q, want %q", got, "pair=1&pair=2")
	}
}
