package ids

import (
	"encoding/json"
	"testing"
)

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	type wrapper struct {
		Broadcaster BroadcasterID `json:"broadcaster_id"`
		User        UserID        `json:"user_id"`
		Cursor      Cursor        `json:"cursor"`
	}

	in := wrapper{Broadcaster: "123", User: "456", Cursor: "eyJvZmZzZXQ="}

	b, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var out wrapper
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if out != in {
		t.Errorf("round trip mismatch: got %+v, want %+v", out, in)
	}
}

func TestEmpty(t *testing.T) {
	tests := []struct {
		name string
		id   UserID
		want bool
	}{
		{"empty", "", true},
		{"nonempty", "123", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Empty(tt.id); got != tt.want {
				t.Errorf("Empty(%q) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}

func TestDistinctTypesDoNotUnify(t *testing.T) {
	// This test exists to document intent: UserID and BroadcasterID are
	// distinct named types. The following would fail to compile if
	// uncommented, which is the entire point of this package:
	//   var u UserID = BroadcasterID("x")
	var u UserID = UserID(BroadcasterID("x"))
	if u != "x" {
		t.Errorf("expected explicit conversion to still work, got %q", u)
	}
}
