package soul

import (
	"testing"

	"emberloom/internal/lang"
)

// These mirror the worked examples that narration output must reproduce
// exactly, byte for byte.

func TestScenarioGenderDependentStomp(t *testing.T) {
	for _, tc := range []struct {
		gender lang.Gender
		room   string
	}{
		{"m", "Julie stomps his foot."},
		{"f", "Julie stomps her foot."},
		{"n", "Julie stomps its foot."},
	} {
		actor := &testPerson{name: "julie", title: "Julie", gender: tc.gender}
		r, err := ProcessVerbParsed(actor, "stomp", nil, "", "", "", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.RoomMsg != tc.room {
			t.Errorf("gender %s: room msg = %q, want %q", tc.gender, r.RoomMsg, tc.room)
		}
	}
}

func TestScenarioYellAngrilyAtMax(t *testing.T) {
	julie := &testPerson{name: "julie", title: "Julie", gender: "f"}
	max := &testPerson{name: "max", title: "max", gender: "m"}
	r, err := ProcessVerbParsed(julie, "yell", []Entity{max}, "angrily", "why", "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.ActorMsg != "You yell 'why' angrily at max." {
		t.Errorf("actor msg = %q", r.ActorMsg)
	}
	if r.RoomMsg != "Julie yells 'why' angrily at max." {
		t.Errorf("room msg = %q", r.RoomMsg)
	}
	if r.TargetMsg != "Julie yells 'why' angrily at you." {
		t.Errorf("target msg = %q", r.TargetMsg)
	}
}

func TestScenarioSmileConfusedlyAtEveryone(t *testing.T) {
	julie := &testPerson{name: "julie", title: "Julie", gender: "f"}
	philip := &testPerson{name: "philip", title: "philip", gender: "m"}
	kate := &testPerson{name: "kate", title: "Kate", gender: "f"}
	cat := &testPerson{name: "thehairycat", title: "the hairy cat", gender: "n"}
	r, err := ProcessVerbParsed(julie, "smile", []Entity{philip, kate, cat}, "confusedly", "", "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.TargetMsg != "Julie smiles confusedly at you." {
		t.Errorf("target msg = %q", r.TargetMsg)
	}
	wantRoom := "Julie smiles confusedly at philip, Kate, and the hairy cat."
	if r.RoomMsg != wantRoom {
		t.Errorf("room msg = %q, want %q", r.RoomMsg, wantRoom)
	}
	for _, target := range r.Targets {
		if target == Entity(julie) {
			t.Errorf("actor must never appear as its own target")
		}
	}
}

func TestScenarioFailTickleMax(t *testing.T) {
	julie := &testPerson{name: "julie", title: "Julie", gender: "f"}
	max := &testPerson{name: "max", title: "max", gender: "m"}
	r, err := ProcessVerbParsed(julie, "tickle", []Entity{max}, "", "", "", "fail")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.ActorMsg != "You try to tickle max, but fail miserably." {
		t.Errorf("actor msg = %q", r.ActorMsg)
	}
	if r.RoomMsg != "Julie tries to tickle max, but fails miserably." {
		t.Errorf("room msg = %q", r.RoomMsg)
	}
	if r.TargetMsg != "Julie tries to tickle you, but fails miserably." {
		t.Errorf("target msg = %q", r.TargetMsg)
	}
}
