package soul

import "testing"

func juliePlayer() *testPerson {
	return &testPerson{name: "julie", title: "Julie", gender: "f"}
}

func TestParseUnknownVerb(t *testing.T) {
	ctx := &Context{Player: juliePlayer(), Names: map[string]Entity{}}
	_, err := Parse(ctx, "frobnicate the widget")
	if _, ok := err.(*UnknownVerbError); !ok {
		t.Fatalf("want UnknownVerbError, got %v (%T)", err, err)
	}
}

func TestParseAmbiguousPronoun(t *testing.T) {
	ctx := &Context{Player: juliePlayer(), Names: map[string]Entity{}}
	_, err := Parse(ctx, "kick him")
	pe, ok := err.(*ParseError)
	if !ok || pe.Message != "It is not clear who you mean." {
		t.Fatalf("got %v", err)
	}
}

func TestParseAdverbPrefixAmbiguous(t *testing.T) {
	ctx := &Context{Player: juliePlayer(), Names: map[string]Entity{}}
	_, err := Parse(ctx, "smile an")
	pe, ok := err.(*ParseError)
	if !ok || pe.Message != "What adverb did you mean: angrily or anxiously?" {
		t.Fatalf("got %v", err)
	}
}

func TestParseAdverbPrefixUnique(t *testing.T) {
	ctx := &Context{Player: juliePlayer(), Names: map[string]Entity{}}
	result, err := Parse(ctx, "smile sol")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Adverb != "solemnly" {
		t.Fatalf("got adverb %q", result.Adverb)
	}
}

func TestParseExceptInversion(t *testing.T) {
	max := &testPerson{name: "max", title: "Max", gender: "m"}
	anna := &testPerson{name: "anna", title: "Anna", gender: "f"}
	ctx := &Context{
		Player:      juliePlayer(),
		Names:       namesOf(max, anna),
		LivingNames: []string{"max", "anna"},
	}
	result, err := Parse(ctx, "smile at everyone except max")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.WhoOrder) != 1 || result.WhoOrder[0] != Entity(anna) {
		t.Fatalf("got who = %v", result.WhoOrder)
	}
}

func TestParseQuotedMessageExtraction(t *testing.T) {
	max := &testPerson{name: "max", title: "Max", gender: "m"}
	ctx := &Context{Player: juliePlayer(), Names: namesOf(max)}
	result, err := Parse(ctx, "yell 'ouch' at max")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Message != "ouch" {
		t.Fatalf("got message %q", result.Message)
	}
	if len(result.WhoOrder) != 1 || result.WhoOrder[0] != Entity(max) {
		t.Fatalf("got who = %v", result.WhoOrder)
	}
}

func TestParseBodypartConflict(t *testing.T) {
	max := &testPerson{name: "max", title: "Max", gender: "m"}
	ctx := &Context{Player: juliePlayer(), Names: namesOf(max)}
	_, err := Parse(ctx, "kick max nose foot")
	pe, ok := err.(*ParseError)
	if !ok || pe.Message != "You can't do that both on the nose and on the foot." {
		t.Fatalf("got %v", err)
	}
}

func TestParseEveryoneEmptyRoom(t *testing.T) {
	ctx := &Context{Player: juliePlayer(), Names: map[string]Entity{}}
	_, err := Parse(ctx, "smile at everyone")
	pe, ok := err.(*ParseError)
	if !ok || pe.Message != "There is nobody here." {
		t.Fatalf("got %v", err)
	}
}

func TestParseEverythingRejected(t *testing.T) {
	ctx := &Context{Player: juliePlayer(), Names: map[string]Entity{}}
	_, err := Parse(ctx, "kick everything")
	pe, ok := err.(*ParseError)
	if !ok || pe.Message != "You can't do something to everything around you, be more specific." {
		t.Fatalf("got %v", err)
	}
}

func TestParseMultiWordName(t *testing.T) {
	cat := &testItem{name: "hairy cat", title: "a hairy cat"}
	names := map[string]Entity{"hairy cat": cat}
	ctx := &Context{Player: juliePlayer(), Names: names}
	result, err := Parse(ctx, "pet the hairy cat")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.WhoOrder) != 1 || result.WhoOrder[0] != Entity(cat) {
		t.Fatalf("got who = %v", result.WhoOrder)
	}
}

func TestParseMultiWordNameLongestMatchWins(t *testing.T) {
	bird := &testItem{name: "bird", title: "a bird"}
	brownBird := &testItem{name: "brown bird", title: "a brown bird"}
	names := map[string]Entity{"bird": bird, "brown bird": brownBird}
	ctx := &Context{Player: juliePlayer(), Names: names}
	result, err := Parse(ctx, "pet brown bird")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.WhoOrder) != 1 || result.WhoOrder[0] != Entity(brownBird) {
		t.Fatalf("got who = %v, want the longer brown bird match", result.WhoOrder)
	}
}
