package lang

import "testing"

func TestJoin(t *testing.T) {
	cases := []struct {
		words []string
		want  string
	}{
		{nil, ""},
		{[]string{"philip"}, "philip"},
		{[]string{"philip", "Kate"}, "philip and Kate"},
		{[]string{"philip", "Kate", "the hairy cat"}, "philip, Kate, and the hairy cat"},
	}
	for _, c := range cases {
		if got := Join(c.words, ""); got != c.want {
			t.Errorf("Join(%v) = %q, want %q", c.words, got, c.want)
		}
	}
}

func TestFullstop(t *testing.T) {
	if got := Fullstop("Julie stomps her foot"); got != "Julie stomps her foot." {
		t.Errorf("got %q", got)
	}
	if got := Fullstop("Did you see that?"); got != "Did you see that?" {
		t.Errorf("got %q", got)
	}
}

func TestPossessiveOf(t *testing.T) {
	if got := PossessiveOf("max"); got != "max's" {
		t.Errorf("got %q", got)
	}
	if got := PossessiveOf("Jess"); got != "Jess's" {
		t.Errorf("got %q", got)
	}
}

func TestAdverbByPrefixUnique(t *testing.T) {
	got := AdverbByPrefix("sol")
	if len(got) != 1 || got[0] != "solemnly" {
		t.Errorf("AdverbByPrefix(sol) = %v, want [solemnly]", got)
	}
}

func TestAdverbByPrefixAmbiguous(t *testing.T) {
	got := AdverbByPrefix("an")
	if len(got) != 2 || got[0] != "angrily" || got[1] != "anxiously" {
		t.Errorf("AdverbByPrefix(an) = %v, want [angrily anxiously]", got)
	}
}

func TestAdverbByPrefixContiguousAndSorted(t *testing.T) {
	for i := 1; i < len(AdverbList); i++ {
		if AdverbList[i-1] >= AdverbList[i] {
			t.Fatalf("adverb list not strictly sorted at %d: %q >= %q", i, AdverbList[i-1], AdverbList[i])
		}
	}
}

func TestYesNo(t *testing.T) {
	if v, ok := YesNo("yes"); !ok || !v {
		t.Errorf("YesNo(yes) = %v, %v", v, ok)
	}
	if v, ok := YesNo("nope"); !ok || v {
		t.Errorf("YesNo(nope) = %v, %v", v, ok)
	}
	if _, ok := YesNo("maybe"); ok {
		t.Errorf("YesNo(maybe) should not validate")
	}
}

func TestValidateGender(t *testing.T) {
	if g, ok := ValidateGender("f"); !ok || g != Female {
		t.Errorf("ValidateGender(f) = %v, %v", g, ok)
	}
	if _, ok := ValidateGender("x"); ok {
		t.Errorf("ValidateGender(x) should fail")
	}
}

func TestPluralize(t *testing.T) {
	if got := Pluralize("child", 2); got != "children" {
		t.Errorf("got %q", got)
	}
	if got := Pluralize("box", 2); got != "boxes" {
		t.Errorf("got %q", got)
	}
	if got := Pluralize("cat", 1); got != "cat" {
		t.Errorf("got %q", got)
	}
}
