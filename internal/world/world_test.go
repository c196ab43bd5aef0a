package world

import (
	"errors"
	"testing"

	"emberloom/internal/lang"
)

func TestResolvePriorityExactBeforeAlias(t *testing.T) {
	loc := NewLocation("hall", "The Hall", "A wide hall.")
	sword := NewItem("sword", "a rusty sword")
	sword.Aliases["blade"] = true
	loc.InsertItem(sword)
	blade := NewItem("blade", "a ceremonial blade")
	loc.InsertItem(blade)

	got, ok := loc.Resolve("blade")
	if !ok {
		t.Fatal("expected a match")
	}
	if got.(*Item) != blade {
		t.Errorf("exact name match should win over alias, got %+v", got)
	}
}

func TestResolveAliasBeforeTitle(t *testing.T) {
	loc := NewLocation("hall", "The Hall", "")
	cat := NewLiving("thehairycat", "the hairy cat", lang.Gender("n"))
	cat.Aliases["hairy"] = true
	MoveLiving(cat, loc)
	dog := NewItem("spotteddog", "hairy")
	loc.InsertItem(dog)

	got, ok := loc.Resolve("hairy")
	if !ok {
		t.Fatal("expected a match")
	}
	if got.(*Living) != cat {
		t.Errorf("alias match should win over title match, got %+v", got)
	}
}

func TestMoveItemAtomicRollbackOnRefusal(t *testing.T) {
	origin := NewLocation("a", "A", "")
	dest := NewLocation("b", "B", "")
	coin := NewItem("coin", "a coin")
	origin.InsertItem(coin)

	refuse := errors.New("too heavy")
	err := MoveItem(coin, dest, func(*Item) error { return refuse })
	if err != refuse {
		t.Fatalf("got %v", err)
	}
	if _, ok := origin.removeItem("coin"); !ok {
		t.Error("item should have been restored to its origin after a refused move")
	}
}

func TestMoveItemSucceedsAcrossContainers(t *testing.T) {
	origin := NewLocation("a", "A", "")
	box := NewContainer("box", "a box")
	origin.InsertItem(box.Item)
	coin := NewItem("coin", "a coin")
	origin.InsertItem(coin)

	if err := MoveItem(coin, box, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := origin.removeItem("coin"); ok {
		t.Error("coin should no longer be in the origin location")
	}
	found := false
	for _, it := range box.Items() {
		if it == coin {
			found = true
		}
	}
	if !found {
		t.Error("coin should now be inside the box")
	}
}

func TestDestroyLocationSendsLivingsToLimbo(t *testing.T) {
	dir := NewDirectory()
	doomed := NewLocation("doomed", "Doomed Room", "")
	dir.AddLocation(doomed)
	liv := NewLiving("max", "Max", lang.Gender("m"))
	MoveLiving(liv, doomed)

	DestroyLocation(dir, doomed)

	if liv.Location != dir.Limbo() {
		t.Errorf("living should have been moved to limbo, got %+v", liv.Location)
	}
	if _, ok := dir.Location("doomed"); ok {
		t.Error("destroyed location should no longer be registered")
	}
}

func TestBindExitsResolvesUnboundTargets(t *testing.T) {
	dir := NewDirectory()
	a := NewLocation("a", "A", "")
	b := NewLocation("b", "B", "")
	dir.AddLocation(a)
	dir.AddLocation(b)
	a.AddExit(&Exit{Direction: "north", TargetRef: "b"})

	if err := dir.BindExits(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	exit, ok := a.Exit("north")
	if !ok || exit.Target != b {
		t.Errorf("exit should now be bound to b, got %+v", exit)
	}
}
