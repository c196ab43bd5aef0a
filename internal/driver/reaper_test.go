package driver

import (
	"testing"
	"time"

	"emberloom/internal/clock"
	"emberloom/internal/connio"
	"emberloom/internal/lang"
	"emberloom/internal/player"
	"emberloom/internal/pubsub"
	"emberloom/internal/scheduler"
	"emberloom/internal/world"
)

func TestSweepLimboEscalatesWarningsThenEvicts(t *testing.T) {
	dir := world.NewDirectory()
	clk := clock.New(time.Unix(0, 0), 1, time.Unix(0, 0))
	sched := scheduler.New(dir)
	bus := pubsub.New()
	ctx := NewContext(ModeMUD, &fakeRegistry{commands: map[string]CommandFunc{}, defs: map[string]Definition{}}, dir, clk, sched, bus, nil, time.Second)

	max := player.New("max", "Max", lang.Gender("m"), connio.NewMemConnection())
	world.MoveLiving(max.Living, dir.Limbo())
	ctx.AddPlayer(max)

	reaper := newLimboReaper(dir)
	start := time.Unix(0, 0)

	ctx.sweepLimbo(reaper, start)
	max.Flush()
	conn := max.Conn.(*connio.MemConnection)
	if len(conn.Outputs) != 0 {
		t.Fatalf("should not warn immediately on entering limbo, got %v", conn.Outputs)
	}

	ctx.sweepLimbo(reaper, start.Add(31*time.Second))
	max.Flush()
	if len(conn.Outputs) != 1 {
		t.Fatalf("expected first warning at 30s, got %v", conn.Outputs)
	}

	ctx.sweepLimbo(reaper, start.Add(65*time.Second))
	if _, ok := ctx.PlayerByName("max"); ok {
		t.Error("player should have been evicted by 64s of limbo residency")
	}
}

func TestLimboReaperIsAnNPCResidentOfLimbo(t *testing.T) {
	dir := world.NewDirectory()
	reaper := newLimboReaper(dir)

	if reaper.Living.Location != dir.Limbo() {
		t.Fatalf("reaper should start resident in Limbo, got %v", reaper.Living.Location)
	}
	found := false
	for _, liv := range dir.Limbo().Livings() {
		if liv == reaper.Living {
			found = true
		}
	}
	if !found {
		t.Fatal("reaper should appear among Limbo's livings")
	}
}

func TestSweepLimboTeleportsReaperBackIfMoved(t *testing.T) {
	dir := world.NewDirectory()
	clk := clock.New(time.Unix(0, 0), 1, time.Unix(0, 0))
	sched := scheduler.New(dir)
	bus := pubsub.New()
	ctx := NewContext(ModeMUD, &fakeRegistry{commands: map[string]CommandFunc{}, defs: map[string]Definition{}}, dir, clk, sched, bus, nil, time.Second)

	reaper := newLimboReaper(dir)
	elsewhere := world.NewLocation("elsewhere", "Elsewhere", "Not limbo.")
	dir.AddLocation(elsewhere)
	world.MoveLiving(reaper.Living, elsewhere)

	ctx.sweepLimbo(reaper, time.Unix(0, 0))

	if reaper.Living.Location != dir.Limbo() {
		t.Fatalf("reaper should have been teleported back to Limbo, got %v", reaper.Living.Location)
	}
}

func TestSweepLimboNeverEvictsWizards(t *testing.T) {
	dir := world.NewDirectory()
	clk := clock.New(time.Unix(0, 0), 1, time.Unix(0, 0))
	sched := scheduler.New(dir)
	bus := pubsub.New()
	ctx := NewContext(ModeMUD, &fakeRegistry{commands: map[string]CommandFunc{}, defs: map[string]Definition{}}, dir, clk, sched, bus, nil, time.Second)

	gandalf := player.New("gandalf", "Gandalf", lang.Gender("m"), connio.NewMemConnection())
	gandalf.Living.Privileges["wizard"] = true
	world.MoveLiving(gandalf.Living, dir.Limbo())
	ctx.AddPlayer(gandalf)

	reaper := newLimboReaper(dir)
	start := time.Unix(0, 0)
	ctx.sweepLimbo(reaper, start)
	ctx.sweepLimbo(reaper, start.Add(120*time.Second))

	if _, ok := ctx.PlayerByName("gandalf"); !ok {
		t.Error("wizards must never be evicted from limbo")
	}
}
