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

type fakeRegistry struct {
	commands map[string]CommandFunc
	defs     map[string]Definition
}

func (r *fakeRegistry) Lookup(verb string, p *player.Player) (CommandFunc, Definition, bool) {
	fn, ok := r.commands[verb]
	return fn, r.defs[verb], ok
}

func newTestContext(t *testing.T, registry Registry) (*Context, *world.Directory) {
	t.Helper()
	dir := world.NewDirectory()
	clk := clock.New(time.Now(), 1, time.Now())
	sched := scheduler.New(dir)
	bus := pubsub.New()
	return NewContext(ModeMUD, registry, dir, clk, sched, bus, nil, time.Second), dir
}

func TestDispatchBroadcastsSoulEmoteToActorRoomAndTarget(t *testing.T) {
	ctx, dir := newTestContext(t, &fakeRegistry{commands: map[string]CommandFunc{}, defs: map[string]Definition{}})
	hall := world.NewLocation("hall", "Hall", "")
	dir.AddLocation(hall)

	julie := player.New("julie", "Julie", lang.Gender("f"), connio.NewMemConnection())
	max := player.New("max", "Max", lang.Gender("m"), connio.NewMemConnection())
	bystander := player.New("anna", "Anna", lang.Gender("f"), connio.NewMemConnection())
	world.MoveLiving(julie.Living, hall)
	world.MoveLiving(max.Living, hall)
	world.MoveLiving(bystander.Living, hall)
	ctx.AddPlayer(julie)
	ctx.AddPlayer(max)
	ctx.AddPlayer(bystander)

	if err := ctx.Dispatch(julie, "smile at max"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	julieConn := julie.Conn.(*connio.MemConnection)
	maxConn := max.Conn.(*connio.MemConnection)
	annaConn := bystander.Conn.(*connio.MemConnection)

	julie.Flush()
	max.Flush()
	bystander.Flush()

	if len(julieConn.Outputs) != 1 || julieConn.Outputs[0] != "You smile happily at Max." {
		t.Errorf("actor output = %v", julieConn.Outputs)
	}
	if len(maxConn.Outputs) != 1 || maxConn.Outputs[0] != "Julie smiles happily at you." {
		t.Errorf("target output = %v", maxConn.Outputs)
	}
	if len(annaConn.Outputs) != 1 || annaConn.Outputs[0] != "Julie smiles happily at Max." {
		t.Errorf("bystander output = %v", annaConn.Outputs)
	}
}

func TestDispatchUnknownVerbHintsMovementDirection(t *testing.T) {
	ctx, dir := newTestContext(t, &fakeRegistry{commands: map[string]CommandFunc{}, defs: map[string]Definition{}})
	hall := world.NewLocation("hall", "Hall", "")
	dir.AddLocation(hall)
	ctx.RegisterExitDirection("north")

	julie := player.New("julie", "Julie", lang.Gender("f"), connio.NewMemConnection())
	world.MoveLiving(julie.Living, hall)
	ctx.AddPlayer(julie)

	if err := ctx.Dispatch(julie, "north"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	julie.Flush()
	conn := julie.Conn.(*connio.MemConnection)
	if len(conn.Outputs) != 1 {
		t.Fatalf("got %v", conn.Outputs)
	}
	want := "The verb north is unrecognised. Did you mean to go north?"
	if conn.Outputs[0] != want {
		t.Errorf("got %q, want %q", conn.Outputs[0], want)
	}
}

func TestDispatchActionRefusedIsToldNotInternal(t *testing.T) {
	registry := &fakeRegistry{
		commands: map[string]CommandFunc{
			"open": func(ctx *Context, p *player.Player, rest string) error {
				return &ActionRefusedError{Message: "The door is locked."}
			},
		},
		defs: map[string]Definition{"open": {Verb: "open"}},
	}
	ctx, dir := newTestContext(t, registry)
	hall := world.NewLocation("hall", "Hall", "")
	dir.AddLocation(hall)
	julie := player.New("julie", "Julie", lang.Gender("f"), connio.NewMemConnection())
	world.MoveLiving(julie.Living, hall)
	ctx.AddPlayer(julie)

	if err := ctx.Dispatch(julie, "open door"); err != nil {
		t.Fatalf("ActionRefusedError must not propagate out of Dispatch: %v", err)
	}
	julie.Flush()
	conn := julie.Conn.(*connio.MemConnection)
	if len(conn.Outputs) != 1 || conn.Outputs[0] != "The door is locked." {
		t.Errorf("got %v", conn.Outputs)
	}
}

func TestDispatchSecurityViolationForUnprivilegedCaller(t *testing.T) {
	registry := &fakeRegistry{
		commands: map[string]CommandFunc{
			"shutdown": func(ctx *Context, p *player.Player, rest string) error { return nil },
		},
		defs: map[string]Definition{"shutdown": {Verb: "shutdown", Privilege: "wizard"}},
	}
	ctx, dir := newTestContext(t, registry)
	hall := world.NewLocation("hall", "Hall", "")
	dir.AddLocation(hall)
	julie := player.New("julie", "Julie", lang.Gender("f"), connio.NewMemConnection())
	world.MoveLiving(julie.Living, hall)
	ctx.AddPlayer(julie)

	if err := ctx.Dispatch(julie, "shutdown"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	julie.Flush()
	conn := julie.Conn.(*connio.MemConnection)
	if len(conn.Outputs) != 1 || conn.Outputs[0] != "You don't have the privilege to do that." {
		t.Errorf("got %v", conn.Outputs)
	}
}

func TestDispatchRetryAsSoulFallsBackToEmote(t *testing.T) {
	registry := &fakeRegistry{
		commands: map[string]CommandFunc{
			"smile": func(ctx *Context, p *player.Player, rest string) error { return RetryAsSoul{} },
		},
		defs: map[string]Definition{"smile": {Verb: "smile"}},
	}
	ctx, dir := newTestContext(t, registry)
	hall := world.NewLocation("hall", "Hall", "")
	dir.AddLocation(hall)
	julie := player.New("julie", "Julie", lang.Gender("f"), connio.NewMemConnection())
	world.MoveLiving(julie.Living, hall)
	ctx.AddPlayer(julie)

	if err := ctx.Dispatch(julie, "smile"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	julie.Flush()
	conn := julie.Conn.(*connio.MemConnection)
	if len(conn.Outputs) != 1 || conn.Outputs[0] != "You smile happily." {
		t.Errorf("got %v", conn.Outputs)
	}
}
