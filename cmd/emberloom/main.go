// Command emberloom is the driver's entrypoint: it loads a story's
// configuration, wires the world/scheduler/pubsub/accounts machinery, and
// serves either a single interactive-fiction session or a multi-user
// telnet server depending on --mode.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"emberloom/internal/accounts"
	"emberloom/internal/charbuilder"
	"emberloom/internal/clock"
	"emberloom/internal/commands"
	"emberloom/internal/connio"
	"emberloom/internal/driver"
	"emberloom/internal/lang"
	"emberloom/internal/player"
	"emberloom/internal/pubsub"
	"emberloom/internal/scheduler"
	"emberloom/internal/story"
	"emberloom/internal/world"
)

const (
	exitOK                 = 0
	exitSaveIncompatible   = 10
)

func main() {
	gamePath := flag.String("game", "story.yaml", "path to the story configuration file")
	mode := flag.String("mode", "if", "session mode: if or mud")
	delayMS := flag.Int("delay", 0, "milliseconds to pause between each server tick (0 uses the story's configured tick time)")
	gui := flag.Bool("gui", false, "run with a graphical front end (unsupported by this driver, reserved for compatibility)")
	web := flag.Bool("web", false, "serve over a websocket front end (unsupported by this driver, reserved for compatibility)")
	verify := flag.Bool("verify", false, "load and validate the story configuration, then exit")
	flag.Parse()

	log, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "emberloom: logger setup failed:", err)
		os.Exit(1)
	}
	defer log.Sync()
	sugar := log.Sugar()

	cfg, err := story.Load(*gamePath)
	if err != nil {
		sugar.Errorw("failed to load story configuration", "path", *gamePath, "error", err)
		os.Exit(exitSaveIncompatible)
	}
	if *verify {
		sugar.Infow("story configuration is valid", "name", cfg.Name, "version", cfg.Version)
		os.Exit(exitOK)
	}
	if *gui || *web {
		sugar.Warnw("the requested front end is not implemented by this driver; falling back to telnet", "gui", *gui, "web", *web)
	}

	driverMode := driver.ModeIF
	if *mode == "mud" {
		driverMode = driver.ModeMUD
	}

	dir := world.NewDirectory()
	tickTime := cfg.ServerTickTime
	if tickTime <= 0 {
		tickTime = time.Second
	}
	if *delayMS > 0 {
		tickTime = time.Duration(*delayMS) * time.Millisecond
	}
	scale := float64(cfg.GametimeToRealtime)
	if scale <= 0 {
		scale = 1
	}
	epoch := cfg.Epoch
	if epoch.IsZero() {
		epoch = time.Now()
	}
	clk := clock.New(epoch, scale, time.Now())
	sched := scheduler.New(dir)
	bus := pubsub.New()
	registry := commands.NewRegistry()

	ctx := driver.NewContext(driverMode, registry, dir, clk, sched, bus, sugar, tickTime)
	for _, dirName := range []string{"north", "south", "east", "west", "up", "down", "northeast", "northwest", "southeast", "southwest", "in", "out"} {
		ctx.RegisterExitDirection(dirName)
	}
	ctx.RegisterAbbreviation("l", "look")
	ctx.RegisterAbbreviation("i", "inventory")
	ctx.RegisterAbbreviation("n", "north")
	ctx.RegisterAbbreviation("s", "south")
	ctx.RegisterAbbreviation("e", "east")
	ctx.RegisterAbbreviation("w", "west")
	ctx.RegisterAbbreviation("u", "up")
	ctx.RegisterAbbreviation("d", "down")

	if err := ctx.StartLimboReaper(time.Now()); err != nil {
		sugar.Fatalw("failed to start limbo reaper", "error", err)
	}

	store, err := accounts.Open("emberloom-accounts.db", sugar)
	if err != nil {
		sugar.Fatalw("failed to open account store", "error", err)
	}
	defer store.Close()

	start, ok := dir.Location(cfg.StartLocationPlayer)
	if !ok {
		start = dir.Limbo()
	}

	builder := &charbuilder.Builder{Store: store, StartRace: cfg.PlayerRace}
	builder.OnComplete = func(p *player.Player, acc *accounts.Account) {
		ctx.RemovePlayer(p)
		gender, _ := lang.ValidateGender(acc.Stats.Gender)
		p.Living.Rename(acc.Name, acc.Name)
		p.Living.SetGender(gender)
		p.Living.Race = acc.Stats.Race
		p.Living.Stats["level"] = acc.Stats.Level
		p.Living.Stats["xp"] = acc.Stats.XP
		p.Living.Stats["hp"] = acc.Stats.HP
		p.Living.Stats["ac"] = acc.Stats.AC
		p.Living.Stats["agi"] = acc.Stats.Agility
		p.Living.Stats["cha"] = acc.Stats.Charisma
		p.Living.Stats["int"] = acc.Stats.Intelligence
		p.Living.Stats["lck"] = acc.Stats.Luck
		p.Living.Stats["spd"] = acc.Stats.Speed
		p.Living.Stats["sta"] = acc.Stats.Stamina
		p.Living.Stats["str"] = acc.Stats.Strength
		p.Living.Stats["wis"] = acc.Stats.Wisdom
		p.Living.Stats["alignment"] = acc.Stats.Alignment
		for priv := range acc.Privileges {
			p.Living.Privileges[priv] = true
		}
		world.MoveLiving(p.Living, start)
		ctx.AddPlayer(p)
		p.Tell("Welcome back, " + acc.Name + ".")
	}

	switch driverMode {
	case driver.ModeIF:
		runStdio(ctx, cfg, builder, sugar)
	default:
		runTelnet(ctx, cfg, builder, sugar)
	}
}

// connectSessionCounter hands out unique placeholder login names so a
// connection can be registered with the driver (and therefore have its
// login dialog's input drained by RunIteration) before the player has
// chosen - or been authenticated under - their real account name.
var connectSessionCounter int64

func beginLogin(ctx *driver.Context, builder *charbuilder.Builder, conn connio.Connection) *player.Player {
	connectSessionCounter++
	placeholder := fmt.Sprintf("connecting-%d", connectSessionCounter)
	p := player.New(placeholder, "", lang.Gender(""), conn)
	ctx.AddPlayer(p)
	builder.Begin(ctx, p)
	return p
}

func runStdio(ctx *driver.Context, cfg *story.Config, builder *charbuilder.Builder, log *zap.SugaredLogger) {
	conn := &stdioConnection{reader: bufio.NewReader(os.Stdin)}
	p := beginLogin(ctx, builder, conn)

	for {
		ctx.RunIteration(time.Now())
		line, ok := conn.blockingReadLine()
		if !ok {
			return
		}
		p.QueueInput(line)
		ctx.RunIteration(time.Now())
		if _, stillConnected := ctx.PlayerByName(p.Name); !stillConnected {
			return
		}
	}
}

func runTelnet(ctx *driver.Context, cfg *story.Config, builder *charbuilder.Builder, log *zap.SugaredLogger) {
	addr := cfg.MudHost + ":" + fmt.Sprint(cfg.MudPort)
	if cfg.MudPort == 0 {
		addr = ":4000"
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatalw("failed to listen", "addr", addr, "error", err)
	}
	log.Infow("listening", "addr", addr)

	go func() {
		ticker := time.NewTicker(ctx.TickTime)
		defer ticker.Stop()
		for range ticker.C {
			ctx.DrainConnections()
			ctx.RunIteration(time.Now())
			ctx.SweepIdle(time.Now())
		}
	}()

	for {
		conn, err := ln.Accept()
		if err != nil {
			log.Warnw("accept failed", "error", err)
			continue
		}
		go func(c net.Conn) {
			tc := connio.NewTelnetConnection(c)
			tc.Output("Welcome to " + cfg.Name + ".")
			beginLogin(ctx, builder, tc)
		}(conn)
	}
}

// stdioConnection adapts the process's standard input/output streams to
// connio.Connection for single-player (--mode if) sessions.
type stdioConnection struct {
	reader *bufio.Reader
	broken bool
	closed bool
}

func (s *stdioConnection) Output(text string)     { fmt.Println(text) }
func (s *stdioConnection) WriteInputPrompt()        { fmt.Print("> ") }
func (s *stdioConnection) PendingInput() []string   { return nil }
func (s *stdioConnection) InputAvailable() bool     { return false }
func (s *stdioConnection) ClearScreen()             { fmt.Print("\x1b[2J\x1b[H") }
func (s *stdioConnection) BreakPressed() bool       { b := s.broken; s.broken = false; return b }
func (s *stdioConnection) Destroy()                 { s.closed = true }

func (s *stdioConnection) blockingReadLine() (string, bool) {
	if s.closed {
		return "", false
	}
	line, err := s.reader.ReadString('\n')
	if err != nil {
		return "", false
	}
	return strings.TrimRight(line, "\r\n"), true
}
