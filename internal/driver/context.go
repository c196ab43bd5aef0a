// Package driver implements the per-turn event loop: command dispatch,
// the server tick, the async dialog facility, and the idle/limbo sweeps
// that tie the world, scheduler, pubsub bus and accounts store together.
package driver

import (
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"emberloom/internal/clock"
	"emberloom/internal/player"
	"emberloom/internal/pubsub"
	"emberloom/internal/scheduler"
	"emberloom/internal/soul"
	"emberloom/internal/world"
)

// Context bundles everything a command or dialog needs to affect the
// world: the registries, the clock, the bus, and the currently connected
// players.
type Context struct {
	Mode      Mode
	Registry  Registry
	World     *world.Directory
	Clock     *clock.Clock
	Scheduler *scheduler.Scheduler
	Bus       *pubsub.Bus
	Log       *zap.SugaredLogger
	TickTime  time.Duration

	mu          sync.RWMutex
	players     map[string]*player.Player
	abbrevs     map[string]string
	exitDirs    map[string]bool
	dialogs     map[*player.Player]*dialogState
	lastTick    time.Time
}

// NewContext creates an empty driver context ready to accept players.
func NewContext(mode Mode, registry Registry, dir *world.Directory, clk *clock.Clock, sched *scheduler.Scheduler, bus *pubsub.Bus, log *zap.SugaredLogger, tickTime time.Duration) *Context {
	return &Context{
		Mode:      mode,
		Registry:  registry,
		World:     dir,
		Clock:     clk,
		Scheduler: sched,
		Bus:       bus,
		Log:       log,
		TickTime:  tickTime,
		players:   make(map[string]*player.Player),
		abbrevs:   make(map[string]string),
		exitDirs:  make(map[string]bool),
		dialogs:   make(map[*player.Player]*dialogState),
	}
}

// AddPlayer registers a connected player so room broadcasts and name
// lookups can find it.
func (c *Context) AddPlayer(p *player.Player) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.players[strings.ToLower(p.Name)] = p
}

// RemovePlayer unregisters a disconnected player.
func (c *Context) RemovePlayer(p *player.Player) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.players, strings.ToLower(p.Name))
	delete(c.dialogs, p)
}

// PlayerByName looks up a connected player by name, case-insensitively.
func (c *Context) PlayerByName(name string) (*player.Player, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.players[strings.ToLower(name)]
	return p, ok
}

// Players returns every currently connected player.
func (c *Context) Players() []*player.Player {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*player.Player, 0, len(c.players))
	for _, p := range c.players {
		out = append(out, p)
	}
	return out
}

// RegisterAbbreviation maps a short form (e.g. "l") to its full verb
// ("look"), consulted by expandAbbreviation during dispatch.
func (c *Context) RegisterAbbreviation(short, full string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.abbrevs[short] = full
}

func (c *Context) expandAbbreviation(verb string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if full, ok := c.abbrevs[strings.ToLower(verb)]; ok {
		return full
	}
	return verb
}

// RegisterExitDirection marks a word (e.g. "north") as a recognized
// movement direction, used for the unknown-verb hint.
func (c *Context) RegisterExitDirection(dir string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.exitDirs[strings.ToLower(dir)] = true
}

func (c *Context) isExitDirection(word string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.exitDirs[strings.ToLower(word)]
}

// buildSoulContext assembles a soul.Context from the player's current
// location: every living present becomes a candidate name, resolved to
// its typed soul.Entity, exact-name/alias/title priority being the
// location's own Resolve order.
func (c *Context) buildSoulContext(p *player.Player) *soul.Context {
	names := map[string]soul.Entity{}
	living := []string{}
	if p.Location != nil {
		for _, liv := range p.Location.Livings() {
			if liv == p.Living {
				continue
			}
			names[strings.ToLower(liv.Name)] = liv
			for alias := range liv.Aliases {
				if _, exists := names[alias]; !exists {
					names[alias] = liv
				}
			}
			living = append(living, liv.Name)
		}
		for _, it := range p.Location.Items() {
			if _, exists := names[strings.ToLower(it.Name)]; !exists {
				names[strings.ToLower(it.Name)] = it
			}
		}
	}
	for _, it := range p.Living.Inventory() {
		if _, exists := names[strings.ToLower(it.Name)]; !exists {
			names[strings.ToLower(it.Name)] = it
		}
	}
	return &soul.Context{
		Player:      p.Living,
		Names:       names,
		LivingNames: living,
	}
}

// internalError logs the failure with a full stack trace and tells the
// player a generic message followed by the error and the stack trace in a
// monospaced block, matching the "never crash the process on one
// command's panic" recovery policy.
func (c *Context) internalError(p *player.Player, err error) error {
	stack := string(debug.Stack())
	if c.Log != nil {
		c.Log.Errorw("internal error handling command", "player", p.Name, "error", err, "stack", stack)
	}
	p.Tell("Something went wrong internally. The error has been logged.\n<monospaced>" + err.Error() + "\n" + stack + "</monospaced>")
	return nil
}

// RunTick reads the game clock, runs every scheduler deferred that is due,
// sends the tick topic to its subscribers (the heartbeat fan-out), and
// flushes every connected player's output buffer.
func (c *Context) RunTick(now time.Time) {
	gameNow := c.Clock.Now(now)
	if ran, err := c.Scheduler.Due(gameNow); err != nil && c.Log != nil {
		c.Log.Errorw("deferred action failed", "error", err, "ran", ran)
	}
	if err := c.Bus.Topic(pubsub.TopicTick).Send(gameNow); err != nil && c.Log != nil {
		c.Log.Errorw("tick subscriber failed", "error", err)
	}
	for _, p := range c.Players() {
		p.Flush()
	}
	c.lastTick = now
}

// ShouldTick reports whether TickTime has elapsed since the last tick.
func (c *Context) ShouldTick(now time.Time) bool {
	return now.Sub(c.lastTick) >= c.TickTime
}
