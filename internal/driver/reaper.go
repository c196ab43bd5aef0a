package driver

import (
	"time"

	"emberloom/internal/lang"
	"emberloom/internal/scheduler"
	"emberloom/internal/world"
)

// reaperName is the limbo reaper's own living name; never a valid account
// name (accounts.AcceptName only accepts [a-z]{3,16}), so it can never
// collide with a player.
const reaperName = "the-reaper"

// ReaperOwnerID is the scheduler owner id the limbo reaper's periodic
// deferred is registered under.
const ReaperOwnerID = "driver:limbo-reaper"

// ReaperInterval is the reaper's real-time polling cadence.
const ReaperInterval = 3 * time.Second

var reaperWarnAt = []time.Duration{
	30 * time.Second,
	50 * time.Second,
	60 * time.Second,
	63 * time.Second,
}

const reaperEvictAt = 64 * time.Second

type limboResident struct {
	firstSeen time.Time
	warned    int
}

// limboReaper tracks how long each non-wizard living has resided in Limbo,
// escalating warnings before disconnecting them. It is itself an NPC
// resident of Limbo (spec.md §4.8): Living is a real world.Living placed
// there at startup, and every sweep checks it hasn't wandered off.
type limboReaper struct {
	dir       *world.Directory
	Living    *world.Living
	residents map[string]*limboResident
}

func newLimboReaper(dir *world.Directory) *limboReaper {
	living := world.NewLiving(reaperName, "a pale reaper", lang.Gender("n"))
	living.Soul = false
	dir.AddLiving(living)
	world.MoveLiving(living, dir.Limbo())
	return &limboReaper{dir: dir, Living: living, residents: make(map[string]*limboResident)}
}

// StartLimboReaper registers the reaper as a periodic deferred on c's
// scheduler, keyed under ReaperOwnerID so the scheduler directory can
// resolve it every sweep. The scheduler's directory must resolve
// ReaperOwnerID to a non-nil value for the periodic deferred to keep
// rescheduling itself; the reaper itself is registered as that owner.
// The deferred's period is ReaperInterval of real time, converted to game
// time for the scheduler; each sweep measures residency in wall-clock time.
func (c *Context) StartLimboReaper(now time.Time) error {
	reaper := newLimboReaper(c.World)
	c.World.AddSingleton(ReaperOwnerID, reaper)
	c.Scheduler.RegisterMethod("limbo-reaper-sweep", func(owner any, args []any) error {
		c.sweepLimbo(reaper, time.Now())
		return nil
	})
	period := c.Clock.ToGameDuration(ReaperInterval)
	return c.Scheduler.SchedulePeriodic(c.Clock.Now(now).Add(period), period,
		scheduler.Action{OwnerID: ReaperOwnerID, Method: "limbo-reaper-sweep"})
}

func (c *Context) sweepLimbo(reaper *limboReaper, now time.Time) {
	limbo := c.World.Limbo()
	if reaper.Living.Location != limbo {
		world.MoveLiving(reaper.Living, limbo)
	}
	seen := map[string]bool{}
	for _, liv := range limbo.Livings() {
		seen[liv.Name] = true
		res, ok := reaper.residents[liv.Name]
		if !ok {
			res = &limboResident{firstSeen: now}
			reaper.residents[liv.Name] = res
		}
		p, isPlayer := c.PlayerByName(liv.Name)
		if !isPlayer {
			continue
		}
		if liv.HasPrivilege("wizard") {
			if res.warned == 0 {
				p.Tell("You notice you are standing in Limbo. You'll want to leave.")
				res.warned = 1
			}
			continue
		}
		elapsed := now.Sub(res.firstSeen)
		for i, threshold := range reaperWarnAt {
			if elapsed >= threshold && res.warned <= i {
				p.Tell("The void presses in around you. Find your way out of Limbo.")
				res.warned = i + 1
			}
		}
		if elapsed >= reaperEvictAt {
			p.Tell("The void claims you. You have been disconnected.")
			c.RemovePlayer(p)
			p.Conn.Destroy()
			delete(reaper.residents, liv.Name)
		}
	}
	for name := range reaper.residents {
		if !seen[name] {
			delete(reaper.residents, name)
		}
	}
}
