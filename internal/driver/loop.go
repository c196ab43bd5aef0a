package driver

import (
	"time"

	"emberloom/internal/player"
	"emberloom/internal/pubsub"
)

// RunIteration executes one pass of the driver loop body (the steps that
// don't depend on how a particular transport blocks for input): flush
// each connection's output and prompt if it isn't mid-dialog, process any
// line each connection has ready, send the idle-check topic, and run a server
// tick if due. The actual wait-for-input step is the caller's concern -
// command-paced callers block on a single connection with a timeout,
// timer-paced callers short-poll every connection - since that's the one
// piece that's genuinely transport-specific.
func (c *Context) RunIteration(now time.Time) {
	for _, p := range c.Players() {
		p.Flush()
		if !c.AwaitingDialog(p) {
			p.Conn.WriteInputPrompt()
		}
	}

	for _, p := range c.Players() {
		line, ok := p.NextInput()
		if !ok {
			continue
		}
		p.Touch(now)
		if c.AwaitingDialog(p) {
			c.ResumeDialog(p, line)
			continue
		}
		if err := c.Dispatch(p, line); err != nil {
			c.handleSessionSignal(p, err)
		}
	}

	if c.Bus != nil {
		c.Bus.Topic(pubsub.TopicIdle).Send(now)
	}

	if c.ShouldTick(now) {
		c.RunTick(now)
	}
}

func (c *Context) handleSessionSignal(p *player.Player, err error) {
	switch err.(type) {
	case *SessionExitError:
		p.Tell("Goodbye.")
		c.RemovePlayer(p)
		p.Conn.Destroy()
	case StoryCompletedError:
		p.Tell("-- The story has ended. --")
	}
}

// DrainConnections moves any input a connection has ready into its
// player's queue; callers invoke this after their transport-specific wait
// step returns.
func (c *Context) DrainConnections() {
	for _, p := range c.Players() {
		if !p.Conn.InputAvailable() {
			continue
		}
		for _, line := range p.Conn.PendingInput() {
			p.QueueInput(line)
		}
	}
}

// SweepIdle disconnects any player who has been idle past their timeout.
func (c *Context) SweepIdle(now time.Time) {
	for _, p := range c.Players() {
		if p.IdleFor(now) >= p.IdleTimeoutFor() {
			p.Tell("You have been idle too long and have been disconnected.")
			c.RemovePlayer(p)
			p.Conn.Destroy()
		}
	}
}
