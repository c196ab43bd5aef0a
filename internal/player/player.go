// Package player extends world.Living with everything specific to a
// connected human: the connection, buffered output, queued input, and the
// session bookkeeping the driver loop needs (known locations, brief mode,
// hints, idle timestamp).
package player

import (
	"strings"
	"sync"
	"time"

	"emberloom/internal/connio"
	"emberloom/internal/lang"
	"emberloom/internal/world"
)

// IdleTimeout is how long a normal player may sit idle before being
// disconnected by the driver's idle sweep.
const IdleTimeout = 30 * time.Minute

// WizardIdleTimeout is the longer grace period granted to wizards.
const WizardIdleTimeout = 3 * time.Hour

// Player is a world.Living with a connection attached.
type Player struct {
	*world.Living

	Conn connio.Connection

	mu            sync.Mutex
	outputBuf     []string
	inputQueue    []string
	knownLocs     map[string]bool
	brief         bool
	hintsSeen     map[string]bool
	recap         []string
	lastActivity  time.Time
	maxWaitHours  float64
}

// New creates a player wrapping a fresh Living and bound to conn.
func New(name, title string, gender lang.Gender, conn connio.Connection) *Player {
	return &Player{
		Living:       world.NewLiving(name, title, gender),
		Conn:         conn,
		knownLocs:    make(map[string]bool),
		hintsSeen:    make(map[string]bool),
		lastActivity: time.Time{},
		maxWaitHours: 2,
	}
}

// Tell queues a paragraph of output for the player. Paragraphs are
// buffered until Flush is called, matching the driver's batch-then-flush
// loop iteration.
func (p *Player) Tell(paragraph string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.outputBuf = append(p.outputBuf, paragraph)
}

// Flush hands every buffered paragraph to the connection, joined with a
// blank line, and clears the buffer. A no-op when nothing is buffered.
func (p *Player) Flush() {
	p.mu.Lock()
	if len(p.outputBuf) == 0 {
		p.mu.Unlock()
		return
	}
	text := strings.Join(p.outputBuf, "\n\n")
	p.outputBuf = nil
	p.mu.Unlock()
	p.Conn.Output(text)
	p.Conn.WriteInputPrompt()
}

// QueueInput appends a raw input line to the pending queue (used by the
// driver loop when draining the connection).
func (p *Player) QueueInput(line string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.inputQueue = append(p.inputQueue, line)
}

// NextInput pops the oldest queued input line, if any.
func (p *Player) NextInput() (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.inputQueue) == 0 {
		return "", false
	}
	line := p.inputQueue[0]
	p.inputQueue = p.inputQueue[1:]
	return line, true
}

// MarkLocationKnown records that the player has visited a location by name,
// used to decide whether to print the full description or a short recap.
func (p *Player) MarkLocationKnown(name string) (alreadyKnown bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	name = strings.ToLower(name)
	alreadyKnown = p.knownLocs[name]
	p.knownLocs[name] = true
	return alreadyKnown
}

// Brief reports whether the player has brief-mode room descriptions on.
func (p *Player) Brief() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.brief
}

// SetBrief toggles brief-mode room descriptions.
func (p *Player) SetBrief(on bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.brief = on
}

// SeenHint reports whether the named hint has already been shown, marking
// it seen as a side effect of a true first check.
func (p *Player) SeenHint(name string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.hintsSeen[name] {
		return true
	}
	p.hintsSeen[name] = true
	return false
}

// PushRecap appends a line to the player's recap-on-reconnect buffer,
// capping it to the most recent 20 lines.
func (p *Player) PushRecap(line string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.recap = append(p.recap, line)
	if len(p.recap) > 20 {
		p.recap = p.recap[len(p.recap)-20:]
	}
}

// Recap returns the buffered recap lines.
func (p *Player) Recap() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.recap))
	copy(out, p.recap)
	return out
}

// Touch records activity now, resetting the idle clock.
func (p *Player) Touch(now time.Time) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lastActivity = now
}

// IdleFor reports how long the player has been idle as of now.
func (p *Player) IdleFor(now time.Time) time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.lastActivity.IsZero() {
		return 0
	}
	return now.Sub(p.lastActivity)
}

// IdleTimeoutFor returns the idle timeout that applies to this player,
// wizards getting the longer grace period.
func (p *Player) IdleTimeoutFor() time.Duration {
	if p.HasPrivilege("wizard") {
		return WizardIdleTimeout
	}
	return IdleTimeout
}

// MaxWaitHours is the ceiling the "wait" command enforces for this player.
func (p *Player) MaxWaitHours() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.maxWaitHours
}
