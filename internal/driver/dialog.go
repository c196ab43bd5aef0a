package driver

import (
	"emberloom/internal/player"
)

// DialogMode selects how a suspended dialog's response is handled: echoed
// normally, or silently (e.g. a password prompt).
type DialogMode int

const (
	DialogInput DialogMode = iota
	DialogInputNoEcho
)

// Validator checks a dialog response before it is handed to Resume. On
// failure it returns an error whose message is shown to the player, who is
// then re-prompted for the same step.
type Validator func(response string) error

// Step is what a dialog yields: the prompt to show and, optionally, a
// validator for the next response.
type Step struct {
	Mode      DialogMode
	Prompt    string
	Validate  Validator
}

// Continuation is the next stage of a dialog: given the (validated)
// response, it either returns another Step to wait on, or finishes.
type Continuation func(response string) (next *Step, done bool, err error)

type dialogState struct {
	step Step
	cont Continuation
}

// BeginDialog suspends p awaiting a response to the first step, keyed by
// connection as the async-dialog facility requires (looked up by player
// here, since a Player is one-to-one with its connection).
func (c *Context) BeginDialog(p *player.Player, step Step, cont Continuation) {
	c.mu.Lock()
	c.dialogs[p] = &dialogState{step: step, cont: cont}
	c.mu.Unlock()
	p.Tell(step.Prompt)
}

// AwaitingDialog reports whether p has a suspended dialog waiting for
// direct input (as opposed to a normal command line).
func (c *Context) AwaitingDialog(p *player.Player) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.dialogs[p]
	return ok
}

// ResumeDialog validates response against the current step, re-prompting
// on failure, or advances to the next step/finishes on success.
func (c *Context) ResumeDialog(p *player.Player, response string) error {
	c.mu.Lock()
	state, ok := c.dialogs[p]
	c.mu.Unlock()
	if !ok {
		return nil
	}
	if state.step.Validate != nil {
		if err := state.step.Validate(response); err != nil {
			p.Tell(err.Error())
			p.Tell(state.step.Prompt)
			return nil
		}
	}
	next, done, err := state.cont(response)
	if err != nil {
		c.mu.Lock()
		delete(c.dialogs, p)
		c.mu.Unlock()
		return c.internalError(p, err)
	}
	if done {
		c.mu.Lock()
		delete(c.dialogs, p)
		c.mu.Unlock()
		return nil
	}
	c.mu.Lock()
	c.dialogs[p] = &dialogState{step: *next, cont: state.cont}
	c.mu.Unlock()
	p.Tell(next.Prompt)
	return nil
}
