package driver

import (
	"fmt"
	"strings"

	"emberloom/internal/player"
	"emberloom/internal/soul"
)

// CommandFunc is a non-soul command's body: it receives the remainder of
// the input line after the verb and may return one of the control-signal
// errors (ActionRefusedError, SecurityViolationError, RetryAsSoul,
// RetryWithCommand, SessionExitError, StoryCompletedError) or a plain
// error (treated as an internal error).
type CommandFunc func(ctx *Context, p *player.Player, rest string) error

// Definition is the metadata the dispatcher needs about a registered
// command, independent of its implementation.
type Definition struct {
	Verb               string
	Privilege          string // "" means any player may use it
	EnableNotifyAction bool
	DisabledInMode     string // "if" or "mud", "" means never disabled
	OverridesSoul      bool // shadows a soul verb of the same name
	NoSoulParse        bool // skip the soul parser, invoke with the raw remainder
}

// Registry looks up commands by verb. Dispatch expands abbreviations
// before the lookup and checks Definition.Privilege after it.
type Registry interface {
	Lookup(verb string, p *player.Player) (CommandFunc, Definition, bool)
}

// Mode distinguishes single-player ("if") from multi-user ("mud") story
// configuration, since some commands are disabled in one or the other.
type Mode string

const (
	ModeIF  Mode = "if"
	ModeMUD Mode = "mud"
)

// Dispatch implements the per-command-line dispatch sequence: abbreviation
// expansion, registry lookup (custom verbs take priority over soul
// emotes), no-soul-parse bypass, soul-emote broadcast, and control-signal
// recovery for non-soul commands.
func (c *Context) Dispatch(p *player.Player, line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	verb, rest := splitVerb(line)
	verb = c.expandAbbreviation(verb)

	if fn, def, ok := c.Registry.Lookup(verb, p); ok {
		if def.DisabledInMode != "" && string(c.Mode) == def.DisabledInMode {
			p.Tell("You can't do that here.")
			return nil
		}
		if def.Privilege != "" && !p.HasPrivilege(def.Privilege) {
			p.Tell("You don't have the privilege to do that.")
			return nil
		}
		return c.runCommand(p, fn, rest, line)
	}

	return c.socialize(p, line)
}

func (c *Context) runCommand(p *player.Player, fn CommandFunc, rest, originalLine string) (result error) {
	defer func() {
		if r := recover(); r != nil {
			result = c.internalError(p, fmt.Errorf("panic: %v", r))
		}
	}()
	err := fn(c, p, rest)
	switch e := err.(type) {
	case nil:
		return nil
	case RetryAsSoul:
		return c.socialize(p, originalLine)
	case RetryWithCommand:
		return c.Dispatch(p, e.Command)
	case *ActionRefusedError:
		p.Tell(e.Message)
		return nil
	case *SecurityViolationError:
		p.Tell(e.Message)
		return nil
	case *SessionExitError:
		return err
	case StoryCompletedError:
		return err
	default:
		return c.internalError(p, err)
	}
}

// socialize parses line through the soul engine and broadcasts the
// resulting three viewpoint messages: actor → player, room → location
// (excluding targets and the actor), target → each addressed entity.
func (c *Context) socialize(p *player.Player, line string) error {
	soulCtx := c.buildSoulContext(p)
	verb, rendered, err := soul.ProcessVerb(soulCtx, p.Living, line)
	_ = verb
	if err != nil {
		switch err.(type) {
		case *soul.UnknownVerbError:
			p.Tell(unknownVerbMessage(err, c))
			return nil
		case *soul.ParseError:
			p.Tell(err.Error())
			return nil
		default:
			return c.internalError(p, err)
		}
	}
	if rendered.ActorMsg != "" {
		p.Tell(rendered.ActorMsg)
	}
	if p.Location != nil && rendered.RoomMsg != "" {
		for _, other := range p.Location.Livings() {
			if other == p.Living {
				continue
			}
			if livingIsTarget(other, rendered.Targets) {
				continue
			}
			if target, ok := c.PlayerByName(other.Name); ok {
				target.Tell(rendered.RoomMsg)
			}
		}
	}
	if rendered.TargetMsg != "" {
		for _, t := range rendered.Targets {
			name, ok := entityLivingName(t)
			if !ok {
				continue
			}
			if target, ok := c.PlayerByName(name); ok {
				target.Tell(rendered.TargetMsg)
			}
		}
	}
	return nil
}

func livingIsTarget(other any, targets []soul.Entity) bool {
	for _, t := range targets {
		if t == any(other) {
			return true
		}
	}
	return false
}

func entityLivingName(e soul.Entity) (string, bool) {
	named, ok := e.(interface{ EntityName() string })
	if !ok {
		return "", false
	}
	return named.EntityName(), true
}

func unknownVerbMessage(err error, c *Context) string {
	uv, ok := err.(*soul.UnknownVerbError)
	if !ok {
		return err.Error()
	}
	msg := "The verb " + uv.Verb + " is unrecognised."
	if c.isExitDirection(uv.Verb) {
		msg += " Did you mean to go " + uv.Verb + "?"
	}
	return msg
}

func splitVerb(line string) (verb, rest string) {
	parts := strings.SplitN(line, " ", 2)
	verb = parts[0]
	if len(parts) > 1 {
		rest = parts[1]
	}
	return
}
