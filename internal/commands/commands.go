// Package commands implements the driver's built-in verbs: movement,
// inspection, inventory manipulation, and session control. Each is a
// driver.CommandFunc registered under a driver.Definition describing its
// privilege and mode constraints.
package commands

import (
	"fmt"
	"sort"
	"strings"

	"emberloom/internal/driver"
	"emberloom/internal/player"
	"emberloom/internal/soul"
	"emberloom/internal/world"
)

type entry struct {
	fn  driver.CommandFunc
	def driver.Definition
}

// Registry is the built-in command table, plus whatever a story module
// registers on top of it via Define.
type Registry struct {
	commands map[string]entry
}

// NewRegistry builds the registry with every built-in verb defined.
func NewRegistry() *Registry {
	r := &Registry{commands: make(map[string]entry)}
	r.defineBuiltins()
	return r
}

// Define registers or overrides a verb.
func (r *Registry) Define(def driver.Definition, fn driver.CommandFunc) {
	r.commands[def.Verb] = entry{fn: fn, def: def}
}

// Lookup implements driver.Registry.
func (r *Registry) Lookup(verb string, p *player.Player) (driver.CommandFunc, driver.Definition, bool) {
	e, ok := r.commands[strings.ToLower(verb)]
	if !ok {
		return nil, driver.Definition{}, false
	}
	return e.fn, e.def, true
}

var directions = []string{"north", "south", "east", "west", "up", "down", "northeast", "northwest", "southeast", "southwest", "in", "out"}

func (r *Registry) defineBuiltins() {
	r.Define(driver.Definition{Verb: "look"}, cmdLook)
	r.Define(driver.Definition{Verb: "l", OverridesSoul: true}, cmdLook)
	r.Define(driver.Definition{Verb: "examine", NoSoulParse: true, OverridesSoul: true}, cmdExamine)
	r.Define(driver.Definition{Verb: "search", NoSoulParse: true, OverridesSoul: true}, cmdExamine)
	r.Define(driver.Definition{Verb: "inventory"}, cmdInventory)
	r.Define(driver.Definition{Verb: "i", OverridesSoul: true}, cmdInventory)
	r.Define(driver.Definition{Verb: "get", NoSoulParse: true}, cmdGet)
	r.Define(driver.Definition{Verb: "take", NoSoulParse: true}, cmdGet)
	r.Define(driver.Definition{Verb: "drop", NoSoulParse: true}, cmdDrop)
	r.Define(driver.Definition{Verb: "say", NoSoulParse: true}, cmdSay)
	r.Define(driver.Definition{Verb: "tell", NoSoulParse: true}, cmdTell)
	r.Define(driver.Definition{Verb: "who"}, cmdWho)
	r.Define(driver.Definition{Verb: "quit"}, cmdQuit)
	r.Define(driver.Definition{Verb: "brief", NoSoulParse: true}, cmdBrief)
	for _, dir := range directions {
		dir := dir
		r.Define(driver.Definition{Verb: dir, OverridesSoul: true}, movementCommand(dir))
	}
	r.Define(driver.Definition{Verb: "go", NoSoulParse: true}, cmdGo)

	// soul.MovementVerbs marks verbs that read as movement ("enter the
	// cellar", "climb the ladder") rather than social narration; "go"
	// already has its own entry above and "move" stays a pure soul emote
	// (matching its verb table entry), so only the remaining
	// exit-traversal verbs are registered here, all sharing cmdGo's
	// "rest names the exit" behaviour.
	for verb := range soul.MovementVerbs {
		if verb == "go" || verb == "move" {
			continue
		}
		r.Define(driver.Definition{Verb: verb, NoSoulParse: true}, cmdGo)
	}
}

func movementCommand(direction string) driver.CommandFunc {
	return func(ctx *driver.Context, p *player.Player, rest string) error {
		return move(ctx, p, direction)
	}
}

func cmdGo(ctx *driver.Context, p *player.Player, rest string) error {
	dir := strings.ToLower(strings.TrimSpace(rest))
	if dir == "" {
		return &driver.ActionRefusedError{Message: "Go where?"}
	}
	return move(ctx, p, dir)
}

func move(ctx *driver.Context, p *player.Player, direction string) error {
	if p.Location == nil {
		return &driver.ActionRefusedError{Message: "You are nowhere."}
	}
	exit, ok := p.Location.Exit(direction)
	if !ok {
		return &driver.ActionRefusedError{Message: "You can't go that way."}
	}
	if !exit.Bound() {
		return &driver.ActionRefusedError{Message: "That way leads nowhere yet."}
	}
	if exit.Door != nil && !exit.Door.Open {
		return &driver.ActionRefusedError{Message: "The door is closed."}
	}
	world.MoveLiving(p.Living, exit.Target)
	p.Tell("You go " + direction + ".")
	return cmdLook(ctx, p, "")
}

func cmdLook(ctx *driver.Context, p *player.Player, rest string) error {
	if p.Location == nil {
		p.Tell("You are floating in featureless void.")
		return nil
	}
	loc := p.Location
	known := p.MarkLocationKnown(loc.Name)
	var b strings.Builder
	b.WriteString(loc.Title)
	if !known || !p.Brief() {
		b.WriteString("\n")
		b.WriteString(loc.Description)
	}
	exits := loc.Exits()
	if len(exits) > 0 {
		names := make([]string, 0, len(exits))
		for name := range exits {
			names = append(names, name)
		}
		sort.Strings(names)
		b.WriteString("\nExits: " + strings.Join(names, ", "))
	}
	var others []string
	for _, liv := range loc.Livings() {
		if liv == p.Living {
			continue
		}
		others = append(others, liv.Title)
	}
	if len(others) > 0 {
		sort.Strings(others)
		b.WriteString("\nYou see: " + strings.Join(others, ", "))
	}
	var items []string
	for _, it := range loc.Items() {
		items = append(items, it.Title)
	}
	if len(items) > 0 {
		sort.Strings(items)
		b.WriteString("\nItems here: " + strings.Join(items, ", "))
	}
	p.Tell(b.String())
	return nil
}

// cmdExamine backs both "examine" and "search": a location's items and a
// room's own description are the same underlying lookup, so rather than
// keep two parallel item-finding paths this single command answers both
// "examine X" and "search" (with no argument, describing the room again).
func cmdExamine(ctx *driver.Context, p *player.Player, rest string) error {
	name := strings.ToLower(strings.TrimSpace(rest))
	if name == "" {
		return cmdLook(ctx, p, "")
	}
	if p.Location == nil {
		return &driver.ActionRefusedError{Message: "There is nothing here to examine."}
	}
	found, ok := p.Location.Resolve(name)
	if !ok {
		for _, it := range p.Inventory() {
			if strings.ToLower(it.Name) == name || strings.ToLower(it.Title) == name {
				found, ok = it, true
				break
			}
		}
	}
	if !ok {
		return &driver.ActionRefusedError{Message: "You don't see that here."}
	}
	switch v := found.(type) {
	case *world.Item:
		if v.Description != "" {
			p.Tell(v.Description)
		} else {
			p.Tell("You see nothing special about " + v.Title + ".")
		}
	case *world.Living:
		p.Tell("You see " + v.Title + ".")
	}
	return nil
}

func cmdInventory(ctx *driver.Context, p *player.Player, rest string) error {
	items := p.Inventory()
	if len(items) == 0 {
		p.Tell("You are carrying nothing.")
		return nil
	}
	names := make([]string, len(items))
	for i, it := range items {
		names[i] = it.Title
	}
	sort.Strings(names)
	p.Tell("You are carrying: " + strings.Join(names, ", "))
	return nil
}

func cmdGet(ctx *driver.Context, p *player.Player, rest string) error {
	name := strings.ToLower(strings.TrimSpace(rest))
	if name == "" {
		return &driver.ActionRefusedError{Message: "Get what?"}
	}
	if p.Location == nil {
		return &driver.ActionRefusedError{Message: "There is nothing here."}
	}
	found, ok := p.Location.Resolve(name)
	if !ok {
		return &driver.ActionRefusedError{Message: "You don't see that here."}
	}
	it, ok := found.(*world.Item)
	if !ok {
		return &driver.ActionRefusedError{Message: "You can't take that."}
	}
	if err := world.MoveItem(it, p.Living, nil); err != nil {
		return &driver.ActionRefusedError{Message: err.Error()}
	}
	p.Tell("You take " + it.Title + ".")
	return nil
}

func cmdDrop(ctx *driver.Context, p *player.Player, rest string) error {
	name := strings.ToLower(strings.TrimSpace(rest))
	if name == "" {
		return &driver.ActionRefusedError{Message: "Drop what?"}
	}
	var target *world.Item
	for _, it := range p.Inventory() {
		if strings.ToLower(it.Name) == name || strings.ToLower(it.Title) == name {
			target = it
			break
		}
	}
	if target == nil {
		return &driver.ActionRefusedError{Message: "You aren't carrying that."}
	}
	if p.Location == nil {
		return &driver.ActionRefusedError{Message: "There is nowhere to drop that."}
	}
	if err := world.MoveItem(target, p.Location, nil); err != nil {
		return &driver.ActionRefusedError{Message: err.Error()}
	}
	p.Tell("You drop " + target.Title + ".")
	return nil
}

func cmdSay(ctx *driver.Context, p *player.Player, rest string) error {
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return &driver.ActionRefusedError{Message: "Say what?"}
	}
	p.Tell(fmt.Sprintf("You say: %s", rest))
	if p.Location == nil {
		return nil
	}
	for _, liv := range p.Location.Livings() {
		if liv == p.Living {
			continue
		}
		if other, ok := ctx.PlayerByName(liv.Name); ok {
			other.Tell(fmt.Sprintf("%s says: %s", p.Title, rest))
		}
	}
	return nil
}

func cmdTell(ctx *driver.Context, p *player.Player, rest string) error {
	name, msg, ok := strings.Cut(strings.TrimSpace(rest), " ")
	if !ok || msg == "" {
		return &driver.ActionRefusedError{Message: "Tell whom what?"}
	}
	target, ok := ctx.PlayerByName(name)
	if !ok {
		return &driver.ActionRefusedError{Message: "They aren't here."}
	}
	target.Tell(fmt.Sprintf("%s tells you: %s", p.Title, msg))
	p.Tell(fmt.Sprintf("You tell %s: %s", target.Title, msg))
	return nil
}

func cmdWho(ctx *driver.Context, p *player.Player, rest string) error {
	players := ctx.Players()
	names := make([]string, len(players))
	for i, pl := range players {
		names[i] = pl.Title
	}
	sort.Strings(names)
	p.Tell("Connected: " + strings.Join(names, ", "))
	return nil
}

func cmdBrief(ctx *driver.Context, p *player.Player, rest string) error {
	p.SetBrief(!p.Brief())
	if p.Brief() {
		p.Tell("Brief mode on.")
	} else {
		p.Tell("Brief mode off.")
	}
	return nil
}

func cmdQuit(ctx *driver.Context, p *player.Player, rest string) error {
	return &driver.SessionExitError{Message: "quit"}
}
