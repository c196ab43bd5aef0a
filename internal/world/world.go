// Package world implements the entity graph: Location, Item, Container,
// Door, Exit and Living, plus the invariants that bind them (one location
// per living, atomic item moves, wiretap topics, name resolution).
package world

import (
	"fmt"
	"strings"
	"sync"

	"emberloom/internal/lang"
	"emberloom/internal/pubsub"
)

// LimboName is the sentinel location that catches livings whose home has
// been destroyed.
const LimboName = "Limbo"

// Thing is anything with a name, aliases and a title, shared by Item and
// Living so soul.Entity can be satisfied by either.
type Thing struct {
	Name    string
	Title   string
	Aliases map[string]bool
	Extras  map[string]string // keyword -> extra description text
	mu      sync.RWMutex
}

func (t *Thing) EntityName() string  { return t.Name }
func (t *Thing) EntityTitle() string { return t.Title }

func (t *Thing) matches(word string) bool {
	word = strings.ToLower(word)
	if strings.ToLower(t.Name) == word {
		return true
	}
	if t.Aliases[word] {
		return true
	}
	return strings.ToLower(t.Title) == word
}

// Container is an Item that additionally holds an inventory.
type Container struct {
	*Item
	inventory map[string]*Item
}

func NewContainer(name, title string) *Container {
	return &Container{Item: NewItem(name, title), inventory: make(map[string]*Item)}
}

func (c *Container) Insert(it *Item) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inventory[strings.ToLower(it.Name)] = it
	it.container = c
}

func (c *Container) Remove(name string) (*Item, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	it, ok := c.inventory[strings.ToLower(name)]
	if ok {
		delete(c.inventory, strings.ToLower(name))
	}
	return it, ok
}

func (c *Container) Items() []*Item {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*Item, 0, len(c.inventory))
	for _, it := range c.inventory {
		out = append(out, it)
	}
	return out
}

// Item is an inanimate object. Its container is exactly one of a
// Location, a Container, or a Living (carried) at any time.
type Item struct {
	Thing
	Description string
	container   any // *Location | *Container | *Living
}

func NewItem(name, title string) *Item {
	return &Item{Thing: Thing{Name: name, Title: title, Aliases: map[string]bool{}, Extras: map[string]string{}}}
}

// Door is an Item that is also an Exit with open/locked state.
type Door struct {
	*Item
	Exit   *Exit
	Open   bool
	Locked bool
}

// Exit is a one-way edge from a Location to a target, which may be a bound
// Location pointer or an unbound textual path resolved at world-load time.
type Exit struct {
	Direction string
	Target    *Location // nil if unbound
	TargetRef string     // textual path, used when Target is nil
	Door      *Door      // non-nil if this exit is a door
}

func (e *Exit) Bound() bool { return e.Target != nil }

// Bind binds the exit to loc, its target location.
func (e *Exit) Bind(loc *Location) { e.Target = loc }

// Location is a named place holding livings, items, and directional exits.
type Location struct {
	Thing
	Description string
	livings     map[string]*Living
	items       map[string]*Item
	exits       map[string]*Exit
	wiretap     string
	mu          sync.RWMutex
}

func NewLocation(name, title, description string) *Location {
	return &Location{
		Thing:       Thing{Name: name, Title: title, Aliases: map[string]bool{}, Extras: map[string]string{}},
		Description: description,
		livings:     make(map[string]*Living),
		items:       make(map[string]*Item),
		exits:       make(map[string]*Exit),
		wiretap:     pubsub.WiretapTopic(name),
	}
}

func (l *Location) WiretapTopic() string { return l.wiretap }

func (l *Location) AddExit(e *Exit) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.exits[strings.ToLower(e.Direction)] = e
}

func (l *Location) Exit(direction string) (*Exit, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	e, ok := l.exits[strings.ToLower(direction)]
	return e, ok
}

func (l *Location) Exits() map[string]*Exit {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make(map[string]*Exit, len(l.exits))
	for k, v := range l.exits {
		out[k] = v
	}
	return out
}

// enter places a living in this location. Callers are responsible for
// removing it from its prior location first (MoveLiving does both).
func (l *Location) enter(liv *Living) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.livings[strings.ToLower(liv.Name)] = liv
}

func (l *Location) leave(liv *Living) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.livings, strings.ToLower(liv.Name))
}

// Livings returns every living currently in the location.
func (l *Location) Livings() []*Living {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]*Living, 0, len(l.livings))
	for _, liv := range l.livings {
		out = append(out, liv)
	}
	return out
}

func (l *Location) Items() []*Item {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]*Item, 0, len(l.items))
	for _, it := range l.items {
		out = append(out, it)
	}
	return out
}

// InsertItem places it directly into the location (used by MoveItem and
// world-load).
func (l *Location) InsertItem(it *Item) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items[strings.ToLower(it.Name)] = it
	it.container = l
}

func (l *Location) removeItem(name string) (*Item, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	it, ok := l.items[strings.ToLower(name)]
	if ok {
		delete(l.items, strings.ToLower(name))
	}
	return it, ok
}

// Resolve finds a name against this location's livings and items, in
// priority order: exact name, then alias, then lowercased title match.
// Items in carried containers are never searched here - only on explicit
// "in <container>" requests made by the caller.
func (l *Location) Resolve(word string) (any, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	lower := strings.ToLower(word)
	for _, liv := range l.livings {
		if strings.ToLower(liv.Name) == lower {
			return liv, true
		}
	}
	for _, it := range l.items {
		if strings.ToLower(it.Name) == lower {
			return it, true
		}
	}
	for _, liv := range l.livings {
		if liv.Aliases[lower] {
			return liv, true
		}
	}
	for _, it := range l.items {
		if it.Aliases[lower] {
			return it, true
		}
	}
	for _, liv := range l.livings {
		if strings.ToLower(liv.Title) == lower {
			return liv, true
		}
	}
	for _, it := range l.items {
		if strings.ToLower(it.Title) == lower {
			return it, true
		}
	}
	return nil, false
}

// Living is an animate entity: player or NPC.
type Living struct {
	Thing
	gender      lang.Gender
	Race        string
	Stats       map[string]int
	Privileges  map[string]bool
	inventory   map[string]*Item
	Aggressive  bool
	Money       int
	Location    *Location
	wiretap     string
	Soul        bool // has a soul attached (i.e. can use the emote parser)
	mu          sync.RWMutex
}

func NewLiving(name, title string, gender lang.Gender) *Living {
	return &Living{
		Thing:      Thing{Name: name, Title: title, Aliases: map[string]bool{}, Extras: map[string]string{}},
		gender:     gender,
		Stats:      map[string]int{},
		Privileges: map[string]bool{},
		inventory:  make(map[string]*Item),
		Soul:       true,
		wiretap:    pubsub.WiretapTopic(name),
	}
}

func (l *Living) WiretapTopic() string { return l.wiretap }

// Gender satisfies soul.Person, enabling gender-dependent narration.
func (l *Living) Gender() lang.Gender { return l.gender }

// SetGender updates the gender used for narration; used once login or
// character creation determines it, since NewLiving is often called
// before that's known.
func (l *Living) SetGender(g lang.Gender) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.gender = g
}

// Rename updates the living's name/title and recomputes its wiretap topic
// to match, for the same reason SetGender exists: NewLiving often runs
// before login/character creation has settled on either.
func (l *Living) Rename(name, title string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Name = name
	l.Title = title
	l.wiretap = pubsub.WiretapTopic(name)
}

func (l *Living) HasPrivilege(name string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.Privileges[name]
}

func (l *Living) Inventory() []*Item {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]*Item, 0, len(l.inventory))
	for _, it := range l.inventory {
		out = append(out, it)
	}
	return out
}

func (l *Living) carry(it *Item) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.inventory[strings.ToLower(it.Name)] = it
	it.container = l
}

func (l *Living) drop(name string) (*Item, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	it, ok := l.inventory[strings.ToLower(name)]
	if ok {
		delete(l.inventory, strings.ToLower(name))
	}
	return it, ok
}

// Directory is a name-indexed registry of locations, used to resolve exit
// TargetRef strings and scheduler owner ids.
type Directory struct {
	mu         sync.RWMutex
	locations  map[string]*Location
	livings    map[string]*Living
	limbo      *Location
	singletons map[string]any
}

// AddSingleton registers an arbitrary object (e.g. the driver context
// itself, or a reaper) so the scheduler can address it by ownerID for
// periodic deferreds that don't belong to any living or location.
func (d *Directory) AddSingleton(ownerID string, obj any) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.singletons == nil {
		d.singletons = make(map[string]any)
	}
	d.singletons[ownerID] = obj
}

func NewDirectory() *Directory {
	limbo := NewLocation(LimboName, "Limbo", "A formless void between worlds.")
	d := &Directory{locations: map[string]*Location{}, livings: map[string]*Living{}}
	d.AddLocation(limbo)
	d.limbo = limbo
	return d
}

func (d *Directory) AddLocation(l *Location) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.locations[strings.ToLower(l.Name)] = l
}

func (d *Directory) Location(name string) (*Location, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	l, ok := d.locations[strings.ToLower(name)]
	return l, ok
}

func (d *Directory) Limbo() *Location { return d.limbo }

func (d *Directory) AddLiving(l *Living) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.livings[strings.ToLower(l.Name)] = l
}

func (d *Directory) RemoveLiving(name string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.livings, strings.ToLower(name))
}

// Resolve implements scheduler.Directory: owner ids for livings are their
// lowercased name, prefixed "living:"; for locations, "location:".
func (d *Directory) Resolve(ownerID string) (any, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if name, ok := strings.CutPrefix(ownerID, "living:"); ok {
		l, ok := d.livings[name]
		return l, ok
	}
	if name, ok := strings.CutPrefix(ownerID, "location:"); ok {
		l, ok := d.locations[name]
		return l, ok
	}
	if obj, ok := d.singletons[ownerID]; ok {
		return obj, true
	}
	return nil, false
}

// BindExits resolves every unbound exit in every registered location
// against the directory, matching on TargetRef. Called once after
// world-load.
func (d *Directory) BindExits() error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, loc := range d.locations {
		for dir, e := range loc.exits {
			if e.Bound() {
				continue
			}
			target, ok := d.locations[strings.ToLower(e.TargetRef)]
			if !ok {
				return fmt.Errorf("world: exit %q from %q targets unknown location %q", dir, loc.Name, e.TargetRef)
			}
			e.Target = target
		}
	}
	return nil
}

// MoveLiving relocates liv from its current location (if any) to dest.
// If dest has since been destroyed, the caller should route to Limbo
// instead; MoveLiving itself performs no refusal checks (those belong to
// the command layer), only the location bookkeeping.
func MoveLiving(liv *Living, dest *Location) {
	if liv.Location != nil {
		liv.Location.leave(liv)
	}
	dest.enter(liv)
	liv.Location = dest
}

// MoveItem atomically relocates it from its current container to dest.
// If insertion at dest fails validation (refusal), the item is left where
// it was; validate is called with it and must return a refusal error or
// nil.
func MoveItem(it *Item, dest any, validate func(*Item) error) error {
	if validate != nil {
		if err := validate(it); err != nil {
			return err
		}
	}
	origin := it.container
	switch o := origin.(type) {
	case *Location:
		o.removeItem(it.Name)
	case *Container:
		o.Remove(it.Name)
	case *Living:
		o.drop(it.Name)
	}
	switch d := dest.(type) {
	case *Location:
		d.InsertItem(it)
	case *Container:
		d.Insert(it)
	case *Living:
		d.carry(it)
	default:
		// restore to origin, insertion target invalid
		switch o := origin.(type) {
		case *Location:
			o.InsertItem(it)
		case *Container:
			o.Insert(it)
		case *Living:
			o.carry(it)
		}
		return fmt.Errorf("world: invalid destination for item %q", it.Name)
	}
	return nil
}

// DestroyLocation empties a location: every living is sent to limbo, its
// wiretap subscribers are implicitly dropped (the topic simply stops being
// published to), and it is removed from the directory.
func DestroyLocation(d *Directory, loc *Location) {
	for _, liv := range loc.Livings() {
		MoveLiving(liv, d.limbo)
	}
	d.mu.Lock()
	delete(d.locations, strings.ToLower(loc.Name))
	d.mu.Unlock()
}
