// Package soul implements the natural-language emote parser and the verb
// template renderer ("the soul"): turning a free-form utterance into a
// structured ParseResult, and filling a verb's template slots to synthesise
// the three viewpoint-specific narration strings.
//
// Grounded on mudlib/soul.py and tale/verbdefs.py.
package soul

import "emberloom/internal/lang"

// Entity is anything that can participate as a target in a parsed command:
// a living, an item, or an exit. The soul package never constructs or owns
// entities - the caller supplies name -> Entity bindings via Context.
type Entity interface {
	// EntityName is the lowercase bare name used for exact matching.
	EntityName() string
	// EntityTitle is the display form used in room/target narration.
	EntityTitle() string
}

// Person is an Entity with a grammatical gender, i.e. a living. Only
// Persons participate in gender-dependent substitutions (SUBJ/POSS/IS).
type Person interface {
	Entity
	Gender() lang.Gender
}

// WhoInfo records where, in input-token order, a target first appeared,
// and the word immediately preceding it - used by commands that need to
// distinguish "put X in Y" from "give X Y".
type WhoInfo struct {
	Sequence     int
	PreviousWord string
}

// ParseResult is the structured outcome of parsing one utterance.
type ParseResult struct {
	Verb       string
	Qualifier  string
	Adverb     string
	Bodypart   string
	Message    string
	Args       []string
	WhoOrder   []Entity
	WhoInfo    map[Entity]*WhoInfo
	Unrecognized []string
	Unparsed   string
}

// addWho appends an entity to the who-set, recording its order and the
// preceding word, unless it is already present.
func (p *ParseResult) addWho(e Entity, prevWord string) {
	if p.WhoInfo == nil {
		p.WhoInfo = make(map[Entity]*WhoInfo)
	}
	if _, ok := p.WhoInfo[e]; ok {
		return
	}
	info := &WhoInfo{Sequence: len(p.WhoOrder), PreviousWord: prevWord}
	p.WhoInfo[e] = info
	p.WhoOrder = append(p.WhoOrder, e)
}

func (p *ParseResult) removeWho(e Entity) {
	if p.WhoInfo == nil {
		return
	}
	if _, ok := p.WhoInfo[e]; !ok {
		return
	}
	delete(p.WhoInfo, e)
	for i, other := range p.WhoOrder {
		if other == e {
			p.WhoOrder = append(p.WhoOrder[:i], p.WhoOrder[i+1:]...)
			break
		}
	}
}

func (p *ParseResult) clearWho() {
	p.WhoOrder = nil
	p.WhoInfo = nil
}

// Context supplies everything the parser needs to resolve names that are
// specific to the acting player: visible entities, the livings in their
// location (for "everyone"/"all"), and the set of externally-recognised
// (non-soul) verbs the caller wants folded into verb recognition.
type Context struct {
	PlayerName string
	// Player is the acting player's own entity, used to resolve "me"/
	// "myself". "everyone"/"all" draw on LivingNames, which the caller
	// fills without the player.
	Player Entity
	// Names maps every name visible to the player - single- or multi-word -
	// to the entity it resolves to. Exact name match takes priority; the
	// caller is responsible for populating aliases and title-based lookups
	// per the name-resolution priority order (name > alias > title).
	Names map[string]Entity
	// LivingNames lists the names of livings in the player's location,
	// excluding the player, used for "everyone"/"all"/"everybody".
	LivingNames []string
	// ExternalVerbs is the set of verbs recognised by the caller (command
	// registry verbs, or story-defined custom verbs) in addition to the
	// soul's own verb table.
	ExternalVerbs map[string]bool
}

// ParseError is a structural problem with the utterance: ambiguous
// pronoun, multiple adverbs, unknown word, missing target, etc. It is
// surfaced to the user verbatim and does not consume a turn.
type ParseError struct {
	Message string
}

func (e *ParseError) Error() string { return e.Message }

// UnknownVerbError means the first word didn't match any known verb.
type UnknownVerbError struct {
	Verb      string
	Words     []string
	Qualifier string
}

func (e *UnknownVerbError) Error() string { return "unknown verb: " + e.Verb }
