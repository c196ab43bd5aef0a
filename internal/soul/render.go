package soul

import (
	"strings"

	"emberloom/internal/lang"
)

// spacify prefixes s with a single space if it has contents, returning ""
// for an empty string so templates don't end up with dangling whitespace.
func spacify(s string) string {
	if s == "" {
		return ""
	}
	return " " + strings.TrimLeft(s, " \t")
}

func replaceEscape(s, name, value string) string {
	return strings.ReplaceAll(s, " \n"+name, value)
}

// checkPerson reports whether action can be filled in given who: any
// template referencing WHO or POSS requires at least one target.
func checkPerson(action string, who []Entity) bool {
	if len(who) == 0 && (strings.Contains(action, "\nWHO") || strings.Contains(action, "\nPOSS")) {
		return false
	}
	return true
}

func whoReplacement(actor Person, target, observer Entity) string {
	if target == Entity(actor) {
		if Entity(actor) == observer {
			return "yourself"
		}
		return lang.Objective(actor.Gender()) + "self"
	}
	if target == observer {
		return "you"
	}
	return target.EntityTitle()
}

func possReplacement(actor Person, target, observer Entity) string {
	if target == Entity(actor) {
		if Entity(actor) == observer {
			return "your own"
		}
		return lang.Possessive(actor.Gender()) + " own"
	}
	if target == observer {
		return "your"
	}
	if p, ok := target.(Person); ok {
		return lang.Possessive(p.Gender())
	}
	return lang.PossessiveOf(target.EntityTitle())
}

func subjectiveOf(e Entity) string {
	if p, ok := e.(Person); ok {
		return lang.Subjective(p.Gender())
	}
	return "it"
}

// Rendered holds the three viewpoint-specific narration strings produced by
// ProcessVerbParsed: what the actor sees, what onlookers in the room see, and what
// each target sees (the same string is sent to every target).
type Rendered struct {
	Targets   []Entity
	ActorMsg  string
	RoomMsg   string
	TargetMsg string
}

// resultMessages fills the WHO/YOUR/MY/IS/SUBJ/POSS escapes of an
// actor-voice and room-voice action string pair, applying the qualifier
// wrapping first, and returns the three final viewpoint messages.
func resultMessages(actor Person, who []Entity, qualifier, action, actionRoom string) Rendered {
	if qualifier != "" {
		if q, ok := Qualifiers[qualifier]; ok {
			base := actionRoom
			if !q.UseRoomDefault {
				base = action
			}
			actionRoom = fillPercent(q.RoomFormat, base)
			action = fillPercent(q.ActorFormat, action)
		}
	}

	targetNamesPlayer := make([]string, len(who))
	for i, t := range who {
		targetNamesPlayer[i] = whoReplacement(actor, t, Entity(actor))
	}
	playerMsg := replaceEscape(action, "WHO", " "+lang.Join(targetNamesPlayer, ""))
	playerMsg = replaceEscape(playerMsg, "YOUR", " your")
	playerMsg = replaceEscape(playerMsg, "MY", " your")

	targetNamesRoom := make([]string, len(who))
	for i, t := range who {
		targetNamesRoom[i] = whoReplacement(actor, t, nil)
	}
	actorPossessive := lang.Possessive(actor.Gender())
	actorObjective := lang.Objective(actor.Gender())
	roomMsg := replaceEscape(actionRoom, "WHO", " "+lang.Join(targetNamesRoom, ""))
	roomMsg = replaceEscape(roomMsg, "YOUR", " "+actorPossessive)
	roomMsg = replaceEscape(roomMsg, "MY", " "+actorObjective)

	targetMsg := replaceEscape(actionRoom, "WHO", " you")
	targetMsg = replaceEscape(targetMsg, "YOUR", " "+actorPossessive)
	targetMsg = replaceEscape(targetMsg, "POSS", " your")
	targetMsg = replaceEscape(targetMsg, "IS", " are")
	targetMsg = replaceEscape(targetMsg, "SUBJ", " you")
	targetMsg = replaceEscape(targetMsg, "MY", " "+actorObjective)

	if len(who) == 1 {
		only := who[0]
		subj := subjectiveOf(only)
		playerMsg = replaceEscape(playerMsg, "IS", " is")
		playerMsg = replaceEscape(playerMsg, "SUBJ", " "+subj)
		playerMsg = replaceEscape(playerMsg, "POSS", " "+possReplacement(actor, only, Entity(actor)))
		roomMsg = replaceEscape(roomMsg, "IS", " is")
		roomMsg = replaceEscape(roomMsg, "SUBJ", " "+subj)
		roomMsg = replaceEscape(roomMsg, "POSS", " "+possReplacement(actor, only, nil))
	} else {
		possPlayer := make([]string, len(who))
		possRoom := make([]string, len(who))
		for i, t := range who {
			possPlayer[i] = possReplacement(actor, t, Entity(actor))
			possRoom[i] = possReplacement(actor, t, nil)
		}
		playerMsg = replaceEscape(playerMsg, "IS", " are")
		playerMsg = replaceEscape(playerMsg, "SUBJ", " they")
		playerMsg = replaceEscape(playerMsg, "POSS", " "+lang.PossessiveOf(lang.Join(possPlayer, "")))
		roomMsg = replaceEscape(roomMsg, "IS", " are")
		roomMsg = replaceEscape(roomMsg, "SUBJ", " they")
		roomMsg = replaceEscape(roomMsg, "POSS", " "+lang.PossessiveOf(lang.Join(possRoom, "")))
	}

	targets := make([]Entity, 0, len(who))
	for _, t := range who {
		if t != Entity(actor) {
			targets = append(targets, t)
		}
	}

	playerMsg = lang.Fullstop("You " + strings.TrimSpace(playerMsg))
	roomMsg = lang.Capital(lang.Fullstop(actor.EntityTitle() + " " + strings.TrimSpace(roomMsg)))
	targetMsg = lang.Capital(lang.Fullstop(actor.EntityTitle() + " " + strings.TrimSpace(targetMsg)))

	return Rendered{Targets: targets, ActorMsg: playerMsg, RoomMsg: roomMsg, TargetMsg: targetMsg}
}

// fillPercent substitutes a single "%s" occurrence in format with value,
// mirroring Python's "%s" % value formatting used by the qualifier table.
func fillPercent(format, value string) string {
	return strings.Replace(format, "%s", value, 1)
}

// ProcessVerbParsed turns a recognised verb plus its already-resolved
// arguments into the three viewpoint narration strings. who must not
// include duplicate entities; actor's own entity may be present in who
// (e.g. "kick myself") and is removed from the returned target list.
func ProcessVerbParsed(actor Person, verb string, who []Entity, adverb, message, bodypart, qualifier string) (Rendered, error) {
	verbdata, ok := Verbs[verb]
	if !ok {
		return Rendered{}, &UnknownVerbError{Verb: verb}
	}
	if !NonLivingVerbs[verb] {
		for _, w := range who {
			if _, isPerson := w.(Person); !isPerson {
				return Rendered{}, &ParseError{Message: "You can't " + verb + " " + w.EntityTitle() + "."}
			}
		}
	}

	msg, fullMessage := renderMessage(message, verbdata)
	if adverb == "" {
		adverb = verbdata.Defaults.Adverb
	}
	where := ""
	if bodypart != "" {
		where = " " + BodyParts[bodypart]
	} else if verbdata.Defaults.Where != "" {
		where = " " + verbdata.Defaults.Where
	}
	how := spacify(adverb)

	var action, actionRoom string
	switch verbdata.Type {
	case DEUX:
		if len(verbdata.Templates) != 2 {
			return Rendered{}, &ParseError{Message: "malformed verb template for " + verb}
		}
		action, actionRoom = verbdata.Templates[0], verbdata.Templates[1]
		if !checkPerson(action, who) {
			return Rendered{}, &ParseError{Message: "The verb " + verb + " needs a person."}
		}
		action, actionRoom = fillCommon(action, where, fullMessage, msg), fillCommon(actionRoom, where, fullMessage, msg)
		action = replaceEscape(action, "HOW", how)
		actionRoom = replaceEscape(actionRoom, "HOW", how)
		return resultMessages(actor, who, qualifier, action, actionRoom), nil

	case QUAD:
		if len(verbdata.Templates) != 4 {
			return Rendered{}, &ParseError{Message: "malformed verb template for " + verb}
		}
		if len(who) == 0 {
			action, actionRoom = verbdata.Templates[0], verbdata.Templates[1]
		} else {
			action, actionRoom = verbdata.Templates[2], verbdata.Templates[3]
		}
		action, actionRoom = fillCommon(action, where, fullMessage, msg), fillCommon(actionRoom, where, fullMessage, msg)
		action = replaceEscape(action, "HOW", how)
		actionRoom = replaceEscape(actionRoom, "HOW", how)
		return resultMessages(actor, who, qualifier, action, actionRoom), nil

	case DEFA:
		action = verb + "$ \nHOW \nAT"
	case PREV:
		action = verb + "$" + spacify(verbdata.Extra) + " \nWHO \nHOW"
	case PHYS:
		action = verb + "$" + spacify(verbdata.Extra) + " \nWHO \nHOW \nWHERE"
	case SHRT:
		action = verb + "$" + spacify(verbdata.Extra) + " \nHOW"
	case PERS:
		if len(who) > 0 {
			action = verbdata.WithTarget
		} else {
			action = verbdata.NoTarget
		}
	case SIMP:
		action = verbdata.Template
	default:
		return Rendered{}, &ParseError{Message: "invalid verb type for " + verb}
	}

	if len(who) > 0 && verbdata.Preposition != "" {
		action = replaceEscape(action, "AT", spacify(verbdata.Preposition)+" \nWHO")
	} else {
		action = strings.ReplaceAll(action, " \nAT", "")
	}

	if !checkPerson(action, who) {
		return Rendered{}, &ParseError{Message: "The verb " + verb + " needs a person."}
	}

	action = replaceEscape(action, "HOW", how)
	action = replaceEscape(action, "WHERE", where)
	action = fillCommon(action, "", fullMessage, msg)
	actionRoom = strings.ReplaceAll(action, "$", "s")
	action = strings.ReplaceAll(action, "$", "")
	return resultMessages(actor, who, qualifier, action, actionRoom), nil
}

// fillCommon fills the WHERE/WHAT/MSG escapes shared by every verb type.
// The non-DEUX/QUAD path has already filled WHERE (after HOW) and passes
// an empty where, so no WHERE marker is left for it to fill.
func fillCommon(action, where, message, msg string) string {
	action = replaceEscape(action, "WHERE", where)
	action = replaceEscape(action, "WHAT", message)
	action = replaceEscape(action, "MSG", msg)
	return action
}

// renderMessage normalises a verb's message argument: a message that
// begins with a single quote has that quote stripped and is used bare,
// everything else is quoted for MSG and left alone for WHAT.
func renderMessage(message string, verbdata VerbDef) (msg, full string) {
	if message == "" && verbdata.Defaults.Message != "" {
		message = verbdata.Defaults.Message
	}
	if message == "" {
		return "", ""
	}
	if strings.HasPrefix(message, "'") {
		full = spacify(message[1:])
		return full, full
	}
	return " '" + message + "'", " " + message
}

// ProcessVerb parses cmd in ctx and renders it, returning the (possibly
// qualifier-prefixed) verb name alongside the three narration strings.
func ProcessVerb(ctx *Context, actor Person, cmd string) (verb string, rendered Rendered, err error) {
	result, err := Parse(ctx, cmd)
	if err != nil {
		return "", Rendered{}, err
	}
	rendered, err = ProcessVerbParsed(actor, result.Verb, result.WhoOrder, result.Adverb, result.Message, result.Bodypart, result.Qualifier)
	if err != nil {
		return "", Rendered{}, err
	}
	verb = result.Verb
	if result.Qualifier != "" {
		verb = result.Qualifier + " " + verb
	}
	return verb, rendered, nil
}
