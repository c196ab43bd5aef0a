package soul

import (
	"regexp"
	"strings"

	"emberloom/internal/lang"
)

var messageRegex = regexp.MustCompile(`(^|\s)['"]([^'"]+?)['"]`)

var skipWords = map[string]bool{
	"and": true, "&": true, "at": true, "to": true, "before": true,
	"in": true, "on": true, "the": true, "with": true,
}

var pronounWords = map[string]bool{"them": true, "him": true, "her": true, "it": true}
var selfWords = map[string]bool{"me": true, "myself": true}
var everyoneWords = map[string]bool{"everyone": true, "everybody": true, "all": true}
var exceptWords = map[string]bool{"except": true, "but": true}

// maxNameSpan bounds how many words a single name lookahead will try to
// join, so a long run of unrelated unrecognised words doesn't turn into
// an O(n^2) scan.
const maxNameSpan = 4

// matchMultiWordName tries the longest run of consecutive words starting
// at i (after skipping a leading article word, e.g. "the") that resolves
// against names, preferring longer runs over shorter ones. It only
// reports a match for genuinely multi-word names (span >= 2); a
// single-word match is left for the caller's existing per-token dispatch
// to handle, preserving priority among pronouns/bodyparts/adverbs/etc.
func matchMultiWordName(names map[string]Entity, words []string, i int) (name string, entity Entity, consumed int, ok bool) {
	start := i
	if skipWords[words[start]] {
		start++
	}
	maxSpan := len(words) - start
	if maxSpan > maxNameSpan {
		maxSpan = maxNameSpan
	}
	for span := maxSpan; span >= 2; span-- {
		candidate := strings.Join(words[start:start+span], " ")
		if e, ok := names[candidate]; ok {
			return candidate, e, (start - i) + span, true
		}
	}
	return "", nil, 0, false
}

// Parse turns a raw command string into a ParseResult, resolving target
// names against ctx.Names and ctx.LivingNames. It does not look verbs up
// in the Verbs table alone - ctx.ExternalVerbs lets callers fold
// non-social (movement, building, ...) verbs into verb recognition so the
// "unknown verb" vs "unknown word" distinction stays correct.
//
// Grounded on mudlib/soul.py's Soul.parse.
func Parse(ctx *Context, cmd string) (*ParseResult, error) {
	result := &ParseResult{}

	var message []string
	if loc := messageRegex.FindStringSubmatchIndex(cmd); loc != nil {
		message = []string{strings.TrimSpace(cmd[loc[4]:loc[5]])}
		cmd = cmd[:loc[0]] + cmd[loc[1]:]
	}

	cmd = strings.TrimSpace(cmd)
	if cmd == "" {
		return nil, &ParseError{Message: "What?"}
	}
	words := strings.Fields(cmd)

	if _, ok := Qualifiers[words[0]]; ok {
		result.Qualifier = words[0]
		words = words[1:]
	}
	if len(words) > 0 && skipWords[words[0]] {
		words = words[1:]
	}
	if len(words) == 0 {
		return nil, &ParseError{Message: "What?"}
	}

	verbdata, known := Verbs[words[0]]
	externallyKnown := ctx.ExternalVerbs != nil && ctx.ExternalVerbs[words[0]]
	if !known && !externallyKnown {
		return nil, &UnknownVerbError{Verb: words[0], Words: words[1:], Qualifier: result.Qualifier}
	}
	result.Verb = words[0]
	words = words[1:]

	messageVerb := known && verbdata.NeedsMessage()
	includeFlag := true
	collectMessage := false

	for i := 0; i < len(words); i++ {
		word := words[i]
		if collectMessage {
			message = append(message, word)
			continue
		}
		prev := result.Verb
		if i > 0 {
			prev = words[i-1]
		}

		// Multi-word names ("the hairy cat", "brown bird") take priority
		// over every single-token interpretation of their first word,
		// since a name can shadow what would otherwise look like an
		// adverb, bodypart or plain unrecognised word. A leading "the" is
		// skipped before attempting the match; the longest run of words
		// that resolves against ctx.Names wins ties over shorter runs.
		if _, entity, span, ok := matchMultiWordName(ctx.Names, words, i); ok {
			if includeFlag {
				result.addWho(entity, prev)
			} else {
				result.removeWho(entity)
			}
			i += span - 1
			continue
		}

		switch {
		case pronounWords[word]:
			return nil, &ParseError{Message: "It is not clear who you mean."}

		case selfWords[word]:
			if ctx.Player != nil {
				if includeFlag {
					result.addWho(ctx.Player, prev)
				} else {
					result.removeWho(ctx.Player)
				}
			}

		case BodyParts[word] != "":
			if result.Bodypart != "" {
				return nil, &ParseError{Message: "You can't do that both " + BodyParts[result.Bodypart] + " and " + BodyParts[word] + "."}
			}
			result.Bodypart = word

		case everyoneWords[word]:
			if includeFlag {
				if len(ctx.LivingNames) == 0 {
					return nil, &ParseError{Message: "There is nobody here."}
				}
				for _, name := range ctx.LivingNames {
					if e, ok := ctx.Names[name]; ok {
						result.addWho(e, prev)
					}
				}
			} else {
				result.clearWho()
			}

		case word == "everything":
			return nil, &ParseError{Message: "You can't do something to everything around you, be more specific."}

		case exceptWords[word]:
			includeFlag = !includeFlag

		case lang.IsAdverb(word):
			if result.Adverb != "" {
				return nil, &ParseError{Message: "You can't do that both " + result.Adverb + " and " + word + "."}
			}
			result.Adverb = word

		default:
			if e, ok := ctx.Names[word]; ok {
				if includeFlag {
					result.addWho(e, prev)
				} else {
					result.removeWho(e)
				}
				continue
			}
			if messageVerb && len(message) == 0 {
				collectMessage = true
				message = append(message, word)
				continue
			}
			if skipWords[word] {
				continue
			}
			// unrecognised word: try a few helpful diagnoses before giving up.
			if len(result.WhoOrder) == 0 {
				for name := range ctx.Names {
					if strings.HasPrefix(name, word) {
						return nil, &ParseError{Message: "Did you mean " + name + "?"}
					}
				}
			}
			adverbs := lang.AdverbByPrefix(word)
			if len(adverbs) == 1 {
				if result.Adverb != "" {
					return nil, &ParseError{Message: "You can't do that both " + result.Adverb + " and " + adverbs[0] + "."}
				}
				result.Adverb = adverbs[0]
				continue
			}
			if len(adverbs) > 1 {
				return nil, &ParseError{Message: "What adverb did you mean: " + lang.Join(adverbs, "or") + "?"}
			}
			_, isVerb := Verbs[word]
			_, isQualifier := Qualifiers[word]
			if isVerb || isQualifier || BodyParts[word] != "" {
				return nil, &ParseError{Message: "The word " + word + " makes no sense at that location."}
			}
			result.Unrecognized = append(result.Unrecognized, word)
			return nil, &ParseError{Message: "The word " + word + " is unrecognized."}
		}
	}

	result.Message = strings.Join(message, " ")
	return result, nil
}
