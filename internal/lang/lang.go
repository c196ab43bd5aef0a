// Package lang implements the small language-processing utilities the soul
// parser and renderer lean on: articles, possessives, pluralization, adverb
// prefix lookup, and the yes/no and gender validators used by dialogs.
//
// Grounded on mudlib/languagetools.py and tale/lang.py.
package lang

import (
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Gender is one of the three grammatical genders the soul understands.
type Gender string

const (
	Male    Gender = "m"
	Female  Gender = "f"
	Neuter  Gender = "n"
)

var subjective = map[Gender]string{Male: "he", Female: "she", Neuter: "it"}
var possessive = map[Gender]string{Male: "his", Female: "her", Neuter: "its"}
var objective = map[Gender]string{Male: "him", Female: "her", Neuter: "it"}
var genderNames = map[Gender]string{Male: "male", Female: "female", Neuter: "neuter"}

// Subjective returns "he"/"she"/"it" for the gender.
func Subjective(g Gender) string {
	if s, ok := subjective[g]; ok {
		return s
	}
	return "it"
}

// Possessive returns "his"/"her"/"its" for the gender.
func Possessive(g Gender) string {
	if s, ok := possessive[g]; ok {
		return s
	}
	return "its"
}

// Objective returns "him"/"her"/"it" for the gender.
func Objective(g Gender) string {
	if s, ok := objective[g]; ok {
		return s
	}
	return "it"
}

var titleCaser = cases.Title(language.English)

// Capital upper-cases the first rune of a string using Unicode-aware title
// casing, leaving the rest untouched.
func Capital(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeRuneInString(s)
	first := titleCaser.String(s[:size])
	return first + s[size:]
}

// Join renders a list of words as "a, b, and c" (or "a and b" for two, or
// just "a" for one).
func Join(words []string, conj string) string {
	if conj == "" {
		conj = "and"
	}
	switch len(words) {
	case 0:
		return ""
	case 1:
		return words[0]
	case 2:
		return words[0] + " " + conj + " " + words[1]
	default:
		return strings.Join(words[:len(words)-1], ", ") + ", " + conj + " " + words[len(words)-1]
	}
}

var aExceptions = map[string]string{
	"universe":   "a",
	"university": "a",
	"user":       "a",
	"hour":       "an",
}

// Article prefixes word with "a" or "an" (simplistic vowel-sound heuristic,
// with a small table of known exceptions).
func Article(word string) string {
	if word == "" {
		return ""
	}
	lower := strings.ToLower(word)
	if strings.HasPrefix(lower, "a ") || strings.HasPrefix(lower, "an ") {
		return word
	}
	first := strings.Fields(word)
	firstWord := word
	if len(first) > 0 {
		firstWord = first[0]
	}
	if exc, ok := aExceptions[strings.ToLower(firstWord)]; ok {
		return exc + " " + word
	}
	if strings.ContainsRune("aeiouAEIOU", rune(word[0])) {
		return "an " + word
	}
	return "a " + word
}

// Fullstop appends a period unless the sentence already ends with
// terminal punctuation.
func Fullstop(sentence string) string {
	sentence = strings.TrimRight(sentence, " \t")
	if sentence == "" {
		return sentence
	}
	if strings.ContainsRune("!?.,;:-=", rune(sentence[len(sentence)-1])) {
		return sentence
	}
	return sentence + "."
}

// PossessiveLetter returns the suffix to append to name to make it
// possessive: "'s" in all cases except a name already ending in " own"
// (the literal "own" has no possessive form of its own).
func PossessiveLetter(name string) string {
	if name == "" {
		return ""
	}
	if strings.HasSuffix(name, " own") {
		return ""
	}
	return "'s"
}

// PossessiveOf renders the possessive form of a name, e.g. "Julie" -> "Julie's".
func PossessiveOf(name string) string {
	return name + PossessiveLetter(name)
}

// AdverbByPrefix returns every adverb in the sorted adverb list starting
// with prefix, using a binary search (mirrors bisect.bisect_left).
func AdverbByPrefix(prefix string) []string {
	if prefix == "" {
		return nil
	}
	i := sort.SearchStrings(AdverbList, prefix)
	if i >= len(AdverbList) || !strings.HasPrefix(AdverbList[i], prefix) {
		return nil
	}
	j := i + 1
	for j < len(AdverbList) && strings.HasPrefix(AdverbList[j], prefix) {
		j++
	}
	return AdverbList[i:j]
}

// IsAdverb reports whether word is a recognised adverb.
func IsAdverb(word string) bool {
	i := sort.SearchStrings(AdverbList, word)
	return i < len(AdverbList) && AdverbList[i] == word
}

var plurals = map[string]string{
	"mouse": "mice", "child": "children", "person": "people", "man": "men",
	"woman": "women", "foot": "feet", "goose": "geese", "tooth": "teeth",
	"aircraft": "aircraft", "fish": "fish", "sheep": "sheep", "species": "species",
}

// Pluralize returns the plural form of word, applying a table of
// irregular forms before falling back to simple suffix rules.
func Pluralize(word string, amount int) string {
	if amount == 1 {
		return word
	}
	if p, ok := plurals[word]; ok {
		return p
	}
	switch {
	case strings.HasSuffix(word, "is"):
		return word[:len(word)-2] + "es"
	case strings.HasSuffix(word, "z"):
		return word + "zes"
	case strings.HasSuffix(word, "s"), strings.HasSuffix(word, "ch"), strings.HasSuffix(word, "x"), strings.HasSuffix(word, "sh"):
		return word + "es"
	case strings.HasSuffix(word, "y") && len(word) > 1 && !strings.ContainsRune("aeiou", rune(word[len(word)-2])):
		return word[:len(word)-1] + "ies"
	case strings.HasSuffix(word, "fe"):
		return word[:len(word)-2] + "ves"
	case strings.HasSuffix(word, "f"):
		return word[:len(word)-1] + "ves"
	case strings.HasSuffix(word, "o") && len(word) > 1 && !strings.ContainsRune("aeiouy", rune(word[len(word)-2])):
		return word + "es"
	default:
		return word + "s"
	}
}

var yesWords = map[string]bool{"y": true, "yes": true, "sure": true, "yep": true, "yeah": true, "yessir": true, "sure thing": true}
var noWords = map[string]bool{"n": true, "no": true, "nope": true, "no way": true, "hell no": true}

// YesNo parses a free-form affirmative/negative answer.
func YesNo(value string) (bool, bool) {
	v := strings.ToLower(strings.TrimSpace(value))
	if yesWords[v] {
		return true, true
	}
	if noWords[v] {
		return false, true
	}
	return false, false
}

// ValidateGender parses a gender string, accepting either the single-letter
// code or the full name ("m"/"male").
func ValidateGender(value string) (Gender, bool) {
	v := strings.ToLower(strings.TrimSpace(value))
	switch v {
	case "m", "male":
		return Male, true
	case "f", "female":
		return Female, true
	case "n", "neuter":
		return Neuter, true
	}
	return "", false
}

// GenderName returns the long-form name for a gender code.
func GenderName(g Gender) string {
	if n, ok := genderNames[g]; ok {
		return n
	}
	return "neuter"
}
