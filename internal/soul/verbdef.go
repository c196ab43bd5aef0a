package soul

// VerbType discriminates how a verb's template(s) are filled in and how
// many viewpoint variants are required. Re-architected from the Python
// integer constants (DEFA..QUAD) into a typed, tagged record - see
// DESIGN.md on "runtime string-keyed verb tables".
type VerbType int

const (
	// DEFA: implicit "verb$ HOW AT" template; AT is filled with the verb's
	// Preposition plus WHO when a target is present ("smiles happily at Fritz").
	DEFA VerbType = iota
	// PREV: requires a target; template is "verb$ [Extra] WHO HOW".
	PREV
	// PHYS: requires a target; template is "verb$ [Extra] WHO HOW WHERE".
	PHYS
	// SHRT: no target; template is "verb$ [Extra] HOW".
	SHRT
	// PERS: two templates, selected by whether a target is present.
	PERS
	// SIMP: a single literal template containing explicit escape slots.
	SIMP
	// DEUX: two parallel templates, actor-voice and observer-voice.
	DEUX
	// QUAD: four templates - {no-target actor, no-target observer,
	// with-target actor, with-target observer}.
	QUAD
)

// VerbDefaults holds the verb-table defaults applied when the parser didn't
// extract an explicit adverb, message, or body part.
type VerbDefaults struct {
	Adverb  string
	Message string
	Where   string
}

// VerbDef is one entry of the static emote verb table. Only the fields
// relevant to Type are meaningful; see the VerbType docs for which apply.
type VerbDef struct {
	Type        VerbType
	Defaults    VerbDefaults
	Extra       string   // PREV/PHYS/SHRT: text spliced right after the verb stem
	Preposition string   // DEFA/PREV/PHYS/SHRT/SIMP: fills a trailing AT when a target is present
	Template    string   // SIMP: the single literal template
	NoTarget    string   // PERS: template used when no target is present
	WithTarget  string   // PERS: template used when a target is present
	Templates   []string // DEUX (len 2) or QUAD (len 4) parallel templates
}

// NeedsMessage reports whether the verb's template(s) contain a MSG or WHAT
// escape, meaning unrecognised trailing words should be collected as a
// quoted/unquoted message rather than rejected.
func (v VerbDef) NeedsMessage() bool {
	for _, t := range v.allTemplates() {
		if containsEscape(t, "MSG") || containsEscape(t, "WHAT") {
			return true
		}
	}
	return false
}

func (v VerbDef) allTemplates() []string {
	switch v.Type {
	case SIMP:
		return []string{v.Template}
	case PERS:
		return []string{v.NoTarget, v.WithTarget}
	case DEUX, QUAD:
		return v.Templates
	default:
		return nil
	}
}

func containsEscape(template, name string) bool {
	marker := "\n" + name
	return indexOf(template, marker) >= 0
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}
