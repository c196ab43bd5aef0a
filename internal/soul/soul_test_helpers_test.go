package soul

import "emberloom/internal/lang"

// testPerson is a minimal Person used by the soul package's own tests.
type testPerson struct {
	name   string
	title  string
	gender lang.Gender
}

func (p *testPerson) EntityName() string  { return p.name }
func (p *testPerson) EntityTitle() string { return p.title }
func (p *testPerson) Gender() lang.Gender { return p.gender }

// testItem is a minimal non-Person Entity (no gender) for item targets.
type testItem struct {
	name  string
	title string
}

func (i *testItem) EntityName() string  { return i.name }
func (i *testItem) EntityTitle() string { return i.title }

// namesOf builds a Context.Names map from a set of entities, keyed by
// their bare name (lowercased, as the real caller would populate it).
func namesOf(entities ...Entity) map[string]Entity {
	m := make(map[string]Entity, len(entities))
	for _, e := range entities {
		m[e.EntityName()] = e
	}
	return m
}
