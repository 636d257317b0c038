package rules

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Guard is the condition part of a rule. Every set field must hold for the
// rule to fire. Numeric fields are exact-equality tests against the literal
// in the catalog; HasPrereqs tests list presence, not contents.
type Guard struct {
	DaysToExam *int     `yaml:"days_to_exam"`
	Mastery    *float64 `yaml:"mastery"`
	Difficulty *float64 `yaml:"difficulty"`
	Importance *float64 `yaml:"importance"`
	ExamType   *string  `yaml:"exam_type"`
	EstHours   *float64 `yaml:"est_hours"`
	HasPrereqs *bool    `yaml:"has_prereqs"`
}

// empty reports whether no guard field is set. A guardless rule would fire
// on every fact, which is never intended.
func (g Guard) empty() bool {
	return g.DaysToExam == nil && g.Mastery == nil && g.Difficulty == nil &&
		g.Importance == nil && g.ExamType == nil && g.EstHours == nil &&
		g.HasPrereqs == nil
}

// Matches evaluates the guard against a fact.
func (g Guard) Matches(f TopicFact) bool {
	if g.DaysToExam != nil && f.DaysToExam != *g.DaysToExam {
		return false
	}
	if g.Mastery != nil && f.Mastery != *g.Mastery {
		return false
	}
	if g.Difficulty != nil && f.Difficulty != *g.Difficulty {
		return false
	}
	if g.Importance != nil && f.Importance != *g.Importance {
		return false
	}
	if g.ExamType != nil && f.ExamType != *g.ExamType {
		return false
	}
	if g.EstHours != nil && f.EstHours != *g.EstHours {
		return false
	}
	if g.HasPrereqs != nil && (len(f.Prereqs) > 0) != *g.HasPrereqs {
		return false
	}
	return true
}

// Rule is one catalog entry: a guard plus a fixed signed boost and its
// human-readable explanation.
type Rule struct {
	ID          string  `yaml:"id"`
	Boost       float64 `yaml:"boost"`
	Explanation string  `yaml:"explanation"`
	When        Guard   `yaml:"when"`
}

// Catalog is the ordered rule set. Order is the order rules fire in, and
// therefore the order of adjustments and explanation lines.
type Catalog struct {
	Rules []Rule `yaml:"rules"`
}

// LoadCatalog parses the embedded default catalog.
func LoadCatalog() (*Catalog, error) {
	return parseCatalog(defaultCatalog)
}

// LoadCatalogFile parses a catalog from an override file on disk.
func LoadCatalogFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	return parseCatalog(data)
}

func parseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	if len(c.Rules) == 0 {
		return fmt.Errorf("catalog has no rules")
	}
	seen := make(map[string]bool, len(c.Rules))
	for i, r := range c.Rules {
		if r.ID == "" {
			return fmt.Errorf("rule %d: missing id", i)
		}
		if seen[r.ID] {
			return fmt.Errorf("rule %s: duplicate id", r.ID)
		}
		seen[r.ID] = true
		if r.Boost == 0 {
			return fmt.Errorf("rule %s: boost must be non-zero", r.ID)
		}
		if r.Explanation == "" {
			return fmt.Errorf("rule %s: missing explanation", r.ID)
		}
		if r.When.empty() {
			return fmt.Errorf("rule %s: guard is empty", r.ID)
		}
	}
	return nil
}
