package rules

import "fmt"

// Adjustment is one rule firing against one fact.
type Adjustment struct {
	RuleID      string  `json:"rule_id"`
	Boost       float64 `json:"boost"`
	Explanation string  `json:"explanation"`
}

// Engine evaluates the catalog against topic facts. Evaluation is additive
// and non-exclusive: every matching rule fires and boosts accumulate. The
// engine holds no per-request state; explanation logs are returned, not
// retained.
type Engine struct {
	catalog *Catalog

	// cramMode is carried through from the request. The catalog's discrete
	// urgency rules do not consult it; see UrgencyFactor.
	cramMode bool
}

// NewEngine creates an engine over the given catalog.
func NewEngine(catalog *Catalog, cramMode bool) *Engine {
	return &Engine{catalog: catalog, cramMode: cramMode}
}

// Evaluate runs the full catalog against one fact, returning the fired
// adjustments in catalog order and one explanation line per firing.
// An unmatched fact yields empty slices; Evaluate never fails.
func (e *Engine) Evaluate(fact TopicFact) ([]Adjustment, []string) {
	var adjs []Adjustment
	var lines []string
	for _, r := range e.catalog.Rules {
		if !r.When.Matches(fact) {
			continue
		}
		adjs = append(adjs, Adjustment{RuleID: r.ID, Boost: r.Boost, Explanation: r.Explanation})
		lines = append(lines, fmt.Sprintf("%s: %s (boost %+.2f)", r.ID, r.Explanation, r.Boost))
	}
	return adjs, lines
}

// EvaluateAll evaluates every fact, keyed by topic id, plus the flat
// explanation log across the whole pass (diagnostic only).
func (e *Engine) EvaluateAll(facts []TopicFact) (map[string][]Adjustment, []string) {
	byTopic := make(map[string][]Adjustment, len(facts))
	var log []string
	for _, f := range facts {
		adjs, lines := e.Evaluate(f)
		if len(adjs) > 0 {
			byTopic[f.TopicID] = adjs
		}
		log = append(log, lines...)
	}
	return byTopic, log
}
