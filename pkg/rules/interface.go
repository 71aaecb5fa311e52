package rules

import "github.com/urlguard/go-urlguard/pkg/models"

// Rule is the interface all URL heuristics must satisfy.
//
// Rules are stateless and evaluated independently; the total score is a
// pure sum over all triggered rules, so evaluation order only decides the
// order of the reasons, never the score.
type Rule interface {
	// Unique rule name (e.g. "LongURL", "IPHost").
	Name() string

	// Attack classification attached to any reason this rule emits.
	// Emitting it here, rather than re-deriving it from reason text,
	// keeps the reason-to-category coupling structural.
	Attack() models.AttackInfo

	// Evaluate runs the rule against the decomposed URL.
	// Returns the score delta and the reason text, or (0, "") when the
	// rule does not trigger.
	Evaluate(parts models.URLParts) (int, string)
}
