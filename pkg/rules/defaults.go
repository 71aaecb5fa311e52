package rules

// DefaultRules returns the fixed heuristic rule set with its canonical
// weights, in canonical evaluation order. The order only affects the
// sequence of reasons in a verdict; the total score is order-independent.
func DefaultRules() []Rule {
	return []Rule{
		NewLongURLRule(75, 1),
		NewLongPathRule(50, 1),
		NewAtSignRule(1),
		NewHyphenRule(1),
		DefaultKeywordRule(2),
		NewIPHostRule(2),
		NewSubdomainRule(2, 1),
		NewEntropyRule(4.0, 1),
	}
}
