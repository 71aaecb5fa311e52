package rules

import (
	"math"
	"strings"

	"github.com/urlguard/go-urlguard/pkg/attack"
	"github.com/urlguard/go-urlguard/pkg/models"
)

// Entropy computes the Shannon entropy, in bits per character, of the rune
// distribution of s. Defined only for non-empty input; callers guard the
// empty case.
func Entropy(s string) float64 {
	counts := make(map[rune]int)
	total := 0
	for _, r := range s {
		counts[r]++
		total++
	}

	entropy := 0.0
	for _, c := range counts {
		p := float64(c) / float64(total)
		entropy -= p * math.Log2(p)
	}
	return entropy
}

// EntropyRule flags URLs whose character distribution looks random, a
// common trait of generated or obfuscated phishing URLs.
type EntropyRule struct {
	Threshold float64 // bits per character
	RiskScore int
}

func NewEntropyRule(threshold float64, score int) *EntropyRule {
	return &EntropyRule{Threshold: threshold, RiskScore: score}
}

func (e *EntropyRule) Name() string {
	return "HighEntropy"
}

func (e *EntropyRule) Attack() models.AttackInfo {
	return attack.Lookup("High character entropy")
}

func (e *EntropyRule) Evaluate(parts models.URLParts) (int, string) {
	full := strings.ToLower(parts.Full)
	if full == "" {
		return 0, ""
	}
	if Entropy(full) > e.Threshold {
		return e.RiskScore, "High character entropy (looks random/obfuscated)"
	}
	return 0, ""
}
