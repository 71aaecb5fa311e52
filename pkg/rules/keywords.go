package rules

import (
	"fmt"
	"strings"

	"github.com/urlguard/go-urlguard/pkg/attack"
	"github.com/urlguard/go-urlguard/pkg/models"
)

// SuspiciousWords are checked as substrings of the lowercased URL, in this
// order. The list order matters: only the first match is reported.
var SuspiciousWords = []string{
	"login", "signin", "bank", "update", "confirm", "secure", "account",
	"webscr", "ebayisapi", "verify", "password", "authenticate", "paypal",
}

// KeywordRule flags credential-harvesting vocabulary anywhere in the URL.
// It fires at most once per URL regardless of how many words match.
type KeywordRule struct {
	Words     []string
	RiskScore int
}

// NewKeywordRule creates a keyword rule over the given ordered word list.
func NewKeywordRule(words []string, score int) *KeywordRule {
	return &KeywordRule{Words: words, RiskScore: score}
}

// DefaultKeywordRule uses the built-in SuspiciousWords list.
func DefaultKeywordRule(score int) *KeywordRule {
	return NewKeywordRule(SuspiciousWords, score)
}

func (k *KeywordRule) Name() string {
	return "SuspiciousWord"
}

func (k *KeywordRule) Attack() models.AttackInfo {
	return attack.Lookup("Suspicious word")
}

func (k *KeywordRule) Evaluate(parts models.URLParts) (int, string) {
	full := strings.ToLower(parts.Full)
	for _, w := range k.Words {
		if strings.Contains(full, w) {
			return k.RiskScore, fmt.Sprintf("Suspicious word found: '%s'", w)
		}
	}
	return 0, ""
}
