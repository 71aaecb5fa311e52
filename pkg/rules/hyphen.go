package rules

import (
	"strings"

	"github.com/urlguard/go-urlguard/pkg/attack"
	"github.com/urlguard/go-urlguard/pkg/models"
)

// HyphenRule flags a hyphen in the registrable domain, a staple of brand
// impersonation ("paypal-secure.com"). Scope is the registrable domain
// only: a hyphenated subdomain alone does not trigger it.
type HyphenRule struct {
	RiskScore int
}

func NewHyphenRule(score int) *HyphenRule {
	return &HyphenRule{RiskScore: score}
}

func (h *HyphenRule) Name() string {
	return "HyphenInDomain"
}

func (h *HyphenRule) Attack() models.AttackInfo {
	return attack.Lookup("Hyphen in domain")
}

func (h *HyphenRule) Evaluate(parts models.URLParts) (int, string) {
	if strings.Contains(parts.Domain, "-") {
		return h.RiskScore, "Hyphen in domain (may be suspicious)"
	}
	return 0, ""
}
