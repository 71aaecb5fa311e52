package rules

import (
	"strings"

	"github.com/urlguard/go-urlguard/pkg/attack"
	"github.com/urlguard/go-urlguard/pkg/models"
)

// SubdomainRule flags hosts with deep subdomain chains, used to bury a
// trusted-looking brand label far from the real registrable domain.
type SubdomainRule struct {
	// MinDots is the minimum number of dots inside the subdomain part
	// for the rule to trigger (2 dots = at least 3 subdomain labels).
	MinDots   int
	RiskScore int
}

func NewSubdomainRule(minDots, score int) *SubdomainRule {
	return &SubdomainRule{MinDots: minDots, RiskScore: score}
}

func (s *SubdomainRule) Name() string {
	return "ManySubdomains"
}

func (s *SubdomainRule) Attack() models.AttackInfo {
	return attack.Lookup("Many subdomains")
}

func (s *SubdomainRule) Evaluate(parts models.URLParts) (int, string) {
	if parts.Subdomain != "" && strings.Count(parts.Subdomain, ".") >= s.MinDots {
		return s.RiskScore, "Many subdomains"
	}
	return 0, ""
}
