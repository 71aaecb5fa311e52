package rules

import (
	"strings"

	"github.com/urlguard/go-urlguard/pkg/attack"
	"github.com/urlguard/go-urlguard/pkg/models"
)

// AtSignRule flags URLs containing '@'. Browsers treat everything before
// the '@' as userinfo, so "https://bank.com@evil.example" actually goes to
// evil.example.
type AtSignRule struct {
	RiskScore int
}

func NewAtSignRule(score int) *AtSignRule {
	return &AtSignRule{RiskScore: score}
}

func (a *AtSignRule) Name() string {
	return "AtSign"
}

func (a *AtSignRule) Attack() models.AttackInfo {
	return attack.Lookup("@")
}

func (a *AtSignRule) Evaluate(parts models.URLParts) (int, string) {
	if strings.Contains(strings.ToLower(parts.Full), "@") {
		return a.RiskScore, "Contains '@' (often used in obfuscation)"
	}
	return 0, ""
}
