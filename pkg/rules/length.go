package rules

import (
	"fmt"

	"github.com/urlguard/go-urlguard/pkg/attack"
	"github.com/urlguard/go-urlguard/pkg/models"
)

// LongURLRule flags URLs longer than a fixed limit. Attackers pad URLs to
// push the real destination out of sight in the address bar.
type LongURLRule struct {
	MaxLen    int
	RiskScore int
}

func NewLongURLRule(maxLen, score int) *LongURLRule {
	return &LongURLRule{MaxLen: maxLen, RiskScore: score}
}

func (l *LongURLRule) Name() string {
	return "LongURL"
}

func (l *LongURLRule) Attack() models.AttackInfo {
	return attack.Lookup("Long URL")
}

func (l *LongURLRule) Evaluate(parts models.URLParts) (int, string) {
	if len(parts.Full) > l.MaxLen {
		return l.RiskScore, fmt.Sprintf("Long URL (>%d chars)", l.MaxLen)
	}
	return 0, ""
}

// LongPathRule flags unusually long path components.
type LongPathRule struct {
	MaxLen    int
	RiskScore int
}

func NewLongPathRule(maxLen, score int) *LongPathRule {
	return &LongPathRule{MaxLen: maxLen, RiskScore: score}
}

func (l *LongPathRule) Name() string {
	return "LongPath"
}

func (l *LongPathRule) Attack() models.AttackInfo {
	return attack.Lookup("Long path")
}

func (l *LongPathRule) Evaluate(parts models.URLParts) (int, string) {
	if len(parts.Path) > l.MaxLen {
		return l.RiskScore, fmt.Sprintf("Long path (>%d chars)", l.MaxLen)
	}
	return 0, ""
}
