package rules

import (
	"github.com/urlguard/go-urlguard/pkg/attack"
	"github.com/urlguard/go-urlguard/pkg/models"
	"github.com/urlguard/go-urlguard/pkg/urlparts"
)

// IPHostRule flags URLs that address the server by raw IP instead of a
// domain name. The dotted-quad match is shape-only and does not validate
// octet ranges, so "999.999.999.999" still triggers it.
type IPHostRule struct {
	RiskScore int
}

func NewIPHostRule(score int) *IPHostRule {
	return &IPHostRule{RiskScore: score}
}

func (i *IPHostRule) Name() string {
	return "IPHost"
}

func (i *IPHostRule) Attack() models.AttackInfo {
	return attack.Lookup("IP address used as host")
}

func (i *IPHostRule) Evaluate(parts models.URLParts) (int, string) {
	if _, ok := urlparts.HostIPv4(parts.Host); ok {
		return i.RiskScore, "IP address used as host"
	}
	return 0, ""
}
