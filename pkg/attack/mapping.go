// Package attack maps triggered rule reasons to attack categories,
// prevention tips and OSI layers. The table is fixed at compile time.
package attack

import (
	"sort"
	"strings"

	"github.com/urlguard/go-urlguard/pkg/models"
)

// Separator joins deduplicated categories, tips and layers for display.
const Separator = "; "

// None is rendered when a set is empty after mapping.
const None = "N/A"

// Entry binds a reason keyword to its attack classification. Keys are
// matched case-insensitively as substrings of reason texts.
type Entry struct {
	Keyword string
	Info    models.AttackInfo
}

// Table is the fixed keyword mapping. In the current rule set no keyword is
// a substring of another's reason text, so each reason maps to exactly one
// entry.
var Table = []Entry{
	{"Long URL", models.AttackInfo{
		Category:   "Phishing / URL spoofing",
		Prevention: "Avoid clicking suspicious links; verify URL length and domain.",
		Layer:      "Application Layer",
	}},
	{"Long path", models.AttackInfo{
		Category:   "Path-based attacks",
		Prevention: "Limit URL length; check for unusual paths.",
		Layer:      "Application Layer",
	}},
	{"@", models.AttackInfo{
		Category:   "Phishing / Credential harvesting",
		Prevention: "Do not trust URLs with '@'; verify domain.",
		Layer:      "Application Layer",
	}},
	{"Hyphen in domain", models.AttackInfo{
		Category:   "Phishing / Brand impersonation",
		Prevention: "Verify domain spelling; avoid suspicious hyphens.",
		Layer:      "Application Layer",
	}},
	{"Suspicious word", models.AttackInfo{
		Category:   "Phishing / Credential theft",
		Prevention: "Do not enter credentials on suspicious sites.",
		Layer:      "Application Layer",
	}},
	{"IP address used as host", models.AttackInfo{
		Category:   "Direct IP attacks / Malware",
		Prevention: "Use domain names; avoid direct IP access.",
		Layer:      "Network Layer",
	}},
	{"Many subdomains", models.AttackInfo{
		Category:   "Subdomain takeover / phishing",
		Prevention: "Check certificate and domain authenticity.",
		Layer:      "Application Layer",
	}},
	{"High character entropy", models.AttackInfo{
		Category:   "Obfuscated URL / Malware",
		Prevention: "Be cautious with random-looking URLs; scan before visiting.",
		Layer:      "Application Layer",
	}},
}

// Lookup returns the attack classification for a table keyword. Rules use
// this as the single source of truth for the metadata they emit.
func Lookup(keyword string) models.AttackInfo {
	for _, e := range Table {
		if e.Keyword == keyword {
			return e.Info
		}
	}
	return models.AttackInfo{}
}

// Aggregate collects the attack metadata already carried by structured
// reasons into the three display strings. Sets are deduplicated
// independently and sorted before joining so output is deterministic.
func Aggregate(reasons []models.Reason) (attackTypes, preventionTips, osiLayers string) {
	var categories, tips, layers []string
	for _, r := range reasons {
		if r.Attack.Category != "" {
			categories = append(categories, r.Attack.Category)
		}
		if r.Attack.Prevention != "" {
			tips = append(tips, r.Attack.Prevention)
		}
		if r.Attack.Layer != "" {
			layers = append(layers, r.Attack.Layer)
		}
	}
	return render(categories), render(tips), render(layers)
}

// MapReasons maps plain reason texts through the keyword table. Callers
// holding structured reasons should prefer Aggregate; this path exists for
// consumers that only kept the text.
func MapReasons(reasons []string) (attackTypes, preventionTips, osiLayers string) {
	var categories, tips, layers []string
	for _, reason := range reasons {
		lower := strings.ToLower(reason)
		for _, e := range Table {
			if strings.Contains(lower, strings.ToLower(e.Keyword)) {
				categories = append(categories, e.Info.Category)
				tips = append(tips, e.Info.Prevention)
				layers = append(layers, e.Info.Layer)
			}
		}
	}
	return render(categories), render(tips), render(layers)
}

func render(values []string) string {
	if len(values) == 0 {
		return None
	}
	seen := make(map[string]struct{}, len(values))
	uniq := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		uniq = append(uniq, v)
	}
	sort.Strings(uniq)
	return strings.Join(uniq, Separator)
}
