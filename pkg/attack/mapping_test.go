package attack

import (
	"strings"
	"testing"

	"github.com/urlguard/go-urlguard/pkg/models"
)

func TestLookup(t *testing.T) {
	info := Lookup("IP address used as host")
	if info.Category != "Direct IP attacks / Malware" {
		t.Errorf("Category = %q", info.Category)
	}
	if info.Layer != "Network Layer" {
		t.Errorf("Layer = %q", info.Layer)
	}

	if zero := Lookup("no such keyword"); zero != (models.AttackInfo{}) {
		t.Errorf("unknown keyword should return zero value, got %+v", zero)
	}
}

func TestMapReasonsEmpty(t *testing.T) {
	attacks, tips, layers := MapReasons(nil)
	if attacks != None || tips != None || layers != None {
		t.Errorf("got (%q, %q, %q), want all %q", attacks, tips, layers, None)
	}
}

func TestMapReasons(t *testing.T) {
	reasons := []string{
		"Long URL (>75 chars)",
		"Contains '@' (often used in obfuscation)",
	}
	attacks, tips, layers := MapReasons(reasons)

	// Sorted union of the two categories.
	wantAttacks := "Phishing / Credential harvesting" + Separator + "Phishing / URL spoofing"
	if attacks != wantAttacks {
		t.Errorf("attacks = %q, want %q", attacks, wantAttacks)
	}
	if !strings.Contains(tips, "verify URL length") || !strings.Contains(tips, "verify domain") {
		t.Errorf("tips = %q", tips)
	}

	// Both map to the application layer; duplicates collapse.
	if layers != "Application Layer" {
		t.Errorf("layers = %q, want single deduplicated entry", layers)
	}
}

func TestMapReasonsCaseInsensitive(t *testing.T) {
	attacks, _, _ := MapReasons([]string{"long url (>75 chars)"})
	if attacks != "Phishing / URL spoofing" {
		t.Errorf("attacks = %q", attacks)
	}
}

func TestAggregateMatchesMapReasons(t *testing.T) {
	// The structured path and the text path are two views of the same
	// table; for canonical reason texts they must agree.
	reasons := []models.Reason{
		{Text: "Hyphen in domain (may be suspicious)", Attack: Lookup("Hyphen in domain")},
		{Text: "Suspicious word found: 'bank'", Attack: Lookup("Suspicious word")},
		{Text: "Many subdomains", Attack: Lookup("Many subdomains")},
	}
	texts := []string{reasons[0].Text, reasons[1].Text, reasons[2].Text}

	a1, t1, l1 := Aggregate(reasons)
	a2, t2, l2 := MapReasons(texts)
	if a1 != a2 || t1 != t2 || l1 != l2 {
		t.Errorf("Aggregate (%q, %q, %q) != MapReasons (%q, %q, %q)",
			a1, t1, l1, a2, t2, l2)
	}
}

func TestAggregateEmpty(t *testing.T) {
	attacks, tips, layers := Aggregate(nil)
	if attacks != None || tips != None || layers != None {
		t.Errorf("got (%q, %q, %q), want all %q", attacks, tips, layers, None)
	}
}
