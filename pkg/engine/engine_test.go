package engine

import (
	"reflect"
	"testing"

	"github.com/urlguard/go-urlguard/pkg/attack"
	"github.com/urlguard/go-urlguard/pkg/models"
)

func TestClassifyCleanURL(t *testing.T) {
	clf := New(nil)
	v := clf.Classify("http://example.com")

	if v.Score != 0 || v.Label != models.LabelSafe {
		t.Errorf("got score %d label %q, want 0/safe", v.Score, v.Label)
	}
	if len(v.Reasons) != 0 {
		t.Errorf("reasons = %v, want none", v.Reasons)
	}
	if v.AttackTypes != attack.None || v.PreventionTips != attack.None || v.OSILayers != attack.None {
		t.Errorf("empty sets should render as %q", attack.None)
	}
}

func TestClassifyPhishingSubdomain(t *testing.T) {
	clf := New(nil)
	v := clf.Classify("http://secure-login.example.com/verify?acct=1")

	// 'login' keyword (+2) plus high entropy (+1). The hyphen rule does
	// not fire: the hyphen sits in the subdomain, not the registrable
	// domain.
	if v.Score != 3 || v.Label != models.LabelMalicious {
		t.Errorf("got score %d label %q, want 3/malicious", v.Score, v.Label)
	}

	wantTexts := []string{
		"Suspicious word found: 'login'",
		"High character entropy (looks random/obfuscated)",
	}
	if !reflect.DeepEqual(v.ReasonTexts(), wantTexts) {
		t.Errorf("reasons = %v, want %v", v.ReasonTexts(), wantTexts)
	}
}

func TestClassifyIPHost(t *testing.T) {
	clf := New(nil)
	v := clf.Classify("http://192.168.1.1/admin")

	if v.Score != 2 || v.Label != models.LabelSafe {
		t.Errorf("got score %d label %q, want 2/safe", v.Score, v.Label)
	}
	if len(v.Reasons) != 1 || v.Reasons[0].Text != "IP address used as host" {
		t.Errorf("reasons = %v", v.ReasonTexts())
	}
	if v.OSILayers != "Network Layer" {
		t.Errorf("OSILayers = %q", v.OSILayers)
	}
}

func TestClassifyManySubdomains(t *testing.T) {
	clf := New(nil)
	v := clf.Classify("http://a.b.c.d.example.com")

	if v.Score != 1 {
		t.Errorf("score = %d, want 1", v.Score)
	}
	if len(v.Reasons) != 1 || v.Reasons[0].Rule != "ManySubdomains" {
		t.Errorf("reasons = %v", v.Reasons)
	}
}

func TestClassifySchemelessInput(t *testing.T) {
	clf := New(nil)
	v := clf.Classify("example.com/login")

	if v.URL != "example.com/login" {
		t.Errorf("verdict must keep the caller's input, got %q", v.URL)
	}
	found := false
	for _, r := range v.Reasons {
		if r.Text == "Suspicious word found: 'login'" {
			found = true
		}
	}
	if !found {
		t.Errorf("keyword rule did not fire after scheme normalization: %v", v.ReasonTexts())
	}
}

func TestThresholdBoundary(t *testing.T) {
	clf := New(nil)

	// Hyphen (+1) with 'bank' (+2) lands exactly on the threshold.
	if v := clf.Classify("http://bank-of.com"); v.Score != 3 || v.Label != models.LabelMalicious {
		t.Errorf("score 3 must be malicious, got %d/%s", v.Score, v.Label)
	}
	// IP host alone (+2) stays below it.
	if v := clf.Classify("http://192.168.1.1/admin"); v.Score != 2 || v.Label != models.LabelSafe {
		t.Errorf("score 2 must be safe, got %d/%s", v.Score, v.Label)
	}
}

func TestAtSignMonotonic(t *testing.T) {
	clf := New(nil)

	base := clf.Classify("http://example.com")
	withAt := clf.Classify("http://example.com/@user")

	if withAt.Score != base.Score+1 {
		t.Errorf("adding '@' should add exactly 1: base %d, with '@' %d", base.Score, withAt.Score)
	}
	if len(withAt.Reasons) != 1 || withAt.Reasons[0].Rule != "AtSign" {
		t.Errorf("reasons = %v", withAt.Reasons)
	}
}

func TestClassifyIdempotent(t *testing.T) {
	clf := New(nil)
	first := clf.Classify("http://secure-login.example.com/verify?acct=1")
	second := clf.Classify("http://secure-login.example.com/verify?acct=1")

	if !reflect.DeepEqual(first, second) {
		t.Errorf("classification is not idempotent:\n%+v\n%+v", first, second)
	}
}

func TestClassifyGarbageInput(t *testing.T) {
	clf := New(nil)

	for _, raw := range []string{"", "%%%", "   "} {
		v := clf.Classify(raw)
		if v.Label != models.LabelSafe || v.Score != 0 {
			t.Errorf("Classify(%q) = %d/%s, want 0/safe", raw, v.Score, v.Label)
		}
	}
}

func TestAggregationMatchesTextMapper(t *testing.T) {
	clf := New(nil)
	v := clf.Classify("http://user@bank-site.com")

	attacks, tips, layers := attack.MapReasons(v.ReasonTexts())
	if v.AttackTypes != attacks || v.PreventionTips != tips || v.OSILayers != layers {
		t.Errorf("structured aggregation diverges from text mapping:\n(%q, %q, %q)\n(%q, %q, %q)",
			v.AttackTypes, v.PreventionTips, v.OSILayers, attacks, tips, layers)
	}
}

func TestClassifyBatchPreservesOrder(t *testing.T) {
	clf := New(nil)
	urls := []string{
		"http://example.com",
		"http://secure-login.example.com/verify?acct=1",
		"http://192.168.1.1/admin",
		"example.com/login",
	}

	for _, workers := range []int{0, 1, 4} {
		verdicts := clf.ClassifyBatch(urls, workers)
		if len(verdicts) != len(urls) {
			t.Fatalf("workers=%d: got %d verdicts", workers, len(verdicts))
		}
		for i, u := range urls {
			if verdicts[i].URL != u {
				t.Errorf("workers=%d: verdict %d is for %q, want %q", workers, i, verdicts[i].URL, u)
			}
			if want := clf.Classify(u); !reflect.DeepEqual(verdicts[i], want) {
				t.Errorf("workers=%d: batch verdict differs from single classification for %q", workers, u)
			}
		}
	}
}

type alwaysRule struct{}

func (alwaysRule) Name() string              { return "Always" }
func (alwaysRule) Attack() models.AttackInfo { return models.AttackInfo{Category: "Test"} }
func (alwaysRule) Evaluate(models.URLParts) (int, string) {
	return 5, "always fires"
}

func TestAddRule(t *testing.T) {
	clf := New(nil)
	clf.AddRule(alwaysRule{})

	v := clf.Classify("http://example.com")
	if v.Score != 5 || v.Label != models.LabelMalicious {
		t.Errorf("custom rule not applied: %d/%s", v.Score, v.Label)
	}
	if v.Reasons[len(v.Reasons)-1].Rule != "Always" {
		t.Errorf("custom rule must evaluate last, got %v", v.Reasons)
	}
}
