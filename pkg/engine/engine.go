// Package engine composes decomposition, rule evaluation and attack
// mapping into the URL classifier.
package engine

import (
	"golang.org/x/sync/errgroup"

	"github.com/urlguard/go-urlguard/pkg/attack"
	"github.com/urlguard/go-urlguard/pkg/geoip"
	"github.com/urlguard/go-urlguard/pkg/models"
	"github.com/urlguard/go-urlguard/pkg/rules"
	"github.com/urlguard/go-urlguard/pkg/urlparts"
)

// maliciousThreshold is fixed policy: a score at or above it flips the
// label to malicious. Not configurable.
const maliciousThreshold = 3

// Classifier is the URL risk analysis engine.
//
// Architecture principles, carried over from explainable-risk engines:
//   - The engine is rule-agnostic: no type-switching on concrete rules.
//   - The engine owns all GeoIP interactions; rules see only URL parts.
//   - Explainable: every point in the score is itemized as a Reason.
//   - Pure per call: no shared mutable state between classifications, so
//     the same input always yields the same verdict.
//
// Usage:
//
//	clf := engine.New(nil)
//	verdict := clf.Classify("http://secure-login.example.com/verify")
type Classifier struct {
	geoService *geoip.Service
	rules      []rules.Rule
}

// New creates a Classifier preloaded with the default rule set.
//
// geoService may be nil; verdicts then carry no host enrichment and the
// classifier performs no I/O of any kind.
func New(geoService *geoip.Service) *Classifier {
	return &Classifier{
		geoService: geoService,
		rules:      rules.DefaultRules(),
	}
}

// AddRule appends a custom rule after the default set. Rules are evaluated
// in the order they were added.
func (c *Classifier) AddRule(r rules.Rule) {
	c.rules = append(c.rules, r)
}

// Classify scores a single raw URL and returns the full verdict.
//
// It is total over string input: empty strings and non-URL garbage degrade
// to a zero-score safe verdict, never an error.
func (c *Classifier) Classify(raw string) models.Verdict {
	parts := urlparts.Decompose(raw)

	score := 0
	reasons := make([]models.Reason, 0, len(c.rules))
	for _, rule := range c.rules {
		delta, text := rule.Evaluate(parts)
		if delta <= 0 {
			continue
		}
		score += delta
		reasons = append(reasons, models.Reason{
			Rule:   rule.Name(),
			Score:  delta,
			Text:   text,
			Attack: rule.Attack(),
		})
	}

	label := models.LabelSafe
	if score >= maliciousThreshold {
		label = models.LabelMalicious
	}

	attackTypes, preventionTips, osiLayers := attack.Aggregate(reasons)

	verdict := models.Verdict{
		URL:            raw,
		Label:          label,
		Score:          score,
		Reasons:        reasons,
		AttackTypes:    attackTypes,
		PreventionTips: preventionTips,
		OSILayers:      osiLayers,
	}

	c.enrichHost(parts, &verdict)
	return verdict
}

// ClassifyBatch scores every URL in the input, preserving input order.
// workers caps concurrent evaluations; values below 1 mean sequential.
// Classification is embarrassingly parallel: rules share no state.
func (c *Classifier) ClassifyBatch(urls []string, workers int) []models.Verdict {
	verdicts := make([]models.Verdict, len(urls))

	if workers < 1 {
		workers = 1
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for i, u := range urls {
		i, u := i, u // per-iteration copies; module targets go 1.21
		g.Go(func() error {
			verdicts[i] = c.Classify(u)
			return nil
		})
	}
	g.Wait() // rules never return errors

	return verdicts
}

// enrichHost attaches country and AS organization when the host is an IP
// literal and a GeoIP service is configured. Lookup failures leave the
// fields empty; enrichment never changes label or score.
func (c *Classifier) enrichHost(parts models.URLParts, verdict *models.Verdict) {
	if c.geoService == nil {
		return
	}
	ip, ok := urlparts.HostIPv4(parts.Host)
	if !ok {
		return
	}
	info, err := c.geoService.LookupHost(ip)
	if err != nil {
		return
	}
	verdict.HostCountry = info.CountryCode
	verdict.HostNetwork = info.OrgName
}
