package models

// Labels assigned by the classifier. The threshold between them is fixed
// policy owned by the engine, not configurable by callers.
const (
	LabelSafe      = "safe"
	LabelMalicious = "malicious"
)

// AttackInfo is the classification metadata a rule attaches to its reason:
// the attack category it indicates, a prevention tip, and the OSI layer the
// attack operates at. The layer is explanatory only and never scored.
type AttackInfo struct {
	Category   string `json:"category"`
	Prevention string `json:"prevention"`
	Layer      string `json:"layer"`
}

// Reason represents a single rule that was triggered during evaluation.
// Each reason is self-explanatory and carries its attack metadata directly,
// so consumers never have to re-derive the category from the text.
type Reason struct {
	// Rule is the unique name of the triggered rule.
	Rule string `json:"rule"`

	// Score is the points this rule added to the total.
	Score int `json:"score"`

	// Text is the human-readable explanation of why the rule triggered.
	Text string `json:"text"`

	// Attack is the rule's static attack classification.
	Attack AttackInfo `json:"attack"`
}

// Verdict is the complete classification output for one URL.
//
// The scoring is a pure sum over independent rules; the verdict carries the
// itemized reasons so the decision stays explainable. AttackTypes,
// PreventionTips and OSILayers are the deduplicated, sorted unions of the
// triggered rules' metadata, joined with "; ", or "N/A" when nothing fired.
type Verdict struct {
	// URL is the input string exactly as the caller provided it.
	URL string `json:"url"`

	// Label is "malicious" when Score reaches the engine threshold,
	// otherwise "safe".
	Label string `json:"label"`

	// Score is the sum of all triggered rule deltas.
	Score int `json:"score"`

	// Reasons lists the triggered rules in evaluation order.
	Reasons []Reason `json:"reasons"`

	AttackTypes    string `json:"attack_types"`
	PreventionTips string `json:"prevention_tips"`
	OSILayers      string `json:"osi_layers"`

	// HostCountry and HostNetwork are filled only when the host is an IP
	// literal and a GeoIP service is configured on the engine.
	HostCountry string `json:"host_country,omitempty"`
	HostNetwork string `json:"host_network,omitempty"`
}

// ReasonTexts returns the reason strings in evaluation order.
func (v *Verdict) ReasonTexts() []string {
	out := make([]string, 0, len(v.Reasons))
	for _, r := range v.Reasons {
		out = append(out, r.Text)
	}
	return out
}
