package models

import (
	"fmt"
	"strings"
)

// ReportColumns is the canonical column order for tabular exports.
var ReportColumns = []string{"URL", "Result", "Reasons", "Attack Types", "Prevention", "Layer"}

// NoFindings is shown in place of reasons when nothing triggered.
const NoFindings = "No suspicious signs."

// Result renders the label and score as a single cell.
func (v *Verdict) Result() string {
	return fmt.Sprintf("%s (score=%d)", v.Label, v.Score)
}

// ReasonSummary joins the reason texts for display, or NoFindings.
func (v *Verdict) ReasonSummary() string {
	if len(v.Reasons) == 0 {
		return NoFindings
	}
	return strings.Join(v.ReasonTexts(), "; ")
}

// ReportRow renders the verdict as one row under ReportColumns.
func (v *Verdict) ReportRow() []string {
	return []string{
		v.URL,
		v.Result(),
		v.ReasonSummary(),
		v.AttackTypes,
		v.PreventionTips,
		v.OSILayers,
	}
}
