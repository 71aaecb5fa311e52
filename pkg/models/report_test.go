package models

import (
	"reflect"
	"testing"
)

func TestReportRow(t *testing.T) {
	v := Verdict{
		URL:            "http://bank-of.com",
		Label:          LabelMalicious,
		Score:          3,
		Reasons:        []Reason{{Rule: "HyphenInDomain", Score: 1, Text: "Hyphen in domain (may be suspicious)"}},
		AttackTypes:    "Phishing / Brand impersonation",
		PreventionTips: "Verify domain spelling; avoid suspicious hyphens.",
		OSILayers:      "Application Layer",
	}

	want := []string{
		"http://bank-of.com",
		"malicious (score=3)",
		"Hyphen in domain (may be suspicious)",
		"Phishing / Brand impersonation",
		"Verify domain spelling; avoid suspicious hyphens.",
		"Application Layer",
	}
	if got := v.ReportRow(); !reflect.DeepEqual(got, want) {
		t.Errorf("ReportRow() = %v, want %v", got, want)
	}
	if len(v.ReportRow()) != len(ReportColumns) {
		t.Errorf("row width %d != %d columns", len(v.ReportRow()), len(ReportColumns))
	}
}

func TestReasonSummaryEmpty(t *testing.T) {
	v := Verdict{Label: LabelSafe}
	if got := v.ReasonSummary(); got != NoFindings {
		t.Errorf("ReasonSummary() = %q, want %q", got, NoFindings)
	}
}
