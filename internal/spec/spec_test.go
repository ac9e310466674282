package spec

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/bayneri/aqlplan/internal/planner"
)

func intPtr(v int) *int { return &v }

func validSpec() Spec {
	return Spec{
		APIVersion: APIVersionV1,
		Kind:       KindInspectionPlan,
		Metadata:   Metadata{Name: "incoming"},
		Lot:        Lot{Size: 2000},
		Inspection: Inspection{Level: "II", AQL: 1.5},
	}
}

func TestLoadDirect(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "direct.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := s.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if s.Defects == nil || *s.Defects != 3 {
		t.Fatalf("expected defects 3, got %v", s.Defects)
	}
	if s.ClassificationName() != "direct" || s.AcceptanceName() != "tiered" {
		t.Fatalf("unexpected strategies %s/%s", s.ClassificationName(), s.AcceptanceName())
	}
	if s.Metadata.Labels["supplier"] != "acme" {
		t.Fatalf("expected supplier label, got %v", s.Metadata.Labels)
	}
}

func TestLoadCodeLetter(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "code-letter.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := s.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	plan, err := planner.Build(s.Request(nil))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if plan.CodeLetter != "F" || plan.SampleSize != 32 || plan.AcceptNumber != 1 {
		t.Fatalf("unexpected plan %+v", plan)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join("testdata", "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	doc := `apiVersion: aqlplan.dev/v1
kind: InspectionPlan
metadata:
  name: x
lot:
  size: 10
inspection:
  level: II
  aql: 1.0
  clasification: code-letter
`
	if _, err := Parse([]byte(doc)); err == nil {
		t.Fatalf("expected unknown field error")
	}
	if _, err := Parse(nil); err == nil {
		t.Fatalf("expected empty document error")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Spec)
		wantErr string
	}{
		{"ok", func(*Spec) {}, ""},
		{"bad-kind", func(s *Spec) { s.Kind = "Plan" }, "kind must be"},
		{"no-name", func(s *Spec) { s.Metadata.Name = " " }, "metadata.name is required"},
		{"small-lot", func(s *Spec) { s.Lot.Size = 1 }, "lot.size must be at least 2"},
		{"code-letter-lot-one", func(s *Spec) {
			s.Lot.Size = 1
			s.Inspection.Level = "GI"
			s.Inspection.Classification = "code-letter"
		}, ""},
		{"missing-level", func(s *Spec) { s.Inspection.Level = "" }, "inspection.level is required"},
		{"wrong-family", func(s *Spec) { s.Inspection.Level = "GII" }, "invalid inspection level"},
		{"non-standard-tiered", func(s *Spec) { s.Inspection.AQL = 3.0 }, "not a standard AQL"},
		{"non-standard-rounding", func(s *Spec) {
			s.Inspection.AQL = 3.0
			s.Inspection.Acceptance = "rounding"
		}, ""},
		{"zero-aql", func(s *Spec) { s.Inspection.AQL = 0 }, "positive percentage"},
		{"unknown-classification", func(s *Spec) { s.Inspection.Classification = "table" }, "unknown classification strategy"},
		{"unknown-acceptance", func(s *Spec) { s.Inspection.Acceptance = "table" }, "unknown acceptance strategy"},
		{"negative-defects", func(s *Spec) { s.Defects = intPtr(-2) }, "defects must not be negative"},
		{"bad-label", func(s *Spec) { s.Metadata.Labels = map[string]string{"a=b": "c"} }, "invalid label key"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := validSpec()
			tc.mutate(&s)
			err := s.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("expected ok, got %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	err := Spec{}.Validate()
	if err == nil {
		t.Fatalf("expected errors")
	}
	for _, want := range []string{"apiVersion", "kind", "metadata.name", "lot.size", "inspection.level", "inspection.aql"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected %q in %v", want, err)
		}
	}
}

func TestRequestMergesLabels(t *testing.T) {
	s := validSpec()
	s.Metadata.Labels = map[string]string{"supplier": "acme", "line": "a"}
	req := s.Request(map[string]string{"line": "b"})
	if req.Labels["supplier"] != "acme" || req.Labels["line"] != "b" {
		t.Fatalf("unexpected labels %v", req.Labels)
	}
	if req.Classification != "direct" || req.Acceptance != "tiered" {
		t.Fatalf("unexpected strategies %s/%s", req.Classification, req.Acceptance)
	}
}

func TestParseLabels(t *testing.T) {
	labels, err := ParseLabels("team=qa, line=b")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if labels["team"] != "qa" || labels["line"] != "b" {
		t.Fatalf("unexpected labels %v", labels)
	}
	if _, err := ParseLabels("team"); err == nil {
		t.Fatalf("expected error for missing value")
	}
	empty, err := ParseLabels("  ")
	if err != nil || len(empty) != 0 {
		t.Fatalf("expected empty labels, got %v, %v", empty, err)
	}
}
