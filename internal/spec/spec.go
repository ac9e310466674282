package spec

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/bayneri/aqlplan/internal/acceptance"
	"github.com/bayneri/aqlplan/internal/planner"
	"github.com/bayneri/aqlplan/internal/sampling"
)

const (
	APIVersionV1       = "aqlplan.dev/v1"
	KindInspectionPlan = "InspectionPlan"
)

// Spec describes the inspection of a single lot.
type Spec struct {
	APIVersion string     `yaml:"apiVersion"`
	Kind       string     `yaml:"kind"`
	Metadata   Metadata   `yaml:"metadata"`
	Lot        Lot        `yaml:"lot"`
	Inspection Inspection `yaml:"inspection"`
	Defects    *int       `yaml:"defects"`
}

type Metadata struct {
	Name   string            `yaml:"name"`
	Labels map[string]string `yaml:"labels"`
}

type Lot struct {
	Size int `yaml:"size"`
}

type Inspection struct {
	Level          string  `yaml:"level"`
	AQL            float64 `yaml:"aql"`
	Classification string  `yaml:"classification"`
	Acceptance     string  `yaml:"acceptance"`
}

func (s Spec) ClassificationName() string {
	name := strings.ToLower(strings.TrimSpace(s.Inspection.Classification))
	if name == "" {
		return sampling.StrategyDirect
	}
	return name
}

func (s Spec) AcceptanceName() string {
	name := strings.ToLower(strings.TrimSpace(s.Inspection.Acceptance))
	if name == "" {
		return planner.DefaultAcceptance(s.ClassificationName())
	}
	return name
}

func (s Spec) Validate() error {
	var errs []string
	if s.APIVersion != APIVersionV1 {
		errs = append(errs, fmt.Sprintf("apiVersion must be %q", APIVersionV1))
	}
	if s.Kind != KindInspectionPlan {
		errs = append(errs, fmt.Sprintf("kind must be %q", KindInspectionPlan))
	}
	if strings.TrimSpace(s.Metadata.Name) == "" {
		errs = append(errs, "metadata.name is required")
	}
	if msg := validateLabels(s.Metadata.Labels); msg != "" {
		errs = append(errs, "metadata.labels: "+msg)
	}

	classification := s.ClassificationName()
	if _, err := sampling.ClassifierFor(classification); err != nil {
		errs = append(errs, "inspection.classification: "+err.Error())
	} else if msg := validateLotSize(classification, s.Lot.Size); msg != "" {
		errs = append(errs, msg)
	}
	if msg := validateLevel(classification, s.Inspection.Level); msg != "" {
		errs = append(errs, msg)
	}

	acceptanceName := s.AcceptanceName()
	if _, err := acceptance.CalculatorFor(acceptanceName); err != nil {
		errs = append(errs, "inspection.acceptance: "+err.Error())
	} else if msg := validateAQL(acceptanceName, s.Inspection.AQL); msg != "" {
		errs = append(errs, msg)
	}

	if s.Defects != nil && *s.Defects < 0 {
		errs = append(errs, "defects must not be negative")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func validateLotSize(classification string, size int) string {
	minimum := sampling.MinDirectLotSize
	if classification == sampling.StrategyCodeLetter {
		minimum = sampling.MinCodeLetterLotSize
	}
	if size < minimum {
		return fmt.Sprintf("lot.size must be at least %d for %s classification", minimum, classification)
	}
	return ""
}

func validateLevel(classification, level string) string {
	if strings.TrimSpace(level) == "" {
		return "inspection.level is required"
	}
	var err error
	switch classification {
	case sampling.StrategyDirect:
		_, err = sampling.ParseLevel(level)
	case sampling.StrategyCodeLetter:
		_, err = sampling.ParseCodeLevel(level)
	default:
		return ""
	}
	if err != nil {
		return "inspection.level: " + err.Error()
	}
	return ""
}

func validateAQL(acceptanceName string, aql float64) string {
	if math.IsNaN(aql) || math.IsInf(aql, 0) || aql <= 0 {
		return "inspection.aql must be a positive percentage"
	}
	if acceptanceName == acceptance.StrategyTiered && !acceptance.IsStandardAQL(aql) {
		return fmt.Sprintf("inspection.aql %v is not a standard AQL (tiered acceptance)", aql)
	}
	return ""
}

// Request converts a validated spec into a planner request. Extra labels
// override labels from the document.
func (s Spec) Request(extraLabels map[string]string) planner.Request {
	return planner.Request{
		Name:           s.Metadata.Name,
		LotSize:        s.Lot.Size,
		Level:          s.Inspection.Level,
		AQL:            s.Inspection.AQL,
		Defects:        s.Defects,
		Classification: s.ClassificationName(),
		Acceptance:     s.AcceptanceName(),
		Labels:         MergeLabels(s.Metadata.Labels, extraLabels),
	}
}
