package planner

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bayneri/aqlplan/internal/acceptance"
	"github.com/bayneri/aqlplan/internal/sampling"
)

type Request struct {
	Name           string
	LotSize        int
	Level          string
	AQL            float64
	Defects        *int
	Classification string
	Acceptance     string
	Labels         map[string]string
}

type Plan struct {
	Name           string             `json:"name,omitempty"`
	Labels         map[string]string  `json:"labels,omitempty"`
	LotSize        int                `json:"lotSize"`
	Level          string             `json:"level"`
	AQL            float64            `json:"aql"`
	Classification string             `json:"classification"`
	Acceptance     string             `json:"acceptance"`
	RangeIndex     *int               `json:"rangeIndex,omitempty"`
	CodeLetter     string             `json:"codeLetter,omitempty"`
	SampleSize     int                `json:"sampleSize"`
	AcceptNumber   int                `json:"acceptNumber"`
	RejectNumber   int                `json:"rejectNumber"`
	Defects        *int               `json:"defects,omitempty"`
	Verdict        acceptance.Verdict `json:"verdict,omitempty"`
	Notes          []string           `json:"notes"`
}

// DefaultAcceptance returns the acceptance strategy paired with a
// classification strategy when none is given.
func DefaultAcceptance(classification string) string {
	if strings.EqualFold(strings.TrimSpace(classification), sampling.StrategyCodeLetter) {
		return acceptance.StrategyRounding
	}
	return acceptance.StrategyTiered
}

// DefaultLevel returns General Inspection Level II in the notation of the
// given classification strategy.
func DefaultLevel(classification string) string {
	if strings.EqualFold(strings.TrimSpace(classification), sampling.StrategyCodeLetter) {
		return string(sampling.CodeLevelGII)
	}
	return string(sampling.LevelII)
}

func Build(req Request) (Plan, error) {
	classificationName := strings.TrimSpace(req.Classification)
	if classificationName == "" {
		classificationName = sampling.StrategyDirect
	}
	classifier, err := sampling.ClassifierFor(classificationName)
	if err != nil {
		return Plan{}, err
	}
	acceptanceName := strings.TrimSpace(req.Acceptance)
	if acceptanceName == "" {
		acceptanceName = DefaultAcceptance(classifier.Name())
	}
	calculator, err := acceptance.CalculatorFor(acceptanceName)
	if err != nil {
		return Plan{}, err
	}
	if req.Defects != nil && *req.Defects < 0 {
		return Plan{}, fmt.Errorf("%w: observed defects %d must not be negative", acceptance.ErrInvalidInput, *req.Defects)
	}

	level := req.Level
	if strings.TrimSpace(level) == "" {
		level = DefaultLevel(classifier.Name())
	}
	class, err := classifier.Classify(req.LotSize, level)
	if err != nil {
		return Plan{}, fmt.Errorf("classify lot: %w", err)
	}
	result, err := calculator.Compute(class.SampleSize, req.AQL)
	if err != nil {
		return Plan{}, fmt.Errorf("compute acceptance: %w", err)
	}

	plan := Plan{
		Name:           req.Name,
		Labels:         copyLabels(req.Labels),
		LotSize:        class.LotSize,
		Level:          class.Level,
		AQL:            req.AQL,
		Classification: classifier.Name(),
		Acceptance:     calculator.Name(),
		SampleSize:     result.SampleSize,
		AcceptNumber:   result.AcceptNumber,
		RejectNumber:   result.RejectNumber,
	}
	switch class.Strategy {
	case sampling.StrategyDirect:
		index := class.RangeIndex
		plan.RangeIndex = &index
	case sampling.StrategyCodeLetter:
		plan.CodeLetter = class.CodeLetter.String()
	}
	if req.Defects != nil {
		defects := *req.Defects
		plan.Defects = &defects
		plan.Verdict = result.Verdict(defects)
	}
	plan.Notes = notes(plan)
	return plan, nil
}

func notes(plan Plan) []string {
	out := []string{
		fmt.Sprintf("Inspect %d items from the lot of %d.", plan.SampleSize, plan.LotSize),
		fmt.Sprintf("Accept the lot if defects are <= %d.", plan.AcceptNumber),
		fmt.Sprintf("Reject the lot if defects are >= %d.", plan.RejectNumber),
	}
	if plan.SampleSize > plan.LotSize {
		out = append(out, "Sample size exceeds the lot size; inspect every item.")
	}
	return out
}

func copyLabels(labels map[string]string) map[string]string {
	if len(labels) == 0 {
		return nil
	}
	out := make(map[string]string, len(labels))
	for k, v := range labels {
		out[k] = v
	}
	return out
}

func SortedLabels(labels map[string]string) []string {
	var out []string
	for k, v := range labels {
		out = append(out, fmt.Sprintf("%s=%s", k, v))
	}
	sort.Strings(out)
	return out
}
