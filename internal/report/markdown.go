package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/bayneri/aqlplan/internal/planner"
)

type Options struct {
	Explain bool
}

func WriteMarkdownSummary(path string, plan planner.Plan, opts Options) error {
	var b strings.Builder

	title := "Inspection plan"
	if plan.Name != "" {
		title = fmt.Sprintf("Inspection plan: %s", plan.Name)
	}
	fmt.Fprintf(&b, "# %s\n\n", title)
	fmt.Fprintf(&b, "- Lot size: %d\n", plan.LotSize)
	fmt.Fprintf(&b, "- Inspection level: %s\n", plan.Level)
	fmt.Fprintf(&b, "- AQL: %s%%\n", planner.FormatAQL(plan.AQL))
	fmt.Fprintf(&b, "- Classification: %s\n", plan.Classification)
	fmt.Fprintf(&b, "- Acceptance: %s\n", plan.Acceptance)
	if len(plan.Labels) > 0 {
		fmt.Fprintf(&b, "- Labels: %s\n", strings.Join(planner.SortedLabels(plan.Labels), ", "))
	}
	fmt.Fprintf(&b, "\n")

	fmt.Fprintf(&b, "| Code letter | Sample size | Accept (Ac) | Reject (Re) |\n")
	fmt.Fprintf(&b, "| --- | --- | --- | --- |\n")
	code := plan.CodeLetter
	if code == "" {
		code = "-"
	}
	fmt.Fprintf(&b, "| %s | %d | %d | %d |\n", code, plan.SampleSize, plan.AcceptNumber, plan.RejectNumber)

	if plan.Defects != nil {
		fmt.Fprintf(&b, "\n**Verdict: %s** (%d defect(s) observed)\n", plan.Verdict, *plan.Defects)
	}

	if len(plan.Notes) > 0 {
		fmt.Fprintf(&b, "\n## Notes\n")
		for _, note := range plan.Notes {
			fmt.Fprintf(&b, "- %s\n", note)
		}
	}

	if opts.Explain {
		fmt.Fprintf(&b, "\n## How computed\n\n")
		for _, line := range howComputed(plan) {
			fmt.Fprintf(&b, "- %s\n", line)
		}
	}

	return os.WriteFile(path, []byte(b.String()), 0644)
}

func howComputed(plan planner.Plan) []string {
	var out []string
	switch {
	case plan.RangeIndex != nil:
		out = append(out, fmt.Sprintf("Lot size %d falls in lot-size range #%d; level %s selects sample size %d.", plan.LotSize, *plan.RangeIndex+1, plan.Level, plan.SampleSize))
	case plan.CodeLetter != "":
		out = append(out, fmt.Sprintf("Lot size %d at level %s maps to code letter %s; code %s means sample size %d.", plan.LotSize, plan.Level, plan.CodeLetter, plan.CodeLetter, plan.SampleSize))
	}
	switch plan.Acceptance {
	case "rounding":
		out = append(out, "Formula: Ac = floor(sampleSize * aql / 100 + 0.5); Re = Ac + 1")
	case "tiered":
		out = append(out, "Formula: Ac = floor(sampleSize * aql / 100) with small-sample tiers at or below AQL 0.065; Re = Ac + 1")
	}
	return out
}
