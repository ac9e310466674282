package planner

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

func Render(w io.Writer, plan Plan) {
	if plan.Name != "" {
		fmt.Fprintf(w, "Plan: %s\n", plan.Name)
	}
	if len(plan.Labels) > 0 {
		fmt.Fprintf(w, "Labels: %s\n", strings.Join(SortedLabels(plan.Labels), ", "))
	}
	fmt.Fprintf(w, "Lot size: %d\n", plan.LotSize)
	fmt.Fprintf(w, "Inspection level: %s\n", plan.Level)
	fmt.Fprintf(w, "AQL: %s%%\n", FormatAQL(plan.AQL))
	fmt.Fprintf(w, "Strategy: %s / %s\n", plan.Classification, plan.Acceptance)
	if plan.CodeLetter != "" {
		fmt.Fprintf(w, "Code letter: %s\n", plan.CodeLetter)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintf(w, "Sample size: %d\n", plan.SampleSize)
	fmt.Fprintf(w, "Accept (Ac): %d\n", plan.AcceptNumber)
	fmt.Fprintf(w, "Reject (Re): %d\n", plan.RejectNumber)
	if plan.Defects != nil {
		fmt.Fprintf(w, "Observed defects: %d\n", *plan.Defects)
		fmt.Fprintf(w, "Verdict: %s\n", plan.Verdict)
	}

	fmt.Fprintln(w, "")
	for _, note := range plan.Notes {
		fmt.Fprintf(w, "- %s\n", note)
	}
}

// FormatAQL prints an AQL with the precision the standard tables use:
// three decimals below 0.1, two below 1, one otherwise.
func FormatAQL(aql float64) string {
	minDecimals := 1
	switch {
	case aql < 0.1:
		minDecimals = 3
	case aql < 1:
		minDecimals = 2
	}
	text := strconv.FormatFloat(aql, 'f', -1, 64)
	decimals := 0
	if dot := strings.IndexByte(text, '.'); dot >= 0 {
		decimals = len(text) - dot - 1
	} else {
		text += "."
	}
	if decimals < minDecimals {
		text += strings.Repeat("0", minDecimals-decimals)
	}
	return text
}
