package explain

import (
	"fmt"
	"sort"
	"strings"
)

var topics = map[string]string{
	"aql": `AQL (Acceptance Quality Limit) is the worst percent-defective that is still accepted for routine inspection.

A sampling plan draws a sample from the lot and counts defects. The lot is accepted while the defect count stays at or below the accept number (Ac) and rejected once it reaches the reject number (Re). Here Re is always Ac + 1.`,

	"code-letters": `The code-letter classifier first maps the lot size and a general inspection level (GI, GII, GIII) to a code letter, then maps the letter to a sample size.

Each lot-size step moves one letter further along A B C D E F G H J K L M N P; GII is one letter past GI and GIII one past GII. I and O are never used. Sample sizes run from A=2 to P=1250.`,

	"strategies": `Two classifiers and two acceptance calculators are available.

direct: the lot size selects one of 15 ranges; General levels (I, II, III) and Special levels (S-1..S-4) each read a shared progression, clamped to its last entry.
code-letter: lot size and GI/GII/GIII select a code letter, which selects the sample size.

tiered: AQL must be one of the 15 standard values; Ac is the truncated expected defect count, with small-sample tiers at or below 0.065%.
rounding: any positive AQL; Ac is the expected defect count rounded half up.

Without an explicit acceptance strategy, direct pairs with tiered and code-letter pairs with rounding. The two calculators disagree for small samples at low AQL; pick the one matching the table your quality agreement cites.`,
}

func Topics() []string {
	var out []string
	for name := range topics {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func Topic(name string) (string, error) {
	text, ok := topics[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", fmt.Errorf("unknown explain topic %q (want one of %s)", name, strings.Join(Topics(), ", "))
	}
	return text, nil
}
