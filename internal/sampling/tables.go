package sampling

import "math"

// LotSizeRange is a closed interval of lot sizes. The last range of a table
// has High == math.MaxInt and stands for an unbounded upper end.
type LotSizeRange struct {
	Low  int
	High int
}

func (r LotSizeRange) Contains(lotSize int) bool {
	return lotSize >= r.Low && lotSize <= r.High
}

func (r LotSizeRange) Unbounded() bool {
	return r.High == math.MaxInt
}

var DirectRanges = []LotSizeRange{
	{2, 8}, {9, 15}, {16, 25}, {26, 50}, {51, 90},
	{91, 150}, {151, 280}, {281, 500}, {501, 1200},
	{1201, 3200}, {3201, 10000}, {10001, 35000},
	{35001, 150000}, {150001, 500000}, {500001, math.MaxInt},
}

// Sample-size progressions indexed by DirectRanges position. Both are shorter
// than DirectRanges; lookups clamp to the last entry.
var (
	GeneralSampleSizes = []int{2, 8, 20, 50, 125, 315, 800, 2000, 5000, 12500, 31500}
	SpecialSampleSizes = []int{2, 3, 5, 8, 13, 20, 32, 50, 80, 125, 200}
)

// CodeLetter is a sample-size code letter. I and O are never used.
type CodeLetter byte

func (c CodeLetter) String() string {
	return string(rune(c))
}

// CodeAlphabet is ordered by increasing sample size.
var CodeAlphabet = []CodeLetter{'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'J', 'K', 'L', 'M', 'N', 'P'}

var codeSampleSizes = map[CodeLetter]int{
	'A': 2, 'B': 5, 'C': 8, 'D': 13, 'E': 20, 'F': 32, 'G': 50,
	'H': 80, 'J': 125, 'K': 200, 'L': 315, 'M': 500, 'N': 800, 'P': 1250,
}

// CodeBreakpoints holds the inclusive upper lot size of each code-letter step.
// Lot sizes above the last breakpoint fall into a final open step.
var CodeBreakpoints = []int{50, 90, 150, 280, 500, 1200, 3200, 10000, 35000, 150000, 500000}

// CodeLetterSteps is the number of lot-size steps in the code-letter table.
func CodeLetterSteps() int {
	return len(CodeBreakpoints) + 1
}

func CodeSampleSize(code CodeLetter) (int, bool) {
	size, ok := codeSampleSizes[code]
	return size, ok
}
