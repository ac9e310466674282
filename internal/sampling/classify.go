package sampling

import (
	"fmt"
	"sort"
)

const (
	MinDirectLotSize     = 2
	MinCodeLetterLotSize = 1
)

// RangeIndex returns the position in DirectRanges that contains lotSize.
func RangeIndex(lotSize int) (int, error) {
	if lotSize < MinDirectLotSize {
		return 0, fmt.Errorf("%w: %d < %d", ErrLotSizeBelowMinimum, lotSize, MinDirectLotSize)
	}
	for i, r := range DirectRanges {
		if r.Contains(lotSize) {
			return i, nil
		}
	}
	return len(DirectRanges) - 1, nil
}

func ClassifyDirect(lotSize int, level Level) (int, error) {
	if !level.Valid() {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, string(level))
	}
	index, err := RangeIndex(lotSize)
	if err != nil {
		return 0, err
	}
	return sampleSizeAt(progressionFor(level), index), nil
}

func progressionFor(level Level) []int {
	if level.Special() {
		return SpecialSampleSizes
	}
	return GeneralSampleSizes
}

func sampleSizeAt(progression []int, index int) int {
	if index >= len(progression) {
		index = len(progression) - 1
	}
	return progression[index]
}

// CodeStep returns the code-letter step for lotSize, 0 for lots up to the first
// breakpoint and len(CodeBreakpoints) for lots above the last one.
func CodeStep(lotSize int) (int, error) {
	if lotSize < MinCodeLetterLotSize {
		return 0, fmt.Errorf("%w: %d < %d", ErrLotSizeBelowMinimum, lotSize, MinCodeLetterLotSize)
	}
	return sort.SearchInts(CodeBreakpoints, lotSize), nil
}

func ClassifyCodeLetter(lotSize int, level CodeLevel) (CodeLetter, error) {
	offset := level.offset()
	if offset < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, string(level))
	}
	step, err := CodeStep(lotSize)
	if err != nil {
		return 0, err
	}
	return CodeAlphabet[step+offset], nil
}

func SampleSizeForCode(code CodeLetter) (int, error) {
	size, ok := CodeSampleSize(code)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCode, code.String())
	}
	return size, nil
}
