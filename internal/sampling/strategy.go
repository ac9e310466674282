package sampling

import (
	"fmt"
	"strings"
)

const (
	StrategyDirect     = "direct"
	StrategyCodeLetter = "code-letter"
)

// Classification is the outcome of mapping one lot to a sample size.
// RangeIndex is set by the direct strategy and CodeLetter by the code-letter
// strategy; the other is left at its zero value.
type Classification struct {
	Strategy   string
	LotSize    int
	Level      string
	RangeIndex int
	CodeLetter CodeLetter
	SampleSize int
}

// Classifier maps a lot size and a level name to a sample size. The level is
// parsed against the family the classifier understands.
type Classifier interface {
	Name() string
	Classify(lotSize int, level string) (Classification, error)
}

type DirectClassifier struct{}

func (DirectClassifier) Name() string { return StrategyDirect }

func (DirectClassifier) Classify(lotSize int, level string) (Classification, error) {
	parsed, err := ParseLevel(level)
	if err != nil {
		return Classification{}, err
	}
	index, err := RangeIndex(lotSize)
	if err != nil {
		return Classification{}, err
	}
	size, err := ClassifyDirect(lotSize, parsed)
	if err != nil {
		return Classification{}, err
	}
	return Classification{
		Strategy:   StrategyDirect,
		LotSize:    lotSize,
		Level:      string(parsed),
		RangeIndex: index,
		SampleSize: size,
	}, nil
}

type CodeLetterClassifier struct{}

func (CodeLetterClassifier) Name() string { return StrategyCodeLetter }

func (CodeLetterClassifier) Classify(lotSize int, level string) (Classification, error) {
	parsed, err := ParseCodeLevel(level)
	if err != nil {
		return Classification{}, err
	}
	code, err := ClassifyCodeLetter(lotSize, parsed)
	if err != nil {
		return Classification{}, err
	}
	size, err := SampleSizeForCode(code)
	if err != nil {
		return Classification{}, err
	}
	return Classification{
		Strategy:   StrategyCodeLetter,
		LotSize:    lotSize,
		Level:      string(parsed),
		CodeLetter: code,
		SampleSize: size,
	}, nil
}

var Strategies = []string{StrategyDirect, StrategyCodeLetter}

func ClassifierFor(name string) (Classifier, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case StrategyDirect:
		return DirectClassifier{}, nil
	case StrategyCodeLetter:
		return CodeLetterClassifier{}, nil
	default:
		return nil, fmt.Errorf("unknown classification strategy %q (want %s)", name, strings.Join(Strategies, " or "))
	}
}
