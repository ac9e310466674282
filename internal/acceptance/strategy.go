package acceptance

import (
	"fmt"
	"strings"
)

const (
	StrategyRounding = "rounding"
	StrategyTiered   = "tiered"
)

var Strategies = []string{StrategyRounding, StrategyTiered}

type Calculator interface {
	Name() string
	Compute(sampleSize int, aqlPercent float64) (Result, error)
}

type RoundingCalculator struct{}

func (RoundingCalculator) Name() string { return StrategyRounding }

func (RoundingCalculator) Compute(sampleSize int, aqlPercent float64) (Result, error) {
	return ComputeAccept(sampleSize, aqlPercent)
}

type TieredCalculator struct{}

func (TieredCalculator) Name() string { return StrategyTiered }

func (TieredCalculator) Compute(sampleSize int, aqlPercent float64) (Result, error) {
	return ComputeAcceptTiered(sampleSize, aqlPercent)
}

func CalculatorFor(name string) (Calculator, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case StrategyRounding:
		return RoundingCalculator{}, nil
	case StrategyTiered:
		return TieredCalculator{}, nil
	default:
		return nil, fmt.Errorf("unknown acceptance strategy %q (want %s)", name, strings.Join(Strategies, " or "))
	}
}
