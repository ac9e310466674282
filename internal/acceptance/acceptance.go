package acceptance

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidAQL   = errors.New("invalid AQL level")
	ErrInvalidInput = errors.New("invalid acceptance input")
)

// Result holds the decision points for one sample. RejectNumber is always
// AcceptNumber+1.
type Result struct {
	SampleSize   int `json:"sampleSize" yaml:"sampleSize"`
	AcceptNumber int `json:"acceptNumber" yaml:"acceptNumber"`
	RejectNumber int `json:"rejectNumber" yaml:"rejectNumber"`
}

func newResult(sampleSize, accept int) Result {
	return Result{SampleSize: sampleSize, AcceptNumber: accept, RejectNumber: accept + 1}
}

// floatSlack absorbs binary representation error so that products such as
// 1250 * 0.4 / 100 land on the integer they denote.
const floatSlack = 1e-9

func expectedDefects(sampleSize int, aqlPercent float64) float64 {
	return float64(sampleSize) * (aqlPercent / 100)
}

// maxAccept keeps RejectNumber representable. float64(math.MaxInt) is 2^63,
// the first value int conversion cannot hold.
const maxAccept = float64(math.MaxInt)

func floorTolerant(value float64) (int, error) {
	floored := math.Floor(value + floatSlack)
	if floored >= maxAccept {
		return 0, fmt.Errorf("%w: accept number %g overflows", ErrInvalidInput, floored)
	}
	return int(floored), nil
}

func validateInput(sampleSize int, aqlPercent float64) error {
	if sampleSize < 1 {
		return fmt.Errorf("%w: sample size %d must be at least 1", ErrInvalidInput, sampleSize)
	}
	if math.IsNaN(aqlPercent) || math.IsInf(aqlPercent, 0) || aqlPercent <= 0 {
		return fmt.Errorf("%w: AQL %v must be a positive percentage", ErrInvalidInput, aqlPercent)
	}
	return nil
}

// ComputeAccept rounds the expected defect count at the AQL rate half up.
func ComputeAccept(sampleSize int, aqlPercent float64) (Result, error) {
	if err := validateInput(sampleSize, aqlPercent); err != nil {
		return Result{}, err
	}
	accept, err := floorTolerant(expectedDefects(sampleSize, aqlPercent) + 0.5)
	if err != nil {
		return Result{}, err
	}
	return newResult(sampleSize, accept), nil
}

// ComputeAcceptTiered applies the clamped table used alongside the direct
// lot-size classifier. aqlPercent must be one of StandardAQLs.
//
// At or below 0.065% the sample size picks a tier: up to 8 units never accept
// a defect, up to 32 units accept one only at exactly 0.065%, and larger
// samples truncate the expected count. Above 0.065% the expected count is
// always truncated.
func ComputeAcceptTiered(sampleSize int, aqlPercent float64) (Result, error) {
	if sampleSize < 1 {
		return Result{}, fmt.Errorf("%w: sample size %d must be at least 1", ErrInvalidInput, sampleSize)
	}
	entry, ok := LimitFor(aqlPercent)
	if !ok {
		return Result{}, fmt.Errorf("%w: %v is not a standard AQL", ErrInvalidAQL, aqlPercent)
	}
	aql := entry.AQL
	expected := expectedDefects(sampleSize, aql)

	if aql > TieredThreshold {
		accept, err := floorTolerant(expected)
		if err != nil {
			return Result{}, err
		}
		return newResult(sampleSize, accept), nil
	}
	switch {
	case sampleSize <= 8:
		return newResult(sampleSize, 0), nil
	case sampleSize <= 32:
		accept := 0
		if aql >= TieredThreshold {
			accept = 1
		}
		return newResult(sampleSize, accept), nil
	default:
		if expected+floatSlack < 1 {
			return newResult(sampleSize, 0), nil
		}
		accept, err := floorTolerant(expected)
		if err != nil {
			return Result{}, err
		}
		return newResult(sampleSize, accept), nil
	}
}
