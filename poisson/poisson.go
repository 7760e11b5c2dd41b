package poisson

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// DefaultConfidence is the one-standard-deviation equivalent coverage
// used when callers have no reason to pick another level.
const DefaultConfidence = 0.6827

// Kind selects how per-count error bars are derived.
type Kind int

const (
	// Gamma derives asymmetric Garwood limits from gamma-distribution
	// quantiles. Correct down to zero counts.
	Gamma Kind = iota

	// Sqrt is the symmetric sqrt(N) fallback. Cheap, familiar, and
	// increasingly wrong as counts shrink.
	Sqrt
)

// String returns the selector spelling of k.
func (k Kind) String() string {
	switch k {
	case Gamma:
		return "gamma"
	case Sqrt:
		return "sqrt"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

var (
	// ErrUnknownKind indicates an unrecognized error-bar kind selector.
	ErrUnknownKind = errors.New("poisson: unknown errorbar kind")

	// ErrBadCount indicates a negative, fractional or non-finite count.
	ErrBadCount = errors.New("poisson: counts must be non-negative integers")

	// ErrBadConfidence indicates a confidence level outside (0, 1).
	ErrBadConfidence = errors.New("poisson: confidence must lie in (0, 1)")
)

// ParseKind maps a selector string to its Kind. Unknown selectors fail
// with an error naming the offending spelling.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "gamma":
		return Gamma, nil
	case "sqrt":
		return Sqrt, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Interval — asymmetric Poisson error bars for a count sequence
//
// Description:
//
//	Interval returns, for each count N_i, the downward and upward bar
//	lengths bounding a confidence region at the given level. Both bars
//	are always ≥ 0, and a zero count always has lower = 0 (a count
//	cannot fluctuate below zero, and the gamma quantile at shape 0 is
//	degenerate anyway).
//
// Kinds:
//   - Gamma — Garwood limits from gamma quantiles at unit scale.
//   - Sqrt  — lower_i = upper_i = sqrt(N_i), exactly.
//
// Errors:
//   - ErrUnknownKind   — kind is neither Gamma nor Sqrt.
//   - ErrBadConfidence — confidence outside (0, 1).
//   - ErrBadCount      — a count is negative, fractional, or not finite.
//
// The returned slices always match len(counts); a mismatch is a
// programming error inside this package and panics.
func Interval(counts []float64, kind Kind, confidence float64) (lower, upper []float64, err error) {
	if kind != Gamma && kind != Sqrt {
		return nil, nil, fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}
	if !(confidence > 0 && confidence < 1) {
		return nil, nil, fmt.Errorf("%w: got %v", ErrBadConfidence, confidence)
	}
	for _, n := range counts {
		if n < 0 || n != math.Trunc(n) || math.IsInf(n, 0) {
			return nil, nil, fmt.Errorf("%w: got %v", ErrBadCount, n)
		}
	}

	lower = make([]float64, len(counts))
	upper = make([]float64, len(counts))

	switch kind {
	case Gamma:
		alpha := 1 - confidence
		for i, n := range counts {
			if n > 0 {
				q := distuv.Gamma{Alpha: n, Beta: 1}.Quantile(alpha / 2)
				lower[i] = n - q
			}
			q := distuv.Gamma{Alpha: n + 1, Beta: 1}.Quantile(1 - alpha/2)
			upper[i] = q - n
		}
	case Sqrt:
		for i, n := range counts {
			e := math.Sqrt(n)
			lower[i] = e
			upper[i] = e
		}
	}

	if len(lower) != len(counts) || len(upper) != len(counts) {
		panic("poisson: interval length mismatch")
	}

	return lower, upper, nil
}
