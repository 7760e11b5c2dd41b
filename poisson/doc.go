// Package poisson computes asymmetric confidence intervals for
// sequences of Poisson counts.
//
// 🚀 What does poisson do?
//
//	A bin holding N events is a Poisson observation, and for small N the
//	familiar ±sqrt(N) bar is simply wrong: it dips below zero and it
//	understates the upward reach. poisson implements the Garwood
//	construction, reading both limits off gamma-distribution quantiles:
//
//	  lower_i = N_i − Q(α/2;   shape = N_i)
//	  upper_i = Q(1−α/2; shape = N_i+1) − N_i
//
//	with α = 1 − confidence and Q the gamma inverse CDF at unit scale
//	(gonum/stat/distuv). A zero count has no downward reach at all: its
//	lower bar is clamped to 0.
//
// ✨ Key properties:
//   - two kinds: Gamma (default, exact at low counts) and Sqrt (symmetric fallback)
//   - every returned bar is ≥ 0, lower and upper always match the input length
//   - counts are validated at the boundary: negative or fractional counts are rejected
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/histbin/poisson"
//
//	lower, upper, err := poisson.Interval(counts, poisson.Gamma, poisson.DefaultConfidence)
//	if err != nil {
//	  // handle ErrUnknownKind, ErrBadCount, ErrBadConfidence
//	}
//
// Complexity: O(n) gamma quantile evaluations, no allocation beyond the
// two result slices.
package poisson
