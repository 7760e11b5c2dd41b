// Package histogram bins a raw numeric sample into histogram points:
// uniform bin centers, per-bin values and asymmetric Poisson error
// bars, with optional normalization and scaling.
//
// 🚀 What does histogram do?
//
//	Build is the module's workhorse. Given a sample and an immutable
//	Options record it:
//	  1. resolves the bin layout (explicit edges, explicit count, or
//	     Freedman–Diaconis auto-estimation via binning)
//	  2. aggregates the sample into raw integer counts over uniform,
//	     half-open bins (the last bin is closed; out-of-range samples
//	     are dropped)
//	  3. derives centers, the uniform width and the integral (area)
//	  4. computes Poisson error bars on the RAW counts — intervals are
//	     only meaningful before any rescaling
//	  5. resolves horizontal error bars (none / half bin width / fixed /
//	     per bin)
//	  6. normalizes to unit area and/or applies a scale factor to the
//	     values, both vertical bars and the area
//	  7. optionally hands the finished numeric series to a Renderer —
//	     fire-and-forget, the core never inspects what drawing does
//
// ✨ Key properties:
//   - every slice in a Result has exactly one entry per bin
//   - the input sample is read-only for the whole call
//   - no ambient state: two Builds with equal inputs give equal Results
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/histbin/histogram"
//
//	opts := histogram.DefaultOptions() // auto bins, gamma bars, scale 1
//	opts.Normalized = true
//	res, err := histogram.Build(sample, &opts)
//	if err != nil {
//	  // handle ErrEmptySample, ErrBadEdges, ...
//	}
//	// res.Centers, res.Values, res.Lower, res.Upper, res.Area
//
// Complexity: O(n + bins) plus the bin-count estimation sort when bins
// are auto-resolved.
package histogram
