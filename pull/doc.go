// Package pull computes per-bin standardized residuals ("pulls")
// between a histogram and a reference: a model curve evaluated at the
// bin centers, or a second histogram over the same bins.
//
// 🚀 What does pull do?
//
//	A pull answers, bin by bin, "how many error bars away is the data
//	from what I expected?". Because the error bars here are asymmetric,
//	the bar used depends on which side of the expectation the data sits:
//
//	  data vs model: r_i ≥ 0 → divide by the data's upper bar,
//	                 r_i < 0 → divide by the data's lower bar
//	  data vs data:  r_i ≥ 0 → √(upperA² + lowerB²),
//	                 r_i < 0 → √(lowerA² + upperB²)
//
// ✨ Key properties:
//   - pure functions of their inputs, nothing retained between calls
//   - zero-bar bins propagate NaN instead of panicking; Clip keeps NaN
//     so a display layer can decide what to do with it
//   - data-vs-data requires identical bin centers, enforced up front
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/histbin/pull"
//
//	pulls, err := pull.VersusModel(res, gaussian)
//	if err != nil {
//	  // handle ErrNilModel, ErrEmptyHistogram, ErrRaggedHistogram
//	}
//	clipped := pull.Clip(pulls, pull.DefaultClipBound) // display range ±5
//
// Complexity: O(bins) time, one result slice allocated per call.
package pull
