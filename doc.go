// Package histbin turns raw samples of counting data into statistically
// honest histogram points — bin centers, bin values and asymmetric
// Poisson error bars — ready for comparison against a model curve or a
// second dataset.
//
// 🚀 What is histbin?
//
//	A small numeric library for scientific plotting of counting data,
//	where the usual symmetric sqrt(N) error bars lie to you at low
//	counts. It brings together:
//		• Bin-count estimation: Freedman–Diaconis rule with a hard cap
//		• Poisson intervals: asymmetric Garwood (gamma) limits, sqrt fallback
//		• Histogram building: uniform bins, normalization, scaling
//		• Pulls: standardized residuals with sign-aware error propagation
//		• Rendering: a gonum/plot adapter for points, curves and pull panels
//
// ✨ Why choose histbin?
//
//   - Correct at low counts – gamma intervals instead of sqrt(N) bars
//   - Pure functions – every call is independent, no ambient state
//   - Explicit configuration – immutable Options records, no globals
//   - Pluggable drawing – the core hands numeric series to any Renderer
//
// Under the hood, everything is organized under five subpackages:
//
//	binning/   — data-driven bin-count estimation (Freedman–Diaconis)
//	poisson/   — asymmetric confidence intervals for Poisson counts
//	histogram/ — the builder: aggregation, errors, normalization, scaling
//	pull/      — per-bin standardized residuals (data vs model, data vs data)
//	render/    — gonum/plot backend: error-bar series, split pull panels
//
// Quick sketch:
//
//	┃   ●
//	┃  ╱ ╲●
//	┃ ●    ╲___      ← histogram points vs. fitted curve
//	┗━━━━━━━━━━━
//	┃ ∙ ∙ ∙ ∙ ∙      ← per-bin pulls, clipped to ±5
//	┗━━━━━━━━━━━
//
// Dive into the per-package doc.go files for the exact contracts, and
// into examples/ for runnable end-to-end scenarios.
//
//	go get github.com/katalvlaran/histbin
package histbin
