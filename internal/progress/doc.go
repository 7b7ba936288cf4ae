// Package progress computes completion ratios and deadline urgency over a
// task collection.
//
// Everything here is a pure function of its arguments. In particular the
// urgency classifier takes "today" as an explicit parameter instead of
// consulting a clock, so callers and tests control time deterministically.
//
// Rounding policy: ratios are carried at full float64 precision everywhere;
// only Percent converts for display, rounding to one decimal of a percent.
// Any comparison against a threshold must use the unrounded ratio.
package progress
