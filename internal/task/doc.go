// Package task defines the task record: the single data entity the rest of
// the application computes over.
//
// A Task is an immutable-by-convention value. Construction goes through New,
// edits go through Apply, and both funnel every field through the same
// validation rules:
//   - title is non-empty after trimming whitespace
//   - weight is strictly positive (defaults to 1)
//   - estimated hours are non-negative
//   - tags are a set: NFC-normalized, trimmed, de-duplicated, sorted
//
// ID and CreatedAt are assigned once by New and cannot be altered through
// Apply: the Change type simply has no members for them, so an edit that
// would touch them does not compile.
package task
