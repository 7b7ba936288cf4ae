// Package store is the persistence adapter: it moves the application state
// between memory and durable storage.
//
// Two formats are supported:
//
//   - The state document: a versioned, self-describing JSON file holding
//     the full AppState. Save is atomic from the caller's perspective (temp
//     file + rename), so a crashed write leaves the prior document intact.
//     Load validates the document against an embedded CUE schema before
//     decoding; the schema is open, so unknown keys written by a newer
//     version are ignored rather than rejected.
//
//   - CSV import/export of the task list, with a fixed documented column
//     order. Export is deterministic and round-trips through import modulo
//     regenerated task ids. Import validates each row through the task
//     record rules; a bad row is skipped and reported, never fatal.
//
// Errors are discriminated by code: a missing file (NOT_FOUND) is a normal
// first run, a present-but-unreadable file (CORRUPT_DATA) must be surfaced
// to the user, and a CSV without the required header is BAD_FORMAT.
package store
