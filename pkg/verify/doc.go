// Package verify re-checks link records against the working tree.
//
// Each record has two sides, documentation and code. A side is re-parsed,
// re-extracted and re-digested, then classified:
//
//   - pass: the current digest equals the stored one
//   - drift: the content changed
//   - missing: the file is gone, unreadable, or the partition no longer parses
//   - invalid_range: the file exists but the range points past its end
//
// A record passes only when both sides pass. Verification never mutates the
// store, and a failure on one side or one record does not affect the others.
package verify
