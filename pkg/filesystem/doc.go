// Package filesystem provides filesystem implementations for doksnet.
//
// All file access goes through afero.Fs so the store, the extractor and the
// workspace can run against the real disk in production and an in-memory
// filesystem in tests.
package filesystem
