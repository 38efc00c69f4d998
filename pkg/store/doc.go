// Package store holds link records and persists them to a flat file.
//
// The file is line oriented so generic text tools and version-control diffs
// work on it:
//
//	# doksnet link store
//	# fields: id|doc_partition|code_partition|doc_digest|code_digest|description
//	default_doc=README.md
//
//	<id>|README.md:3-5|main.go:10-20|<digest>|<digest>|Install instructions
//
// Fields are joined by "|" without escaping. Values that would need escaping
// are refused where they enter the store rather than written corrupt.
package store
