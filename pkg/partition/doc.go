// Package partition parses partition references and resolves them against a
// file tree.
//
// A partition reference addresses a contiguous slice of a file:
//
//	path[:start_line[-end_line]][@start_col-end_col]
//
// Lines and columns are 1-indexed and inclusive. Without a line segment the
// whole file is selected. Columns index into the selected lines as one flat
// sequence of characters, so "guide.md:3-7@1-50" is the first fifty
// characters of lines three to seven, terminators included.
//
// Extraction never normalizes whitespace or line endings: the slice is the
// exact text on disk, which is what makes drift detection sensitive to any
// change.
package partition
