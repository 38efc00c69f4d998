// Package core implements the doksnet operations on a loaded link store.
//
// A Workspace holds the store for the duration of one command together with
// the filesystem and the project root that partitions are resolved against.
// The root is always the directory containing the store file.
//
// # Mutations
//
// Every mutating operation (Add, Edit, Remove, Accept, RemoveFailed) works
// in two phases:
//
//  1. Validate and extract: partitions are parsed, their content extracted
//     and digested, descriptions checked. Any failure returns before memory
//     or disk is touched.
//
//  2. Commit: the change is applied to a copy of the store, the copy is
//     written atomically, and only then does it replace the in-memory store.
//     A failed write leaves both the file and the Workspace unchanged.
package core
