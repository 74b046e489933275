// Package inspect reads the contents of a local repository clone: a depth
// annotated file listing that skips git metadata, individual file contents,
// and a branch/commit summary sourced through go-git.
package inspect
