// Package workspace owns the process-scoped scratch directory that receives
// repository clones.
//
// The directory is created once per process, used as the destination root for
// every clone, and removed best-effort at teardown. Removal failures are
// logged as warnings, never escalated.
package workspace
