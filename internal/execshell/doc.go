// Package execshell provides structured helpers for invoking external tools.
//
// It wraps os/exec with logging via ShellExecutor, exposes OSCommandRunner for
// default process execution, and defines the abstractions hubdesk uses to run
// the git binary in a testable manner. Command labels are sanitized before
// logging so credentials embedded in clone URLs never reach log output.
package execshell
