// Package session orchestrates the repository workflow: scanning the remote
// account, cloning repositories into the workspace, and deleting repositories
// remotely with best-effort local cleanup. It also carries the CLI command
// builders and configuration for those operations.
package session
