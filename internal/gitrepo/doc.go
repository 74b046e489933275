// Package gitrepo provides structured handling of Git remote URLs, including
// construction of authenticated HTTPS clone URLs and their redacted forms
// suitable for display and logging.
package gitrepo
