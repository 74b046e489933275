// Package ui provides helpers for formatting human-readable console output:
// command lifecycle messages with credential redaction and colored listings
// of repositories and clone contents.
package ui
