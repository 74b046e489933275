// Package registry tracks which repositories are known locally, remotely, or
// both for the lifetime of a session.
//
// The registry is purely in-memory: scans fully replace the remote view,
// clone registrations upsert the local view, and removals are idempotent.
// Mutations are serialized by an internal lock held only for the in-memory
// update, never across subprocess or network calls.
package registry
