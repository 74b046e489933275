// Package cli constructs the hubdesk command-line interface, wiring the
// Cobra command hierarchy, configuration loader, and structured logging
// primitives. It exposes helpers to build reusable application instances and
// execute the root command with consistent error handling.
package cli
