// Package logging provides the structured logging interface used by the
// fixbench tooling. The kernel packages never log.
package logging
