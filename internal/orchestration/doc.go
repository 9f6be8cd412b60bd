// Package orchestration runs accuracy and benchmark jobs concurrently over a
// set of catalog operations and aggregates their results. It decouples job
// execution from presentation via the ProgressReporter and ResultPresenter
// interfaces.
package orchestration
