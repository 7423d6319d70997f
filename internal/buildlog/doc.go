// Package buildlog keeps an optional SQLite history of build runs: when each
// run started and finished, how much work it did, and which files failed to
// transform. It is bookkeeping only — staleness decisions never consult it.
package buildlog
