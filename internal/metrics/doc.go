// Package metrics defines the Prometheus collectors for the build pipeline.
//
// The tool runs to completion and serves no HTTP, so instead of an exporter
// endpoint the collected metrics can be flushed to a textfile at the end of a
// run and picked up by the node_exporter textfile collector.
package metrics
