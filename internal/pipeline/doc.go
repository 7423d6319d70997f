// Package pipeline drives the incremental gallery build: it discovers
// projects, processes each phase's media, selects covers, and aggregates
// everything into the published gallery index.
//
// Control flows top-down (index -> project -> phase -> per-image transform)
// while data flows strictly upward. Per-image transforms are independent
// units of work executed on a bounded pool; each phase waits for its own
// units before finalizing the manifest, so image order in a manifest is
// always the sorted source order, never completion order.
//
// Error handling follows the build's taxonomy: a malformed project config or
// a failed image transform is recovered locally and logged, while failure to
// create an output directory or to write the index aborts the build.
package pipeline
