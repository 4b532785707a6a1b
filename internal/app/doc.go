// Package app wires the docsift application together: configuration,
// logging, the optional run ledger and healthcheck server, and the
// collection loop that drives the pipeline.
package app
