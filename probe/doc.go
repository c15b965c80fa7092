// Package probe turns the document generator, an optional MongoDB deployment,
// and upstream HTTP services into readiness checks for the info handler.
package probe
