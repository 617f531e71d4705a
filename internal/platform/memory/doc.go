// Package memory provides map-backed implementations of the store
// interfaces. It is the reference backend: used by tests, local
// development, and any deployment that accepts process-lifetime
// persistence.
package memory
