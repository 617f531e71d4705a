// Package store defines the persistence contracts consumed by the
// application services, together with the sentinel errors every
// implementation must surface. Implementations live under
// internal/platform (memory, postgres); the domain model never depends
// on a concrete backend.
package store
