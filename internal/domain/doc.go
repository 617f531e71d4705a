// Package domain defines the core business model for reading-interest
// profiles: the value objects, the ReadingProfile aggregate root, the
// reading-history entity it owns, the domain events it records, and the
// ProfileSnapshot read model derived from it.
//
// The aggregate is the only consistency boundary in the system. All state
// owned by a profile is mutated exclusively through the aggregate's methods,
// which enforce the profile invariants (genre limit, rating range, the
// block-list/rating exclusion) and append a domain event for every
// successful mutation. Everything outside this package is orchestration.
package domain
