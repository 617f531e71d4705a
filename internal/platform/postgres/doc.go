// Package postgres provides PostgreSQL-backed implementations of the
// store interfaces, plus the embedded goose migrations that create their
// schema. Profiles are persisted as one row per user with the owned
// collections serialized to jsonb; the aggregate is always loaded whole.
package postgres
