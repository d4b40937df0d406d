// Package postgres provides PostgreSQL-specific implementations for the data
// storage interfaces defined in the internal/store package. It handles
// connection setup through the pgx database/sql driver, the embedded goose
// migrations of both services, query execution, and data mapping between
// domain entities and database rows.
package postgres
