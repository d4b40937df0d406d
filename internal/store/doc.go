// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying data storage mechanism from
// the domain services, so that the existence and lifecycle rules stay
// independent of specific database technologies or persistence details.
package store
