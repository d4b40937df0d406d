// Package api handles incoming HTTP requests for the branches and
// products-accounts services. It decodes and validates request bodies, maps
// DTOs to domain entities, calls the domain services and translates their
// results and CRUDErrors into HTTP responses.
package api
