// Package service contains the application-specific use cases of the
// back-office services. It orchestrates interactions between domain entities
// and the persistence interfaces defined in internal/store.
//
// Key components:
//
// 1. Service Interfaces:
//   - BranchService backs the branches binary
//   - InterestRateService and ProductAccountService back the products-accounts binary
//
// 2. Existence and lifecycle rules:
//   - Lookups by key answer with a not-found CRUDError instead of a nil entity
//   - Updates load the stored record, overwrite only the mutable fields and save it back
//   - Inactivation is one-way and stamps its timestamp from the injected clock
//
// 3. Error Handling:
//   - Every failure crossing the service boundary is a *domain.CRUDError
//   - CRUDError unwraps to a domain sentinel, so callers use errors.Is
//
// Services receive their stores through constructor injection and hold no
// entity between calls.
package service
