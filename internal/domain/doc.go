// Package domain contains the core business entities of the back-office
// services (branches, interest rates and product accounts), their lifecycle
// rules and the single error kind that crosses the service boundary. It is
// independent of any specific infrastructure or delivery mechanism.
package domain
