// Package config handles configuration loading, parsing, and validation
// from various sources (environment variables, files). It provides type-safe
// access to the settings shared by the branches and products-accounts
// services while keeping configuration details separate from business logic.
package config
