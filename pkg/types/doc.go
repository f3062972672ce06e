// Package types defines the Category and Note entities, patch types for
// partial updates, the store Config, and standard errors shared between
// the storage layer and the HTTP API.
package types
