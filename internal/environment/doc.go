// Package environment provides direct environment variable lookup with
// optional defaults.
package environment
