// Package textkit bundles string helpers: random alphanumeric identifiers
// and case conversion.
package textkit
