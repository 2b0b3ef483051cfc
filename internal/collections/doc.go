// Package collections holds generic sequence helpers shared across the toolkit.
package collections
