// Package toolkit aggregates the per-concern helper services behind one
// constructor so composition roots wire a single shared logger once and
// hand the bundle to commands and workflows.
package toolkit
