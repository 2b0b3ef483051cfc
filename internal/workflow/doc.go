// Package workflow sequences helper operations declared in a YAML or JSON
// document.
//
// A workflow is an ordered list of steps, each naming an operation and its
// options. Steps run one at a time against a shared toolkit; the first
// failing step stops the run.
package workflow
