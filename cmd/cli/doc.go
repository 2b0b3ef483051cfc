// Package cli constructs the utilkit command-line interface, wiring the
// Cobra command hierarchy, configuration loader, and the shared file-plus-
// console logger every helper writes diagnostics to. It exposes helpers to
// build reusable application instances and to execute the default command
// set as a reusable library.
package cli
