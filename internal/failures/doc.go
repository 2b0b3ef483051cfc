// Package failures defines the typed failure values returned by every
// fallible helper operation.
//
// Helpers never panic and never surface raw library errors; they wrap the
// cause in a Failure tagged with a Kind so callers can distinguish file,
// parse, network, and empty-result conditions programmatically.
package failures
