// Package httpapi wraps synchronous HTTP GET and POST exchanges that carry
// JSON bodies.
//
// Every request is a single attempt bounded by a fixed timeout; transport
// errors, non-2xx statuses, and undecodable bodies all surface as typed
// failures accompanied by an error-level log line.
package httpapi
