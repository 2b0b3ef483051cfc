// Package dates provides timestamp formatting, date arithmetic, and
// conversion between strptime-style date formats.
//
// Formats are expressed with percent directives (%Y, %m, %d, ...) and
// translated onto Go reference layouts before parsing or rendering.
package dates
