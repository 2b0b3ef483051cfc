package textkit

import "strings"

// ToUpper maps the text to upper case using the default case mapping.
func ToUpper(text string) string {
	return strings.ToUpper(text)
}

// ToLower maps the text to lower case using the default case mapping.
func ToLower(text string) string {
	return strings.ToLower(text)
}
