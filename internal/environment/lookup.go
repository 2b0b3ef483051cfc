package environment

import "os"

// Lookup returns the value of the named environment variable, or
// defaultValue when the variable is unset.
func Lookup(variableName string, defaultValue string) string {
	if variableValue, variableSet := os.LookupEnv(variableName); variableSet {
		return variableValue
	}
	return defaultValue
}
