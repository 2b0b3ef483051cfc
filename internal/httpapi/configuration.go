package httpapi

// Configuration captures the http-fetch command settings sourced from the
// application configuration.
type Configuration struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

const defaultTimeoutSecondsConstant = 10

// DefaultConfigurationValues supplies embedded defaults for the http-fetch command.
func DefaultConfigurationValues() map[string]any {
	return map[string]any{
		"tools.http_fetch.timeout_seconds": defaultTimeoutSecondsConstant,
	}
}
