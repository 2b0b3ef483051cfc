// Package utils exposes reusable helpers consumed by the CLI composition
// root.
//
// It houses the ConfigurationLoader and LoggerFactory abstractions that
// integrate Viper, environment variables, and zap logging, plus the
// CommandContextAccessor used to thread configuration metadata through
// command contexts.
package utils
