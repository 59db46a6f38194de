package gols

// Logger receives diagnostics produced while listing.
type Logger interface {
	// Verbose logs detailed tracing information.
	// Only logged when verbose mode is enabled.
	Verbose(format string, args ...interface{})

	// Error logs a diagnostic for a failed operation.
	// Always logged regardless of verbose mode.
	Error(format string, args ...interface{})
}
