package wallet

// LogWriter is the minimal logging interface the manager needs.
type LogWriter interface {
	Debug(format string, args ...any)
	Error(format string, args ...any)
}

// nopLogger discards all log output.
type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Error(string, ...any) {}
