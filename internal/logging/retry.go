package logging

// RetryLogger adapts Logger to retryablehttp.LeveledLogger.
type RetryLogger struct {
	L *Logger
}

func (r RetryLogger) Error(msg string, keysAndValues ...interface{}) {
	r.L.Error().Fields(keysAndValues).Msg(msg)
}

func (r RetryLogger) Info(msg string, keysAndValues ...interface{}) {
	// request-level chatter only at debug
	r.L.Debug().Fields(keysAndValues).Msg(msg)
}

func (r RetryLogger) Debug(msg string, keysAndValues ...interface{}) {
	r.L.Debug().Fields(keysAndValues).Msg(msg)
}

func (r RetryLogger) Warn(msg string, keysAndValues ...interface{}) {
	r.L.Warn().Fields(keysAndValues).Msg(msg)
}
