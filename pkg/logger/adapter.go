package logger

import (
	"go.uber.org/zap"
)

// HTTPClientLogger forwards outbound HTTP client diagnostics to the global
// logger. It satisfies the req.Logger interface.
type HTTPClientLogger struct {
	component string
}

// NewHTTPClientLogger returns an adapter that tags every entry with component.
func NewHTTPClientLogger(component string) *HTTPClientLogger {
	return &HTTPClientLogger{component: component}
}

func (h *HTTPClientLogger) sugar() *zap.SugaredLogger {
	return Sugar.WithOptions(zap.AddCallerSkip(2)).With("component", h.component)
}

func (h *HTTPClientLogger) Errorf(format string, v ...interface{}) {
	h.sugar().Errorf(format, v...)
}

func (h *HTTPClientLogger) Warnf(format string, v ...interface{}) {
	h.sugar().Warnf(format, v...)
}

func (h *HTTPClientLogger) Debugf(format string, v ...interface{}) {
	h.sugar().Debugf(format, v...)
}
