package factory

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

func NewModuleLogger(module string) *logrus.Entry {
	return logrus.WithField("module", module)
}

// LoggerWithContext tags the logger with the request id of an echo request,
// when there is one.
func LoggerWithContext(logger *logrus.Entry, ctx echo.Context) *logrus.Entry {
	if ctx == nil {
		return logger
	}
	requestID := strings.TrimSpace(ctx.Request().Header.Get(echo.HeaderXRequestID))
	if requestID == "" {
		requestID = strings.TrimSpace(ctx.Response().Header().Get(echo.HeaderXRequestID))
	}
	return LoggerWithRequestID(logger, requestID)
}

func LoggerWithRequestID(logger *logrus.Entry, requestID string) *logrus.Entry {
	if requestID == "" {
		return logger
	}
	return logger.WithField("request_id", requestID)
}
