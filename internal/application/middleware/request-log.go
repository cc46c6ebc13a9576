package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"go-weather/pkg/log"
	"go-weather/pkg/msg"
)

// DefaultQuietPaths are not request-logged
var DefaultQuietPaths = []string{"/health", "/swagger/"}

// SetupRequestLogger assigns a request id, recovers panics and logs every request except the quiet paths.
func SetupRequestLogger(e *echo.Echo, quietPaths ...string) {
	if len(quietPaths) == 0 {
		quietPaths = DefaultQuietPaths
	}

	e.Use(echomw.RequestID())
	e.Use(echomw.Recover())
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogError:     true,
		LogRequestID: true,
		LogRemoteIP:  true,
		Skipper: func(c echo.Context) bool {
			return isQuiet(c.Request().URL.Path, quietPaths)
		},
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("request_id", v.RequestID),
				zap.String("remote_ip", v.RemoteIP),
			}

			if v.Error == nil && v.Status < 500 {
				log.Info(msg.GetMessage("app.req-end", v.Method, v.URI, v.Status, v.Latency.String(), v.RequestID), fields...)
				return nil
			}

			reason := ""
			if v.Error != nil {
				reason = v.Error.Error()
				fields = append(fields, zap.Error(v.Error))
			}
			log.Error(msg.GetMessage("app.req-fail", v.Method, v.URI, v.Status, v.Latency.String(), v.RequestID, reason), fields...)
			return nil
		},
	}))
}

func isQuiet(path string, quietPaths []string) bool {
	for _, quiet := range quietPaths {
		if strings.Contains(path, quiet) {
			return true
		}
	}
	return false
}
