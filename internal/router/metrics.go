package router

import (
	stderrors "errors"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"carwash/internal/metrics"
)

// requestMetrics records count and latency per matched route. Unmatched
// paths share one label so scanners cannot blow up cardinality.
func requestMetrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			code := c.Response().Status
			if err != nil {
				var he *echo.HTTPError
				if stderrors.As(err, &he) {
					code = he.Code
				} else if !c.Response().Committed {
					code = 500
				}
			}

			metrics.HTTPRequestsTotal.WithLabelValues(c.Request().Method, route, strconv.Itoa(code)).Inc()
			metrics.HTTPRequestDuration.WithLabelValues(c.Request().Method, route).Observe(time.Since(start).Seconds())
			return err
		}
	}
}
