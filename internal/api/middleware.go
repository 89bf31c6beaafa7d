package api

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"handcrafted-haven/internal/session"
)

var (
	httpRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of http request",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)
)

const (
	dashboardPrefix = "/dashboard"
	loginPath       = "/login"
	registerPath    = "/register"
)

// RouteGuard gates the dashboard tree on cookie presence and bounces
// already-authenticated visitors off the login and register pages. It
// deliberately checks presence only; handlers verify the token and that
// the artisan still exists.
func RouteGuard() fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()
		hasCookie := c.Cookies(session.CookieName) != ""

		if strings.HasPrefix(path, dashboardPrefix) && !hasCookie {
			return c.Redirect(loginPath, fiber.StatusFound)
		}

		if (path == loginPath || path == registerPath) && hasCookie {
			return c.Redirect(dashboardPrefix, fiber.StatusFound)
		}

		return c.Next()
	}
}

func PrometheusMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		duration := time.Since(start).Seconds()
		statusCode := c.Response().StatusCode()

		if err != nil {
			var e *fiber.Error

			if errors.As(err, &e) {
				statusCode = e.Code
			} else {
				statusCode = fiber.StatusInternalServerError
			}
		}

		method := c.Method()
		path := c.Path()
		statusStr := fmt.Sprintf("%d", statusCode)

		httpRequestTotal.WithLabelValues(method, path, statusStr).Inc()
		httpRequestDuration.WithLabelValues(method, path, statusStr).Observe(duration)

		return err
	}
}
