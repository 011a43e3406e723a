package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"
)

// Observe records the request counter and latency histogram of every request and
// writes one access log line. Handler errors are rendered here so the final status is
// known.
func Observe(requests *prometheus.CounterVec, duration *prometheus.HistogramVec, logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			start := time.Now()

			if err := next(ctx); err != nil {
				ctx.Error(err)
			}

			elapsed := time.Since(start)
			status := ctx.Response().Status
			path := ctx.Path()
			if path == "" {
				path = "unmatched"
			}
			method := ctx.Request().Method
			code := strconv.Itoa(status)

			requests.WithLabelValues(method, path, code).Inc()
			duration.WithLabelValues(method, path, code).Observe(elapsed.Seconds())

			level := slog.LevelInfo
			if status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			logger.LogAttrs(ctx.Request().Context(), level, "http request",
				slog.String("method", method),
				slog.String("path", path),
				slog.Int("status", status),
				slog.Duration("latency", elapsed),
				slog.String("request_id", ctx.Response().Header().Get(echo.HeaderXRequestID)),
			)
			return nil
		}
	}
}

// LimitRate throttles the routes not skipped to perSecond requests per client IP with
// the given burst. Rejections are counted and answered with 429.
func LimitRate(
	perSecond float64,
	burst int,
	skipper middleware.Skipper,
	exceeded prometheus.Counter,
	logger *slog.Logger,
) echo.MiddlewareFunc {
	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(perSecond),
		Burst:     burst,
		ExpiresIn: 3 * time.Minute,
	})

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Skipper: skipper,
		Store:   store,
		IdentifierExtractor: func(ctx echo.Context) (string, error) {
			return ctx.RealIP(), nil
		},
		ErrorHandler: func(_ echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusForbidden, "client cannot be identified").SetInternal(err)
		},
		DenyHandler: func(ctx echo.Context, identifier string, _ error) error {
			exceeded.Inc()
			logger.WarnContext(ctx.Request().Context(), "rate limit exceeded",
				"ip", identifier,
				"method", ctx.Request().Method,
				"path", ctx.Path(),
			)
			ctx.Response().Header().Set("Retry-After", "1")
			return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests")
		},
	})
}
