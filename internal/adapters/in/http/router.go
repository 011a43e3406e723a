// Package http is the inbound HTTP adapter: the echo router, the handlers behind
// servers.ServerInterface and the middleware chain of authentication, rate limiting,
// metrics and access logging.
package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"

	"shipmate/internal/generated/servers"
	"shipmate/internal/metrics"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

const pricePath = "/calculate-price"

// publicRoutes are served without a bearer token.
var publicRoutes = map[string]struct{}{
	pricePath:       {},
	"/health":       {},
	"/metrics":      {},
	"/openapi.json": {},
	"/swagger/*":    {},
}

type RouterConfig struct {
	Auth           AuthConfig
	PriceRateLimit float64
	PriceRateBurst int
	// TrustedProxies lists the CIDR ranges of reverse proxies in front of the service.
	// X-Forwarded-For and X-Real-IP are ignored unless the peer is one of them.
	TrustedProxies []string
}

// NewRouter assembles the echo instance serving the API, the health check, the metrics
// endpoint and the OpenAPI document.
func NewRouter(
	server *Server,
	cfg RouterConfig,
	m *metrics.Metrics,
	gatherer prometheus.Gatherer,
	logger *slog.Logger,
) (*echo.Echo, error) {
	swagger, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}
	registerSwaggerDoc(swagger)

	ipExtractor, err := clientIPExtractor(cfg.TrustedProxies)
	if err != nil {
		return nil, err
	}

	logger = logger.With("component", "http")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.IPExtractor = ipExtractor
	e.Logger.SetLevel(log.WARN)
	e.Validator = NewRequestValidator()
	e.HTTPErrorHandler = NewErrorHandler(logger)

	auth := cfg.Auth
	auth.Skipper = isPublicRoute

	e.Use(
		middleware.RequestID(),
		Observe(m.HTTPRequestsTotal, m.HTTPRequestDuration, logger),
		middleware.Recover(),
		Authenticate(auth),
		LimitRate(cfg.PriceRateLimit, cfg.PriceRateBurst, notPriceRoute, m.RateLimitExceeded, logger),
	)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	e.GET("/openapi.json", func(c echo.Context) error {
		return c.JSON(http.StatusOK, swagger)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlers(e, server)

	return e, nil
}

// isPublicRoute also lets unmatched requests through so they get echo's 404.
func isPublicRoute(ctx echo.Context) bool {
	if ctx.Path() == "" {
		return true
	}
	_, ok := publicRoutes[ctx.Path()]
	return ok
}

func notPriceRoute(ctx echo.Context) bool {
	return ctx.Path() != pricePath
}

// clientIPExtractor takes the socket peer as the client. With trusted proxies configured
// it walks X-Forwarded-For from the right and stops at the first untrusted hop.
func clientIPExtractor(trustedProxies []string) (echo.IPExtractor, error) {
	if len(trustedProxies) == 0 {
		return echo.ExtractIPDirect(), nil
	}

	options := []echo.TrustOption{
		echo.TrustLoopback(false),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(false),
	}
	for _, cidr := range trustedProxies {
		_, ipNet, err := net.ParseCIDR(cidr)
		if err != nil {
			return nil, fmt.Errorf("trusted proxy %q: %w", cidr, err)
		}
		options = append(options, echo.TrustIPRange(ipNet))
	}
	return echo.ExtractIPFromXFFHeader(options...), nil
}

type swaggerDoc struct {
	doc string
}

func (d swaggerDoc) ReadDoc() string {
	return d.doc
}

var swaggerOnce sync.Once

// registerSwaggerDoc hands the document to swag, which echo-swagger reads doc.json from.
// swag panics on a second registration under one name.
func registerSwaggerDoc(swagger *openapi3.T) {
	swaggerOnce.Do(func() {
		doc, err := json.Marshal(swagger)
		if err != nil {
			return
		}
		swag.Register(swag.Name, swaggerDoc{doc: string(doc)})
	})
}
