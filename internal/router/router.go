package router

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/clinicore/health-api/internal/middleware"
	"github.com/clinicore/health-api/internal/model"
)

type Handler interface {
	RegisterRoutes(*gin.RouterGroup)
}

type Config struct {
	RateLimit rate.Limit
	RateBurst int
	CORS      middleware.CORSConfig
}

func DefaultConfig() Config {
	return Config{
		RateLimit: 50,
		RateBurst: 100,
		CORS:      middleware.DefaultCORSConfig(),
	}
}

type Router struct {
	engine  *gin.Engine
	metrics *routerMetrics
}

type routerMetrics struct {
	registry        *prometheus.Registry
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	errorTotal      *prometheus.CounterVec
}

func newRouterMetrics() *routerMetrics {
	m := &routerMetrics{
		registry: prometheus.NewRegistry(),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "http_request_duration_seconds",
				Help: "HTTP request duration in seconds",
			},
			[]string{"method", "path", "status"},
		),
		requestTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		errorTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_errors_total",
				Help: "Total number of HTTP error responses",
			},
			[]string{"method", "path", "status"},
		),
	}
	m.registry.MustRegister(m.requestDuration, m.requestTotal, m.errorTotal)
	return m
}

func (m *routerMetrics) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		labels := []string{c.Request.Method, path, status}

		m.requestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
		m.requestTotal.WithLabelValues(labels...).Inc()
		if c.Writer.Status() >= 400 {
			m.errorTotal.WithLabelValues(labels...).Inc()
		}
	}
}

// New assembles the gin engine: ambient middleware, public health and metrics
// endpoints, and the API-key-guarded domain routes.
func New(
	auth *middleware.APIKeyMiddleware,
	healthH Handler,
	patientH Handler,
	programH Handler,
	enrollmentH Handler,
	cfg Config,
) *Router {
	gin.SetMode(gin.ReleaseMode)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := model.RegisterValidations(v); err != nil {
			panic(err)
		}
	}

	engine := gin.New()
	metrics := newRouterMetrics()
	limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateBurst)

	engine.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORS),
		limiter.RateLimit(),
		metrics.middleware(),
	)

	public := engine.Group("")
	healthH.RegisterRoutes(public)
	public.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.registry, promhttp.HandlerOpts{})))

	api := engine.Group("", auth.Authenticate())
	patientH.RegisterRoutes(api)
	programH.RegisterRoutes(api)
	enrollmentH.RegisterRoutes(api)

	return &Router{engine: engine, metrics: metrics}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
