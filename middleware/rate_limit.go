package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// RateLimitConfig defines the configuration for rate limiting
type RateLimitConfig struct {
	// Requests is the maximum number of requests allowed within the window
	Requests int
	// Window is the time window for rate limiting
	Window time.Duration
	// KeyFunc is a function that returns a unique key for rate limiting (defaults to IP)
	KeyFunc func(c echo.Context) string
	// Message is the error message returned when rate limit is exceeded
	Message string
}

// RateLimiter keeps a token bucket per key. Requests tokens refill evenly over
// Window, and a full bucket allows a burst of Requests.
type RateLimiter struct {
	config   RateLimitConfig
	limit    rate.Limit
	visitors *gocache.Cache
}

// NewRateLimiter creates a new rate limiter with the given configuration
func NewRateLimiter(config RateLimitConfig) *RateLimiter {
	if config.Requests <= 0 {
		config.Requests = 1
	}
	if config.Window <= 0 {
		config.Window = time.Minute
	}
	if config.KeyFunc == nil {
		config.KeyFunc = func(c echo.Context) string {
			return c.RealIP()
		}
	}
	if config.Message == "" {
		config.Message = "Too many requests. Please try again later."
	}

	// Idle visitors are dropped once their bucket would have refilled
	return &RateLimiter{
		config:   config,
		limit:    rate.Every(config.Window / time.Duration(config.Requests)),
		visitors: gocache.New(config.Window, time.Minute),
	}
}

func (rl *RateLimiter) visitor(key string) *rate.Limiter {
	if v, ok := rl.visitors.Get(key); ok {
		rl.visitors.SetDefault(key, v)
		return v.(*rate.Limiter)
	}

	limiter := rate.NewLimiter(rl.limit, rl.config.Requests)
	if err := rl.visitors.Add(key, limiter, gocache.DefaultExpiration); err != nil {
		// Another request created it first
		if v, ok := rl.visitors.Get(key); ok {
			return v.(*rate.Limiter)
		}
	}
	return limiter
}

// Allow reports whether one more request for key fits the budget
func (rl *RateLimiter) Allow(key string) bool {
	return rl.visitor(key).Allow()
}

// Middleware returns the rate limiting middleware
func (rl *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !rl.Allow(rl.config.KeyFunc(c)) {
				c.Response().Header().Set("Retry-After", retryAfter(rl.config))
				return echo.NewHTTPError(http.StatusTooManyRequests, rl.config.Message)
			}
			return next(c)
		}
	}
}

func retryAfter(cfg RateLimitConfig) string {
	secs := int((cfg.Window/time.Duration(cfg.Requests) + time.Second - 1) / time.Second)
	if secs < 1 {
		secs = 1
	}
	return strconv.Itoa(secs)
}

// Pre-configured rate limiters for common use cases

// PublicFormRateLimiter limits lead form submissions to 10 per minute per IP
var PublicFormRateLimiter = NewRateLimiter(RateLimitConfig{
	Requests: 10,
	Window:   1 * time.Minute,
	Message:  "Too many form submissions. Please wait before trying again.",
})

// APIRateLimiter limits lead relay requests to 60 per minute per IP
var APIRateLimiter = NewRateLimiter(RateLimitConfig{
	Requests: 60,
	Window:   1 * time.Minute,
	Message:  "Rate limit exceeded. Please slow down your requests.",
})
