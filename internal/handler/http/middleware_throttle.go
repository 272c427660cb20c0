package http

import (
	"net"
	"net/http"
	"sync"

	"golang.org/x/time/rate"

	"github.com/MKhiriev/go-job-tracker/internal/logger"
	"github.com/MKhiriev/go-job-tracker/internal/utils"
)

// maxTrackedClients bounds the limiter map; it is reset when exceeded.
const maxTrackedClients = 10000

// limiterCache keeps one token bucket per key.
type limiterCache[K comparable] struct {
	mu       sync.RWMutex
	limiters map[K]*rate.Limiter
	rate     rate.Limit
	burst    int
}

func newLimiterCache[K comparable](rps float64, burst int) *limiterCache[K] {
	return &limiterCache[K]{
		limiters: make(map[K]*rate.Limiter),
		rate:     rate.Limit(rps),
		burst:    burst,
	}
}

func (lc *limiterCache[K]) get(key K) *rate.Limiter {
	lc.mu.RLock()
	limiter, ok := lc.limiters[key]
	lc.mu.RUnlock()
	if ok {
		return limiter
	}

	lc.mu.Lock()
	defer lc.mu.Unlock()

	if limiter, ok = lc.limiters[key]; ok {
		return limiter
	}
	if len(lc.limiters) >= maxTrackedClients {
		lc.limiters = make(map[K]*rate.Limiter)
	}

	limiter = rate.NewLimiter(lc.rate, lc.burst)
	lc.limiters[key] = limiter
	return limiter
}

// withThrottle rejects clients that exceed the configured inbound request
// rate with 429.
func (h *Handler) withThrottle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.throttle == nil {
			next.ServeHTTP(w, r)
			return
		}

		ip := clientIP(r)
		if !h.throttle.get(ip).Allow() {
			logger.FromRequest(r).Warn().Str("remote", ip).Msg("inbound rate limit exceeded")
			w.Header().Set("Retry-After", "1")
			utils.WriteError(w, "too many requests", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// clientIP returns the host part of the socket address. Proxy headers are
// only honoured through middleware.RealIP, which rewrites RemoteAddr.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
