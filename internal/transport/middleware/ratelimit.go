package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

// clientIdleTTL is how long an unused client limiter is kept.
const clientIdleTTL = 10 * time.Minute

// RateLimiter keeps one token bucket per client IP and request class.
// Reads (GET, HEAD, OPTIONS) and writes are budgeted separately so that a
// learner browsing lessons never starves their own vocabulary saves.
type RateLimiter struct {
	clients sync.Map // clientKey -> *client
	stop    chan struct{}
}

type clientKey struct {
	ip    string
	write bool
}

type client struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64
}

// NewRateLimiter creates a rate limiter with background cleanup.
// Call Stop() on shutdown.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{stop: make(chan struct{})}
	go rl.cleanup(cleanupInterval)
	return rl
}

// Stop terminates the background cleanup goroutine.
func (rl *RateLimiter) Stop() {
	close(rl.stop)
}

// Limit allows readsPerMinute safe requests and writesPerMinute other
// requests per client IP, each with a full bucket as burst. A budget of
// zero or less leaves that class unlimited.
func (rl *RateLimiter) Limit(readsPerMinute, writesPerMinute int) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := clientKey{ip: clientIP(r), write: !isSafeMethod(r.Method)}
			perMinute := readsPerMinute
			if key.write {
				perMinute = writesPerMinute
			}
			if perMinute <= 0 {
				next.ServeHTTP(w, r)
				return
			}

			if !rl.client(key, perMinute).Allow() {
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter(perMinute)))
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) client(key clientKey, perMinute int) *rate.Limiter {
	v, ok := rl.clients.Load(key)
	if !ok {
		fresh := &client{limiter: rate.NewLimiter(rate.Limit(float64(perMinute)/60), perMinute)}
		v, _ = rl.clients.LoadOrStore(key, fresh)
	}
	c := v.(*client)
	c.lastSeen.Store(time.Now().UnixNano())
	return c.limiter
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-clientIdleTTL).UnixNano()
			rl.clients.Range(func(key, value any) bool {
				if value.(*client).lastSeen.Load() < cutoff {
					rl.clients.Delete(key)
				}
				return true
			})
		}
	}
}

func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}

// clientIP is the host part of RemoteAddr; the port changes per connection.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// retryAfter is the whole seconds until one token is refilled.
func retryAfter(perMinute int) int {
	return max(1, int(math.Ceil(60/float64(perMinute))))
}
