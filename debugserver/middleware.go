package debugserver

import (
	"net"
	"net/http"
	"sort"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// corsMiddleware allows the local dev UI (served from a different origin
// during development) to read the introspection endpoints.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// rateLimitMiddleware limits requests per IP using a non-blocking token
// bucket, rejecting excess requests with 429 rather than queueing them.
func rateLimitMiddleware(requestsPerSecond int) func(http.Handler) http.Handler {
	type client struct {
		limiter  *rate.Limiter
		lastSeen time.Time
	}

	var (
		mu      sync.Mutex
		clients = make(map[string]*client)
	)

	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			mu.Lock()
			for ip, c := range clients {
				if time.Since(c.lastSeen) > 3*time.Minute {
					delete(clients, ip)
				}
			}
			mu.Unlock()
		}
	}()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)

			mu.Lock()
			c, exists := clients[ip]
			if !exists {
				c = &client{limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)}
				clients[ip] = c
			}
			c.lastSeen = time.Now()
			mu.Unlock()

			if !c.limiter.Allow() {
				w.Header().Set("Retry-After", "1")
				http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// latencyRing is a fixed-size ring buffer of request durations used to
// report a rough p99 on the /debug/metrics endpoint.
type latencyRing struct {
	mu   sync.Mutex
	vals []time.Duration
	idx  int
	full bool
}

func (r *latencyRing) record(d time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.vals == nil {
		r.vals = make([]time.Duration, 100)
	}
	r.vals[r.idx] = d
	r.idx = (r.idx + 1) % len(r.vals)
	if r.idx == 0 {
		r.full = true
	}
}

func (r *latencyRing) snapshot() []time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.vals == nil {
		return nil
	}
	if r.full {
		out := make([]time.Duration, len(r.vals))
		copy(out, r.vals)
		return out
	}
	out := make([]time.Duration, r.idx)
	copy(out, r.vals[:r.idx])
	return out
}

func (r *latencyRing) p99() time.Duration {
	snap := r.snapshot()
	if len(snap) == 0 {
		return 0
	}
	sort.Slice(snap, func(i, j int) bool { return snap[i] < snap[j] })
	idx := int(float64(len(snap)-1) * 0.99)
	return snap[idx]
}

func (r *latencyRing) String() string {
	return strconv.FormatInt(r.p99().Milliseconds(), 10) + "ms"
}

var apiLatency latencyRing

func latencyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		apiLatency.record(time.Since(start))
	})
}
