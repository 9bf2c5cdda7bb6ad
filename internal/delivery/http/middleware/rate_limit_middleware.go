package middleware

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
	"sync"
	"time"

	"hospital-admin/pkg/response"

	"golang.org/x/time/rate"
)

const (
	limiterIdleTTL = 10 * time.Minute
	sweepInterval  = time.Minute
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter applies a token bucket per client IP. Forwarded headers name the client only
// when the connection comes from one of the trusted proxies.
type RateLimiter struct {
	mu        sync.Mutex
	limiters  map[string]*clientLimiter
	lastSweep time.Time
	rate      rate.Limit
	burst     int
	trusted   []netip.Prefix
}

func NewRateLimiter(rps float64, burst int, trustedProxies []netip.Prefix) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*clientLimiter),
		rate:     rate.Limit(rps),
		burst:    burst,
		trusted:  trustedProxies,
	}
}

func (l *RateLimiter) limiterFor(ip string, now time.Time) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	c, ok := l.limiters[ip]
	if !ok {
		c = &clientLimiter{limiter: rate.NewLimiter(l.rate, l.burst)}
		l.limiters[ip] = c
	}
	c.lastSeen = now

	if now.Sub(l.lastSweep) >= sweepInterval {
		for key, other := range l.limiters {
			if now.Sub(other.lastSeen) > limiterIdleTTL {
				delete(l.limiters, key)
			}
		}
		l.lastSweep = now
	}
	return c.limiter
}

func (l *RateLimiter) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		now := time.Now()
		res := l.limiterFor(clientIP(r, l.trusted), now).ReserveN(now, 1)
		if !res.OK() {
			response.TooManyRequests(w, time.Second)
			return
		}
		if delay := res.DelayFrom(now); delay > 0 {
			res.CancelAt(now)
			response.TooManyRequests(w, delay)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP returns the peer address, or the nearest untrusted X-Forwarded-For hop when the
// peer is a trusted proxy.
func clientIP(r *http.Request, trusted []netip.Prefix) string {
	peer := remoteHost(r)
	if !isTrusted(peer, trusted) {
		return peer
	}

	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		hops := strings.Split(xff, ",")
		for i := len(hops) - 1; i >= 0; i-- {
			hop := strings.TrimSpace(hops[i])
			if hop != "" && !isTrusted(hop, trusted) {
				return hop
			}
		}
		if first := strings.TrimSpace(hops[0]); first != "" {
			return first
		}
	}
	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		return xri
	}
	return peer
}

func remoteHost(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func isTrusted(ip string, trusted []netip.Prefix) bool {
	if len(trusted) == 0 {
		return false
	}
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, p := range trusted {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}
