package http

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/DRSN-tech/retail-core/pkg/e"
	"github.com/DRSN-tech/retail-core/pkg/logger"
	"golang.org/x/time/rate"
)

// через idleLimiterTTL неактивный клиент забывается
const idleLimiterTTL = 10 * time.Minute

type peerAddrKey struct{}

// PeerAddr сохраняет адрес TCP-соединения до того, как middleware.RealIP
// перепишет RemoteAddr из заголовков X-Forwarded-For и X-Real-IP.
func PeerAddr(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), peerAddrKey{}, r.RemoteAddr)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter ограничивает частоту запросов с одного адреса (token bucket).
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientLimiter
	rps     rate.Limit
	burst   int
	logger  logger.Logger
	now     func() time.Time
}

func NewRateLimiter(rps float64, burst int, logger logger.Logger) *RateLimiter {
	if burst < 1 {
		burst = 1
	}

	return &RateLimiter{
		clients: make(map[string]*clientLimiter),
		rps:     rate.Limit(rps),
		burst:   burst,
		logger:  logger,
		now:     time.Now,
	}
}

func (l *RateLimiter) allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for k, c := range l.clients {
		if now.Sub(c.lastSeen) > idleLimiterTTL {
			delete(l.clients, k)
		}
	}

	c, ok := l.clients[key]
	if !ok {
		c = &clientLimiter{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.clients[key] = c
	}
	c.lastSeen = now

	return c.limiter.AllowN(now, 1)
}

// Middleware отвечает 429, если клиент исчерпал лимит.
func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := clientKey(r)
		if !l.allow(key) {
			l.logger.Warnf("%d %s %s: rate limit exceeded for %s", http.StatusTooManyRequests, r.Method, r.URL.Path, key)
			WriteError(w, e.ErrTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientKey возвращает адрес соединения. Заголовки прокси не учитываются.
func clientKey(r *http.Request) string {
	addr, ok := r.Context().Value(peerAddrKey{}).(string)
	if !ok {
		addr = r.RemoteAddr
	}

	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return host
}
