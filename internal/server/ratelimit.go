package server

import (
	"context"
	"net"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	"github.com/elskow/tasktrack/internal/api"
	"github.com/elskow/tasktrack/internal/config"
)

// RateLimiter gates selected methods with a token bucket per peer address.
type RateLimiter struct {
	log    *zap.Logger
	now    func() time.Time
	limits map[string]limit

	mu        sync.Mutex
	buckets   map[bucketKey]*bucket
	lastSweep time.Time
}

// sweepInterval bounds how often idle buckets are collected.
const sweepInterval = time.Minute

type limit struct {
	burst  int
	window time.Duration
}

type bucketKey struct {
	method string
	peer   string
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewRateLimiter(cfg config.RateLimitConfig, log *zap.Logger) *RateLimiter {
	limits := make(map[string]limit)
	if cfg.Enabled {
		if cfg.LoginAttempts > 0 && cfg.LoginWindow > 0 {
			limits[api.AuthLogin] = limit{burst: cfg.LoginAttempts, window: cfg.LoginWindow}
		}
		if cfg.RegisterLimit > 0 && cfg.RegisterWindow > 0 {
			limits[api.AuthRegister] = limit{burst: cfg.RegisterLimit, window: cfg.RegisterWindow}
		}
	}

	return &RateLimiter{
		log:     log,
		now:     time.Now,
		limits:  limits,
		buckets: make(map[bucketKey]*bucket),
	}
}

// Allow reports whether the peer may call method now.
func (l *RateLimiter) Allow(method, peer string) bool {
	lim, ok := l.limits[method]
	if !ok {
		return true
	}

	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) >= sweepInterval {
		l.evict(now)
		l.lastSweep = now
	}

	key := bucketKey{method: method, peer: peer}
	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(rate.Every(lim.window/time.Duration(lim.burst)), lim.burst)}
		l.buckets[key] = b
	}
	b.lastSeen = now
	return b.limiter.AllowN(now, 1)
}

// evict drops buckets idle for longer than their window; they would be full
// again anyway.
func (l *RateLimiter) evict(now time.Time) {
	for key, b := range l.buckets {
		if now.Sub(b.lastSeen) > l.limits[key.method].window {
			delete(l.buckets, key)
		}
	}
}

func (l *RateLimiter) UnaryInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		addr := peerAddress(ctx)
		if !l.Allow(info.FullMethod, addr) {
			l.log.Warn("rate limit exceeded",
				zap.String("method", info.FullMethod),
				zap.String("peer", addr))
			return nil, status.Error(codes.ResourceExhausted, "too many requests, please try again later")
		}
		return handler(ctx, req)
	}
}

func peerAddress(ctx context.Context) string {
	p, ok := peer.FromContext(ctx)
	if !ok || p.Addr == nil {
		return "unknown"
	}
	addr := p.Addr.String()
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}
