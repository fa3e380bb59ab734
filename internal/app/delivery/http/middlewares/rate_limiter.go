package middlewares

import (
	"dr-portal/internal/pkg/exceptions"
	"dr-portal/internal/pkg/utils"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var errUploadThrottled = errors.New("upload rate exceeded")

type uploadClient struct {
	limiter      *rate.Limiter
	lastSeen     time.Time
	blockedUntil time.Time
}

// RateLimiter throttles image uploads per client IP. A client that exceeds
// its burst is blocked for blockTime. Clients idle for longer than both the
// refill window and the block time are forgotten.
type RateLimiter struct {
	clients   map[string]*uploadClient
	mu        sync.Mutex
	requests  int
	per       time.Duration
	blockTime time.Duration
	idleTTL   time.Duration
	lastSweep time.Time
	log       *zap.Logger
	now       func() time.Time
}

func NewRateLimiter(rps int, per, blockTime time.Duration, logger *zap.Logger) *RateLimiter {
	if rps <= 0 {
		rps = 1
	}
	idleTTL := per
	if blockTime > idleTTL {
		idleTTL = blockTime
	}
	return &RateLimiter{
		clients:   make(map[string]*uploadClient),
		requests:  rps,
		per:       per,
		blockTime: blockTime,
		idleTTL:   idleTTL,
		log:       logger,
		now:       time.Now,
	}
}

func (r *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ip, _, err := net.SplitHostPort(req.RemoteAddr)
		if err != nil {
			ip = req.RemoteAddr
		}

		if !r.allow(ip) {
			utils.BuildErrorResponse(r.log, w, exceptions.ErrTooManyRequests(errUploadThrottled))
			return
		}
		next.ServeHTTP(w, req)
	})
}

func (r *RateLimiter) allow(ip string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.sweep(now)

	client, exists := r.clients[ip]
	if !exists {
		client = &uploadClient{
			limiter: rate.NewLimiter(rate.Every(r.per/time.Duration(r.requests)), r.requests),
		}
		r.clients[ip] = client
	}
	client.lastSeen = now

	if now.Before(client.blockedUntil) {
		return false
	}
	if !client.limiter.AllowN(now, 1) {
		client.blockedUntil = now.Add(r.blockTime)
		return false
	}
	return true
}

// sweep drops idle clients at most once per idleTTL. Caller holds mu.
func (r *RateLimiter) sweep(now time.Time) {
	if now.Sub(r.lastSweep) < r.idleTTL {
		return
	}
	r.lastSweep = now
	for ip, client := range r.clients {
		if now.Sub(client.lastSeen) > r.idleTTL && !now.Before(client.blockedUntil) {
			delete(r.clients, ip)
		}
	}
}
