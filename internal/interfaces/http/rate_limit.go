package http

import (
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"

	"github.com/jhoicas/PetShop-api/internal/application/dto"
)

type ipLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter limitador token-bucket por IP.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*ipLimiter
	rate     rate.Limit
	burst    int
	ttl      time.Duration
	stop     chan struct{}
}

// NewRateLimiter crea el limitador con rps peticiones por segundo y ráfaga burst por IP.
// Los limitadores sin uso durante ttl se eliminan en segundo plano.
func NewRateLimiter(rps float64, burst int, ttl time.Duration) *RateLimiter {
	if burst < 1 {
		burst = 1
	}
	rl := &RateLimiter{
		limiters: make(map[string]*ipLimiter),
		rate:     rate.Limit(rps),
		burst:    burst,
		ttl:      ttl,
		stop:     make(chan struct{}),
	}
	if ttl > 0 {
		go rl.cleanupLoop()
	}
	return rl
}

func (rl *RateLimiter) get(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	l, ok := rl.limiters[ip]
	if !ok {
		l = &ipLimiter{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.limiters[ip] = l
	}
	l.lastSeen = time.Now()
	return l.limiter
}

func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(rl.ttl)
	defer ticker.Stop()
	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.mu.Lock()
			for ip, l := range rl.limiters {
				if time.Since(l.lastSeen) > rl.ttl {
					delete(rl.limiters, ip)
				}
			}
			rl.mu.Unlock()
		}
	}
}

// Stop detiene la limpieza en segundo plano.
func (rl *RateLimiter) Stop() {
	select {
	case <-rl.stop:
	default:
		close(rl.stop)
	}
}

// Handler middleware Fiber. Responde 429 con Retry-After cuando la IP agota su cupo.
func (rl *RateLimiter) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		r := rl.get(c.IP()).Reserve()
		if !r.OK() {
			return tooManyRequests(c, time.Second)
		}
		if d := r.Delay(); d > 0 {
			r.Cancel()
			return tooManyRequests(c, d)
		}
		return c.Next()
	}
}

func tooManyRequests(c *fiber.Ctx, retry time.Duration) error {
	c.Set(fiber.HeaderRetryAfter, strconv.Itoa(int(math.Ceil(retry.Seconds()))))
	return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
		Code:    "RATE_LIMITED",
		Message: "demasiados intentos, espere antes de reintentar",
	})
}
