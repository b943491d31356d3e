package middleware

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

// visitor tracks one client's limiter and when it was last seen.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimit returns a per-client-IP token bucket limiter. Idle clients
// are evicted so the visitor map does not grow without bound.
func RateLimit(rps float64, burst int) fiber.Handler {
	var (
		mu       sync.Mutex
		visitors = make(map[string]*visitor)
	)

	const evictAfter = 10 * time.Minute

	getLimiter := func(ip string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()

		now := time.Now()
		v, ok := visitors[ip]
		if !ok {
			v = &visitor{limiter: rate.NewLimiter(rate.Limit(rps), burst)}
			visitors[ip] = v

			for addr, vis := range visitors {
				if now.Sub(vis.lastSeen) > evictAfter {
					delete(visitors, addr)
				}
			}
		}
		v.lastSeen = now
		return v.limiter
	}

	return func(c *fiber.Ctx) error {
		if !getLimiter(c.IP()).Allow() {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success": false,
				"error":   "Too many requests, slow down",
			})
		}
		return c.Next()
	}
}
