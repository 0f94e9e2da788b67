package middleware

import (
	"net/http"
	"sync"
	"time"

	"maisonweb/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const msgTooManyRequests = "Trop de requêtes. Veuillez réessayer dans quelques instants."

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// SubmissionRateLimiter throttles each client IP to perMinute requests with
// the given burst. Idle clients are forgotten every idleTTL until done is
// closed.
func SubmissionRateLimiter(perMinute, burst int, idleTTL time.Duration, done <-chan struct{}) gin.HandlerFunc {
	var mu sync.Mutex
	clients := make(map[string]*clientLimiter)
	every := rate.Every(time.Minute / time.Duration(perMinute))

	go func() {
		ticker := time.NewTicker(idleTTL)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case now := <-ticker.C:
				mu.Lock()
				for ip, cl := range clients {
					if now.Sub(cl.lastSeen) > idleTTL {
						delete(clients, ip)
					}
				}
				mu.Unlock()
			}
		}
	}()

	return func(c *gin.Context) {
		ip := c.ClientIP()

		mu.Lock()
		cl, ok := clients[ip]
		if !ok {
			cl = &clientLimiter{limiter: rate.NewLimiter(every, burst)}
			clients[ip] = cl
		}
		cl.lastSeen = time.Now()
		allowed := cl.limiter.Allow()
		mu.Unlock()

		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, models.StatusResponse{
				Status:  models.StatusFailed,
				Message: msgTooManyRequests,
			})
			return
		}
		c.Next()
	}
}
