package middleware

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/xxxsen/accountd/internal/pkg/response"
)

// Throttle enforces a minimum interval between requests from the same client
// to the same path. It guards the login endpoint against brute forcing; the
// entry map is pruned periodically by a scheduled job.
type Throttle struct {
	mu     sync.Mutex
	window time.Duration
	last   map[string]time.Time
}

func NewThrottle(window time.Duration) *Throttle {
	return &Throttle{
		window: window,
		last:   make(map[string]time.Time),
	}
}

func (t *Throttle) Handle(c *gin.Context) {
	if t.window <= 0 {
		c.Next()
		return
	}
	path := c.FullPath()
	if path == "" {
		path = c.Request.URL.Path
	}
	key := strings.Join([]string{c.ClientIP(), path}, "|")

	now := time.Now()
	t.mu.Lock()
	last, exists := t.last[key]
	if exists && now.Sub(last) < t.window {
		t.mu.Unlock()
		logutil.GetLogger(c.Request.Context()).Warn("login throttle hit",
			zap.String("ip", c.ClientIP()),
			zap.String("path", path),
		)
		response.Error(c, http.StatusTooManyRequests, "too_many_requests", http.StatusText(http.StatusTooManyRequests))
		c.Abort()
		return
	}
	t.last[key] = now
	t.mu.Unlock()
	c.Next()
}

// Prune drops entries idle for longer than maxAge and returns how many were
// removed.
func (t *Throttle) Prune(maxAge time.Duration) int {
	cutoff := time.Now().Add(-maxAge)
	t.mu.Lock()
	defer t.mu.Unlock()
	removed := 0
	for key, seen := range t.last {
		if seen.Before(cutoff) {
			delete(t.last, key)
			removed++
		}
	}
	return removed
}
