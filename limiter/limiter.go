package limiter

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const cleanupInterval = 30 * time.Minute

// ChatLimiter keeps a token bucket per chat. A negative rate disables
// limiting entirely.
type ChatLimiter struct {
	mu        sync.Mutex
	limits    map[int64]*rate.Limiter
	rate      rate.Limit
	burst     int
	isEnabled bool
}

func NewChatLimiter(rateLimit rate.Limit, burst int) *ChatLimiter {
	if rateLimit < 0 {
		return &ChatLimiter{
			isEnabled: false,
		}
	}

	return &ChatLimiter{
		limits:    make(map[int64]*rate.Limiter),
		rate:      rateLimit,
		burst:     burst,
		isEnabled: true,
	}
}

func (c *ChatLimiter) Run(ctx context.Context) {
	if !c.isEnabled {
		return
	}

	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			c.cleanup()
		}
	}
}

// cleanup drops buckets that are full again, i.e. chats idle long enough
// to not need tracking.
func (c *ChatLimiter) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for chatID, limit := range c.limits {
		if limit.Tokens() >= float64(c.burst) {
			delete(c.limits, chatID)
		}
	}

	logrus.WithField("trackedChats", len(c.limits)).Debug("chat limiter cleanup finished")
}

func (c *ChatLimiter) getLimiter(chatID int64) *rate.Limiter {
	c.mu.Lock()
	defer c.mu.Unlock()

	limit, ok := c.limits[chatID]

	if !ok {
		limit = rate.NewLimiter(c.rate, c.burst)
		c.limits[chatID] = limit
	}

	return limit
}

func (c *ChatLimiter) Wait(ctx context.Context, chatID int64) error {
	if !c.isEnabled {
		return nil
	}

	return c.getLimiter(chatID).Wait(ctx)
}

func (c *ChatLimiter) Check(chatID int64) bool {
	if !c.isEnabled {
		return true
	}

	return c.getLimiter(chatID).Allow()
}

func (c *ChatLimiter) trackedChats() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.limits)
}
