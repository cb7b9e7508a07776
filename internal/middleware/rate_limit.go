package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	LoginMaxAttempts    = 5
	RegisterMaxAttempts = 3

	LoginCooldown    = 15 * time.Minute
	RegisterCooldown = 30 * time.Minute
)

// LoginRateLimit throttles login attempts per email. A nil client disables
// the limiter (no Redis configured).
func LoginRateLimit(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		// Peek at the body without consuming it.
		bodyBytes, _ := io.ReadAll(c.Request.Body)
		c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

		var input struct {
			Email string `json:"email"`
		}
		if err := json.Unmarshal(bodyBytes, &input); err != nil || input.Email == "" {
			c.Next()
			return
		}

		ctx := context.Background()
		key := "login_attempts:" + input.Email
		cooldownKey := "login_cooldown:" + input.Email

		if rdb.Exists(ctx, cooldownKey).Val() > 0 {
			ttl := rdb.TTL(ctx, cooldownKey).Val()
			tooManyRequests(c, fmt.Sprintf("Too many failed attempts. Retry in %d minutes", int(ttl.Minutes())+1), int(ttl.Seconds()))
			return
		}

		attempts, _ := rdb.Get(ctx, key).Int()
		if attempts >= LoginMaxAttempts {
			rdb.Set(ctx, cooldownKey, "1", LoginCooldown)
			rdb.Del(ctx, key)
			tooManyRequests(c, fmt.Sprintf("Too many failed attempts. Locked for %d minutes", int(LoginCooldown.Minutes())), int(LoginCooldown.Seconds()))
			return
		}

		c.Next()

		switch c.Writer.Status() {
		case http.StatusUnauthorized:
			rdb.Incr(ctx, key)
			rdb.Expire(ctx, key, LoginCooldown)
		case http.StatusOK:
			rdb.Del(ctx, key)
			rdb.Del(ctx, cooldownKey)
		}
	}
}

// RegisterRateLimit throttles registrations per client IP.
func RegisterRateLimit(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		ctx := context.Background()
		ip := c.ClientIP()
		key := "register_attempts:" + ip
		cooldownKey := "register_cooldown:" + ip

		if rdb.Exists(ctx, cooldownKey).Val() > 0 {
			ttl := rdb.TTL(ctx, cooldownKey).Val()
			tooManyRequests(c, fmt.Sprintf("Too many registrations. Retry in %d minutes", int(ttl.Minutes())+1), int(ttl.Seconds()))
			return
		}

		attempts, _ := rdb.Get(ctx, key).Int()
		if attempts >= RegisterMaxAttempts {
			rdb.Set(ctx, cooldownKey, "1", RegisterCooldown)
			rdb.Del(ctx, key)
			tooManyRequests(c, fmt.Sprintf("Too many registrations. Retry in %d minutes", int(RegisterCooldown.Minutes())), int(RegisterCooldown.Seconds()))
			return
		}

		c.Next()

		if c.Writer.Status() == http.StatusOK {
			rdb.Incr(ctx, key)
			rdb.Expire(ctx, key, RegisterCooldown)
		}
	}
}

func tooManyRequests(c *gin.Context, message string, retryAfter int) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
		"error":       message,
		"retry_after": retryAfter,
	})
}
