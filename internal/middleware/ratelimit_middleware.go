package middleware

import (
	"time"

	"github.com/franchisehub/franchisehub-backend/internal/errors"
	"github.com/franchisehub/franchisehub-backend/pkg/redis"
	"github.com/gin-gonic/gin"
)

// InquiryRateLimit caps inquiry submissions per client IP inside a one hour
// fixed window. The inquiry endpoint is the only unauthenticated write path,
// so it is the only one guarded. Disabled when perHour is zero or redis is
// not wired (tests run without it).
func InquiryRateLimit(perHour int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if perHour <= 0 || redis.GetClient() == nil {
			c.Next()
			return
		}

		log := GetLoggerFromContext(c)

		count, err := redis.CountInquiry(c.Request.Context(), c.ClientIP(), time.Hour)
		if err != nil {
			// Counting failures must not take the endpoint down with them
			log.Warn("Inquiry rate counter unavailable", map[string]interface{}{
				"error": err.Error(),
			})
			c.Next()
			return
		}

		if count > int64(perHour) {
			log.Warn("Inquiry rate limit exceeded", map[string]interface{}{
				"client_ip": c.ClientIP(),
				"count":     count,
				"limit":     perHour,
			})
			errors.TooManyRequests(c, errors.InquiryRateLimited, "Too many inquiries, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
