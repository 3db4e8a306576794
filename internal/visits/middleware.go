package visits

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// SectionKey is the gin context key a handler sets to the section it rendered.
// Requests that never set it are not recorded.
const SectionKey = "visits.section"

// Recorder is the subset of Store the middleware needs.
type Recorder interface {
	HashIP(ip string) string
	Record(ctx context.Context, v Visit) error
}

// Middleware records a visit after each successful section render. Requests
// sending "DNT: 1" are skipped. Recording happens in the background so the
// response never waits on the database.
func Middleware(rec Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		section := c.GetString(SectionKey)
		if section == "" || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		if c.GetHeader("DNT") == "1" {
			return
		}

		v := Visit{
			HashedIP:  rec.HashIP(c.ClientIP()),
			UserAgent: c.GetHeader("User-Agent"),
			Section:   section,
			Path:      c.Request.URL.Path,
			Timestamp: time.Now(),
		}
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := rec.Record(ctx, v); err != nil {
				log.Printf("[ERROR] %v", err)
			}
		}()
	}
}
