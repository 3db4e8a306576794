package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Choovyy/portfolio/internal/session"
)

const (
	sessionCookie = "portfolio_session"
	sessionKey    = "session"
)

// sessionMiddleware attaches the visitor's session, starting one and setting
// a browser-session cookie when needed.
func (s *Server) sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := c.Cookie(sessionCookie)
		sess, created := s.sessions.Resolve(id)
		if created {
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(sessionCookie, sess.ID, 0, "/", "", false, true)
		}
		c.Set(sessionKey, sess)
		c.Next()
	}
}

func currentSession(c *gin.Context) *session.Session {
	return c.MustGet(sessionKey).(*session.Session)
}

func (s *Server) handleSessionReset(c *gin.Context) {
	s.sessions.End(currentSession(c).ID)
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/?section=contact")
}
