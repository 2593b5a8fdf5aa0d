package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/prathamesh4949/Olcademyfrontend-sub002/internal/http/sessioncookie"
)

// AdminSessions is an in-memory token store for console logins. Sessions
// evaporate on restart, like everything else in this service.
type AdminSessions struct {
	mu     sync.Mutex
	ttl    time.Duration
	tokens map[string]time.Time // token -> expiry
}

func NewAdminSessions(ttl time.Duration) *AdminSessions {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &AdminSessions{ttl: ttl, tokens: make(map[string]time.Time)}
}

// Create mints a new session token.
func (s *AdminSessions) Create() string {
	token := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = time.Now().Add(s.ttl)
	return token
}

// Valid reports whether token is a live session, dropping it if expired.
func (s *AdminSessions) Valid(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	exp, ok := s.tokens[token]
	if !ok {
		return false
	}
	if time.Now().After(exp) {
		delete(s.tokens, token)
		return false
	}
	return true
}

// Revoke ends a session.
func (s *AdminSessions) Revoke(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, token)
}

// RequireAdmin guards console routes. Without a live session the request
// gets a 401 and never reaches the handler.
func RequireAdmin(codec *sessioncookie.Codec, sessions *AdminSessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := codec.GetSessionID(c)
		if !ok || !sessions.Valid(token) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success":    false,
				"message":    "Admin login required.",
				"request_id": GetRequestID(c),
			})
			return
		}
		c.Next()
	}
}
