package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/prathamesh4949/Olcademyfrontend-sub002/internal/http/sessioncookie"
)

const ctxKeySessionID = "session_id"

// Session gives every shopper a signed session id cookie. The id keys the
// in-memory cart/wishlist/shipment stores; nothing about it is persisted
// server-side.
func Session(codec *sessioncookie.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := codec.GetSessionID(c)
		if !ok {
			id = uuid.NewString()
			codec.Set(c, id)
		}
		c.Set(ctxKeySessionID, id)
		c.Next()
	}
}

// SessionID returns the shopper session id set by Session.
func SessionID(c *gin.Context) string {
	if v, ok := c.Get(ctxKeySessionID); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
