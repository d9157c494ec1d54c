package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const CartSessionCookie = "cart_session"

// CartSession makes sure every visitor carries a cart session id. The
// cookie is session-scoped: the cart does not outlive the browser session.
func CartSession() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		sessionID, err := ctx.Cookie(CartSessionCookie)
		if err != nil || sessionID == "" {
			sessionID = uuid.NewString()
			ctx.SetCookie(CartSessionCookie, sessionID, 0, "/", "", false, true)
		}
		ctx.Set(CartSessionCookie, sessionID)
		ctx.Next()
	}
}
