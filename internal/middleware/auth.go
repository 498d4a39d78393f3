package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jacksonrcmachado/ldm-CRUD-Tarefas/internal/utils"
)

// UserIDContextKey is where the auth gate stores the authenticated user's
// id for downstream handlers.
const UserIDContextKey = "user_id"

// AuthRequired rejects requests that do not carry a valid bearer token.
// On success the recovered user id is stored in the context; task
// handlers do not use it yet, but ownership checks would start there.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "Token de acesso ausente"})
			c.Abort()
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "Cabeçalho Authorization deve ser 'Bearer {token}'"})
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(tokenParts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "Token inválido ou expirado"})
			c.Abort()
			return
		}

		c.Set(UserIDContextKey, claims.UserID)
		c.Next()
	}
}
