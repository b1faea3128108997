package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"sobreaviso/backend/pkg/jwt"
	"sobreaviso/backend/pkg/redis"
	"sobreaviso/backend/pkg/response"
)

// JWTAuth extrai e valida o Access Token de Authorization: Bearer.
// Com o Redis disponível, tokens deslogados são recusados pela
// blacklist; sem ele a verificação degrada para a assinatura apenas.
func JWTAuth(jwtMgr *jwt.Manager, cache *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "cabeçalho de autenticação ausente")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "cabeçalho de autenticação malformado")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "sessão inválida ou expirada")
			c.Abort()
			return
		}

		if claims.TokenType != "access" {
			response.Unauthorized(c, "tipo de token inválido")
			c.Abort()
			return
		}

		if cache != nil {
			if blacklisted, berr := cache.IsBlacklisted(c.Request.Context(), claims.ID); berr == nil && blacklisted {
				response.Unauthorized(c, "sessão encerrada")
				c.Abort()
				return
			}
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Set("team_id", claims.TeamID)

		c.Next()
	}
}

// RoleAuth exige que o usuário autenticado tenha um dos papéis listados
func RoleAuth(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Unauthorized(c, "não autenticado")
			c.Abort()
			return
		}

		userRole := role.(string)
		for _, r := range allowedRoles {
			if userRole == r {
				c.Next()
				return
			}
		}

		response.Forbidden(c, "sem permissão para este recurso")
		c.Abort()
	}
}
