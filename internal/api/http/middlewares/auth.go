package middlewares

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"calcHub/internal/domain"
	"calcHub/internal/ports"
)

// userKey — ключ в контексте gin, под которым лежит аутентифицированный пользователь.
const userKey = "calchub.user"

// RequireAuth — middleware для защищённых маршрутов: достаёт Bearer-токен,
// проверяет его через auth use case (подпись, тип, чёрный список, активность)
// и кладёт пользователя в контекст. Без валидного токена — 401.
func RequireAuth(uc ports.IAuthUseCase, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header"})
			return
		}

		user, err := uc.Authenticate(c.Request.Context(), parts[1])
		if err != nil {
			log.Warn("authenticate failed", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// CurrentUser достаёт пользователя, положенного RequireAuth. Паникует вне защищённого маршрута.
func CurrentUser(c *gin.Context) *domain.User {
	return c.MustGet(userKey).(*domain.User)
}
