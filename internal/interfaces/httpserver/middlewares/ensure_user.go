package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"parley-server/chat-api/internal/domain/user"
	"parley-server/chat-api/internal/infrastructure/auth"
	"parley-server/chat-api/internal/utils/platformerrors"
)

// EnsureUser provisions an account for the authenticated principal before the
// request reaches a handler. Runs after the auth middleware.
func EnsureUser(users user.Service, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := auth.PrincipalFromContext(c)
		if !ok {
			platformerrors.WriteUnauthorized(c, "missing authenticated principal")
			c.Abort()
			return
		}

		if _, err := users.Ensure(c.Request.Context(), principal.ID, principal.Email, principal.Name); err != nil {
			log.Error().Err(err).Str("subject", principal.ID).Msg("user provisioning failed")
			platformerrors.WriteInternalError(c, "failed to provision user")
			c.Abort()
			return
		}

		c.Next()
	}
}
