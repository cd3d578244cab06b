package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"ridercritic/internal/models"
	"ridercritic/internal/utils"
)

// Context keys set by AuthRequired.
const (
	ContextUserUID = "user_uid"
	ContextEmail   = "user_email"
	ContextRole    = "user_role"
	ContextSubRole = "user_sub_role"
)

// AuthRequired validates the Bearer token and sets the user context.
func AuthRequired(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authorization header required")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			utils.ErrorResponse(c, http.StatusUnauthorized, "UNAUTHORIZED", "Bearer token required")
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(tokenString, jwtSecret)
		if err != nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token")
			c.Abort()
			return
		}

		c.Set(ContextUserUID, claims.UID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextRole, models.Role(claims.Role))
		c.Set(ContextSubRole, models.SubRole(claims.SubRole))

		c.Next()
	}
}

// RoleRequired gates a route group to the given roles. Roles are a closed
// enum; sub-roles deliberately play no part here.
func RoleRequired(roles ...models.Role) gin.HandlerFunc {
	allowed := make(map[models.Role]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(c *gin.Context) {
		value, exists := c.Get(ContextRole)
		if !exists {
			utils.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		role, ok := value.(models.Role)
		if !ok || !models.ValidRole(role) {
			utils.ForbiddenResponse(c)
			c.Abort()
			return
		}

		if _, ok := allowed[role]; !ok {
			utils.ErrorResponseWithDetails(c, http.StatusForbidden, "FORBIDDEN", utils.ErrForbidden, map[string]string{
				"role": string(role),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// AdminRequired is the gate for content-management routes.
func AdminRequired() gin.HandlerFunc {
	return RoleRequired(models.RoleSuperAdmin, models.RoleAdmin)
}
