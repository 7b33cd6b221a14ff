package middleware

import (
	"strings"

	"labourlink/internal/models"
	"labourlink/internal/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthRequired validates the bearer token and stores the caller's identity
// on the context as "user_id" (ObjectID) and "user_role" (string).
func AuthRequired(secretKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			utils.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(tokenString, secretKey)
		if err != nil {
			utils.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		userID, err := primitive.ObjectIDFromHex(claims.UserID)
		if err != nil {
			utils.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Set("user_role", claims.Role)

		c.Next()
	}
}

// RoleRequired gates a route group to one role. Runs after AuthRequired.
func RoleRequired(role models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := c.Get("user_role")
		if !exists {
			utils.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		if roleStr, ok := userRole.(string); !ok || roleStr != string(role) {
			utils.ForbiddenResponse(c)
			c.Abort()
			return
		}

		c.Next()
	}
}

func AdminRequired() gin.HandlerFunc {
	return RoleRequired(models.UserRoleAdmin)
}

func EmployerRequired() gin.HandlerFunc {
	return RoleRequired(models.UserRoleEmployer)
}

func LabourerRequired() gin.HandlerFunc {
	return RoleRequired(models.UserRoleLabourer)
}

// GetUserID reads the authenticated caller's ID set by AuthRequired.
func GetUserID(c *gin.Context) (primitive.ObjectID, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		return primitive.NilObjectID, false
	}
	userID, ok := value.(primitive.ObjectID)
	return userID, ok
}

// GetUserRole reads the authenticated caller's role set by AuthRequired.
func GetUserRole(c *gin.Context) models.UserRole {
	value, exists := c.Get("user_role")
	if !exists {
		return ""
	}
	roleStr, _ := value.(string)
	return models.UserRole(roleStr)
}
