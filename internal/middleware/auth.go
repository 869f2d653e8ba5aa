package middleware

import (
	"net/http"
	"strings"

	"callcenter-gin/internal/auth"
	"callcenter-gin/internal/dto"
	"callcenter-gin/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ===========================================================================
// Auth Middleware
// Protect routes với JWT authentication
// Employee id lấy từ claims, KHÔNG bao giờ từ request body/query
// ===========================================================================

// Context keys cho auth data
const (
	ContextKeyEmployeeID = "employee_id"
	ContextKeyEmpNo      = "emp_no"
	ContextKeyRole       = "employee_role"
	ContextKeyClaims     = "claims"
)

// AuthMiddleware tạo middleware để verify JWT from cookie or header
func AuthMiddleware(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		// 1. First try to get token from cookie (httpOnly)
		if cookie, err := c.Cookie("access_token"); err == nil && cookie != "" {
			tokenString = cookie
		}

		// 2. Fallback to Authorization header (for API clients)
		if tokenString == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" {
				parts := strings.Split(authHeader, " ")
				if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
					tokenString = parts[1]
				}
			}
		}

		// 3. No token found
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, dto.Error("UNAUTHORIZED", "Authentication required"))
			c.Abort()
			return
		}

		// 4. Validate token
		claims, err := jwtService.ValidateAccessToken(tokenString)
		if err != nil {
			if err == auth.ErrExpiredToken {
				c.JSON(http.StatusUnauthorized, dto.Error("TOKEN_EXPIRED", "Token has expired"))
			} else {
				c.JSON(http.StatusUnauthorized, dto.Error("INVALID_TOKEN", "Invalid token"))
			}
			c.Abort()
			return
		}

		// 5. Set employee info in context
		c.Set(ContextKeyEmployeeID, claims.EmployeeID)
		c.Set(ContextKeyEmpNo, claims.EmpNo)
		c.Set(ContextKeyRole, claims.Role)
		c.Set(ContextKeyClaims, claims)

		c.Next()
	}
}

// RequireRole middleware yêu cầu role cụ thể
func RequireRole(roles ...models.EmployeeRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(ContextKeyRole)
		if !exists {
			c.JSON(http.StatusForbidden, dto.Error("FORBIDDEN", "Access denied"))
			c.Abort()
			return
		}

		employeeRole := role.(models.EmployeeRole)
		for _, r := range roles {
			if employeeRole == r {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, dto.Error("FORBIDDEN", "Insufficient permissions"))
		c.Abort()
	}
}

// RequireManager yêu cầu manager hoặc admin role
// Chỉ manager trở lên được gán khách hàng và quản lý danh mục
func RequireManager() gin.HandlerFunc {
	return RequireRole(models.RoleManager, models.RoleAdmin)
}

// RequireAdmin yêu cầu admin role
func RequireAdmin() gin.HandlerFunc {
	return RequireRole(models.RoleAdmin)
}

// ===========================================================================
// Helper functions để lấy data từ context
// ===========================================================================

// GetEmployeeID lấy employee ID từ context
func GetEmployeeID(c *gin.Context) (uuid.UUID, bool) {
	id, exists := c.Get(ContextKeyEmployeeID)
	if !exists {
		return uuid.Nil, false
	}
	return id.(uuid.UUID), true
}

// GetEmpNo lấy mã nhân viên từ context
func GetEmpNo(c *gin.Context) (string, bool) {
	empNo, exists := c.Get(ContextKeyEmpNo)
	if !exists {
		return "", false
	}
	return empNo.(string), true
}

// GetEmployeeRole lấy role từ context
func GetEmployeeRole(c *gin.Context) (models.EmployeeRole, bool) {
	role, exists := c.Get(ContextKeyRole)
	if !exists {
		return "", false
	}
	return role.(models.EmployeeRole), true
}

// GetClaims lấy toàn bộ claims từ context
func GetClaims(c *gin.Context) (*auth.Claims, bool) {
	claims, exists := c.Get(ContextKeyClaims)
	if !exists {
		return nil, false
	}
	return claims.(*auth.Claims), true
}
