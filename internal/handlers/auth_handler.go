package handlers

import (
	"net/http"
	"time"

	"callcenter-gin/internal/dto"
	"callcenter-gin/internal/middleware"
	"callcenter-gin/internal/models"
	"callcenter-gin/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ===========================================================================
// Auth Handler
// Handle authentication endpoints: login, refresh, me, logout
// ===========================================================================

// AuthHandler xử lý các endpoint auth
type AuthHandler struct {
	authService services.AuthService
	logger      *zap.Logger
}

// NewAuthHandler tạo auth handler mới
func NewAuthHandler(
	authService services.AuthService,
	logger *zap.Logger,
) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// ===========================================================================
// Request/Response DTOs
// ===========================================================================

// LoginRequest body cho đăng nhập
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// EmployeeResponse employee data (không có password)
type EmployeeResponse struct {
	ID       string `json:"id"`
	EmpNo    string `json:"emp_no"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Capacity int    `json:"capacity"`
}

func newEmployeeResponse(emp *models.Employee) *EmployeeResponse {
	return &EmployeeResponse{
		ID:       emp.ID.String(),
		EmpNo:    emp.EmpNo,
		Name:     emp.Name,
		Email:    emp.Email,
		Role:     string(emp.Role),
		Capacity: emp.Capacity,
	}
}

// ===========================================================================
// Handlers
// ===========================================================================

// Login đăng nhập nhân viên
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("INVALID_REQUEST", err.Error()))
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, h.logger, middleware.GetRequestID(c), err)
		return
	}

	h.setAuthCookies(c, result)

	c.JSON(http.StatusOK, dto.Success(newEmployeeResponse(result.Employee)))
}

// Refresh làm mới tokens
// POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken, err := c.Cookie("refresh_token")
	if err != nil || refreshToken == "" {
		c.JSON(http.StatusUnauthorized, dto.Error("NO_TOKEN", "Refresh token không tồn tại"))
		return
	}

	result, err := h.authService.RefreshTokens(c.Request.Context(), refreshToken)
	if err != nil {
		// Token hỏng thì dọn luôn cookies phía client
		c.SetCookie("access_token", "", -1, "/", "", false, true)
		c.SetCookie("refresh_token", "", -1, "/", "", false, true)
		respondError(c, h.logger, middleware.GetRequestID(c), err)
		return
	}

	h.setAuthCookies(c, result)

	c.JSON(http.StatusOK, dto.Success(newEmployeeResponse(result.Employee)))
}

// Me lấy thông tin nhân viên hiện tại
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	employeeID, ok := middleware.GetEmployeeID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Error("UNAUTHORIZED", "Chưa đăng nhập"))
		return
	}

	employee, err := h.authService.GetEmployeeByID(c.Request.Context(), employeeID)
	if err != nil {
		respondError(c, h.logger, middleware.GetRequestID(c), err)
		return
	}

	c.JSON(http.StatusOK, dto.Success(newEmployeeResponse(employee)))
}

// Logout đăng xuất - Revoke token và clear cookies
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	employeeID, ok := middleware.GetEmployeeID(c)
	if ok {
		if err := h.authService.Logout(c.Request.Context(), employeeID); err != nil {
			h.logger.Warn("revoke refresh token failed", zap.Error(err))
		}
	}

	// Clear all auth cookies
	c.SetCookie("access_token", "", -1, "/", "", false, true)
	c.SetCookie("refresh_token", "", -1, "/", "", false, true)
	c.SetCookie("csrf_token", "", -1, "/", "", false, false)

	c.JSON(http.StatusOK, dto.Success(gin.H{"message": "Đăng xuất thành công"}))
}

// setAuthCookies set httpOnly cookies cho token pair + CSRF token
func (h *AuthHandler) setAuthCookies(c *gin.Context, result *services.LoginResult) {
	accessMaxAge := int(time.Until(result.Tokens.ExpiresAt).Seconds())

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("access_token", result.Tokens.AccessToken, accessMaxAge, "/", "", false, true)
	c.SetCookie("refresh_token", result.Tokens.RefreshToken, 604800, "/", "", false, true)

	// CSRF token (readable by JS)
	csrfToken, err := middleware.GenerateCSRFToken()
	if err != nil {
		h.logger.Error("generate csrf token failed", zap.Error(err))
	} else {
		middleware.SetCSRFCookie(c, csrfToken)
	}
}

// ===========================================================================
// Route Registration
// ===========================================================================

// RegisterRoutes đăng ký routes cho auth
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	auth := rg.Group("/auth")
	{
		// Public routes (không cần auth)
		auth.POST("/login", h.Login)
		auth.POST("/refresh", h.Refresh)

		// Protected routes (cần auth)
		auth.GET("/me", authMiddleware, h.Me)
		auth.POST("/logout", authMiddleware, h.Logout)
	}
}
