package services

import (
	"context"

	"callcenter-gin/internal/auth"
	"callcenter-gin/internal/models"

	"github.com/google/uuid"
)

// ===========================================================================
// Auth Service Interface
// ===========================================================================

// LoginResult kết quả đăng nhập
type LoginResult struct {
	Employee *models.Employee `json:"employee"`
	Tokens   *auth.TokenPair  `json:"tokens"`
}

// AuthService interface cho authentication
type AuthService interface {
	// Login đăng nhập bằng email + password
	Login(ctx context.Context, email, password string) (*LoginResult, error)

	// RefreshTokens cấp cặp token mới từ refresh token (rotation)
	RefreshTokens(ctx context.Context, refreshToken string) (*LoginResult, error)

	// Logout thu hồi refresh token hiện tại
	Logout(ctx context.Context, employeeID uuid.UUID) error

	// GetEmployeeByID lấy employee theo ID (cho endpoint /me)
	GetEmployeeByID(ctx context.Context, id uuid.UUID) (*models.Employee, error)
}
