package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	"callcenter-gin/internal/auth"
	"callcenter-gin/internal/errors"
	"callcenter-gin/internal/models"
	"callcenter-gin/internal/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ===========================================================================
// Auth Service Implementation
// Refresh token lưu dưới dạng SHA256 hash, rotate mỗi lần refresh
// ===========================================================================

// authService triển khai AuthService
type authService struct {
	employeeRepo repositories.EmployeeRepository
	jwtService   *auth.JWTService
	logger       *zap.Logger
}

// NewAuthService tạo instance mới của AuthService
func NewAuthService(
	employeeRepo repositories.EmployeeRepository,
	jwtService *auth.JWTService,
	logger *zap.Logger,
) AuthService {
	return &authService{
		employeeRepo: employeeRepo,
		jwtService:   jwtService,
		logger:       logger,
	}
}

// Login đăng nhập bằng email + password
func (s *authService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	employee, err := s.employeeRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Không phân biệt "email sai" và "password sai"
			return nil, errors.New(errors.ErrInvalidCredentials, "Email hoặc mật khẩu không đúng")
		}
		return nil, errors.Wrap(err, "failed to find employee")
	}

	if !employee.CheckPassword(password) {
		return nil, errors.New(errors.ErrInvalidCredentials, "Email hoặc mật khẩu không đúng")
	}

	if !employee.IsActive {
		return nil, errors.New(errors.ErrForbidden, "Tài khoản đã bị vô hiệu hóa")
	}

	tokens, err := s.jwtService.GenerateTokenPair(employee)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	hash := hashToken(tokens.RefreshToken)
	employee.RefreshTokenHash = &hash
	employee.UpdateLastSeen()
	if err := s.employeeRepo.Update(ctx, employee); err != nil {
		return nil, errors.Wrap(err, "failed to store refresh token")
	}

	s.logger.Info("employee logged in",
		zap.String("employee_id", employee.ID.String()),
		zap.String("emp_no", employee.EmpNo))

	return &LoginResult{Employee: employee, Tokens: tokens}, nil
}

// RefreshTokens cấp cặp token mới từ refresh token
func (s *authService) RefreshTokens(ctx context.Context, refreshToken string) (*LoginResult, error) {
	claims, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		if errors.Is(err, auth.ErrExpiredToken) {
			return nil, errors.New(errors.ErrTokenExpired, "Phiên đăng nhập đã hết hạn")
		}
		return nil, errors.New(errors.ErrInvalidToken, "Refresh token không hợp lệ")
	}

	employee, err := s.employeeRepo.FindByID(ctx, claims.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New(errors.ErrInvalidToken, "Refresh token không hợp lệ")
		}
		return nil, errors.Wrap(err, "failed to find employee")
	}

	// Token phải khớp với hash đang lưu - token cũ bị vô hiệu sau mỗi lần rotate
	if employee.RefreshTokenHash == nil || *employee.RefreshTokenHash != hashToken(refreshToken) {
		return nil, errors.New(errors.ErrInvalidToken, "Refresh token đã bị thu hồi")
	}

	if !employee.IsActive {
		return nil, errors.New(errors.ErrForbidden, "Tài khoản đã bị vô hiệu hóa")
	}

	tokens, err := s.jwtService.GenerateTokenPair(employee)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	hash := hashToken(tokens.RefreshToken)
	employee.RefreshTokenHash = &hash
	employee.UpdateLastSeen()
	if err := s.employeeRepo.Update(ctx, employee); err != nil {
		return nil, errors.Wrap(err, "failed to rotate refresh token")
	}

	return &LoginResult{Employee: employee, Tokens: tokens}, nil
}

// Logout thu hồi refresh token hiện tại
func (s *authService) Logout(ctx context.Context, employeeID uuid.UUID) error {
	employee, err := s.employeeRepo.FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return errors.Wrap(err, "failed to find employee")
	}

	employee.RefreshTokenHash = nil
	if err := s.employeeRepo.Update(ctx, employee); err != nil {
		return errors.Wrap(err, "failed to revoke refresh token")
	}

	s.logger.Info("employee logged out", zap.String("employee_id", employeeID.String()))
	return nil
}

// GetEmployeeByID lấy employee theo ID
func (s *authService) GetEmployeeByID(ctx context.Context, id uuid.UUID) (*models.Employee, error) {
	employee, err := s.employeeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New(errors.ErrNotFound, "Nhân viên không tồn tại")
		}
		return nil, errors.Wrap(err, "failed to find employee")
	}
	return employee, nil
}

// hashToken SHA256 hex của token, chỉ lưu hash xuống DB
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
