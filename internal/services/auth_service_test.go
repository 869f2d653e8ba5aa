package services

import (
	"context"
	"testing"
	"time"

	"callcenter-gin/internal/auth"
	"callcenter-gin/internal/config"
	"callcenter-gin/internal/errors"
	"callcenter-gin/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type authFixture struct {
	employeeRepo *fakeEmployeeRepo
	service      AuthService
	agent        *models.Employee
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	employeeRepo := newFakeEmployeeRepo()
	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:          "test-secret-key-minimum-32-characters",
		AccessDuration:  15 * time.Minute,
		RefreshDuration: 168 * time.Hour,
	})

	agent := &models.Employee{
		EmpNo:    "EMP-0001",
		Name:     "Trần Thị Bình",
		Email:    "binh.tran@callcenter.local",
		Role:     models.RoleAgent,
		IsActive: true,
	}
	require.NoError(t, agent.SetPassword("Password123!"))
	employeeRepo.add(agent)

	return &authFixture{
		employeeRepo: employeeRepo,
		service:      NewAuthService(employeeRepo, jwtService, zap.NewNop()),
		agent:        agent,
	}
}

func TestLogin_Success(t *testing.T) {
	fx := newAuthFixture(t)

	result, err := fx.service.Login(context.Background(), "binh.tran@callcenter.local", "Password123!")
	require.NoError(t, err)
	require.NotNil(t, result.Tokens)
	assert.NotEmpty(t, result.Tokens.AccessToken)
	assert.NotEmpty(t, result.Tokens.RefreshToken)
	assert.Equal(t, fx.agent.ID, result.Employee.ID)

	// Hash của refresh token phải được lưu lại
	stored := fx.employeeRepo.employees[fx.agent.ID]
	require.NotNil(t, stored.RefreshTokenHash)
	assert.NotNil(t, stored.LastSeenAt)
}

func TestLogin_WrongPassword(t *testing.T) {
	fx := newAuthFixture(t)

	_, err := fx.service.Login(context.Background(), "binh.tran@callcenter.local", "sai-mat-khau")
	assert.ErrorIs(t, err, errors.ErrInvalidCredentials)
}

func TestLogin_UnknownEmailSameError(t *testing.T) {
	fx := newAuthFixture(t)

	// Email lạ và password sai trả cùng một lỗi
	_, errEmail := fx.service.Login(context.Background(), "ghost@callcenter.local", "Password123!")
	_, errPassword := fx.service.Login(context.Background(), "binh.tran@callcenter.local", "sai-mat-khau")

	assert.ErrorIs(t, errEmail, errors.ErrInvalidCredentials)
	assert.ErrorIs(t, errPassword, errors.ErrInvalidCredentials)
	assert.Equal(t, errEmail.Error(), errPassword.Error())
}

func TestLogin_InactiveAccount(t *testing.T) {
	fx := newAuthFixture(t)
	fx.agent.IsActive = false

	_, err := fx.service.Login(context.Background(), "binh.tran@callcenter.local", "Password123!")
	assert.ErrorIs(t, err, errors.ErrForbidden)
}

func TestRefreshTokens_RotationRevokesOldToken(t *testing.T) {
	fx := newAuthFixture(t)
	ctx := context.Background()

	login, err := fx.service.Login(ctx, "binh.tran@callcenter.local", "Password123!")
	require.NoError(t, err)
	firstRefresh := login.Tokens.RefreshToken

	rotated, err := fx.service.RefreshTokens(ctx, firstRefresh)
	require.NoError(t, err)
	assert.NotEqual(t, firstRefresh, rotated.Tokens.RefreshToken)

	// Token cũ bị vô hiệu sau khi rotate
	_, err = fx.service.RefreshTokens(ctx, firstRefresh)
	assert.ErrorIs(t, err, errors.ErrInvalidToken)

	// Token mới vẫn dùng được
	_, err = fx.service.RefreshTokens(ctx, rotated.Tokens.RefreshToken)
	assert.NoError(t, err)
}

func TestRefreshTokens_GarbageToken(t *testing.T) {
	fx := newAuthFixture(t)

	_, err := fx.service.RefreshTokens(context.Background(), "not.a.jwt")
	assert.ErrorIs(t, err, errors.ErrInvalidToken)
}

func TestLogout_RevokesRefreshToken(t *testing.T) {
	fx := newAuthFixture(t)
	ctx := context.Background()

	login, err := fx.service.Login(ctx, "binh.tran@callcenter.local", "Password123!")
	require.NoError(t, err)

	require.NoError(t, fx.service.Logout(ctx, fx.agent.ID))
	assert.Nil(t, fx.employeeRepo.employees[fx.agent.ID].RefreshTokenHash)

	_, err = fx.service.RefreshTokens(ctx, login.Tokens.RefreshToken)
	assert.ErrorIs(t, err, errors.ErrInvalidToken)
}
