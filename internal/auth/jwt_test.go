package auth

import (
	"testing"
	"time"

	"callcenter-gin/internal/config"
	"callcenter-gin/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(accessDuration time.Duration) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:          "test-secret-key-minimum-32-characters",
		AccessDuration:  accessDuration,
		RefreshDuration: 168 * time.Hour,
	})
}

func testEmployee() *models.Employee {
	emp := &models.Employee{
		EmpNo: "EMP-0042",
		Name:  "Nguyễn Văn An",
		Email: "an.nguyen@callcenter.local",
		Role:  models.RoleAgent,
	}
	emp.ID = uuid.New()
	return emp
}

func TestGenerateAndValidateTokenPair(t *testing.T) {
	svc := newTestService(15 * time.Minute)
	emp := testEmployee()

	pair, err := svc.GenerateTokenPair(emp)
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.True(t, pair.ExpiresAt.After(time.Now()))

	claims, err := svc.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, emp.ID, claims.EmployeeID)
	assert.Equal(t, "EMP-0042", claims.EmpNo)
	assert.Equal(t, models.RoleAgent, claims.Role)
	assert.Equal(t, "access", claims.TokenType)

	refreshClaims, err := svc.ValidateRefreshToken(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "refresh", refreshClaims.TokenType)
}

func TestTokenTypeMismatchRejected(t *testing.T) {
	svc := newTestService(15 * time.Minute)
	pair, err := svc.GenerateTokenPair(testEmployee())
	require.NoError(t, err)

	// Refresh token không được dùng làm access token và ngược lại
	_, err = svc.ValidateAccessToken(pair.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.ValidateRefreshToken(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExpiredTokenRejected(t *testing.T) {
	svc := newTestService(-time.Minute)
	pair, err := svc.GenerateTokenPair(testEmployee())
	require.NoError(t, err)

	_, err = svc.ValidateToken(pair.AccessToken)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTamperedTokenRejected(t *testing.T) {
	svc := newTestService(15 * time.Minute)
	other := NewJWTService(config.JWTConfig{
		Secret:          "another-secret-entirely-different-one",
		AccessDuration:  15 * time.Minute,
		RefreshDuration: 168 * time.Hour,
	})

	pair, err := other.GenerateTokenPair(testEmployee())
	require.NoError(t, err)

	_, err = svc.ValidateToken(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.ValidateToken("not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
