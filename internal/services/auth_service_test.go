package services

import (
	"context"
	"testing"

	"labourlink/internal/config"
	"labourlink/internal/models"
	"labourlink/internal/utils"
	"labourlink/internal/validators"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSecurityConfig() *config.SecurityConfig {
	return &config.SecurityConfig{JWTSecret: "test-secret"}
}

func TestRegisterAndLogin(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewAuthService(userRepo, testSecurityConfig(), newTestLogger())

	resp, err := svc.Register(context.Background(), &validators.RegisterRequest{
		Name:       "Ravi Kumar",
		Email:      "Ravi@Example.com",
		Password:   "secret123",
		Role:       "labourer",
		Category:   string(models.CategoryPainter),
		HourlyRate: 200,
	})
	require.NoError(t, err)
	assert.Equal(t, "ravi@example.com", resp.User.Email, "email is stored lowercased")
	assert.True(t, resp.User.IsAvailable, "new labourers start available")
	assert.NotEmpty(t, resp.Tokens.AccessToken)
	assert.NotEqual(t, "secret123", resp.User.Password, "password must be hashed")

	login, err := svc.Login(context.Background(), &validators.LoginRequest{
		Email:    "ravi@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, login.User.ID)

	claims, err := utils.ValidateToken(login.Tokens.AccessToken, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID.Hex(), claims.UserID)
	assert.Equal(t, "labourer", claims.Role)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewAuthService(userRepo, testSecurityConfig(), newTestLogger())

	req := &validators.RegisterRequest{
		Name:     "Asha Patel",
		Email:    "asha@example.com",
		Password: "secret123",
		Role:     "employer",
	}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	assert.True(t, utils.IsConflict(err))
}

func TestLoginBadCredentials(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewAuthService(userRepo, testSecurityConfig(), newTestLogger())

	_, err := svc.Register(context.Background(), &validators.RegisterRequest{
		Name:     "Asha Patel",
		Email:    "asha@example.com",
		Password: "secret123",
		Role:     "employer",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &validators.LoginRequest{
		Email:    "asha@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), &validators.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials, "unknown email and wrong password are indistinguishable")
}
