package services

import (
	"context"
	"errors"
	"fmt"

	"labourlink/internal/config"
	"labourlink/internal/models"
	"labourlink/internal/repositories/interfaces"
	"labourlink/internal/utils"
	"labourlink/internal/validators"
	"labourlink/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials covers both unknown email and wrong password so a
// login attempt cannot probe which accounts exist.
var ErrInvalidCredentials = errors.New("invalid email or password")

type AuthResponse struct {
	User   *models.User     `json:"user"`
	Tokens *utils.TokenPair `json:"tokens"`
}

type AuthService interface {
	Register(ctx context.Context, req *validators.RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, req *validators.LoginRequest) (*AuthResponse, error)
	RefreshToken(refreshToken string) (*utils.TokenPair, error)
}

type authService struct {
	userRepo interfaces.UserRepository
	security *config.SecurityConfig
	logger   *logger.Logger
}

func NewAuthService(userRepo interfaces.UserRepository, security *config.SecurityConfig, log *logger.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		security: security,
		logger:   log,
	}
}

func (s *authService) Register(ctx context.Context, req *validators.RegisterRequest) (*AuthResponse, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:       validators.SanitizeInput(req.Name),
		Email:      utils.NormalizeEmail(req.Email),
		Password:   string(hashed),
		Role:       models.UserRole(req.Role),
		Phone:      utils.NormalizePhone(req.Phone),
		Address:    validators.SanitizeInput(req.Address),
		Experience: req.Experience,
		Location:   req.Location,
	}

	if user.IsLabourer() {
		user.Category = models.LabourCategory(req.Category)
		user.HourlyRate = req.HourlyRate
		user.IsAvailable = true
	}

	// Unique index on email turns a duplicate registration into ErrConflict.
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.WithUserID(user.ID).WithField("role", string(user.Role)).Info("User registered")

	tokens, err := utils.GenerateTokenPair(user.ID, string(user.Role), user.Email, s.security.JWTSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return &AuthResponse{User: user, Tokens: tokens}, nil
}

func (s *authService) Login(ctx context.Context, req *validators.LoginRequest) (*AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, utils.NormalizeEmail(req.Email))
	if err != nil {
		if utils.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	tokens, err := utils.GenerateTokenPair(user.ID, string(user.Role), user.Email, s.security.JWTSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	s.logger.WithUserID(user.ID).Info("User logged in")

	return &AuthResponse{User: user, Tokens: tokens}, nil
}

func (s *authService) RefreshToken(refreshToken string) (*utils.TokenPair, error) {
	tokens, err := utils.RefreshAccessToken(refreshToken, s.security.JWTSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to refresh token: %w", err)
	}
	return tokens, nil
}
