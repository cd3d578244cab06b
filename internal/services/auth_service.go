package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"ridercritic/internal/config"
	"ridercritic/internal/models"
	"ridercritic/internal/repositories/interfaces"
	"ridercritic/internal/utils"
	"ridercritic/pkg/logger"
	"ridercritic/pkg/oauth"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type AuthService interface {
	Register(ctx context.Context, request *RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, request *LoginRequest) (*AuthResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*AuthResponse, error)
	GoogleLogin(ctx context.Context, accessToken string) (*AuthResponse, error)
	GetUser(ctx context.Context, uid string) (*models.User, error)
}

type authService struct {
	userRepo interfaces.UserRepository
	google   oauth.Provider
	security *config.SecurityConfig
	logger   *logger.Logger
}

func NewAuthService(userRepo interfaces.UserRepository, google oauth.Provider, security *config.SecurityConfig, logger *logger.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		google:   google,
		security: security,
		logger:   logger,
	}
}

type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email"`
	DisplayName string `json:"display_name" validate:"required,min=2,max=100"`
	Password    string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	User   *models.User     `json:"user"`
	Tokens *utils.TokenPair `json:"tokens"`
}

func (s *authService) Register(ctx context.Context, request *RegisterRequest) (*AuthResponse, error) {
	existing, err := s.userRepo.GetByEmail(ctx, request.Email)
	if err != nil && !errors.Is(err, interfaces.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		UID:          uuid.NewString(),
		Email:        request.Email,
		DisplayName:  request.DisplayName,
		Password:     string(hash),
		Role:         models.RoleUserAdmin,
		SubRole:      models.SubRoleNewStar,
		AuthProvider: models.AuthProviderEmail,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.WithUserUID(user.UID).Info("User registered")

	return s.issueTokens(user)
}

func (s *authService) Login(ctx context.Context, request *LoginRequest) (*AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, request.Email)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(request.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.UID); err != nil {
		s.logger.WithUserUID(user.UID).WithError(err).Warn("Failed to record last login")
	}

	return s.issueTokens(user)
}

func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	claims, err := utils.ValidateToken(refreshToken, s.security.JWTSecret)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token: %w", err)
	}

	user, err := s.userRepo.GetByUID(ctx, claims.UID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	return s.issueTokens(user)
}

// GoogleLogin exchanges a Google access token for the profile and upserts
// the matching user record.
func (s *authService) GoogleLogin(ctx context.Context, accessToken string) (*AuthResponse, error) {
	info, err := s.google.GetUserInfo(ctx, accessToken)
	if err != nil {
		return nil, fmt.Errorf("google sign-in failed: %w", err)
	}

	user, err := s.userRepo.GetByEmail(ctx, info.Email)
	if err != nil {
		if !errors.Is(err, interfaces.ErrNotFound) {
			return nil, fmt.Errorf("failed to load user: %w", err)
		}
		user = &models.User{
			UID:          uuid.NewString(),
			Email:        info.Email,
			DisplayName:  info.Name,
			PhotoURL:     info.Picture,
			Role:         models.RoleUserAdmin,
			SubRole:      models.SubRoleNewStar,
			AuthProvider: models.AuthProviderGoogle,
			SocialID:     info.ID,
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		s.logger.WithUserUID(user.UID).Info("User registered via Google")
	} else {
		now := time.Now()
		user.SocialID = info.ID
		user.PhotoURL = info.Picture
		user.LastLoginAt = &now
		if err := s.userRepo.Update(ctx, user); err != nil {
			s.logger.WithUserUID(user.UID).WithError(err).Warn("Failed to update user after Google login")
		}
	}

	return s.issueTokens(user)
}

func (s *authService) GetUser(ctx context.Context, uid string) (*models.User, error) {
	return s.userRepo.GetByUID(ctx, uid)
}

func (s *authService) issueTokens(user *models.User) (*AuthResponse, error) {
	tokens, err := utils.GenerateTokenPair(
		user.UID, user.Email, string(user.Role), string(user.SubRole),
		s.security.JWTSecret, s.security.JWTAccessTokenTTL, s.security.JWTRefreshTokenTTL,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return &AuthResponse{
		User:   user,
		Tokens: tokens,
	}, nil
}
