package service

import (
	"context"
	"errors"

	apperrors "movie-catalog/internal/errors"
	"movie-catalog/internal/models"
	"movie-catalog/pkg/auth"
)

// AuthService handles authentication business logic.
type AuthService struct {
	users      UserServicer
	jwtManager auth.TokenManager
}

// NewAuthService creates a new AuthService.
func NewAuthService(users UserServicer, jwtManager auth.TokenManager) *AuthService {
	return &AuthService{
		users:      users,
		jwtManager: jwtManager,
	}
}

// Register creates a new user account and returns a token for it.
func (s *AuthService) Register(ctx context.Context, req *models.CreateUserRequest) (*models.AuthResponse, error) {
	user, err := s.users.CreateUser(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.generateAuthResponse(user)
}

// Login authenticates a user by email and password.
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := auth.CheckPassword(req.Password, user.Password); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.generateAuthResponse(user)
}

// Check reissues a token for the user the current token belongs to.
func (s *AuthService) Check(ctx context.Context, email string) (*models.AuthResponse, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return s.generateAuthResponse(user)
}

func (s *AuthService) generateAuthResponse(user *models.User) (*models.AuthResponse, error) {
	token, err := s.jwtManager.GenerateToken(user.ID.Hex(), user.Email)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{Token: token, User: *user}, nil
}
