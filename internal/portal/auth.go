package portal

import (
	"context"
	"errors"

	"internhub/internal/model"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	UserType string `json:"userType"`
}

// AuthResult is what login and register hand back.
type AuthResult struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (AuthResult, error) {
	return s.authenticate(ctx, "/auth/login", req)
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (AuthResult, error) {
	return s.authenticate(ctx, "/auth/register", req)
}

func (s *Service) authenticate(ctx context.Context, path string, body any) (AuthResult, error) {
	var res AuthResult
	if err := s.api.Post(ctx, path, body, &res); err != nil {
		return AuthResult{}, err
	}
	if res.Token == "" {
		return AuthResult{}, errors.New("backend returned no token")
	}
	return res, nil
}
