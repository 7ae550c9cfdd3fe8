package usecase

import (
	"context"
	"fmt"
	"time"

	"carparts-store/internal/data/entity"
	"carparts-store/internal/data/repository"
	"carparts-store/internal/dto/request"
	"carparts-store/internal/dto/response"
	"carparts-store/pkg/auth"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	// Login upserts the user by email and returns a fresh session token.
	// There is no password: possession of the token is the credential.
	Login(ctx context.Context, req request.LoginRequest) (*response.AuthResponse, error)
}

type authService struct {
	users  repository.UserRepository
	tokens *auth.TokenManager
	log    *zap.Logger
}

func NewAuthService(users repository.UserRepository, tokens *auth.TokenManager, log *zap.Logger) AuthService {
	return &authService{
		users:  users,
		tokens: tokens,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Login(ctx context.Context, req request.LoginRequest) (*response.AuthResponse, error) {
	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Email:   req.Email,
		Name:    req.Name,
		Role:    entity.RoleCustomer,
		Phone:   req.Phone,
		Address: req.Address,
	}

	if err := s.users.Upsert(ctx, user); err != nil {
		return nil, fmt.Errorf("login %s: %w", req.Email, err)
	}

	// Re-read so the response carries the stored record: an existing user
	// keeps their original id and role, which the upsert never touches.
	stored, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("login %s: %w", req.Email, err)
	}
	if stored == nil {
		return nil, fmt.Errorf("login %s: user vanished after upsert: %w", req.Email, ErrNotFound)
	}

	token, err := s.tokens.Issue(stored.Email)
	if err != nil {
		return nil, fmt.Errorf("login %s: %w", req.Email, err)
	}

	s.log.Info("User logged in", zap.String("email", stored.Email))
	return &response.AuthResponse{
		Token: token,
		User:  response.ToUserResponse(stored),
	}, nil
}
