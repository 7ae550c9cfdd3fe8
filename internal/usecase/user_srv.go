package usecase

import (
	"context"
	"errors"
	"fmt"

	"carparts-store/internal/data/entity"
	"carparts-store/internal/data/repository"
	"carparts-store/internal/dto/request"
	"carparts-store/internal/dto/response"

	"go.uber.org/zap"
)

type UserService interface {
	GetAllUsers(ctx context.Context, p request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error)

	// IsAdmin reports whether email belongs to an admin account. An unknown
	// email is simply not an admin, never an error.
	IsAdmin(ctx context.Context, email string) (bool, error)

	PromoteToAdmin(ctx context.Context, email string) error
}

type userService struct {
	users repository.UserRepository
	log   *zap.Logger
}

func NewUserService(users repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		users: users,
		log:   log.With(zap.String("service", "user")),
	}
}

func (s *userService) GetAllUsers(ctx context.Context, p request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error) {
	users, err := s.users.FindAll(ctx, p.Limit(), p.Offset())
	if err != nil {
		return nil, fmt.Errorf("get all users: %w", err)
	}

	total, err := s.users.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get all users: %w", err)
	}

	resp := response.NewPaginatedResponse(response.ToUserResponses(users), p.Page, p.Limit(), int(total))
	return &resp, nil
}

func (s *userService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return false, fmt.Errorf("check admin %s: %w", email, err)
	}
	return user.IsAdmin(), nil
}

func (s *userService) PromoteToAdmin(ctx context.Context, email string) error {
	err := s.users.SetRole(ctx, email, entity.RoleAdmin)
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("promote %s: %w", email, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("promote %s: %w", email, err)
	}
	return nil
}
