package usecase

import (
	"carparts-store/internal/data/repository"
	"carparts-store/pkg/auth"
	"carparts-store/pkg/cache"
	"carparts-store/pkg/payment"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	User    UserService
	Product ProductService
	Order   OrderService
	Review  ReviewService
	Profile ProfileService
}

func NewService(
	repo *repository.Repository,
	tokens *auth.TokenManager,
	gateway payment.Gateway,
	store *cache.Cache,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:    NewAuthService(repo.User, tokens, log),
		User:    NewUserService(repo.User, log),
		Product: NewProductService(repo.Product, store, log),
		Order:   NewOrderService(repo.Order, repo.Product, repo.Payment, repo.User, gateway, store, log),
		Review:  NewReviewService(repo.Review, log),
		Profile: NewProfileService(repo.Profile, repo.Support, log),
	}
}
