package usecase

import (
	"context"
	"fmt"
	"time"

	"carparts-store/internal/data/entity"
	"carparts-store/internal/data/repository"
	"carparts-store/internal/dto/request"
	"carparts-store/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewService interface {
	GetReviews(ctx context.Context, p request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error)

	// CreateReview stores a review attributed to the authenticated email.
	CreateReview(ctx context.Context, email string, req request.CreateReviewRequest) (*response.ReviewResponse, error)
}

type reviewService struct {
	reviews repository.ReviewRepository
	log     *zap.Logger
}

func NewReviewService(reviews repository.ReviewRepository, log *zap.Logger) ReviewService {
	return &reviewService{
		reviews: reviews,
		log:     log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) GetReviews(ctx context.Context, p request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error) {
	reviews, err := s.reviews.FindAll(ctx, p.Limit(), p.Offset())
	if err != nil {
		return nil, fmt.Errorf("get reviews: %w", err)
	}

	total, err := s.reviews.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get reviews: %w", err)
	}

	resp := response.NewPaginatedResponse(response.ToReviewResponses(reviews), p.Page, p.Limit(), int(total))
	return &resp, nil
}

func (s *reviewService) CreateReview(ctx context.Context, email string, req request.CreateReviewRequest) (*response.ReviewResponse, error) {
	review := &entity.Review{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Email:   email,
		Name:    req.Name,
		Rating:  req.Rating,
		Comment: req.Comment,
	}

	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.log.Info("Review created",
		zap.String("email", email),
		zap.Int("rating", req.Rating))

	resp := response.ToReviewResponse(review)
	return &resp, nil
}
