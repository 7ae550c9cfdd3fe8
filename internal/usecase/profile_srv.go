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

type ProfileService interface {
	GetProfile(ctx context.Context, email string) (*response.ProfileResponse, error)
	UpsertProfile(ctx context.Context, email string, req request.UpsertProfileRequest) (*response.ProfileResponse, error)
	GetSupportMessages(ctx context.Context) ([]response.SupportResponse, error)
}

type profileService struct {
	profiles repository.ProfileRepository
	support  repository.SupportRepository
	log      *zap.Logger
}

func NewProfileService(profiles repository.ProfileRepository, support repository.SupportRepository, log *zap.Logger) ProfileService {
	return &profileService{
		profiles: profiles,
		support:  support,
		log:      log.With(zap.String("service", "profile")),
	}
}

func (s *profileService) GetProfile(ctx context.Context, email string) (*response.ProfileResponse, error) {
	profile, err := s.profiles.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("get profile %s: %w", email, err)
	}
	if profile == nil {
		return nil, fmt.Errorf("profile %s: %w", email, ErrNotFound)
	}

	resp := response.ToProfileResponse(profile)
	return &resp, nil
}

func (s *profileService) UpsertProfile(ctx context.Context, email string, req request.UpsertProfileRequest) (*response.ProfileResponse, error) {
	now := time.Now()
	profile := &entity.Profile{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Email:     email,
		Education: req.Education,
		Location:  req.Location,
		Phone:     req.Phone,
		LinkedIn:  req.LinkedIn,
	}

	if err := s.profiles.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("upsert profile %s: %w", email, err)
	}

	// Re-read so an existing profile answers with its original id and
	// created_at.
	stored, err := s.profiles.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("upsert profile %s: %w", email, err)
	}
	if stored == nil {
		return nil, fmt.Errorf("profile %s vanished after upsert: %w", email, ErrNotFound)
	}

	resp := response.ToProfileResponse(stored)
	return &resp, nil
}

func (s *profileService) GetSupportMessages(ctx context.Context) ([]response.SupportResponse, error) {
	messages, err := s.support.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get support messages: %w", err)
	}
	return response.ToSupportResponses(messages), nil
}
