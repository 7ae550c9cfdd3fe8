package repository

import (
	"context"
	"fmt"

	"carparts-store/internal/data/entity"
	"carparts-store/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ProfileRepository interface {
	Upsert(ctx context.Context, profile *entity.Profile) error
	FindByEmail(ctx context.Context, email string) (*entity.Profile, error)
}

type profileRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewProfileRepository(db database.PgxIface, log *zap.Logger) ProfileRepository {
	return &profileRepository{
		db:  db,
		log: log.With(zap.String("repository", "profile")),
	}
}

func (r *profileRepository) Upsert(ctx context.Context, profile *entity.Profile) error {
	query := `
		INSERT INTO profiles (id, email, education, location, phone, linkedin, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (email) DO UPDATE
		SET education = EXCLUDED.education, location = EXCLUDED.location,
		    phone = EXCLUDED.phone, linkedin = EXCLUDED.linkedin,
		    updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.Exec(ctx, query,
		profile.ID,
		profile.Email,
		profile.Education,
		profile.Location,
		profile.Phone,
		profile.LinkedIn,
		profile.CreatedAt,
		profile.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to upsert profile",
			zap.Error(err),
			zap.String("email", profile.Email),
		)
		return fmt.Errorf("upsert profile %s: %w", profile.Email, err)
	}

	return nil
}

func (r *profileRepository) FindByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	query := `
		SELECT id, email, education, location, phone, linkedin, created_at, updated_at
		FROM profiles
		WHERE email = $1
	`

	var profile entity.Profile
	err := r.db.QueryRow(ctx, query, email).Scan(
		&profile.ID,
		&profile.Email,
		&profile.Education,
		&profile.Location,
		&profile.Phone,
		&profile.LinkedIn,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find profile by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find profile by email %s: %w", email, err)
	}

	return &profile, nil
}
