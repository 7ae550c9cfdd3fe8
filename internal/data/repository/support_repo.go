package repository

import (
	"context"
	"fmt"

	"carparts-store/internal/data/entity"
	"carparts-store/pkg/database"

	"go.uber.org/zap"
)

type SupportRepository interface {
	FindAll(ctx context.Context) ([]*entity.SupportMessage, error)
}

type supportRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSupportRepository(db database.PgxIface, log *zap.Logger) SupportRepository {
	return &supportRepository{
		db:  db,
		log: log.With(zap.String("repository", "support")),
	}
}

func (r *supportRepository) FindAll(ctx context.Context) ([]*entity.SupportMessage, error) {
	query := `
		SELECT id, name, email, message, created_at
		FROM support
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find support messages", zap.Error(err))
		return nil, fmt.Errorf("find support messages: %w", err)
	}
	defer rows.Close()

	var messages []*entity.SupportMessage
	for rows.Next() {
		var msg entity.SupportMessage
		err := rows.Scan(
			&msg.ID,
			&msg.Name,
			&msg.Email,
			&msg.Message,
			&msg.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan support row", zap.Error(err))
			return nil, fmt.Errorf("scan support row: %w", err)
		}
		messages = append(messages, &msg)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate support rows: %w", err)
	}

	return messages, nil
}
