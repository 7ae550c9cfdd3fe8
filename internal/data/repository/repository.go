package repository

import (
	"carparts-store/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User    UserRepository
	Product ProductRepository
	Order   OrderRepository
	Payment PaymentRepository
	Review  ReviewRepository
	Profile ProfileRepository
	Support SupportRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewUserRepository(db, log),
		Product: NewProductRepository(db, log),
		Order:   NewOrderRepository(db, log),
		Payment: NewPaymentRepository(db, log),
		Review:  NewReviewRepository(db, log),
		Profile: NewProfileRepository(db, log),
		Support: NewSupportRepository(db, log),
	}
}
