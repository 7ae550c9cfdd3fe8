package repository

import (
	"context"
	"fmt"

	"carparts-store/internal/data/entity"
	"carparts-store/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	FindByEmail(ctx context.Context, email string, limit, offset int) ([]*entity.Order, error)
	CountByEmail(ctx context.Context, email string) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Settle performs the whole settlement unit in one transaction:
	// the paid=false -> paid=true compare-and-set, the receipt insert and
	// the clamped stock decrement. Losing the compare-and-set rolls the
	// transaction back and returns ErrAlreadySettled, so a repeated call
	// can never duplicate the receipt or decrement stock twice.
	Settle(ctx context.Context, order *entity.Order, receipt *entity.Payment) error
}

type orderRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOrderRepository(db database.PgxIface, log *zap.Logger) OrderRepository {
	return &orderRepository{
		db:  db,
		log: log.With(zap.String("repository", "order")),
	}
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	query := `
		INSERT INTO orders (id, email, product_id, product_name, quantity, price,
		                    paid, transaction_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		order.ID,
		order.Email,
		order.ProductID,
		order.ProductName,
		order.Quantity,
		order.Price,
		order.Paid,
		order.TransactionID,
		order.CreatedAt,
		order.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create order",
			zap.Error(err),
			zap.String("email", order.Email),
			zap.String("product_id", order.ProductID.String()),
		)
		return fmt.Errorf("create order for %s: %w", order.Email, err)
	}

	return nil
}

func (r *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	query := `
		SELECT id, email, product_id, product_name, quantity, price,
		       paid, transaction_id, created_at, updated_at
		FROM orders
		WHERE id = $1
	`

	var order entity.Order
	err := r.db.QueryRow(ctx, query, id).Scan(
		&order.ID,
		&order.Email,
		&order.ProductID,
		&order.ProductName,
		&order.Quantity,
		&order.Price,
		&order.Paid,
		&order.TransactionID,
		&order.CreatedAt,
		&order.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find order by ID",
			zap.Error(err),
			zap.String("order_id", id.String()),
		)
		return nil, fmt.Errorf("find order by ID %s: %w", id.String(), err)
	}

	return &order, nil
}

func (r *orderRepository) FindByEmail(ctx context.Context, email string, limit, offset int) ([]*entity.Order, error) {
	query := `
		SELECT id, email, product_id, product_name, quantity, price,
		       paid, transaction_id, created_at, updated_at
		FROM orders
		WHERE email = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, email, limit, offset)
	if err != nil {
		r.log.Error("Failed to find orders by email",
			zap.Error(err),
			zap.String("email", email),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find orders by email %s: %w", email, err)
	}
	defer rows.Close()

	var orders []*entity.Order
	for rows.Next() {
		var order entity.Order
		err := rows.Scan(
			&order.ID,
			&order.Email,
			&order.ProductID,
			&order.ProductName,
			&order.Quantity,
			&order.Price,
			&order.Paid,
			&order.TransactionID,
			&order.CreatedAt,
			&order.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan order row", zap.Error(err))
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, &order)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate order rows: %w", err)
	}

	return orders, nil
}

func (r *orderRepository) CountByEmail(ctx context.Context, email string) (int64, error) {
	query := `SELECT COUNT(*) FROM orders WHERE email = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, email).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count orders by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return 0, fmt.Errorf("count orders by email %s: %w", email, err)
	}

	return count, nil
}

func (r *orderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM orders WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete order",
			zap.Error(err),
			zap.String("order_id", id.String()),
		)
		return fmt.Errorf("delete order %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("order %s %w", id.String(), ErrNotFound)
	}

	r.log.Info("Order deleted", zap.String("order_id", id.String()))
	return nil
}

func (r *orderRepository) Settle(ctx context.Context, order *entity.Order, receipt *entity.Payment) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin settlement transaction",
			zap.Error(err),
			zap.String("order_id", order.ID.String()),
		)
		return fmt.Errorf("begin settlement of order %s: %w", order.ID.String(), err)
	}
	defer tx.Rollback(ctx)

	// Compare-and-set: only an unpaid order may transition. A concurrent
	// settlement of the same order matches zero rows here and the whole
	// unit rolls back.
	markPaid := `
		UPDATE orders
		SET paid = true, transaction_id = $2, updated_at = NOW()
		WHERE id = $1 AND paid = false
	`
	result, err := tx.Exec(ctx, markPaid, order.ID, receipt.TransactionID)
	if err != nil {
		return fmt.Errorf("mark order %s paid: %w", order.ID.String(), err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("order %s: %w", order.ID.String(), ErrAlreadySettled)
	}

	insertReceipt := `
		INSERT INTO payments (id, order_id, transaction_id, amount, payment_method, email, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err = tx.Exec(ctx, insertReceipt,
		receipt.ID,
		receipt.OrderID,
		receipt.TransactionID,
		receipt.Amount,
		receipt.PaymentMethod,
		receipt.Email,
		receipt.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("record receipt for order %s: %w", order.ID.String(), err)
	}

	decrementStock := `
		UPDATE products
		SET quantity = GREATEST(quantity - $2, 0), updated_at = NOW()
		WHERE id = $1
	`
	_, err = tx.Exec(ctx, decrementStock, order.ProductID, order.Quantity)
	if err != nil {
		return fmt.Errorf("decrement stock of product %s: %w", order.ProductID.String(), err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit settlement",
			zap.Error(err),
			zap.String("order_id", order.ID.String()),
		)
		return fmt.Errorf("commit settlement of order %s: %w", order.ID.String(), err)
	}

	r.log.Info("Order settled",
		zap.String("order_id", order.ID.String()),
		zap.String("transaction_id", receipt.TransactionID),
		zap.Int64("amount", receipt.Amount),
	)
	return nil
}
