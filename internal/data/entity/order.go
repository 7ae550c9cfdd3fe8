package entity

import (
	"github.com/google/uuid"
)

// Order snapshots the product name and price at creation time, so later
// catalog edits never change what an existing order is worth.
type Order struct {
	BaseNoDelete
	Email         string    `db:"email"`
	ProductID     uuid.UUID `db:"product_id"`
	ProductName   string    `db:"product_name"`
	Quantity      int       `db:"quantity"`
	Price         float64   `db:"price"`
	Paid          bool      `db:"paid"`
	TransactionID *string   `db:"transaction_id"`
}
