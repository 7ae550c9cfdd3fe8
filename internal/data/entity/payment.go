package entity

import (
	"github.com/google/uuid"
)

// Payment is an immutable receipt written once per settlement.
// Amount is in the processor's minor units (cents).
type Payment struct {
	BaseSimple
	OrderID       uuid.UUID `db:"order_id"`
	TransactionID string    `db:"transaction_id"`
	Amount        int64     `db:"amount"`
	PaymentMethod string    `db:"payment_method"`
	Email         string    `db:"email"`
}
