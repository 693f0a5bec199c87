package repos

import (
	"github.com/jmoiron/sqlx"

	"partsdepot/internal/domain"
)

type PaymentRepo struct{ db *sqlx.DB }

func NewPaymentRepo(db *sqlx.DB) *PaymentRepo { return &PaymentRepo{db: db} }

// InsertTx records the payment within the caller's transaction.
func (r *PaymentRepo) InsertTx(tx *sqlx.Tx, p domain.Payment) error {
	_, err := tx.Exec(`
	  INSERT INTO payments(order_id, payment_method, amount, status, transaction_id)
	  VALUES(?, ?, ?, ?, ?)
	`, p.OrderID, p.PaymentMethod, p.Amount, p.Status, p.TransactionID)
	return err
}

// GetByOrder returns the payment for an order (one-to-one in this design).
func (r *PaymentRepo) GetByOrder(orderID int64) (domain.Payment, error) {
	var p domain.Payment
	err := r.db.Get(&p, `
	  SELECT id, order_id, payment_method, amount, status, transaction_id, created_at
	  FROM payments
	  WHERE order_id = ?
	`, orderID)
	return p, err
}
