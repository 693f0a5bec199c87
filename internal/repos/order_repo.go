package repos

import (
	"github.com/jmoiron/sqlx"

	"partsdepot/internal/domain"
)

type OrderRepo struct{ db *sqlx.DB }

func NewOrderRepo(db *sqlx.DB) *OrderRepo { return &OrderRepo{db: db} }

// OrderDetail is the order page shape: the order plus a concatenated
// "<name> x<qty>" summary of its lines.
type OrderDetail struct {
	domain.Order
	Items string `db:"items" json:"items"`
}

// CreateTx inserts the order header within the caller's transaction and
// returns the generated order id.
func (r *OrderRepo) CreateTx(tx *sqlx.Tx, o domain.Order) (int64, error) {
	res, err := tx.Exec(`
	  INSERT INTO orders(customer_name, email, phone, address, total_amount, payment_method, status)
	  VALUES(?, ?, ?, ?, ?, ?, ?)
	`, o.CustomerName, o.Email, o.Phone, o.Address, o.TotalAmount, o.PaymentMethod, o.Status)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// InsertItemTx inserts a single line item within the caller's transaction.
func (r *OrderRepo) InsertItemTx(tx *sqlx.Tx, it domain.OrderItem) error {
	_, err := tx.Exec(`
	  INSERT INTO order_items(order_id, product_id, product_name, quantity, price)
	  VALUES(?, ?, ?, ?, ?)
	`, it.OrderID, it.ProductID, it.ProductName, it.Quantity, it.Price)
	return err
}

// SetTotalTx overwrites the order total within the caller's transaction.
// Used when the server-computed total differs from the submitted one.
func (r *OrderRepo) SetTotalTx(tx *sqlx.Tx, id int64, total int64) error {
	_, err := tx.Exec(`UPDATE orders SET total_amount = ? WHERE id = ?`, total, id)
	return err
}

func (r *OrderRepo) UpdateStatusTx(tx *sqlx.Tx, id int64, status string) error {
	_, err := tx.Exec(`UPDATE orders SET status = ? WHERE id = ?`, status, id)
	return err
}

// ListLatest returns all orders, newest first.
func (r *OrderRepo) ListLatest() ([]domain.Order, error) {
	var out []domain.Order
	err := r.db.Select(&out, `
	  SELECT id, customer_name, email, phone, address, total_amount, payment_method, status, created_at
	  FROM orders
	  ORDER BY datetime(created_at) DESC, id DESC
	`)
	return out, err
}

// Get returns one order with its items summary. sql.ErrNoRows for unknown ids.
func (r *OrderRepo) Get(id int64) (OrderDetail, error) {
	var o OrderDetail
	err := r.db.Get(&o, `
	  SELECT o.id, o.customer_name, o.email, o.phone, o.address, o.total_amount,
	         o.payment_method, o.status, o.created_at,
	         COALESCE(GROUP_CONCAT(oi.product_name || ' x' || oi.quantity), '') AS items
	  FROM orders o
	  LEFT JOIN order_items oi ON oi.order_id = o.id
	  WHERE o.id = ?
	  GROUP BY o.id
	`, id)
	return o, err
}

// Items returns the stored line items for an order.
func (r *OrderRepo) Items(orderID int64) ([]domain.OrderItem, error) {
	var out []domain.OrderItem
	err := r.db.Select(&out, `
	  SELECT id, order_id, product_id, product_name, quantity, price
	  FROM order_items
	  WHERE order_id = ?
	  ORDER BY id
	`, orderID)
	return out, err
}
