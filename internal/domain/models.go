package domain

// Order / payment status values.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

type Product struct {
	ID        int64   `db:"id" json:"id"`
	Name      string  `db:"name" json:"name"`
	Price     int64   `db:"price" json:"price"` // smallest currency unit
	Category  string  `db:"category" json:"category"`
	Image     string  `db:"image" json:"image"` // display glyph
	Rating    float64 `db:"rating" json:"rating"`
	Stock     int     `db:"stock" json:"stock"`
	CreatedAt string  `db:"created_at" json:"created_at"`
}

type Order struct {
	ID            int64  `db:"id" json:"id"`
	CustomerName  string `db:"customer_name" json:"customer_name"`
	Email         string `db:"email" json:"email"`
	Phone         string `db:"phone" json:"phone"`
	Address       string `db:"address" json:"address"`
	TotalAmount   int64  `db:"total_amount" json:"total_amount"`
	PaymentMethod string `db:"payment_method" json:"payment_method"`
	Status        string `db:"status" json:"status"` // pending | completed
	CreatedAt     string `db:"created_at" json:"created_at"`
}

// OrderItem keeps its own copy of the product name and price so historical
// orders stay intact when the catalog changes later.
type OrderItem struct {
	ID          int64  `db:"id" json:"id"`
	OrderID     int64  `db:"order_id" json:"order_id"`
	ProductID   int64  `db:"product_id" json:"product_id"`
	ProductName string `db:"product_name" json:"product_name"`
	Quantity    int    `db:"quantity" json:"quantity"`
	Price       int64  `db:"price" json:"price"`
}

type Payment struct {
	ID            int64  `db:"id" json:"id"`
	OrderID       int64  `db:"order_id" json:"order_id"`
	PaymentMethod string `db:"payment_method" json:"payment_method"`
	Amount        int64  `db:"amount" json:"amount"`
	Status        string `db:"status" json:"status"`
	TransactionID string `db:"transaction_id" json:"transaction_id"`
	CreatedAt     string `db:"created_at" json:"created_at"`
}
