package services

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"partsdepot/internal/domain"
	"partsdepot/internal/repos"
)

// CheckoutLine is one requested order line. Name and Price are what the
// client displayed; the persisted snapshot is re-read from the catalog
// inside the transaction so a tampered payload cannot rewrite prices.
type CheckoutLine struct {
	ProductID int64
	Name      string
	Quantity  int
	Price     int64
}

type CheckoutRequest struct {
	CustomerName  string
	Email         string
	Phone         string
	Address       string
	PaymentMethod string
	TotalAmount   int64 // client-computed; audited against the server total
	Lines         []CheckoutLine
}

type CheckoutResult struct {
	OrderID       int64
	TransactionID string
	Total         int64 // server-computed, the persisted value
	ClientTotal   int64
}

// CheckoutService places orders as a single all-or-nothing transaction:
// order header, line items, stock decrements and the payment record either
// all persist or none do. The db handle is injected; the service holds no
// process-global state.
type CheckoutService struct {
	db       *sqlx.DB
	products *repos.ProductRepo
	orders   *repos.OrderRepo
	payments *repos.PaymentRepo
}

func NewCheckoutService(db *sqlx.DB, products *repos.ProductRepo, orders *repos.OrderRepo, payments *repos.PaymentRepo) *CheckoutService {
	return &CheckoutService{db: db, products: products, orders: orders, payments: payments}
}

func (s *CheckoutService) Place(req CheckoutRequest) (CheckoutResult, error) {
	if len(req.Lines) == 0 {
		return CheckoutResult{}, ErrEmptyOrder
	}
	for _, ln := range req.Lines {
		if ln.ProductID <= 0 {
			return CheckoutResult{}, &ValidationError{Field: "items.id", Reason: "must be a positive product id"}
		}
		if ln.Quantity < 1 {
			return CheckoutResult{}, &ValidationError{Field: "items.quantity", Reason: "must be at least 1"}
		}
	}

	// The DSN opens transactions with the immediate write lock, so every
	// read below sees stock as of this transaction and concurrent checkouts
	// are serialized by sqlite itself.
	tx, err := s.db.Beginx()
	if err != nil {
		return CheckoutResult{}, fmt.Errorf("begin checkout: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	orderID, err := s.orders.CreateTx(tx, domain.Order{
		CustomerName:  req.CustomerName,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		TotalAmount:   req.TotalAmount,
		PaymentMethod: req.PaymentMethod,
		Status:        domain.StatusPending,
	})
	if err != nil {
		return CheckoutResult{}, fmt.Errorf("create order: %w", err)
	}

	var total int64
	for _, ln := range req.Lines {
		snap, err := s.products.SnapshotTx(tx, ln.ProductID)
		if errors.Is(err, sql.ErrNoRows) {
			return CheckoutResult{}, fmt.Errorf("product %d: %w", ln.ProductID, ErrNotFound)
		}
		if err != nil {
			return CheckoutResult{}, fmt.Errorf("read stock for product %d: %w", ln.ProductID, err)
		}
		if ln.Quantity > snap.Stock {
			return CheckoutResult{}, &StockShortageError{
				ProductID: ln.ProductID,
				Name:      snap.Name,
				Requested: ln.Quantity,
				Available: snap.Stock,
			}
		}

		if err := s.orders.InsertItemTx(tx, domain.OrderItem{
			OrderID:     orderID,
			ProductID:   ln.ProductID,
			ProductName: snap.Name,
			Quantity:    ln.Quantity,
			Price:       snap.Price,
		}); err != nil {
			return CheckoutResult{}, fmt.Errorf("insert order item: %w", err)
		}
		if err := s.products.DecrementStockTx(tx, ln.ProductID, ln.Quantity); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return CheckoutResult{}, &StockShortageError{
					ProductID: ln.ProductID,
					Name:      snap.Name,
					Requested: ln.Quantity,
					Available: snap.Stock,
				}
			}
			return CheckoutResult{}, fmt.Errorf("decrement stock: %w", err)
		}
		total += snap.Price * int64(ln.Quantity)
	}

	// The submitted total is advisory; the catalog-derived total is what
	// gets persisted. Callers audit-log the mismatch.
	if total != req.TotalAmount {
		if err := s.orders.SetTotalTx(tx, orderID, total); err != nil {
			return CheckoutResult{}, fmt.Errorf("correct order total: %w", err)
		}
	}

	// Payment is simulated: once stock clears it always succeeds.
	txID := newTransactionID()
	if err := s.payments.InsertTx(tx, domain.Payment{
		OrderID:       orderID,
		PaymentMethod: req.PaymentMethod,
		Amount:        total,
		Status:        domain.StatusCompleted,
		TransactionID: txID,
	}); err != nil {
		return CheckoutResult{}, fmt.Errorf("record payment: %w", err)
	}

	if err := s.orders.UpdateStatusTx(tx, orderID, domain.StatusCompleted); err != nil {
		return CheckoutResult{}, fmt.Errorf("complete order: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return CheckoutResult{}, fmt.Errorf("commit checkout: %w", err)
	}

	return CheckoutResult{
		OrderID:       orderID,
		TransactionID: txID,
		Total:         total,
		ClientTotal:   req.TotalAmount,
	}, nil
}

// newTransactionID keeps the store's historical TRX prefix but draws the
// unique part from a v4 uuid rather than a timestamp+rand pair, which
// collides under concurrent load.
func newTransactionID() string {
	return "TRX-" + uuid.NewString()
}
