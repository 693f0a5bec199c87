package services_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"partsdepot/internal/domain"
	"partsdepot/internal/repos"
	"partsdepot/internal/services"
)

// newCheckout wires a checkout service against the seeded in-memory store.
// Seed catalog: product 1 "Disc Brake Pad Set" (price 450000, stock 25),
// product 8 "Alternator" (price 1500000, stock 8).
func newCheckout(t *testing.T) (*sqlx.DB, *services.CheckoutService) {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	prodRepo := repos.NewProductRepo(db)
	orderRepo := repos.NewOrderRepo(db)
	payRepo := repos.NewPaymentRepo(db)
	return db, services.NewCheckoutService(db, prodRepo, orderRepo, payRepo)
}

func contact() services.CheckoutRequest {
	return services.CheckoutRequest{
		CustomerName:  "Tester",
		Email:         "t@example.com",
		Phone:         "+1 555 0100",
		Address:       "Somewhere 1",
		PaymentMethod: "transfer",
	}
}

func count(t *testing.T, db *sqlx.DB, table string) int {
	t.Helper()
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM `+table); err != nil {
		t.Fatal(err)
	}
	return n
}

func stock(t *testing.T, db *sqlx.DB, id int64) int {
	t.Helper()
	var n int
	if err := db.Get(&n, `SELECT stock FROM products WHERE id = ?`, id); err != nil {
		t.Fatal(err)
	}
	return n
}

func TestCheckout_Success(t *testing.T) {
	db, svc := newCheckout(t)

	req := contact()
	req.TotalAmount = 5 * 450000
	req.Lines = []services.CheckoutLine{{ProductID: 1, Name: "Disc Brake Pad Set", Quantity: 5, Price: 450000}}

	res, err := svc.Place(req)
	if err != nil {
		t.Fatal(err)
	}
	if res.OrderID == 0 {
		t.Fatal("no order id")
	}
	if !strings.HasPrefix(res.TransactionID, "TRX-") {
		t.Fatalf("unexpected transaction id %q", res.TransactionID)
	}
	if res.Total != 2250000 {
		t.Fatalf("want total 2250000, got %d", res.Total)
	}

	if got := stock(t, db, 1); got != 20 {
		t.Fatalf("want stock 20 after checkout, got %d", got)
	}

	orderRepo := repos.NewOrderRepo(db)
	o, err := orderRepo.Get(res.OrderID)
	if err != nil {
		t.Fatal(err)
	}
	if o.Status != domain.StatusCompleted {
		t.Fatalf("want completed order, got %q", o.Status)
	}
	if o.TotalAmount != 2250000 {
		t.Fatalf("want persisted total 2250000, got %d", o.TotalAmount)
	}

	items, err := orderRepo.Items(res.OrderID)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 1 || items[0].ProductName != "Disc Brake Pad Set" || items[0].Price != 450000 || items[0].Quantity != 5 {
		t.Fatalf("bad item snapshot: %+v", items)
	}

	pay, err := repos.NewPaymentRepo(db).GetByOrder(res.OrderID)
	if err != nil {
		t.Fatal(err)
	}
	if pay.Status != domain.StatusCompleted || pay.Amount != 2250000 || pay.TransactionID != res.TransactionID {
		t.Fatalf("bad payment row: %+v", pay)
	}
}

func TestCheckout_StockShortage_RollsBack(t *testing.T) {
	db, svc := newCheckout(t)

	req := contact()
	req.TotalAmount = 10 * 1500000
	req.Lines = []services.CheckoutLine{{ProductID: 8, Name: "Alternator", Quantity: 10, Price: 1500000}}

	_, err := svc.Place(req)
	var shortErr *services.StockShortageError
	if !errors.As(err, &shortErr) {
		t.Fatalf("want StockShortageError, got %v", err)
	}
	if shortErr.Name != "Alternator" || shortErr.Requested != 10 || shortErr.Available != 8 {
		t.Fatalf("bad shortage detail: %+v", shortErr)
	}

	if got := stock(t, db, 8); got != 8 {
		t.Fatalf("stock changed on failed checkout: %d", got)
	}
	for _, table := range []string{"orders", "order_items", "payments"} {
		if n := count(t, db, table); n != 0 {
			t.Fatalf("want empty %s after rollback, got %d rows", table, n)
		}
	}
}

func TestCheckout_ShortageOnSecondLine_RollsBackFirst(t *testing.T) {
	db, svc := newCheckout(t)

	req := contact()
	req.TotalAmount = 2*450000 + 10*1500000
	req.Lines = []services.CheckoutLine{
		{ProductID: 1, Quantity: 2, Price: 450000},
		{ProductID: 8, Quantity: 10, Price: 1500000},
	}

	_, err := svc.Place(req)
	var shortErr *services.StockShortageError
	if !errors.As(err, &shortErr) {
		t.Fatalf("want StockShortageError, got %v", err)
	}

	// The first line's decrement and item insert must not survive.
	if got := stock(t, db, 1); got != 25 {
		t.Fatalf("first line decrement leaked through rollback: stock %d", got)
	}
	if n := count(t, db, "order_items"); n != 0 {
		t.Fatalf("want no order items after rollback, got %d", n)
	}
}

func TestCheckout_UnknownProduct(t *testing.T) {
	db, svc := newCheckout(t)

	req := contact()
	req.Lines = []services.CheckoutLine{{ProductID: 999, Quantity: 1, Price: 100}}

	_, err := svc.Place(req)
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	if n := count(t, db, "orders"); n != 0 {
		t.Fatalf("order persisted for unknown product: %d rows", n)
	}
}

func TestCheckout_EmptyLines(t *testing.T) {
	_, svc := newCheckout(t)

	_, err := svc.Place(contact())
	if !errors.Is(err, services.ErrEmptyOrder) {
		t.Fatalf("want ErrEmptyOrder, got %v", err)
	}
}

func TestCheckout_BadQuantity(t *testing.T) {
	_, svc := newCheckout(t)

	req := contact()
	req.Lines = []services.CheckoutLine{{ProductID: 1, Quantity: 0, Price: 450000}}

	_, err := svc.Place(req)
	var vErr *services.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("want ValidationError, got %v", err)
	}
}

func TestCheckout_ServerRecomputesTotal(t *testing.T) {
	db, svc := newCheckout(t)

	// Client claims the whole order costs 1. The catalog price wins.
	req := contact()
	req.TotalAmount = 1
	req.Lines = []services.CheckoutLine{{ProductID: 2, Quantity: 3, Price: 1}}

	res, err := svc.Place(req)
	if err != nil {
		t.Fatal(err)
	}
	if res.Total != 3*150000 {
		t.Fatalf("want server total 450000, got %d", res.Total)
	}
	if res.Total == res.ClientTotal {
		t.Fatal("expected client/server total mismatch")
	}

	var persisted int64
	if err := db.Get(&persisted, `SELECT total_amount FROM orders WHERE id = ?`, res.OrderID); err != nil {
		t.Fatal(err)
	}
	if persisted != res.Total {
		t.Fatalf("persisted total %d != server total %d", persisted, res.Total)
	}
}

func TestCheckout_TransactionIDsUnique(t *testing.T) {
	_, svc := newCheckout(t)

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		req := contact()
		req.TotalAmount = 150000
		req.Lines = []services.CheckoutLine{{ProductID: 2, Quantity: 1, Price: 150000}}
		res, err := svc.Place(req)
		if err != nil {
			t.Fatal(err)
		}
		if seen[res.TransactionID] {
			t.Fatalf("duplicate transaction id %q", res.TransactionID)
		}
		seen[res.TransactionID] = true
	}
}
