package services_test

import (
	"errors"
	"testing"

	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"partsdepot/internal/repos"
	"partsdepot/internal/services"
)

func newCatalog(t *testing.T) *services.CatalogService {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	return services.NewCatalogService(repos.NewProductRepo(db))
}

func TestCatalog_ListAvailable(t *testing.T) {
	svc := newCatalog(t)

	ps, err := svc.ListAvailable()
	if err != nil {
		t.Fatal(err)
	}
	if len(ps) != 8 {
		t.Fatalf("want 8 seeded products, got %d", len(ps))
	}
}

func TestCatalog_GetUnknown(t *testing.T) {
	svc := newCatalog(t)

	if _, err := svc.Get(999); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestCatalog_SetStock(t *testing.T) {
	svc := newCatalog(t)

	if err := svc.SetStock(1, 40); err != nil {
		t.Fatal(err)
	}
	p, err := svc.Get(1)
	if err != nil {
		t.Fatal(err)
	}
	if p.Stock != 40 {
		t.Fatalf("want stock 40, got %d", p.Stock)
	}

	var vErr *services.ValidationError
	if err := svc.SetStock(1, -1); !errors.As(err, &vErr) {
		t.Fatalf("want ValidationError for negative stock, got %v", err)
	}
	if err := svc.SetStock(999, 5); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("want ErrNotFound for unknown id, got %v", err)
	}
}
