package services

import (
	"database/sql"
	"errors"

	"partsdepot/internal/domain"
	"partsdepot/internal/repos"
)

type CatalogService struct {
	Products *repos.ProductRepo
}

func NewCatalogService(products *repos.ProductRepo) *CatalogService {
	return &CatalogService{Products: products}
}

func (s *CatalogService) ListAvailable() ([]domain.Product, error) {
	return s.Products.ListAvailable()
}

func (s *CatalogService) Get(id int64) (domain.Product, error) {
	p, err := s.Products.Get(id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, ErrNotFound
	}
	return p, err
}

// SetStock is the administrative overwrite: a plain single-row update with
// no reconciliation against orders in flight.
func (s *CatalogService) SetStock(id int64, stock int) error {
	if stock < 0 {
		return &ValidationError{Field: "stock", Reason: "must not be negative"}
	}
	if err := s.Products.SetStock(id, stock); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
