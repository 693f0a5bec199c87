package repos

import (
	"database/sql"

	"github.com/jmoiron/sqlx"

	"partsdepot/internal/domain"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

// ListAvailable returns products with stock on hand, ordered by id.
func (r *ProductRepo) ListAvailable() ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `
	  SELECT id, name, price, category, image, rating, stock, created_at
	  FROM products
	  WHERE stock > 0
	  ORDER BY id
	`)
	return out, err
}

func (r *ProductRepo) Get(id int64) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `
	  SELECT id, name, price, category, image, rating, stock, created_at
	  FROM products
	  WHERE id = ?
	`, id)
	return p, err
}

// Insert adds a catalog product and returns its generated id.
func (r *ProductRepo) Insert(p domain.Product) (int64, error) {
	res, err := r.db.Exec(`
	  INSERT INTO products(name, price, category, image, rating, stock)
	  VALUES(?, ?, ?, ?, ?, ?)
	`, p.Name, p.Price, p.Category, p.Image, p.Rating, p.Stock)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// SetStock overwrites a product's stock (administrative; no reconciliation
// against in-flight orders). Returns sql.ErrNoRows for an unknown id.
func (r *ProductRepo) SetStock(id int64, stock int) error {
	res, err := r.db.Exec(`UPDATE products SET stock = ? WHERE id = ?`, stock, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ProductSnapshot is the slice of a product the checkout transaction needs:
// the authoritative name/price to copy onto the order line plus current stock.
type ProductSnapshot struct {
	Name  string `db:"name"`
	Price int64  `db:"price"`
	Stock int    `db:"stock"`
}

// SnapshotTx reads name/price/stock inside the caller's transaction.
func (r *ProductRepo) SnapshotTx(tx *sqlx.Tx, id int64) (ProductSnapshot, error) {
	var s ProductSnapshot
	err := tx.Get(&s, `SELECT name, price, stock FROM products WHERE id = ?`, id)
	return s, err
}

// DecrementStockTx subtracts "by" units within the caller's transaction.
// The update is guarded so stock can never go negative even if the earlier
// check raced; zero rows affected means insufficient stock.
func (r *ProductRepo) DecrementStockTx(tx *sqlx.Tx, id int64, by int) error {
	res, err := tx.Exec(`
	  UPDATE products
	  SET stock = stock - ?
	  WHERE id = ? AND stock >= ?
	`, by, id, by)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
