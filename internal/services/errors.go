package services

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrEmptyOrder = errors.New("order has no items")
)

// ValidationError reports a malformed request field before any side effect.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// StockShortageError names the first line whose requested quantity exceeds
// the stock on hand. It always means the whole checkout was rolled back.
type StockShortageError struct {
	ProductID int64
	Name      string
	Requested int
	Available int
}

func (e *StockShortageError) Error() string {
	return fmt.Sprintf("insufficient stock for %s (need %d, have %d)", e.Name, e.Requested, e.Available)
}
