package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/robertncl/expense/internal/category"
)

var ErrIndexOutOfRange = errors.New("index out of range")

// IndexError wraps ErrIndexOutOfRange with the offending index and the ledger length.
func IndexError(index, length int) error {
	return fmt.Errorf("%w: %d (ledger has %d records)", ErrIndexOutOfRange, index, length)
}

type Expense interface {
	Description() string
	Amount() decimal.Decimal
	Category() category.Category
	Date() string
}

type expense struct {
	description string
	amount      decimal.Decimal
	category    category.Category
	date        string
}

func NewExpense(description string, amount decimal.Decimal, c category.Category, date string) Expense {
	return expense{
		description: description,
		amount:      amount,
		category:    c,
		date:        date,
	}
}

func (e expense) Description() string {
	return e.description
}

func (e expense) Amount() decimal.Decimal {
	return e.amount
}

func (e expense) Category() category.Category {
	return e.category
}

func (e expense) Date() string {
	return e.date
}

// Equal reports whether a and b hold the same values.
func Equal(a, b Expense) bool {
	return a.Description() == b.Description() &&
		a.Amount().Equal(b.Amount()) &&
		a.Category() == b.Category() &&
		a.Date() == b.Date()
}

// Storage keeps expenses in insertion order. Positions are zero based and
// shift down by one after a Remove.
type Storage interface {
	Append(ctx context.Context, expense Expense) (int, error)
	Get(ctx context.Context, index int) (Expense, error)
	Replace(ctx context.Context, index int, expense Expense) error
	Remove(ctx context.Context, index int) error
	All(ctx context.Context) ([]Expense, error)
	Len(ctx context.Context) (int, error)

	// Resource managment
	Close() error
}
