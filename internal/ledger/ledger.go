// Package ledger keeps the ordered list of expenses of a session and answers
// the queries the list view and the analytics panel are built from.
//
// A record is identified by its position. Deleting position i shifts every
// later record down by one, so a caller holding an index across a Delete may
// address a different record afterwards.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/robertncl/expense/internal/category"
	"github.com/robertncl/expense/internal/storage"
)

var (
	// ErrIncompleteRecord is returned, without touching the ledger, when the
	// description, amount or date is empty.
	ErrIncompleteRecord = errors.New("description, amount and date are required")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrIndexOutOfRange  = storage.ErrIndexOutOfRange
)

// Entry is a record together with its current ledger position.
type Entry struct {
	Index int
	storage.Expense
}

// CategoryAmount is one slice of the category breakdown.
type CategoryAmount struct {
	Category category.Category
	Amount   decimal.Decimal
	Color    string
}

type Ledger struct {
	mu    sync.RWMutex
	store storage.Storage
}

func New(store storage.Storage) *Ledger {
	return &Ledger{store: store}
}

// Add appends a record and returns its index.
func (l *Ledger) Add(ctx context.Context, description, amount string, c category.Category, date string) (int, error) {
	expense, err := newExpense(description, amount, c, date)
	if err != nil {
		return -1, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	return l.store.Append(ctx, expense)
}

// Edit replaces the record at index. Every other record keeps its index.
func (l *Ledger) Edit(ctx context.Context, index int, description, amount string, c category.Category, date string) error {
	expense, err := newExpense(description, amount, c, date)
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	return l.store.Replace(ctx, index, expense)
}

// Delete removes the record at index.
func (l *Ledger) Delete(ctx context.Context, index int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.store.Remove(ctx, index)
}

func (l *Ledger) Get(ctx context.Context, index int) (storage.Expense, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.store.Get(ctx, index)
}

func (l *Ledger) Len(ctx context.Context) (int, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.store.Len(ctx)
}

// Records returns every record in insertion order.
func (l *Ledger) Records(ctx context.Context) ([]storage.Expense, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.store.All(ctx)
}

func newExpense(description, amount string, c category.Category, date string) (storage.Expense, error) {
	if description == "" || amount == "" || date == "" {
		return nil, ErrIncompleteRecord
	}

	value, err := ParseAmount(amount)
	if err != nil {
		return nil, err
	}

	if !c.Valid() {
		return nil, fmt.Errorf("%w: %q", category.ErrUnknownCategory, c)
	}

	return storage.NewExpense(description, value, c, date), nil
}
