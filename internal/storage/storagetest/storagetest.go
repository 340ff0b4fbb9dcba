// Package storagetest holds the behavior every storage.Storage implementation must share.
package storagetest

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/robertncl/expense/internal/category"
	"github.com/robertncl/expense/internal/storage"
)

func expense(description, amount string, c category.Category, date string) storage.Expense {
	return storage.NewExpense(description, decimal.RequireFromString(amount), c, date)
}

// Run exercises positional semantics against a fresh store returned by setup.
func Run(t *testing.T, setup func(t *testing.T) storage.Storage) {
	t.Helper()

	t.Run("starts empty", func(t *testing.T) {
		s := setup(t)

		length, err := s.Len(context.Background())
		if err != nil {
			t.Fatalf("Len() error = %v", err)
		}
		if length != 0 {
			t.Errorf("Len() = %d, want 0", length)
		}

		all, err := s.All(context.Background())
		if err != nil {
			t.Fatalf("All() error = %v", err)
		}
		if len(all) != 0 {
			t.Errorf("All() returned %d expenses, want 0", len(all))
		}
	})

	t.Run("append returns positions", func(t *testing.T) {
		s := setup(t)
		ctx := context.Background()

		records := []storage.Expense{
			expense("Coffee", "3.50", category.Food, "2024-01-01"),
			expense("Bus", "2", category.Transport, "2024-01-01"),
			expense("Coffee", "3.50", category.Food, "2024-01-01"),
		}

		for i, r := range records {
			index, err := s.Append(ctx, r)
			if err != nil {
				t.Fatalf("Append() error = %v", err)
			}
			if index != i {
				t.Errorf("Append() = %d, want %d", index, i)
			}
		}

		all, err := s.All(ctx)
		if err != nil {
			t.Fatalf("All() error = %v", err)
		}
		assertExpenses(t, all, records)

		got, err := s.Get(ctx, 1)
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if !storage.Equal(got, records[1]) {
			t.Errorf("Get(1) = %v, want %v", got, records[1])
		}
	})

	t.Run("replace keeps positions", func(t *testing.T) {
		s := setup(t)
		ctx := context.Background()

		a := expense("A", "1", category.Food, "2024-01-01")
		b := expense("B", "2", category.Bills, "2024-01-02")
		c := expense("C", "3", category.Other, "2024-01-03")
		d := expense("D", "4.25", category.Shopping, "2024-01-04")
		mustAppend(t, s, a, b, c)

		if err := s.Replace(ctx, 1, d); err != nil {
			t.Fatalf("Replace() error = %v", err)
		}

		all, err := s.All(ctx)
		if err != nil {
			t.Fatalf("All() error = %v", err)
		}
		assertExpenses(t, all, []storage.Expense{a, d, c})
	})

	t.Run("remove shifts positions", func(t *testing.T) {
		s := setup(t)
		ctx := context.Background()

		a := expense("A", "1", category.Food, "2024-01-01")
		b := expense("B", "2", category.Bills, "2024-01-02")
		c := expense("C", "3", category.Other, "2024-01-03")
		mustAppend(t, s, a, b, c)

		if err := s.Remove(ctx, 0); err != nil {
			t.Fatalf("Remove() error = %v", err)
		}

		all, err := s.All(ctx)
		if err != nil {
			t.Fatalf("All() error = %v", err)
		}
		assertExpenses(t, all, []storage.Expense{b, c})

		got, err := s.Get(ctx, 0)
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if !storage.Equal(got, b) {
			t.Errorf("Get(0) = %v, want %v", got, b)
		}
	})

	t.Run("out of range", func(t *testing.T) {
		s := setup(t)
		ctx := context.Background()
		mustAppend(t, s, expense("A", "1", category.Food, "2024-01-01"))

		for _, index := range []int{-1, 1, 5} {
			if _, err := s.Get(ctx, index); !errors.Is(err, storage.ErrIndexOutOfRange) {
				t.Errorf("Get(%d) error = %v, want %v", index, err, storage.ErrIndexOutOfRange)
			}
			if err := s.Replace(ctx, index, expense("B", "1", category.Food, "x")); !errors.Is(err, storage.ErrIndexOutOfRange) {
				t.Errorf("Replace(%d) error = %v, want %v", index, err, storage.ErrIndexOutOfRange)
			}
			if err := s.Remove(ctx, index); !errors.Is(err, storage.ErrIndexOutOfRange) {
				t.Errorf("Remove(%d) error = %v, want %v", index, err, storage.ErrIndexOutOfRange)
			}
		}

		length, err := s.Len(ctx)
		if err != nil {
			t.Fatalf("Len() error = %v", err)
		}
		if length != 1 {
			t.Errorf("Len() = %d, want 1", length)
		}
	})
}

func mustAppend(t *testing.T, s storage.Storage, expenses ...storage.Expense) {
	t.Helper()

	for _, e := range expenses {
		if _, err := s.Append(context.Background(), e); err != nil {
			t.Fatalf("Append() error = %v", err)
		}
	}
}

func assertExpenses(t *testing.T, got, want []storage.Expense) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("got %d expenses, want %d", len(got), len(want))
	}

	for i := range want {
		if !storage.Equal(got[i], want[i]) {
			t.Errorf("expense[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
