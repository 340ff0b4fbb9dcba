package testutil

import (
	"context"
	"testing"

	"github.com/robertncl/expense/internal/category"
	"github.com/robertncl/expense/internal/ledger"
	"github.com/robertncl/expense/internal/storage/memory"
)

// Record is the raw input of a ledger Add.
type Record struct {
	Description string
	Amount      string
	Category    category.Category
	Date        string
}

// SetupLedger returns an in-memory ledger holding records in order.
func SetupLedger(t *testing.T, records ...Record) *ledger.Ledger {
	t.Helper()

	store := memory.New()
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("Failed to close test store: %v", err)
		}
	})

	l := ledger.New(store)
	for _, r := range records {
		if _, err := l.Add(context.Background(), r.Description, r.Amount, r.Category, r.Date); err != nil {
			t.Fatalf("Failed to add %q: %v", r.Description, err)
		}
	}

	return l
}
