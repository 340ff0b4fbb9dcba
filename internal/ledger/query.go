package ledger

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/robertncl/expense/internal/category"
	"github.com/robertncl/expense/internal/storage"
)

func matches(e storage.Expense, c category.Category, date string) bool {
	return (c == category.All || e.Category() == c) && (date == "" || e.Date() == date)
}

// Filter returns, in ledger order, the records of category c (or any, for
// category.All) dated exactly date (or any, for "").
func (l *Ledger) Filter(ctx context.Context, c category.Category, date string) ([]storage.Expense, error) {
	entries, err := l.FilterEntries(ctx, c, date)
	if err != nil {
		return nil, err
	}

	expenses := make([]storage.Expense, len(entries))
	for i, entry := range entries {
		expenses[i] = entry.Expense
	}

	return expenses, nil
}

// FilterEntries is Filter keeping the ledger index of every result.
func (l *Ledger) FilterEntries(ctx context.Context, c category.Category, date string) ([]Entry, error) {
	all, err := l.Records(ctx)
	if err != nil {
		return nil, err
	}

	entries := []Entry{}
	for i, e := range all {
		if matches(e, c, date) {
			entries = append(entries, Entry{Index: i, Expense: e})
		}
	}

	return entries, nil
}

// TotalSpent sums every record of the ledger, ignoring any filter.
func (l *Ledger) TotalSpent(ctx context.Context) (decimal.Decimal, error) {
	all, err := l.Records(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, e := range all {
		total = total.Add(e.Amount())
	}

	return total, nil
}

// CategoryBreakdown sums amounts per category in the fixed category order.
// Categories summing to zero are left out.
func (l *Ledger) CategoryBreakdown(ctx context.Context) ([]CategoryAmount, error) {
	all, err := l.Records(ctx)
	if err != nil {
		return nil, err
	}

	sums := make(map[category.Category]decimal.Decimal)
	for _, e := range all {
		sums[e.Category()] = sums[e.Category()].Add(e.Amount())
	}

	breakdown := []CategoryAmount{}
	for _, c := range category.List() {
		amount := sums[c]
		if amount.IsZero() {
			continue
		}
		breakdown = append(breakdown, CategoryAmount{
			Category: c,
			Amount:   amount,
			Color:    c.Color(),
		})
	}

	return breakdown, nil
}
