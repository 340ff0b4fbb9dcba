package report

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/robertncl/expense/internal/category"
	"github.com/robertncl/expense/internal/ledger"
	"github.com/robertncl/expense/internal/storage"
)

const (
	percentageOfTotal = 100
)

type Category struct {
	Name              category.Category
	Color             string
	Amount            decimal.Decimal
	Expenses          []storage.Expense
	PercentageOfTotal float64
	AvgAmount         decimal.Decimal
}

// Report is the analytics panel: total spent and how it splits by category.
type Report struct {
	Total      decimal.Decimal
	Count      int
	Categories []Category
	Duplicates []string
	Verbose    bool
}

func Generate(ctx context.Context, l *ledger.Ledger) (Report, error) {
	var report Report

	total, err := l.TotalSpent(ctx)
	if err != nil {
		return report, err
	}

	breakdown, err := l.CategoryBreakdown(ctx)
	if err != nil {
		return report, err
	}

	expenses, err := l.Records(ctx)
	if err != nil {
		return report, err
	}

	report.Total = total
	report.Count = len(expenses)
	report.Duplicates = duplicates(expenses)

	byCategory := make(map[category.Category][]storage.Expense)
	for _, ex := range expenses {
		byCategory[ex.Category()] = append(byCategory[ex.Category()], ex)
	}

	report.Categories = make([]Category, 0, len(breakdown))
	for _, slice := range breakdown {
		c := Category{
			Name:     slice.Category,
			Color:    slice.Color,
			Amount:   slice.Amount,
			Expenses: byCategory[slice.Category],
		}

		if !total.IsZero() {
			c.PercentageOfTotal = slice.Amount.Mul(decimal.NewFromInt(percentageOfTotal)).Div(total).InexactFloat64()
		}

		if len(c.Expenses) > 0 {
			c.AvgAmount = slice.Amount.Div(decimal.NewFromInt(int64(len(c.Expenses))))
		}

		report.Categories = append(report.Categories, c)
	}

	return report, nil
}

// duplicates lists descriptions seen more than once, in order of their second appearance.
func duplicates(expenses []storage.Expense) []string {
	seen := map[string]int{}
	result := []string{}

	for _, ex := range expenses {
		seen[ex.Description()]++
		if seen[ex.Description()] == 2 {
			result = append(result, ex.Description())
		}
	}

	return result
}
