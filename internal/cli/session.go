package cli

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/robertncl/expense/internal/category"
	"github.com/robertncl/expense/internal/config"
	"github.com/robertncl/expense/internal/ledger"
	"github.com/robertncl/expense/internal/logger"
	"github.com/robertncl/expense/internal/util"
)

// View is the filter applied to the list, set with the filter command.
type View struct {
	Category category.Category
	Date     string
}

func (v View) String() string {
	date := v.Date
	if date == "" {
		date = "any"
	}
	return fmt.Sprintf("category=%s date=%s", v.Category, date)
}

type Session struct {
	ID      string
	Ledger  *ledger.Ledger
	Matcher *category.Matcher
	View    View
	Display config.DisplayConfig
	Out     io.Writer
	Logger  *logger.Logger
}

func NewSession(
	l *ledger.Ledger,
	matcher *category.Matcher,
	display config.DisplayConfig,
	out io.Writer,
	logger *logger.Logger,
) *Session {
	id := uuid.NewString()

	return &Session{
		ID:      id,
		Ledger:  l,
		Matcher: matcher,
		View:    View{Category: category.All},
		Display: display,
		Out:     out,
		Logger:  logger.With("session", id),
	}
}

// Money formats amount with the configured currency and separators.
func (s *Session) Money(amount decimal.Decimal) string {
	return util.FormatAmount(amount, s.Display.Currency, s.Display.Thousand, s.Display.Decimal)
}

// ResolveView returns the session view with any explicitly set flag taking precedence.
func (s *Session) ResolveView(c, date OptionalString) (View, error) {
	view := s.View

	if c.IsSet {
		parsed, err := category.ParseFilter(c.Value)
		if err != nil {
			return view, err
		}
		view.Category = parsed
	}

	if date.IsSet {
		view.Date = date.Value
	}

	return view, nil
}
