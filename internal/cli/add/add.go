package add

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/robertncl/expense/internal/category"
	"github.com/robertncl/expense/internal/cli"
	"github.com/robertncl/expense/internal/ledger"
)

type addCommand struct {
	description string
	amount      string
	category    string
	date        string
}

func NewCommand() cli.Command {
	return &addCommand{}
}

func (c *addCommand) Description() string {
	return "Add an expense"
}

func (c *addCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.description, "d", "", "expense description")
	fs.StringVar(&c.amount, "a", "", "expense amount, e.g. 3.50")
	fs.StringVar(&c.category, "c", "", "category: Food, Transport, Shopping, Bills or Other (default: matched from description, else Food)")
	fs.StringVar(&c.date, "t", "", "expense date, e.g. 2024-01-31")
}

func (c *addCommand) Run(ctx context.Context, session *cli.Session) error {
	cat, err := c.resolveCategory(session.Matcher)
	if err != nil {
		return err
	}

	index, err := session.Ledger.Add(ctx, c.description, c.amount, cat, c.date)
	if errors.Is(err, ledger.ErrIncompleteRecord) {
		fmt.Fprintln(session.Out, "Nothing added: description, amount and date are required.")
		return nil
	}
	if err != nil {
		return err
	}

	session.Logger.Info("Expense added", "index", index, "category", cat)
	fmt.Fprintf(session.Out, "Added expense #%d (%s)\n", index, cat)

	return nil
}

func (c *addCommand) resolveCategory(matcher *category.Matcher) (category.Category, error) {
	if c.category != "" {
		return category.Parse(c.category)
	}

	if matched, ok := matcher.Match(c.description); ok {
		return matched, nil
	}

	return category.Default(), nil
}
