package edit

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/robertncl/expense/internal/category"
	"github.com/robertncl/expense/internal/cli"
)

const noIndex = -1

type editCommand struct {
	index       int
	description cli.OptionalString
	amount      cli.OptionalString
	category    cli.OptionalString
	date        cli.OptionalString
}

func NewCommand() cli.Command {
	return &editCommand{}
}

func (c *editCommand) Description() string {
	return "Edit the expense at an index. Fields not given keep their current value"
}

func (c *editCommand) SetFlags(fs *flag.FlagSet) {
	*c = editCommand{}

	fs.IntVar(&c.index, "i", noIndex, "index of the expense, as shown by list")
	fs.Var(&c.description, "d", "new description")
	fs.Var(&c.amount, "a", "new amount")
	fs.Var(&c.category, "c", "new category")
	fs.Var(&c.date, "t", "new date")
}

func (c *editCommand) Run(ctx context.Context, session *cli.Session) error {
	if c.index == noIndex {
		return errors.New("you must provide the index of the expense to edit with -i")
	}

	current, err := session.Ledger.Get(ctx, c.index)
	if err != nil {
		return err
	}

	cat := current.Category()
	if c.category.IsSet {
		cat, err = category.Parse(c.category.Value)
		if err != nil {
			return err
		}
	}

	err = session.Ledger.Edit(ctx, c.index,
		c.description.Or(current.Description()),
		c.amount.Or(current.Amount().String()),
		cat,
		c.date.Or(current.Date()),
	)
	if err != nil {
		return fmt.Errorf("unable to edit expense #%d: %w", c.index, err)
	}

	session.Logger.Info("Expense edited", "index", c.index)
	fmt.Fprintf(session.Out, "Updated expense #%d\n", c.index)

	return nil
}
