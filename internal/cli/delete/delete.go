package delete

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/robertncl/expense/internal/cli"
)

const noIndex = -1

type deleteCommand struct {
	index int
}

func NewCommand() cli.Command {
	return &deleteCommand{}
}

func (c *deleteCommand) Description() string {
	return "Delete the expense at an index. Later expenses move up one position"
}

func (c *deleteCommand) SetFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.index, "i", noIndex, "index of the expense, as shown by list")
}

func (c *deleteCommand) Run(ctx context.Context, session *cli.Session) error {
	if c.index == noIndex {
		return errors.New("you must provide the index of the expense to delete with -i")
	}

	if err := session.Ledger.Delete(ctx, c.index); err != nil {
		return err
	}

	session.Logger.Info("Expense deleted", "index", c.index)
	fmt.Fprintf(session.Out, "Deleted expense #%d\n", c.index)

	return nil
}
