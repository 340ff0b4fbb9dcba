package export

import (
	"context"
	"flag"
	"fmt"

	"github.com/robertncl/expense/internal/cli"
	internalExport "github.com/robertncl/expense/internal/export"
)

type exportCommand struct {
	category cli.OptionalString
	date     cli.OptionalString
}

func NewCommand() cli.Command {
	return &exportCommand{}
}

func (c *exportCommand) Description() string {
	return "Write the expenses matching the current filter as CSV"
}

func (c *exportCommand) SetFlags(fs *flag.FlagSet) {
	*c = exportCommand{}

	fs.Var(&c.category, "c", "category to export, or All")
	fs.Var(&c.date, "t", "date to export")
}

func (c *exportCommand) Run(ctx context.Context, session *cli.Session) error {
	view, err := session.ResolveView(c.category, c.date)
	if err != nil {
		return err
	}

	entries, err := session.Ledger.FilterEntries(ctx, view.Category, view.Date)
	if err != nil {
		return fmt.Errorf("unable to filter expenses: %w", err)
	}

	if err = internalExport.CSV(session.Out, entries); err != nil {
		return err
	}

	session.Logger.Debug("Expenses exported", "count", len(entries))

	return nil
}
