package list

import (
	"context"
	"embed"
	"flag"
	"fmt"

	"github.com/robertncl/expense/internal/cli"
	"github.com/robertncl/expense/internal/ledger"
)

// content holds our static content.
//
//go:embed templates/*
var content embed.FS

type listCommand struct {
	category cli.OptionalString
	date     cli.OptionalString
}

type listView struct {
	View    cli.View
	Entries []ledger.Entry
}

func NewCommand() cli.Command {
	return &listCommand{}
}

func (c *listCommand) Description() string {
	return "List expenses matching the current filter"
}

func (c *listCommand) SetFlags(fs *flag.FlagSet) {
	*c = listCommand{}

	fs.Var(&c.category, "c", "category to show for this listing only, or All")
	fs.Var(&c.date, "t", "date to show for this listing only")
}

func (c *listCommand) Run(ctx context.Context, session *cli.Session) error {
	view, err := session.ResolveView(c.category, c.date)
	if err != nil {
		return err
	}

	entries, err := session.Ledger.FilterEntries(ctx, view.Category, view.Date)
	if err != nil {
		return fmt.Errorf("unable to filter expenses: %w", err)
	}

	return session.Render(session.Out, content, "list.tmpl", listView{
		View:    view,
		Entries: entries,
	})
}
