package filter

import (
	"context"
	"flag"
	"fmt"

	"github.com/robertncl/expense/internal/category"
	"github.com/robertncl/expense/internal/cli"
)

type filterCommand struct {
	category cli.OptionalString
	date     cli.OptionalString
	clear    bool
}

func NewCommand() cli.Command {
	return &filterCommand{}
}

func (c *filterCommand) Description() string {
	return "Set the category and date filter used by list and export"
}

func (c *filterCommand) SetFlags(fs *flag.FlagSet) {
	*c = filterCommand{}

	fs.Var(&c.category, "c", "category to show, or All")
	fs.Var(&c.date, "t", "exact date to show, empty for any date")
	fs.BoolVar(&c.clear, "clear", false, "show every expense")
}

func (c *filterCommand) Run(_ context.Context, session *cli.Session) error {
	if c.clear {
		session.View = cli.View{Category: category.All}
	} else {
		view, err := session.ResolveView(c.category, c.date)
		if err != nil {
			return err
		}
		session.View = view
	}

	session.Logger.Debug("Filter updated", "category", session.View.Category, "date", session.View.Date)
	fmt.Fprintf(session.Out, "Showing %s\n", session.View)

	return nil
}
