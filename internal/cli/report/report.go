package report

import (
	"context"
	"embed"
	"flag"
	"fmt"

	"github.com/robertncl/expense/internal/cli"
	internalReport "github.com/robertncl/expense/internal/report"
)

// content holds our static content.
//
//go:embed templates/*
var content embed.FS

type reportCommand struct {
	verbose bool
}

func NewCommand() cli.Command {
	return &reportCommand{}
}

func (c *reportCommand) Description() string {
	return "Displays the total spent and the breakdown by category"
}

func (c *reportCommand) SetFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.verbose, "v", false, "show verbose report output")
}

func (c *reportCommand) Run(ctx context.Context, session *cli.Session) error {
	r, err := internalReport.Generate(ctx, session.Ledger)
	if err != nil {
		return fmt.Errorf("unable to generate report: %w", err)
	}
	r.Verbose = c.verbose

	if err = session.Render(session.Out, content, "report.tmpl", r); err != nil {
		return fmt.Errorf("unable to render report: %w", err)
	}

	return nil
}
