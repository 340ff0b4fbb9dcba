package testutil

import (
	"bytes"
	"testing"

	"github.com/fatih/color"

	"github.com/robertncl/expense/internal/category"
	"github.com/robertncl/expense/internal/cli"
	"github.com/robertncl/expense/internal/config"
)

// SetupSession returns a session over a ledger holding records, writing
// uncolored output to the returned buffer.
func SetupSession(t *testing.T, matcher *category.Matcher, records ...Record) (*cli.Session, *bytes.Buffer) {
	t.Helper()

	color.NoColor = true

	out := &bytes.Buffer{}
	session := cli.NewSession(
		SetupLedger(t, records...),
		matcher,
		config.DisplayConfig{Currency: "$", Thousand: ",", Decimal: "."},
		out,
		TestLogger(t),
	)

	return session, out
}
