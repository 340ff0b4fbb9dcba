package cli

import (
	"context"
	"flag"
)

// Command is one action of an interactive session. SetFlags is called on a
// fresh FlagSet before every Run, so flag values never leak between runs.
type Command interface {
	SetFlags(fset *flag.FlagSet)
	Description() string
	Run(ctx context.Context, session *Session) error
}
