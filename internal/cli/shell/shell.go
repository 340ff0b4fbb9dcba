package shell

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/mattn/go-shellwords"

	"github.com/robertncl/expense/internal/cli"
	"github.com/robertncl/expense/internal/cli/add"
	deletecmd "github.com/robertncl/expense/internal/cli/delete"
	"github.com/robertncl/expense/internal/cli/edit"
	exportcmd "github.com/robertncl/expense/internal/cli/export"
	"github.com/robertncl/expense/internal/cli/filter"
	"github.com/robertncl/expense/internal/cli/list"
	"github.com/robertncl/expense/internal/cli/report"
)

const defaultPrompt = "> "

var errQuit = errors.New("quit")

// Commands returns the session commands by name.
func Commands() map[string]cli.Command {
	return map[string]cli.Command{
		"add":    add.NewCommand(),
		"edit":   edit.NewCommand(),
		"delete": deletecmd.NewCommand(),
		"filter": filter.NewCommand(),
		"list":   list.NewCommand(),
		"report": report.NewCommand(),
		"export": exportcmd.NewCommand(),
	}
}

type Shell struct {
	session  *cli.Session
	commands map[string]cli.Command
	in       io.Reader
	Prompt   string
}

func New(session *cli.Session, in io.Reader) *Shell {
	return &Shell{
		session:  session,
		commands: Commands(),
		in:       in,
		Prompt:   defaultPrompt,
	}
}

// Run executes one command per input line until quit, end of input or ctx is done.
// Command errors are reported and do not stop the session.
func (s *Shell) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(s.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	s.session.Logger.Info("Session started")
	defer s.session.Logger.Info("Session ended")

	for {
		fmt.Fprint(s.session.Out, s.Prompt)

		select {
		case <-ctx.Done():
			fmt.Fprintln(s.session.Out)
			return nil
		case line, ok := <-lines:
			if !ok {
				fmt.Fprintln(s.session.Out)
				select {
				case err := <-readErr:
					return err
				default:
					return nil
				}
			}

			err := s.Exec(ctx, line)
			if errors.Is(err, errQuit) {
				return nil
			}
			if err != nil {
				s.session.Logger.Warn("Command failed", "line", line, "error", err)
				fmt.Fprintf(s.session.Out, "error: %s\n", err)
			}
		}
	}
}

// Exec runs a single input line.
func (s *Shell) Exec(ctx context.Context, line string) error {
	args, err := shellwords.Parse(line)
	if err != nil {
		return fmt.Errorf("unable to parse %q: %w", line, err)
	}

	if len(args) == 0 {
		return nil
	}

	name := args[0]
	switch name {
	case "quit", "exit":
		return errQuit
	case "help":
		s.printHelp()
		return nil
	}

	command, ok := s.commands[name]
	if !ok {
		return fmt.Errorf("unsupported command %s. Use 'help' to list the supported commands", name)
	}

	fset := flag.NewFlagSet(name, flag.ContinueOnError)
	fset.SetOutput(s.session.Out)
	command.SetFlags(fset)

	if err = fset.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fset.NArg() > 0 {
		return fmt.Errorf("unexpected arguments %s. Values are given with flags, see 'help'", strings.Join(fset.Args(), " "))
	}

	return command.Run(ctx, s.session)
}

func (s *Shell) printHelp() {
	out := s.session.Out
	names := make([]string, 0, len(s.commands))
	for name := range s.commands {
		names = append(names, name)
	}
	slices.Sort(names)

	fmt.Fprintf(out, "usage: <command> [flags]\n\n")

	for _, name := range names {
		command := s.commands[name]
		fmt.Fprintf(out, "%s: %s\n", name, command.Description())

		fset := flag.NewFlagSet(name, flag.ContinueOnError)
		fset.SetOutput(out)
		command.SetFlags(fset)
		fset.PrintDefaults()
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out, "help: show this message")
	fmt.Fprintln(out, "quit: end the session, discarding every expense")
}
