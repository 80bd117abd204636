package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"abk/internal/book"
	"abk/internal/shared"
)

// Runner holds all dependencies for CLI commands and provides methods for
// each command action.
type Runner struct {
	config   *shared.Config
	book     *book.AddressBook
	clock    book.Clock
	logger   *log.Logger
	input    io.Reader
	output   io.Writer
	commands map[string]handler
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config *shared.Config
	Book   *book.AddressBook
	Clock  book.Clock
	Logger *log.Logger
	Input  io.Reader
	Output io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Book == nil {
		opts.Book = book.NewAddressBook()
	}
	if opts.Clock == nil {
		opts.Clock = book.RealClock{}
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Input == nil {
		opts.Input = os.Stdin
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	runner := &Runner{
		config: opts.Config,
		book:   opts.Book,
		clock:  opts.Clock,
		logger: opts.Logger,
		input:  opts.Input,
		output: opts.Output,
	}
	runner.commands = runner.handlers()
	return runner
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		replCommand, tuiCommand, initCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// SetLogger swaps the runner's logger, e.g. for file logging in TUI mode.
func (r *Runner) SetLogger(l *log.Logger) { r.logger = l }

// parseInput splits a raw line into a lowercased command name and its
// positional arguments. ok is false for blank lines.
func parseInput(line string) (command string, args []string, ok bool) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return "", nil, false
	}
	return strings.ToLower(parts[0]), parts[1:], true
}

// Repl is the action behind the repl command.
func (r *Runner) Repl(ctx context.Context, cmd *cli.Command) error {
	if path := cmd.String("config"); path != "" {
		config, err := shared.LoadConfig(path)
		if err != nil {
			return err
		}
		r.config = config
	}
	return r.Loop(ctx)
}

// Loop reads commands until close/exit or end of input. Every command is
// processed fully before the next line is read; no command error ends the
// loop.
func (r *Runner) Loop(ctx context.Context) error {
	r.logger.Debug("starting assistant loop")
	r.writePlainln("%s", r.config.REPL.Greeting)

	scanner := bufio.NewScanner(r.input)
	for {
		r.writePlain("%s", r.config.REPL.Prompt)
		if !scanner.Scan() {
			break
		}

		command, args, ok := parseInput(scanner.Text())
		if !ok {
			continue
		}
		if command == "close" || command == "exit" {
			r.writePlainln("%s", r.config.REPL.Farewell)
			return nil
		}

		r.writePlainln("%s", r.dispatch(command, args))
	}
	return scanner.Err()
}

// Init writes a starter configuration file.
func (r *Runner) Init(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("config")
	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}
	r.logger.Info("wrote config file", "path", path)
	return nil
}

func (r *Runner) writePlain(format string, args ...any) {
	if _, err := fmt.Fprintf(r.output, format, args...); err != nil {
		r.logger.Error("failed to write output", "err", err)
	}
}

func (r *Runner) writePlainln(format string, args ...any) {
	r.writePlain(format+"\n", args...)
}
