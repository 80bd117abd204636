// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// replCommand starts the interactive assistant loop.
func replCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "repl",
		Aliases: []string{"run", "assistant"},
		Usage:   "Start the interactive assistant loop",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
			},
		},
		Action: r.Repl,
	}
}

// tuiCommand returns the top-level TUI command for browsing contacts.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch the interactive contact browser",
		Action:  r.TUI,
	}
}

// initCommand writes a starter configuration file.
func initCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Write a starter config.toml",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
		},
		Action: r.Init,
	}
}
