// Command docgen generates reference documentation from the inkwell command
// definitions and validation presets. Output is written to docs/.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	docs "github.com/urfave/cli-docs/v3"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/inkwell/internal/commands"
)

func main() {
	flags := &commands.Flags{}

	root := &cli.Command{
		Name:      "inkwell",
		Usage:     "Form validation and toast notifications for the terminal",
		UsageText: "inkwell [global options] command [command options]",
		Description: `Inkwell pairs event-gated form validation with a toast notification store.

Run 'inkwell' with no arguments to open the interactive demo.
Run 'inkwell validate <preset> <value>' to check a value from the shell.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error, fatal, panic)",
				Sources: cli.EnvVars("INKWELL_LOG_LEVEL"),
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "log-file",
				Usage:   "path to log file",
				Sources: cli.EnvVars("INKWELL_LOG_FILE"),
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to config file",
				Sources: cli.EnvVars("INKWELL_CONFIG"),
				Value:   commands.DefaultConfigPath(),
			},
		},
	}

	root = commands.NewDemoCmd(flags).Register(root)
	root = commands.NewRoutesCmd(flags).Register(root)
	root = commands.NewValidateCmd(flags).Register(root)
	root = commands.NewConfigValidateCmd(flags).Register(root)
	root = commands.NewDocCmd(flags).Register(root)

	outDir := "docs"
	if len(os.Args) > 1 {
		outDir = os.Args[1]
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fail("create %s: %v", outDir, err)
	}

	md, err := docs.ToMarkdown(root)
	if err != nil {
		fail("error generating docs: %v", err)
	}
	write(filepath.Join(outDir, "cli-reference.md"), md)

	catalog, err := commands.MessageCatalog(context.Background())
	if err != nil {
		fail("error generating message catalog: %v", err)
	}
	write(filepath.Join(outDir, "validation-messages.md"), catalog)
}

func write(path, content string) {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		fail("error writing %s: %v", path, err)
	}
	fmt.Printf("Generated %s\n", path)
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
