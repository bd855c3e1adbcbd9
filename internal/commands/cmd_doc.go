package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/inkwell/internal/core/styles"
	"github.com/colonyops/inkwell/internal/core/validate"
)

type DocCmd struct {
	flags *Flags
	raw   bool
}

func NewDocCmd(flags *Flags) *DocCmd {
	return &DocCmd{flags: flags}
}

func (cmd *DocCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "doc",
		Usage: "Reference documentation",
		Description: `Reference documentation for inkwell.

Use 'inkwell doc messages' to see the messages each validation preset produces.`,
		Commands: []*cli.Command{
			cmd.messagesCmd(),
		},
	})
	return app
}

func (cmd *DocCmd) messagesCmd() *cli.Command {
	return &cli.Command{
		Name:  "messages",
		Usage: "Show the validation message catalog",
		Description: `Runs every validation preset against sample values and lists the messages
they produce. Output is rendered markdown; use --raw for the source.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "raw",
				Usage:       "print markdown without rendering",
				Destination: &cmd.raw,
			},
		},
		Action: cmd.runMessages,
	}
}

// messageSamples are the values each preset is documented with.
var messageSamples = map[string][]string{
	"display-name": {"", "-ann", "ann smith!", "a", strings.Repeat("a", 40), "ann_smith"},
	"email":        {"ann", "ann@", "ann@example.com"},
	"password":     {"hunter2", "correct horse"},
	"url":          {"example", "https://example.com"},
}

func (cmd *DocCmd) runMessages(ctx context.Context, c *cli.Command) error {
	md, err := MessageCatalog(ctx)
	if err != nil {
		return err
	}

	w := c.Root().Writer
	if cmd.raw {
		_, err := io.WriteString(w, md)
		return err
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(docWidth()),
	)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}

	out, err := renderer.Render(md)
	if err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}

// MessageCatalog builds the markdown catalog by validating every sample on
// submit.
func MessageCatalog(ctx context.Context) (string, error) {
	var b strings.Builder
	b.WriteString("# Validation messages\n\n")
	b.WriteString("Messages produced by each preset when a form is submitted.\n")

	for _, name := range validate.PresetNames() {
		schema, _ := validate.LookupPreset(name)
		v := validate.Default(validate.Static(schema), validate.OrConfig{})

		fmt.Fprintf(&b, "\n## %s\n\n", name)
		b.WriteString("| Value | Messages |\n|---|---|\n")

		for _, sample := range messageSamples[name] {
			res, err := v.Validate(ctx, validate.FieldState{
				Name:    name,
				Value:   sample,
				Event:   validate.EventSubmit,
				Dirty:   true,
				Touched: true,
			})
			if err != nil {
				return "", fmt.Errorf("validate %s sample %q: %w", name, sample, err)
			}

			msgs := make([]string, 0, len(res.Errors))
			for _, e := range res.Errors {
				msgs = append(msgs, validate.Describe(e))
			}
			cell := "valid"
			if len(msgs) > 0 {
				cell = strings.Join(msgs, "; ")
			}
			fmt.Fprintf(&b, "| %s | %s |\n", mdCell(sampleLabel(sample)), mdCell(cell))
		}
	}
	return b.String(), nil
}

func sampleLabel(s string) string {
	if s == "" {
		return "(empty)"
	}
	return "`" + s + "`"
}

func mdCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

func docWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return min(w, 100)
	}
	return 80
}
