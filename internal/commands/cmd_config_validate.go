package commands

import (
	"context"
	"errors"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/inkwell/internal/core/config"
	"github.com/colonyops/inkwell/internal/printer"
	"github.com/colonyops/inkwell/pkg/iojson"
)

type ConfigValidateCmd struct {
	flags  *Flags
	format string
}

// NewConfigValidateCmd creates a new config validate command.
func NewConfigValidateCmd(flags *Flags) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags}
}

// Register adds the config validate command to the application.
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "inkwell config validate [options]",
				Description: "Validates the configuration file, checking the theme, toast limits, validation mode, and keybinding actions.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.run,
			},
		},
	})

	return app
}

// ConfigIssue is a single invalid option.
type ConfigIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type configReport struct {
	Valid    bool                       `json:"valid"`
	Path     string                     `json:"path"`
	Errors   []ConfigIssue              `json:"errors,omitempty"`
	Warnings []config.ValidationWarning `json:"warnings,omitempty"`
}

func (cmd *ConfigValidateCmd) run(ctx context.Context, c *cli.Command) error {
	cfg := cmd.flags.Config
	if cfg == nil {
		def := config.DefaultConfig()
		cfg = &def
	}

	report, err := buildConfigReport(cfg, cmd.flags.ConfigPath)
	if err != nil {
		return err
	}

	if cmd.format == "json" {
		if err := iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, report); err != nil {
			return err
		}
	} else {
		cmd.outputText(printer.Ctx(ctx), report)
	}

	if !report.Valid {
		return cli.Exit("", 1)
	}
	return nil
}

func buildConfigReport(cfg *config.Config, path string) (configReport, error) {
	report := configReport{
		Valid:    true,
		Path:     path,
		Warnings: cfg.Warnings(),
	}

	err := cfg.ValidateDeep(path)
	if err == nil {
		return report, nil
	}

	var fieldErrs criterio.FieldErrors
	if !errors.As(err, &fieldErrs) {
		return report, err
	}

	report.Valid = false
	for _, fe := range fieldErrs {
		if fe.Err == nil {
			continue
		}
		report.Errors = append(report.Errors, ConfigIssue{Field: fe.Field, Message: fe.Err.Error()})
	}
	return report, nil
}

func (cmd *ConfigValidateCmd) outputText(p *printer.Printer, report configReport) {
	p.Section("Config")
	if report.Path != "" {
		p.Printf("  %s", report.Path)
	}

	for _, warn := range report.Warnings {
		p.Warnf("%s: %s", warn.Category, warn.Message)
		if warn.Item != "" {
			p.Printf("  Item: %s", warn.Item)
		}
	}

	for _, issue := range report.Errors {
		p.FailItem(issue.Field, issue.Message)
	}

	p.Printf("")
	if report.Valid {
		p.Successf("Configuration is valid")
		return
	}
	p.Errorf("%d error(s) found", len(report.Errors))
}
