package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/inkwell/internal/core/styles"
	"github.com/colonyops/inkwell/internal/core/validate"
	"github.com/colonyops/inkwell/internal/printer"
	"github.com/colonyops/inkwell/pkg/iojson"
)

type ValidateCmd struct {
	flags *Flags

	event   string
	mode    string
	dirty   bool
	touched bool
	json    bool

	batchInput iojson.FileReader[[]ValidateRequest]
}

// NewValidateCmd creates a new validate command
func NewValidateCmd(flags *Flags) *ValidateCmd {
	return &ValidateCmd{flags: flags}
}

// ValidateRequest is a single value to check in batch mode.
type ValidateRequest struct {
	Preset  string `json:"preset"`
	Value   string `json:"value"`
	Event   string `json:"event,omitempty"`   // defaults to submit
	Dirty   *bool  `json:"dirty,omitempty"`   // defaults to true
	Touched *bool  `json:"touched,omitempty"` // defaults to true
}

// ValidateResult is the outcome of a single check.
type ValidateResult struct {
	Preset    string           `json:"preset"`
	Value     string           `json:"value"`
	Event     string           `json:"event"`
	Evaluated bool             `json:"evaluated"`
	Valid     bool             `json:"valid"`
	Issues    []validate.Issue `json:"issues,omitempty"`
	Error     string           `json:"error,omitempty"`
}

// Register adds the validate command to the application
func (cmd *ValidateCmd) Register(app *cli.Command) *cli.Command {
	// Everything after the preset is the value, so values such as "-ann"
	// are never taken for flags.
	stopAfterPreset := 1

	app.Commands = append(app.Commands, &cli.Command{
		Name:         "validate",
		Usage:        "Check a value against a validation preset",
		UsageText:    "inkwell validate [options] <preset> [value]",
		StopOnNthArg: &stopAfterPreset,
		Description: fmt.Sprintf(`Runs a preset validator the way a form field would, for the given event and
field history. Presets: %s.

When no value is given and stdin is a terminal, the value is prompted for
interactively. Otherwise it is read from stdin.

Options must come before the preset: anything after it is part of the value.

Exits with status 1 when the value is rejected.`, strings.Join(validate.PresetNames(), ", ")),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "event",
				Aliases:     []string{"e"},
				Usage:       "triggering event (submit, blur, change, user)",
				Value:       string(validate.EventSubmit),
				Destination: &cmd.event,
			},
			&cli.StringFlag{
				Name:        "mode",
				Usage:       "validation mode (submit, blur, change); defaults to the configured mode",
				Destination: &cmd.mode,
			},
			&cli.BoolFlag{
				Name:        "dirty",
				Usage:       "treat the field as edited",
				Value:       true,
				Destination: &cmd.dirty,
			},
			&cli.BoolFlag{
				Name:        "touched",
				Usage:       "treat the field as focused and blurred at least once",
				Value:       true,
				Destination: &cmd.touched,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON",
				Destination: &cmd.json,
			},
		},
		Action: cmd.run,
		Commands: []*cli.Command{
			{
				Name:      "batch",
				Usage:     "Check many values read from JSON",
				UsageText: "inkwell validate batch [-f file]",
				Description: `Reads a JSON array of {"preset", "value", "event", "dirty", "touched"}
objects and writes one JSON result per line. The --mode flag of the parent
command applies to every entry.`,
				Flags: []cli.Flag{
					cmd.batchInput.Flag(),
				},
				Action: cmd.runBatch,
			},
		},
	})
	return app
}

func (cmd *ValidateCmd) run(ctx context.Context, c *cli.Command) error {
	if c.NArg() == 0 {
		return fmt.Errorf("preset is required (available: %s)", strings.Join(validate.PresetNames(), ", "))
	}

	preset := c.Args().Get(0)
	event, err := validate.ParseEvent(cmd.event)
	if err != nil {
		return err
	}
	v, err := cmd.validator(preset)
	if err != nil {
		return err
	}

	var value string
	switch {
	case c.NArg() > 1:
		value = c.Args().Get(1)
	case isTerminal(c.Root().Reader):
		value, err = cmd.prompt(preset, v, event)
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return fmt.Errorf("form: %w", err)
		}
	default:
		bits, err := io.ReadAll(c.Root().Reader)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		value = strings.TrimRight(string(bits), "\r\n")
	}

	res := cmd.check(ctx, v, ValidateRequest{Preset: preset, Value: value}, event, cmd.dirty, cmd.touched)

	if cmd.json {
		if err := iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, res); err != nil {
			return err
		}
	} else {
		printResult(printer.Ctx(ctx), res)
	}

	if res.Error != "" || !res.Valid {
		return cli.Exit("", 1)
	}
	return nil
}

func (cmd *ValidateCmd) runBatch(ctx context.Context, c *cli.Command) error {
	reqs, err := cmd.batchInput.Read(c.Root().Reader)
	if err != nil {
		return err
	}

	w := c.Root().Writer
	failed := 0
	for _, req := range reqs {
		res := cmd.checkRequest(ctx, req)
		if res.Error != "" || !res.Valid {
			failed++
		}
		if err := iojson.WriteLine(w, res); err != nil {
			return err
		}
	}

	log.Debug().Int("total", len(reqs)).Int("failed", failed).Msg("batch validated")
	return nil
}

func (cmd *ValidateCmd) checkRequest(ctx context.Context, req ValidateRequest) ValidateResult {
	if req.Event == "" {
		req.Event = string(validate.EventSubmit)
	}
	event, err := validate.ParseEvent(req.Event)
	if err != nil {
		return ValidateResult{Preset: req.Preset, Value: req.Value, Event: req.Event, Error: err.Error()}
	}
	v, err := cmd.validator(req.Preset)
	if err != nil {
		return ValidateResult{Preset: req.Preset, Value: req.Value, Event: req.Event, Error: err.Error()}
	}
	return cmd.check(ctx, v, req, event, boolOr(req.Dirty, true), boolOr(req.Touched, true))
}

func boolOr(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}

func (cmd *ValidateCmd) validator(preset string) (validate.Validator, error) {
	schema, ok := validate.LookupPreset(preset)
	if !ok {
		return validate.Validator{}, fmt.Errorf("unknown preset %q (available: %s)", preset, strings.Join(validate.PresetNames(), ", "))
	}

	mode := cmd.mode
	abortEarly := false
	if cfg := cmd.flags.Config; cfg != nil {
		if mode == "" {
			mode = cfg.Validation.Mode
		}
		abortEarly = cfg.Validation.AbortEarly
	}
	if mode == "" {
		mode = validate.ModeSubmit
	}

	newValidator, err := validate.ForMode(mode)
	if err != nil {
		return validate.Validator{}, err
	}
	return newValidator(validate.Static(schema), validate.OrConfig{}).WithAbortEarly(abortEarly), nil
}

func (cmd *ValidateCmd) check(ctx context.Context, v validate.Validator, req ValidateRequest, event validate.Event, dirty, touched bool) ValidateResult {
	out := ValidateResult{Preset: req.Preset, Value: req.Value, Event: string(event)}

	res, err := v.Validate(ctx, validate.FieldState{
		Name:    req.Preset,
		Value:   req.Value,
		Event:   event,
		Dirty:   dirty,
		Touched: touched,
	})
	if err != nil {
		out.Error = err.Error()
		return out
	}

	out.Evaluated = res.Evaluated
	out.Valid = res.Valid()

	issues, err := validate.ParseErrors(res.Errors)
	if err != nil {
		out.Error = err.Error()
		return out
	}
	if len(issues) > 0 {
		out.Issues = issues
	}
	return out
}

func (cmd *ValidateCmd) prompt(preset string, v validate.Validator, event validate.Event) (string, error) {
	var value string
	input := huh.NewInput().
		Title(preset).
		Validate(validate.TextFunc(v, event)).
		Value(&value)
	if preset == "password" {
		input = input.EchoMode(huh.EchoModePassword)
	}

	err := huh.NewForm(huh.NewGroup(input)).WithTheme(styles.FormTheme()).Run()
	return value, err
}

func printResult(p *printer.Printer, res ValidateResult) {
	switch {
	case res.Error != "":
		p.Errorf("%s: %s", res.Preset, res.Error)
	case !res.Evaluated:
		p.Infof("%s: not evaluated on %s", res.Preset, res.Event)
	case res.Valid:
		p.Successf("%s: valid", res.Preset)
	default:
		p.Errorf("%s: %d issue(s)", res.Preset, len(res.Issues))
		for _, issue := range res.Issues {
			p.FailItem(issue.Text(), issue.Type)
		}
	}
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
