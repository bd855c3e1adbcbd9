package commands

import (
	"context"
	"errors"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/inkwell/internal/core/routes"
	"github.com/colonyops/inkwell/internal/printer"
	"github.com/colonyops/inkwell/pkg/iojson"
)

type RoutesCmd struct {
	flags *Flags

	displayName string
	workspace   string
	notebook    string
	tab         string
	match       string
	json        bool
}

// NewRoutesCmd creates a new routes command
func NewRoutesCmd(flags *Flags) *RoutesCmd {
	return &RoutesCmd{flags: flags}
}

// RouteEntry is a built path and the route it resolves to.
type RouteEntry struct {
	Name    string `json:"name"`
	Path    string `json:"path"`
	Route   string `json:"route"`
	Matched *bool  `json:"matched,omitempty"`
}

// Register adds the routes command to the application
func (cmd *RoutesCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "routes",
		Usage:     "Build application paths and resolve them to routes",
		UsageText: "inkwell routes [--display-name name [--workspace ws [--notebook nb]]] [--tab tab] [--match pattern]",
		Description: `Prints the paths built for the given profile, workspace and notebook, with
the route each path resolves to.

With --match, each path is tested against a doublestar glob pattern, the
same matching used to highlight active navigation tabs.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "display-name",
				Aliases:     []string{"n"},
				Usage:       "profile display name",
				Destination: &cmd.displayName,
			},
			&cli.StringFlag{
				Name:        "workspace",
				Aliases:     []string{"w"},
				Usage:       "workspace name (requires --display-name)",
				Destination: &cmd.workspace,
			},
			&cli.StringFlag{
				Name:        "notebook",
				Usage:       "notebook name (requires --workspace)",
				Destination: &cmd.notebook,
			},
			&cli.StringFlag{
				Name:        "tab",
				Usage:       "account tab (profile, preferences, auth)",
				Destination: &cmd.tab,
			},
			&cli.StringFlag{
				Name:        "match",
				Aliases:     []string{"m"},
				Usage:       "glob pattern to test every path against",
				Destination: &cmd.match,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON",
				Destination: &cmd.json,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *RoutesCmd) run(ctx context.Context, c *cli.Command) error {
	entries, err := cmd.entries()
	if err != nil {
		return err
	}

	if cmd.match != "" {
		for i := range entries {
			ok, err := routes.Match(cmd.match, entries[i].Path)
			if err != nil {
				return err
			}
			entries[i].Matched = &ok
		}
	}

	if cmd.json {
		return iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, entries)
	}

	p := printer.Ctx(ctx)
	p.Section("Routes")
	for _, e := range entries {
		detail := e.Name + " → " + e.Route
		if e.Matched != nil && !*e.Matched {
			p.FailItem(e.Path, detail)
			continue
		}
		p.CheckItem(e.Path, detail)
	}
	return nil
}

func (cmd *RoutesCmd) entries() ([]RouteEntry, error) {
	if cmd.workspace != "" && cmd.displayName == "" {
		return nil, errors.New("--workspace requires --display-name")
	}
	if cmd.notebook != "" && cmd.workspace == "" {
		return nil, errors.New("--notebook requires --workspace")
	}
	tab, err := routes.ParseAccountTab(cmd.tab)
	if err != nil {
		return nil, err
	}

	profile := routes.Profile{DisplayName: cmd.displayName}
	paths := [][2]string{
		{"home", routes.Home(profile)},
		{"sign-up", routes.SignUp()},
		{"log-in", routes.LogIn()},
		{"forgot-password", routes.ForgotPassword()},
	}

	if cmd.displayName != "" {
		paths = append(paths,
			[2]string{"profile", routes.ProfilePath(profile)},
			[2]string{"account", routes.AccountPath(routes.Account{Profile: profile, Tab: tab})},
		)
	}

	if cmd.workspace != "" {
		ws := routes.Workspace{Profile: profile, Workspace: cmd.workspace}
		settings := ws
		settings.Settings = true
		paths = append(paths,
			[2]string{"workspace", routes.WorkspacePath(ws)},
			[2]string{"workspace-settings", routes.WorkspacePath(settings)},
		)

		if cmd.notebook != "" {
			nb := routes.Notebook{Workspace: ws, Notebook: cmd.notebook}
			nbSettings := routes.Notebook{Workspace: settings, Notebook: cmd.notebook}
			paths = append(paths,
				[2]string{"notebook", routes.NotebookPath(nb)},
				[2]string{"notebook-settings", routes.NotebookPath(nbSettings)},
			)
		}
	}

	entries := make([]RouteEntry, 0, len(paths))
	for _, p := range paths {
		e := RouteEntry{Name: p[0], Path: p[1]}
		if r, ok := routes.Resolve(p[1]); ok {
			e.Route = r.Name
		}
		entries = append(entries, e)
	}
	return entries, nil
}
