package commands

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/inkwell/internal/core/config"
	"github.com/colonyops/inkwell/internal/printer"
	"github.com/colonyops/inkwell/pkg/tuitest"
)

type registrar interface {
	Register(app *cli.Command) *cli.Command
}

type testApp struct {
	app    *cli.Command
	out    bytes.Buffer // app writer, JSON output
	errOut bytes.Buffer
	pretty bytes.Buffer // printer output
}

func newTestApp(t *testing.T, newCmd func(*Flags) registrar, cfg *config.Config) *testApp {
	t.Helper()

	if cfg == nil {
		def := config.DefaultConfig()
		cfg = &def
	}

	ta := &testApp{}
	ta.app = &cli.Command{
		Name:           "inkwell",
		Writer:         &ta.out,
		ErrWriter:      &ta.errOut,
		Reader:         strings.NewReader(""),
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}
	newCmd(&Flags{Config: cfg}).Register(ta.app)
	return ta
}

func (ta *testApp) withInput(s string) *testApp {
	ta.app.Reader = strings.NewReader(s)
	return ta
}

func (ta *testApp) run(args ...string) error {
	ctx := printer.NewContext(context.Background(), printer.New(&ta.pretty))
	return ta.app.Run(ctx, append([]string{"inkwell"}, args...))
}

// text is the printer output without styling.
func (ta *testApp) text() string { return tuitest.StripANSI(ta.pretty.String()) }

func requireExitCode(t *testing.T, err error, code int) {
	t.Helper()
	var ec cli.ExitCoder
	require.True(t, errors.As(err, &ec), "expected exit error, got %v", err)
	require.Equal(t, code, ec.ExitCode())
}

