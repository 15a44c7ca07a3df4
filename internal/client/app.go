package client

import (
	"context"
	"io"
	"os"

	"github.com/MKhiriev/go-gpu-missions/internal/cli"
	"github.com/MKhiriev/go-gpu-missions/internal/config"
	"github.com/MKhiriev/go-gpu-missions/internal/service"
	"github.com/MKhiriev/go-gpu-missions/internal/tui"
	"github.com/MKhiriev/go-gpu-missions/models"
)

// App is the gpu-missions executable.
type App struct {
	buildInfo models.AppBuildInfo

	in  io.Reader
	out io.Writer
	err io.Writer
}

var _ Client = (*App)(nil)

// NewApp returns an App bound to the process standard streams.
func NewApp(buildInfo models.AppBuildInfo) *App {
	return &App{
		buildInfo: buildInfo,
		in:        os.Stdin,
		out:       os.Stdout,
		err:       os.Stderr,
	}
}

// Run parses args and executes the selected command.
func (a *App) Run(ctx context.Context, args []string) error {
	root := cli.NewRootCommand(cli.Deps{
		Open:      a.open,
		RunTUI:    a.runTUI,
		BuildInfo: a.buildInfo,
		In:        a.in,
		Out:       a.out,
		Err:       a.err,
	})
	root.SetArgs(args)

	return root.ExecuteContext(ctx)
}

func (a *App) open(ctx context.Context, flags *config.StructuredConfig, confirmer service.Confirmer) (cli.Runtime, error) {
	rt, err := openRuntime(ctx, flags, confirmer)
	if err != nil {
		return nil, err
	}
	return rt, nil
}

func (a *App) runTUI(ctx context.Context, flags *config.StructuredConfig) error {
	bridge := tui.NewConfirmBridge()

	rt, err := openRuntime(ctx, flags, bridge)
	if err != nil {
		return err
	}
	defer rt.Close()

	ui := tui.New(rt.Sessions(), bridge, a.buildInfo, rt.cfg.App.NoticeDuration, rt.log)
	return ui.Run(ctx)
}
