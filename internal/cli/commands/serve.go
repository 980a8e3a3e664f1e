package commands

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/launchdash/internal/dashboard"
	"github.com/leapstack-labs/launchdash/internal/ui"
)

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the launch records dashboard",
		Long: `Load the launch dataset once and serve the interactive dashboard.

The page offers a launch site dropdown and a payload range slider. Changing
either recomputes the success pie chart and the payload scatter chart from the
loaded records. JSON and SVG renditions of both charts are served under /api
and /charts.

If the dataset cannot be fetched or parsed the command exits with an error.`,
		Example: `  # Serve the published dataset on http://127.0.0.1:8050
  launchdash serve

  # Serve a local copy on all interfaces
  launchdash serve --source ./spacex_launch_dash.csv --host 0.0.0.0 --port 3000

  # Open a browser once the server is up
  launchdash serve --open`,
		RunE: runServe,
	}

	cmd.Flags().Int("port", 0, "Port to serve on (default: 8050)")
	cmd.Flags().String("host", "", "Interface to bind (default: 127.0.0.1)")
	cmd.Flags().Bool("open", false, "Open the dashboard in a browser")

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	cfg := cmdCtx.Cfg

	ds, err := cmdCtx.LoadDataset(cmd.Context())
	if err != nil {
		return err
	}

	shell := dashboard.New(ds, cfg.Dashboard.Shell())
	server := ui.NewServer(ui.Config{
		Shell:       shell,
		Host:        cfg.UI.Host,
		Port:        cfg.UI.Port,
		CORSOrigins: cfg.UI.CORSOrigins,
		Logger:      cmdCtx.Logger,
	})

	r := cmdCtx.Renderer
	r.Printf("Loaded %d launch records from %s\n", ds.Len(), ds.Source())
	r.Printf("Dashboard running on %s\n", server.URL())
	r.Println("Press Ctrl+C to stop")

	if cfg.UI.AutoOpen {
		go openBrowser(server.URL())
	}

	if err := server.Serve(cmd.Context()); err != nil {
		return fmt.Errorf("dashboard server: %w", err)
	}
	return nil
}

// openBrowser opens the default browser to the specified URL.
func openBrowser(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url) //nolint:noctx
	case "linux":
		cmd = exec.Command("xdg-open", url) //nolint:noctx
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url) //nolint:noctx
	default:
		return
	}

	_ = cmd.Start()
}
