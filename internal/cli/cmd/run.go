package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bnema/webwindow/internal/application/usecase"
	"github.com/bnema/webwindow/internal/cli/styles"
	"github.com/bnema/webwindow/internal/infrastructure/mainloop"
	"github.com/bnema/webwindow/internal/infrastructure/scenario"
	"github.com/bnema/webwindow/internal/infrastructure/x11"
	"github.com/bnema/webwindow/internal/logging"
)

const (
	toolkitHeadless = "headless"
	toolkitX11      = "x11"

	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

var (
	runToolkit string
	runFormat  string
)

var runCmd = &cobra.Command{
	Use:   "run <scenario.yaml>...",
	Short: "Replay scenario files and print the notification trace",
	Long: `Replay one or more YAML scenarios against the window and content core.

Each scenario declares a configuration (windows, schemes, navigation
policy, key bindings) and a list of steps: mouse and key input, chrome
toggles, script messages, drops. Steps may carry expectations; a failed
expectation stops that scenario and the command exits non-zero.

Examples:
  webwindow run testdata/drag.yaml
  webwindow run --format json a.yaml b.yaml
  webwindow run --toolkit x11 demo.yaml     # real windows on $DISPLAY`,
	Args: cobra.MinimumNArgs(1),
	RunE: runScenarios,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&runToolkit, "toolkit", "t", toolkitHeadless, "toolkit: headless, x11")
	runCmd.Flags().StringVarP(&runFormat, "format", "f", formatTable, "output format: table, json, yaml")
}

func runScenarios(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	switch runFormat {
	case formatTable, formatJSON, formatYAML:
	default:
		return fmt.Errorf("unsupported format %q (use: table, json, yaml)", runFormat)
	}

	ctx, stop := signal.NotifyContext(app.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	log := logging.FromContext(ctx)

	renderer := styles.NewTraceRenderer(app.Theme)
	var results []*scenario.Result
	var failed []error
	for _, path := range args {
		sc, err := scenario.Load(ctx, path)
		if err != nil {
			return err
		}
		if sc.Name == "" {
			sc.Name = path
		}

		res, err := replay(ctx, sc)
		if err != nil {
			log.Debug().Err(err).Str("scenario", sc.Name).Msg("scenario failed")
			failed = append(failed, fmt.Errorf("%s: %w", sc.Name, err))
			if runFormat == formatTable {
				fmt.Fprint(cmd.OutOrStdout(), renderer.RenderFailure(sc.Name, err))
			}
			continue
		}
		results = append(results, res)
		if runFormat == formatTable {
			fmt.Fprint(cmd.OutOrStdout(), renderer.Render(res))
		}
	}

	switch runFormat {
	case formatJSON:
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return err
		}
	case formatYAML:
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return err
		}
		if err := enc.Close(); err != nil {
			return err
		}
	}
	return errors.Join(failed...)
}

func replay(ctx context.Context, sc *scenario.Scenario) (*scenario.Result, error) {
	switch runToolkit {
	case toolkitHeadless:
		return scenario.Run(ctx, sc, scenario.Options{})
	case toolkitX11:
		queue := mainloop.NewQueue()
		queue.SetLogger(*logging.FromContext(ctx))
		defer queue.Close()

		tk, err := x11.NewToolkit(ctx, queue)
		if err != nil {
			return nil, err
		}
		defer tk.Close()

		runCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		go tk.Run(runCtx)

		return scenario.Run(ctx, sc, scenario.Options{
			Toolkit: tk,
			Queue:   queue,
			OnOpen: func(mw *usecase.ManagedWindow) {
				tk.Bind(mw.ID(), x11.HandlersFor(mw.Window))
			},
		})
	default:
		return nil, fmt.Errorf("unsupported toolkit %q (use: headless, x11)", runToolkit)
	}
}
