package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bnema/webwindow/internal/application/port"
	"github.com/bnema/webwindow/internal/bootstrap"
	"github.com/bnema/webwindow/internal/domain/entity"
	"github.com/bnema/webwindow/internal/infrastructure/config"
	"github.com/bnema/webwindow/internal/infrastructure/headless"
	"github.com/bnema/webwindow/internal/infrastructure/mainloop"
	"github.com/bnema/webwindow/internal/infrastructure/x11"
	"github.com/bnema/webwindow/internal/logging"
)

var (
	openNoWatch     bool
	openAcceptDrops bool
)

var openCmd = &cobra.Command{
	Use:   "open",
	Short: "Open the configured windows on the X display",
	Long: `Open every window declared in the configuration on $DISPLAY and run
until the last one closes or the process is interrupted.

Content is loaded from the configured schemes and its script messages,
drops and faults are logged. Navigation policy and key bindings are
re-applied when the configuration file changes.`,
	Args: cobra.NoArgs,
	RunE: runOpen,
}

func init() {
	rootCmd.AddCommand(openCmd)
	openCmd.Flags().BoolVar(&openNoWatch, "no-watch", false, "do not reload the configuration on change")
	openCmd.Flags().BoolVar(&openAcceptDrops, "accept-drops", true, "accept files, text and URLs dropped on content")
}

func runOpen(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	ctx, stop := signal.NotifyContext(app.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	log := logging.FromContext(ctx)

	queue := mainloop.NewQueue()
	queue.SetLogger(*log)
	defer queue.Close()

	tk, err := x11.NewToolkit(ctx, queue)
	if err != nil {
		return err
	}
	defer tk.Close()
	go tk.Run(ctx)

	var shell *bootstrap.App
	callbacks := shellCallbacks(*log, openAcceptDrops)
	callbacks.OnWindowEvent = func(ev entity.WindowEvent) {
		log.Debug().Str("event", string(ev.Kind)).Uint32("window_id", uint32(ev.WindowID)).Msg("window event")
		if ev.Kind != entity.EventWindowClosed {
			return
		}
		// The manager forgets the window after the notification.
		queue.Post(func() {
			if shell != nil && shell.Manager.Len() == 0 {
				log.Info().Msg("last window closed")
				cancel()
			}
		})
	}

	shell, err = bootstrap.New(ctx, app.Config, bootstrap.Options{
		Toolkit:   tk,
		Engines:   func(ctx context.Context, _ entity.WindowID) (port.ContentEngine, error) { return headless.NewEngine(ctx), nil },
		Queue:     queue,
		Callbacks: callbacks,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := shell.Close(); err != nil {
			log.Warn().Err(err).Msg("close windows")
		}
	}()

	var openErr error
	queue.Post(func() {
		opened, err := shell.OpenWindows(ctx, app.Config)
		for _, mw := range opened {
			tk.Bind(mw.ID(), x11.HandlersFor(mw.Window))
		}
		if err != nil {
			openErr = err
			cancel()
			return
		}
		log.Info().Int("windows", len(opened)).Msg("windows opened")
	})

	if !openNoWatch && app.ConfigExists() {
		app.Configs.OnConfigChange(func(cfg *config.Config) {
			queue.Post(func() {
				if err := shell.Apply(ctx, cfg); err != nil {
					log.Warn().Err(err).Msg("configuration not applied")
				}
			})
		})
		if err := app.Configs.Watch(); err != nil {
			log.Warn().Err(err).Msg("config watch disabled")
		}
	}

	if err := queue.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return openErr
}

// shellCallbacks logs content notifications. OnWindowEvent is left to the
// caller.
func shellCallbacks(log zerolog.Logger, acceptDrops bool) port.ShellCallbacks {
	return port.ShellCallbacks{
		OnScriptMessage: func(msg entity.ScriptMessage) {
			log.Info().
				Uint32("window_id", uint32(msg.WindowID)).
				Str("frame", msg.FrameID).
				Uint64("seq", msg.Sequence).
				Str("name", msg.Name).
				RawJSON("payload", payloadOrNull(msg.Payload)).
				Msg("script message")
		},
		OnDraggingEntered: func(entity.DropPayload) entity.DragOperation {
			if acceptDrops {
				return entity.DragAccept
			}
			return entity.DragReject
		},
		OnPerformDrop: func(p entity.DropPayload) bool {
			log.Info().Strs("files", p.Files).Strs("urls", p.URLs).Str("text", p.Text).Msg("drop")
			return acceptDrops
		},
		OnDropEvent: func(ev entity.DropEvent) {
			log.Debug().Str("event", string(ev.Kind)).Bool("accepted", ev.Accepted).Msg("drop event")
		},
		OnContentFault: func(f entity.ContentFault) {
			log.Warn().Err(f.Err).Str("kind", string(f.Kind)).Str("url", f.URL).Msg("content fault")
		},
		OnNavigationCommitted: func(id entity.WindowID, url string) {
			log.Info().Uint32("window_id", uint32(id)).Str("url", url).Msg("navigation committed")
		},
	}
}

func payloadOrNull(raw []byte) []byte {
	if len(raw) == 0 {
		return []byte("null")
	}
	return raw
}
