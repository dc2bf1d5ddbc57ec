package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/webwindow/internal/cli/styles"
	"github.com/bnema/webwindow/internal/infrastructure/assets"
	"github.com/bnema/webwindow/internal/logging"
)

var packCmd = &cobra.Command{
	Use:   "pack <dir> <archive.sqlar>",
	Short: "Pack a content directory into an SQLite archive",
	Long: `Pack every regular file under dir into an SQLite archive (sqlar) that a
scheme can serve with archive = "path". Files are deflated when that
makes them smaller. Existing entries with the same name are replaced.`,
	Args: cobra.ExactArgs(2),
	RunE: runPack,
}

func init() {
	rootCmd.AddCommand(packCmd)
}

func runPack(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	dir, out := args[0], args[1]

	info, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	ctx := app.Context()
	n, err := assets.Pack(ctx, out, os.DirFS(dir))
	if err != nil {
		return fmt.Errorf("pack %s: %w", dir, err)
	}
	logging.FromContext(ctx).Debug().Int("files", n).Str("archive", out).Msg("archive written")

	what := fmt.Sprintf("%d files", n)
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewConfigRenderer(app.Theme).RenderWritten(what, out))
	return nil
}
