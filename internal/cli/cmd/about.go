package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/webwindow/internal/cli/styles"
)

var aboutCmd = &cobra.Command{
	Use:     "about",
	Aliases: []string{"version"},
	Short:   "Show version and build information",
	RunE:    runAbout,
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}

func runAbout(cmd *cobra.Command, _ []string) error {
	renderer := styles.NewAboutRenderer(styles.NewTheme())
	fmt.Fprintln(cmd.OutOrStdout(), renderer.Render(buildInfo))
	return nil
}
