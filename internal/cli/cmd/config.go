package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bnema/webwindow/internal/cli/styles"
	"github.com/bnema/webwindow/internal/infrastructure/config"
)

var configSchemaOutput string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Show the active configuration, write a default file or its JSON schema, and validate files.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the config file location and its windows, schemes and key bindings",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the default configuration",
	Long:  `Write the default configuration to path, or to the default location. An existing file is never overwritten.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigInit,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print or write the JSON schema of the configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigSchema,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a configuration file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigValidate,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd, configInitCmd, configSchemaCmd, configValidateCmd)
	configSchemaCmd.Flags().StringVarP(&configSchemaOutput, "output", "o", "", "write the schema to this file instead of stdout")
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewConfigRenderer(app.Theme)
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, renderer.RenderConfigInfo(app.ConfigFile(), app.ConfigExists()))
	fmt.Fprintln(out, renderer.RenderSummary(app.Config))
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	path := app.ConfigFile()
	if len(args) == 1 {
		path = args[0]
	}
	if path == "" {
		return fmt.Errorf("no config path")
	}
	if err := app.Configs.WriteDefault(path); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewConfigRenderer(app.Theme).RenderWritten("Configuration", path))
	return nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	if configSchemaOutput == "" {
		data, err := config.GenerateSchema()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configSchemaOutput), dirPerm); err != nil {
		return err
	}
	if err := config.WriteSchemaFile(configSchemaOutput); err != nil {
		return err
	}
	theme := styles.NewTheme()
	if app := GetApp(); app != nil {
		theme = app.Theme
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewConfigRenderer(theme).RenderWritten("Schema", configSchemaOutput))
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewConfigRenderer(app.Theme)

	// The active file was already validated when the app loaded it.
	path := app.ConfigFile()
	if len(args) == 1 {
		path = args[0]
		m, err := config.NewManager(path)
		if err == nil {
			err = m.Load()
		}
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), renderer.RenderError(err))
			return err
		}
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderValid(path))
	return nil
}
