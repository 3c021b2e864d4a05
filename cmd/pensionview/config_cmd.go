package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pensionview/retirement-projection/internal/config"
	"github.com/pensionview/retirement-projection/internal/output"
	"github.com/spf13/cobra"
)

var flagExample string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or initialize settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "# %s\n", settingsPath())
		shown := settings
		if shown.Summary.APIKey != "" {
			shown.Summary.APIKey = "****"
		}
		return toml.NewEncoder(out).Encode(shown)
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default settings file",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

func init() {
	configInitCmd.Flags().StringVar(&flagExample, "example", "", "Also write an example scenario file to this path")
	configCmd.AddCommand(configShowCmd, configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func settingsPath() string {
	if flagSettings != "" {
		return flagSettings
	}
	return config.SettingsPath()
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	path := settingsPath()
	out := cmd.OutOrStdout()
	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(out, "%s already exists\n", path)
	} else if errors.Is(err, fs.ErrNotExist) {
		if err := config.SaveSettingsTo(path, config.DefaultSettings()); err != nil {
			return err
		}
		fmt.Fprintf(out, "Wrote %s\n", path)
	} else {
		return err
	}

	if flagExample != "" {
		example := config.NewInputParser().CreateExampleConfiguration()
		if err := output.SaveConfiguration(example, flagExample); err != nil {
			return fmt.Errorf("writing example: %w", err)
		}
		fmt.Fprintf(out, "Wrote %s\n", flagExample)
	}
	return nil
}
