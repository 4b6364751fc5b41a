package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/inovacc/focset/internal/config"
	"github.com/inovacc/focset/internal/model"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage focset configuration",
	Long: `Commands for managing focset configuration.

Available Commands:
  show      Print the current settings
  set       Change one setting
  reset     Restore the defaults

Keys: game.executable, output.staged, log.level, log.format, history.enabled`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigShow(app)
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Long: `Change one setting and save the config file.

Examples:
  focset config set output.staged false
  focset config set log.level debug`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigSet(app, args[0], args[1])
	},
}

var configResetYes bool

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigReset(app, configResetYes)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd, configSetCmd, configResetCmd)
	configResetCmd.Flags().BoolVarP(&configResetYes, "yes", "y", false, "Skip confirmation prompt")
}

func runConfigShow(env *appEnv) error {
	// Read the file again so flag overrides are not shown as saved values.
	cfg, err := config.Load(env.cfgPath)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(env.stdout, "# %s\n", env.cfgPath)

	w := tabwriter.NewWriter(env.stdout, 0, 0, 2, ' ', 0)

	for _, key := range config.Keys {
		value, err := config.Get(cfg, key)
		if err != nil {
			return err
		}

		_, _ = fmt.Fprintf(w, "%s\t%s\n", key, value)
	}

	return w.Flush()
}

func runConfigSet(env *appEnv, key, value string) error {
	cfg, err := config.Load(env.cfgPath)
	if err != nil {
		return err
	}

	if err := config.Set(&cfg, key, value); err != nil {
		return err
	}

	if err := config.Save(env.cfgPath, cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	env.logger.Debug("config updated", "key", key, "value", value)
	_, _ = fmt.Fprintf(env.stdout, "%s = %s\n", key, value)

	return nil
}

func runConfigReset(env *appEnv, yes bool) error {
	if !yes && !promptConfirm(env.stdin, env.stdout, "Reset the configuration to defaults? [y/N]: ") {
		_, _ = fmt.Fprintln(env.stdout, "Cancelled.")

		return nil
	}

	if err := config.Save(env.cfgPath, model.DefaultConfig()); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	_, _ = fmt.Fprintln(env.stdout, "Configuration reset.")

	return nil
}
