package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/inovacc/focset/internal/application"
	"github.com/inovacc/focset/internal/config"
	"github.com/inovacc/focset/internal/core"
	"github.com/inovacc/focset/internal/model"
	"github.com/spf13/cobra"
)

var (
	configFlag    string
	logLevelFlag  string
	logFormatFlag string

	app *appEnv
)

var rootCmd = &cobra.Command{
	Use:   application.AppName,
	Short: "Add custom part entries to the game's DLC files",
	Long: `Focset appends part entries to Transcustomization.ini and Transgame.int
in the DLC/DLCMaps directory next to the game executable.

Run without a command to open the interactive form, or use add to submit
an entry from the command line.`,
	Version:       application.Version,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		env, err := newAppEnv(cmd)
		if err != nil {
			return err
		}

		app = env
		cmd.SilenceUsage = true

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runForm(cmd.Context(), app)
	},
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, core.UserMessage(err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Config file (default <user config dir>/focset/config.ini)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logFormatFlag, "log-format", "", "Log format: text or json (overrides config)")
}

// appEnv is what every command runs against: the loaded configuration,
// the logger and the streams to talk to the user on.
type appEnv struct {
	cfg     model.Config
	cfgPath string
	logger  *slog.Logger

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func newAppEnv(cmd *cobra.Command) (*appEnv, error) {
	path := configFlag
	if path == "" {
		var err error

		path, err = config.DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if logLevelFlag != "" {
		cfg.LogLevel = strings.ToLower(logLevelFlag)
	}

	if logFormatFlag != "" {
		cfg.LogFormat = strings.ToLower(logFormatFlag)
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	return &appEnv{
		cfg:     cfg,
		cfgPath: path,
		logger:  newLogger(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat),
		stdin:   cmd.InOrStdin(),
		stdout:  cmd.OutOrStdout(),
		stderr:  cmd.ErrOrStderr(),
	}, nil
}

// newLogger builds the slog logger for level and format ("text" or "json").
func newLogger(w io.Writer, level, format string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: lvl}

	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

// dataDir holds the history database, next to the config file.
func (e *appEnv) dataDir() string {
	return filepath.Dir(e.cfgPath)
}

// rememberExecutable stores exe as the default for the next run.
func (e *appEnv) rememberExecutable(exe string) {
	if exe == "" || exe == e.cfg.Executable {
		return
	}

	e.cfg.Executable = exe

	// Reload so flag overrides are not persisted.
	saved, err := config.Load(e.cfgPath)
	if err == nil {
		saved.Executable = exe
		err = config.Save(e.cfgPath, saved)
	}

	if err != nil {
		e.logger.Warn("could not remember executable", "path", e.cfgPath, "error", err)
	}
}
