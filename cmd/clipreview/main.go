package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/pengelbrecht/clipreview/internal/config"
	"github.com/pengelbrecht/clipreview/internal/logging"
	"github.com/pengelbrecht/clipreview/internal/research"
	"github.com/pengelbrecht/clipreview/internal/tui"
	"github.com/pengelbrecht/clipreview/internal/update"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

const updateCheckTimeout = 3 * time.Second

// app is everything a command needs after config is loaded.
type app struct {
	cfg     *config.Config
	log     zerolog.Logger
	dataset research.Dataset
	close   func()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "clipreview",
		Short: "Review recorded user research sessions in the terminal",
		Long: `clipreview shows the results of a research study next to the recorded
sessions of its participants: task outcomes, transcript lines and ratings,
with highlighted moments called out.

Without --data the built-in sample study is shown.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE:          runReview,
	}

	root.PersistentFlags().String("config", "", "config file (default: ./clipreview.yaml or $XDG_CONFIG_HOME/clipreview/config.yaml)")
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(newDumpCmd())
	root.AddCommand(newVersionCmd())
	root.AddCommand(newUpgradeCmd())
	return root
}

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Print the dataset as YAML",
		Long: `Dump writes the active dataset to stdout in the data file format.
Use it to start a data file from the sample study.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			return research.Encode(cmd.OutOrStdout(), a.dataset)
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "clipreview %s\n", version)
			if cfg.Update.Check {
				if notice := updateNotice(cmd.Context(), zerolog.Nop()); notice != "" {
					fmt.Fprintln(cmd.OutOrStdout(), notice)
				}
			}
			return nil
		},
	}
}

func newUpgradeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upgrade",
		Short: "Upgrade clipreview to the latest release",
		Long:  `Downloads the latest GitHub release for this platform and replaces the running binary.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			log, closeLog, err := logging.New(cfg.Log.Level, cfg.Log.File)
			if err != nil {
				return fmt.Errorf("init logging: %w", err)
			}
			defer closeLog()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Current version: %s\n", version)
			fmt.Fprintln(out, "Checking for updates...")

			rel, err := update.Upgrade(cmd.Context(), version, logging.Component(log, "update"))
			switch {
			case errors.Is(err, update.ErrAlreadyLatest):
				fmt.Fprintln(out, "Already up to date.")
				return nil
			case err != nil:
				return err
			}

			fmt.Fprintf(out, "Upgraded to %s\n", rel.Version)
			return nil
		},
	}
}

// runReview starts the interactive review screen.
func runReview(cmd *cobra.Command, args []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	tab, err := tui.ParseListTab(a.cfg.UI.InitialTab)
	if err != nil {
		return err
	}

	notice := ""
	if a.cfg.Update.Check {
		notice = updateNotice(cmd.Context(), logging.Component(a.log, "update"))
	}

	err = tui.Run(cmd.Context(), tui.Config{
		Dataset:      a.dataset,
		InitialTab:   tab,
		ListWidth:    a.cfg.UI.ListWidth,
		UpdateNotice: notice,
		Logger:       a.log,
	})
	if err != nil {
		a.log.Error().Err(err).Msg("tui exited with error")
		return err
	}
	a.log.Info().Msg("review screen closed")
	return nil
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path, cmd.Flags())
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadApp reads config, opens the log and loads the dataset.
func loadApp(cmd *cobra.Command) (*app, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	log, closeLog, err := logging.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}
	log = log.With().Str("version", version).Logger()

	log.Info().
		Str("config", cfg.File).
		Str("data", cfg.Data).
		Str("cmd", cmd.Name()).
		Msg("starting")

	ds, err := loadDataset(cfg.Data)
	if err != nil {
		log.Error().Err(err).Str("data", cfg.Data).Msg("load dataset")
		closeLog()
		return nil, err
	}

	return &app{cfg: cfg, log: log, dataset: ds, close: closeLog}, nil
}

// loadDataset reads path, or returns the sample study when path is empty.
func loadDataset(path string) (research.Dataset, error) {
	if path == "" {
		return research.Fixtures(), nil
	}
	return research.LoadFile(path)
}

func updateNotice(ctx context.Context, log zerolog.Logger) string {
	ctx, cancel := context.WithTimeout(ctx, updateCheckTimeout)
	defer cancel()
	return update.NewChecker(version, config.Dir(), log).Notice(ctx)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
