package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/h3network/h3report/internal/config"
	"github.com/h3network/h3report/internal/database"
	"github.com/h3network/h3report/internal/log"
	"github.com/h3network/h3report/internal/model"
	"github.com/h3network/h3report/internal/pipeline"
	"github.com/h3network/h3report/internal/render"
	"github.com/h3network/h3report/internal/report"
	"github.com/h3network/h3report/internal/style"
)

// NewRootCmd creates the root command. Run without a subcommand it
// generates the report.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "h3report",
		Short: "Generate the H3 Network progress report",
		Long: `h3report builds the H3 Network progress report and writes it as a PDF
to the working directory, replacing any previous copy.

Each successful run is also recorded in a history database, the file
h3report.db in the XDG data directory (~/.local/share/h3report on Linux),
which is created on first use. Pass --no-history to write only the PDF, and
use 'h3report history' to list past renders.`,
		Args:          cobra.NoArgs,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runReportCmd,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	cmd.Flags().Bool("no-history", false, "Do not record this render in the history database")

	cmd.AddCommand(NewOutlineCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// setupLogger creates the logger for cmd and makes it the default.
func setupLogger(cmd *cobra.Command) *slog.Logger {
	logger := log.NewLogger(cmd.ErrOrStderr(), getVerboseFlag(cmd))
	slog.SetDefault(logger)
	return logger
}

// buildConfig creates the run configuration from defaults and flags.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Verbose = getVerboseFlag(cmd)

	noHistory, err := cmd.Flags().GetBool("no-history")
	if err != nil {
		return nil, err
	}
	cfg.SaveHistory = !noHistory

	return cfg, nil
}

// runReportCmd generates the report.
func runReportCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	run, err := generate(ctx, cfg, logger)
	if err != nil {
		return err
	}

	logger.Debug("report generated",
		"run", run.ID,
		"path", run.Result.Path,
		"pages", run.Result.Pages,
		"bytes", run.Result.Bytes,
	)
	fmt.Fprintf(cmd.OutOrStdout(), "✅ PDF report generated successfully: %s\n", cfg.OutputPath)
	return nil
}

// generate builds, renders and, when enabled, records one run.
func generate(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*model.Run, error) {
	p := pipeline.New(pipeline.WithLogger(logger))
	p.AddSteps(
		pipeline.NewBuildStep(style.NewSheet(), cfg.Page, cfg.OutputPath),
		pipeline.NewRenderStep(render.NewInvoker(
			render.WithLogger(logger),
			render.WithPDFOptions(
				report.WithCompression(cfg.Compression),
				report.WithCreator(config.AppName+" "+getVersion()),
			),
		)),
	)

	if cfg.SaveHistory {
		db, err := database.Open(cfg.DBDir, database.DefaultOptions())
		if err != nil {
			logger.Warn("history disabled", "dir", cfg.DBDir, "error", err)
		} else {
			defer db.Close()
			p.AddStep(pipeline.NewRecordStep(db, pipeline.WithRecordLogger(logger)))
		}
	}

	run := model.NewRun()
	if err := p.Execute(ctx, run); err != nil {
		return run, err
	}
	return run, nil
}
