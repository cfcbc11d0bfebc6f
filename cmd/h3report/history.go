package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/nao1215/markdown"
	"github.com/spf13/cobra"

	"github.com/h3network/h3report/internal/config"
	"github.com/h3network/h3report/internal/database"
)

// noHistoryMessage is printed when nothing has been recorded yet.
const noHistoryMessage = "No renders recorded."

// NewHistoryCmd creates the history command.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded renders",
		Long: `History prints the renders stored in the history database, newest
first, as a Markdown table.

Examples:
  # The last 20 renders
  h3report history

  # Everything
  h3report history --limit 0`,
		Args: cobra.NoArgs,
		RunE: runHistoryCmd,
	}

	cmd.Flags().IntP("limit", "n", config.DefaultHistoryLimit,
		"Maximum number of renders to list (0 for all)")

	return cmd
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}

	logger := setupLogger(cmd)
	dbDir := config.XDGDataDir()

	// Listing never creates the database.
	db, err := database.Open(dbDir, database.Options{CreateIfNotExists: false, EnableWAL: true})
	if errors.Is(err, database.ErrNotFound) {
		logger.Debug("no history database", "dir", dbDir)
		fmt.Fprintln(cmd.OutOrStdout(), noHistoryMessage)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	records, err := db.ListRenders(cmd.Context(), limit)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), noHistoryMessage)
		return nil
	}

	return writeHistory(cmd.OutOrStdout(), records)
}

// writeHistory prints records as a Markdown table.
func writeHistory(w io.Writer, records []database.RenderRecord) error {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.StartedAt.Local().Format("2006-01-02 15:04:05"),
			humanize.Time(r.StartedAt),
			r.OutputPath,
			strconv.Itoa(r.Pages),
			strconv.Itoa(r.Elements),
			humanize.Bytes(uint64(max(r.Bytes, 0))),
			r.Duration().Round(time.Millisecond).String(),
			shortFingerprint(r.Fingerprint),
		})
	}

	md := markdown.NewMarkdown(w)
	md.H2("Render History")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Started", "Age", "Output", "Pages", "Elements", "Size", "Duration", "Fingerprint"},
		Rows:   rows,
	})
	return md.Build()
}

func shortFingerprint(fp string) string {
	if len(fp) > 12 {
		return fp[:12]
	}
	return fp
}
