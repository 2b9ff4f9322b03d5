package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mayobojhosue-coder/app-bloom/internal/service"
)

func newReportCommand(a *app) *cobra.Command {
	var (
		date   string
		record bool
	)

	cmd := &cobra.Command{
		Use:   "report [file]",
		Short: "Print the attendance report for a list of names",
		Long: `Report reads one name per line from file, or from stdin when no file
is given, and prints the attendance report.

Names are matched ignoring case and accents, and close misspellings are
accepted. Lines that match nobody are reported as warnings.`,
		Example: `  bloom report presents.txt
  pbpaste | bloom report --date 14/10/2026 --record`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			store, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}

			svc := service.NewAttendanceService(store, nil, a.cfg.Report.Title)
			day, err := svc.ParseDate(date)
			if err != nil {
				return err
			}

			out, err := svc.Take(cmd.Context(), text, day, record)
			if err != nil {
				return err
			}

			for _, entry := range out.Result.Unmatched {
				slog.Warn("No roster match", "entry", entry)
			}
			if out.Saved != nil {
				slog.Info("Report recorded", "report_id", out.Saved.ID)
			}

			fmt.Fprint(cmd.OutOrStdout(), out.Text)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "attendance day as DD/MM/YYYY (default today)")
	cmd.Flags().BoolVar(&record, "record", false, "save the report in the history")

	return cmd
}

func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(b), nil
	}

	b, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read names: %w", err)
	}
	return string(b), nil
}
