package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newHistoryCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse recorded reports",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newHistoryListCommand(a))
	cmd.AddCommand(newHistoryShowCommand(a))

	return cmd
}

func newHistoryListCommand(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded reports, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			reports, err := store.ListReports(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(reports) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No reports recorded")
				return nil
			}

			table := tablewriter.NewTable(cmd.OutOrStdout())
			table.Header("ID", "Day", "Present", "Absent", "Recorded")
			for _, r := range reports {
				err := table.Append(
					r.ID,
					r.TakenOn,
					strconv.Itoa(r.Present),
					strconv.Itoa(r.Absent),
					time.Unix(r.CreatedAt, 0).Format(time.DateTime),
				)
				if err != nil {
					return err
				}
			}
			return table.Render()
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of reports, -1 for all")

	return cmd
}

func newHistoryShowCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print a recorded report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			r, err := store.GetReport(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), r.Text)
			if len(r.Unmatched) > 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "\nunmatched entries: %v\n", r.Unmatched)
			}
			return nil
		},
	}
}
