package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/mayobojhosue-coder/app-bloom/internal/models"
	"github.com/mayobojhosue-coder/app-bloom/internal/storage"
)

func newRosterCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Show and edit the rosters",
		Long: `Roster shows and edits the girls (filles), boys (garcons) and
coaches (coachs) rosters stored in the database.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newRosterListCommand(a))
	cmd.AddCommand(newRosterAddCommand(a))
	cmd.AddCommand(newRosterRemoveCommand(a))

	return cmd
}

func newRosterListCommand(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every roster",
		Long: `List prints the rosters in matching priority order.

The yaml format can be pasted as is into the rosters section of bloom.yaml.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			rosters, err := store.LoadRosters(cmd.Context())
			if err != nil {
				return err
			}

			switch format {
			case "yaml":
				return writeRostersYAML(cmd.OutOrStdout(), rosters)
			case "text", "":
				writeRostersText(cmd.OutOrStdout(), rosters)
				return nil
			default:
				return fmt.Errorf("unknown format %q (want text or yaml)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text or yaml")

	return cmd
}

func writeRostersText(w io.Writer, rosters models.Rosters) {
	for i, r := range rosters.Ordered() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s (%d)\n", r.Category.Label(), len(r.Members))
		for _, m := range r.Members {
			fmt.Fprintf(w, "  %s\n", m)
		}
	}
}

func writeRostersYAML(w io.Writer, rosters models.Rosters) error {
	doc := struct {
		Rosters models.Rosters `yaml:"rosters"`
	}{Rosters: rosters}

	b, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode rosters: %w", err)
	}
	_, err = w.Write(b)
	return err
}

func newRosterAddCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "add <category> <name>...",
		Short:   "Add people to a roster",
		Example: `  bloom roster add filles "joëlle" "anne-marie"`,
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, err := models.ParseCategory(args[0])
			if err != nil {
				return err
			}
			store, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}

			for _, name := range args[1:] {
				added, err := store.AddMember(cmd.Context(), category, name)
				if err != nil {
					return err
				}
				if added {
					fmt.Fprintf(cmd.OutOrStdout(), "added %s to %s\n", name, category)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "%s is already in %s\n", name, category)
				}
			}
			return nil
		},
	}
}

func newRosterRemoveCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <category> <name>",
		Short: "Remove a person from a roster",
		Long: `Remove deletes the member whose name matches ignoring case, accents
and surrounding spaces.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, err := models.ParseCategory(args[0])
			if err != nil {
				return err
			}
			store, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}

			if err := store.RemoveMember(cmd.Context(), category, args[1]); err != nil {
				if errors.Is(err, storage.ErrNotFound) {
					return fmt.Errorf("%s is not in %s", args[1], category)
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %s from %s\n", args[1], category)
			return nil
		},
	}
}
