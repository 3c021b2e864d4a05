package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/pensionview/retirement-projection/internal/store"
	"github.com/spf13/cobra"
)

var snapshotsCmd = &cobra.Command{
	Use:   "snapshots",
	Short: "Manage saved parameter sets",
}

var snapshotsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved parameters, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		snaps, err := st.ListSnapshots(cmd.Context())
		if err != nil {
			return err
		}
		if len(snaps) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "Nothing saved yet. Run `pensionview onboard`.")
			return nil
		}
		rows := make([][]string, 0, len(snaps))
		for _, s := range snaps {
			p := s.Parameters
			rows = append(rows, []string{
				s.ID[:8], s.Name, s.SavedAt.Local().Format("2006-01-02 15:04"),
				formatAmount(p.MonthlyDeposit), fmt.Sprint(p.RetirementStartYear), fmt.Sprint(p.RetirementDuration),
				p.MarketRate.String(),
			})
		}
		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("ID", "Name", "Saved", "Deposit", "Retire", "Years", "Market").
			Rows(rows...)
		fmt.Fprintln(cmd.OutOrStdout(), t.Render())
		return nil
	},
}

var snapshotsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved parameter set",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		id, err := resolveSnapshotID(cmd.Context(), st, args[0])
		if err != nil {
			return err
		}
		if err := st.DeleteSnapshot(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", id)
		return nil
	},
}

func init() {
	snapshotsCmd.AddCommand(snapshotsListCmd, snapshotsDeleteCmd)
	rootCmd.AddCommand(snapshotsCmd)
}

type snapshotLister interface {
	ListSnapshots(ctx context.Context) ([]store.Snapshot, error)
}

// resolveSnapshotID expands the short id shown by list to a full one.
func resolveSnapshotID(ctx context.Context, src snapshotLister, prefix string) (string, error) {
	snaps, err := src.ListSnapshots(ctx)
	if err != nil {
		return "", err
	}
	var match string
	for _, s := range snaps {
		if !strings.HasPrefix(s.ID, prefix) {
			continue
		}
		if match != "" {
			return "", fmt.Errorf("id %q is ambiguous", prefix)
		}
		match = s.ID
	}
	if match == "" {
		return "", fmt.Errorf("snapshot %s: %w", prefix, store.ErrNotFound)
	}
	return match, nil
}
