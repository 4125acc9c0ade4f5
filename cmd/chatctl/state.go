package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newStateCmd(a *app) *cobra.Command {
	stateCmd := &cobra.Command{
		Use:   "state",
		Short: "Show or change the whole chat state",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the state as its persisted JSON record",
		RunE: func(cmd *cobra.Command, _ []string) error {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			return encoder.Encode(a.store().State())
		},
	}

	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Restore the initial state",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.store().Reset()
			fmt.Fprintln(cmd.OutOrStdout(), "reset")
			return nil
		},
	}

	var count int
	unreadCmd := &cobra.Command{
		Use:   "unread",
		Short: "Set the unread counter",
		RunE: func(cmd *cobra.Command, _ []string) error {
			chatStore := a.store()
			chatStore.SetUnreadCount(count)
			fmt.Fprintln(cmd.OutOrStdout(), chatStore.UnreadCount())
			return nil
		},
	}
	unreadCmd.Flags().IntVar(&count, "count", 0, "Unread count, negative values are stored as 0")

	var locked bool
	lockCmd := &cobra.Command{
		Use:   "lock",
		Short: "Lock or unlock the input",
		RunE: func(cmd *cobra.Command, _ []string) error {
			chatStore := a.store()
			chatStore.SetInputLocked(locked)
			fmt.Fprintln(cmd.OutOrStdout(), chatStore.InputLocked())
			return nil
		},
	}
	lockCmd.Flags().BoolVar(&locked, "locked", true, "Whether the input is locked")

	stateCmd.AddCommand(showCmd, resetCmd, unreadCmd, lockCmd)
	return stateCmd
}
