package main

import (
	"fmt"
	"supachat/session"

	"github.com/spf13/cobra"
)

func newSessionCmd(a *app) *cobra.Command {
	sessionCmd := &cobra.Command{
		Use:   "session",
		Short: "Create, restore or clear the session id",
	}
	sessionCmd.AddCommand(
		&cobra.Command{
			Use:   "ensure",
			Short: "Restore the session id, generating one when missing",
			RunE: func(cmd *cobra.Command, _ []string) error {
				manager, err := a.session()
				if err != nil {
					return err
				}
				id, _ := manager.SessionID()
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", id, manager.State())
				return nil
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Clear the session id so the next mount creates a new one",
			RunE: func(cmd *cobra.Command, _ []string) error {
				manager := session.Attach(a.store(), session.WithLogger(a.log))
				manager.ClearSession()
				fmt.Fprintf(cmd.OutOrStdout(), "cleared\t%s\n", manager.State())
				return nil
			},
		},
	)
	return sessionCmd
}
