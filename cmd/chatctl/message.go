package main

import (
	"fmt"
	"supachat/domain"
	"time"

	"github.com/spf13/cobra"
)

func newMessageCmd(a *app) *cobra.Command {
	messageCmd := &cobra.Command{
		Use:   "message",
		Short: "Append to or list the message history",
	}

	var content, role, userID string
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Append a message to the history",
		RunE: func(cmd *cobra.Command, _ []string) error {
			parsed, err := domain.ParseRole(role)
			if err != nil {
				return err
			}
			manager, err := a.session()
			if err != nil {
				return err
			}
			sessionID, _ := manager.SessionID()

			chatStore := a.store()
			message := domain.NewMessage(sessionID, parsed, content)
			message.UserID = userID
			if room := chatStore.CurrentRoom(); room != nil {
				message.RoomID = room.ID
			}
			chatStore.AddMessage(message)
			fmt.Fprintln(cmd.OutOrStdout(), message.ID)
			return nil
		},
	}
	addCmd.Flags().StringVarP(&content, "content", "c", "", "Message content")
	addCmd.Flags().StringVarP(&role, "role", "r", string(domain.RoleUser), "Author role (user, assistant, agent, system)")
	addCmd.Flags().StringVar(&userID, "user", "", "Author user id")
	_ = addCmd.MarkFlagRequired("content")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Print the history, oldest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			table := newTable(cmd.OutOrStdout(), "ID", "Role", "Created", "Content")
			for _, m := range a.store().Messages() {
				table.Append([]string{m.ID, string(m.Role), m.CreatedAt.Format(time.TimeOnly), m.Content})
			}
			table.Render()
			return nil
		},
	}

	messageCmd.AddCommand(addCmd, listCmd)
	return messageCmd
}
