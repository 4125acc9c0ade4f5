package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "chatctl",
		Short: "Inspect and drive persisted chat widget state",
		Long: `chatctl opens the storage backend selected by STORAGE_BACKEND and
operates on the chat store of one namespace (--key, LOCAL_STORAGE_KEY by default).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.open(cmd)
		},
	}
	rootCmd.PersistentFlags().StringVarP(&a.key, "key", "k", "", "Namespace key of the chat store")

	rootCmd.AddCommand(
		newSessionCmd(a),
		newMessageCmd(a),
		newStateCmd(a),
		newInspectCmd(a),
		newServeCmd(a),
	)
	return rootCmd
}
