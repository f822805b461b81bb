package commands

import (
	"github.com/spf13/cobra"

	"github.com/spendwise/expense-tracker/internal/client"
	"go.uber.org/zap"
)

// NewRootCommand creates the tracker CLI root command. Running it starts an
// interactive session against the expense API.
func NewRootCommand() *cobra.Command {
	var serverURL string

	rootCmd := &cobra.Command{
		Use:   "expensetrack",
		Short: "Interactive expense tracker session",
		Long: "expensetrack drives the expense API from the terminal: set a session\n" +
			"budget, then add, edit and delete expenses while watching the remaining\n" +
			"budget. The budget lives only in the session and is gone on exit.",
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			session := NewSession(client.New(serverURL), log, cmd.InOrStdin(), cmd.OutOrStdout())
			return session.Run(cmd.Context())
		},
	}

	rootCmd.Flags().StringVar(&serverURL, "server", "http://localhost:3000", "expense API base URL")

	return rootCmd
}
