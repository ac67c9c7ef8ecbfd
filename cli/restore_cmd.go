package cli

import (
	"github.com/spf13/cobra"

	"upnmigrate/migrate"
)

func newRestoreCmd() *cobra.Command {
	var (
		common           commonFlags
		restoreAttribute string
	)

	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Put previously saved principal names back",
		Long: "For each account in the batch, restores the principal name saved in the restore " +
			"attribute, verifies the rename landed, and clears the attribute. Accounts with an " +
			"empty restore attribute are skipped.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			params := migrate.RestoreParams{RestoreAttribute: restoreAttribute}
			return runBatch(common, migrate.ModeRestore, func(r *migrate.Runner, keys []string) (migrate.Summary, error) {
				return r.RunRestore(keys, params)
			})
		},
	}

	registerCommonFlags(cmd, &common)
	cmd.Flags().StringVar(&restoreAttribute, "restore-attribute", "", "attribute holding the previously saved principal name")
	_ = cmd.MarkFlagRequired("restore-attribute")

	return cmd
}
