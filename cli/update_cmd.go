package cli

import (
	"github.com/spf13/cobra"

	"upnmigrate/migrate"
)

func newUpdateCmd() *cobra.Command {
	var (
		common           commonFlags
		sourceAttribute  string
		backupAttribute  string
		subdomain        string
		excludedSuffixes []string
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Rewrite principal name suffixes for the accounts in the batch list",
		Long: "For each account in the batch, rewrites the principal name to the value held in the " +
			"source attribute (optionally prefixed with a subdomain) and stashes the prior value in " +
			"the backup attribute. Accounts already carrying a backup value are skipped, so re-running " +
			"the same batch is safe.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			params := migrate.UpdateParams{
				SourceAttribute:  sourceAttribute,
				BackupAttribute:  backupAttribute,
				Subdomain:        subdomain,
				ExcludedSuffixes: excludedSuffixes,
			}
			return runBatch(common, migrate.ModeUpdate, func(r *migrate.Runner, keys []string) (migrate.Summary, error) {
				return r.RunUpdate(keys, params)
			})
		},
	}

	registerCommonFlags(cmd, &common)
	cmd.Flags().StringVar(&sourceAttribute, "source-attribute", "", "attribute holding the desired future principal name")
	cmd.Flags().StringVar(&backupAttribute, "backup-attribute", "", "attribute the prior principal name is stashed in")
	cmd.Flags().StringVar(&subdomain, "subdomain", "", "subdomain token prepended to the source value's suffix")
	cmd.Flags().Var(newSuffixSetValue(&excludedSuffixes), "excluded-suffix", "current-UPN suffixes to leave untouched (repeatable)")
	_ = cmd.MarkFlagRequired("source-attribute")
	_ = cmd.MarkFlagRequired("backup-attribute")

	return cmd
}
