package cli

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"upnmigrate/activedirectory"
	"upnmigrate/batch"
	"upnmigrate/config"
	"upnmigrate/ledger"
	"upnmigrate/migrate"
)

// commonFlags are the flags shared by both modes.
type commonFlags struct {
	input     string
	keyColumn string
	ledgerDir string
	envFile   string
}

// runBatch wires the collaborators and hands the loaded batch to the given
// run function. The ledger file is created before the first account is
// touched so even an aborted run leaves a trail.
func runBatch(flags commonFlags, mode migrate.Mode, run func(*migrate.Runner, []string) (migrate.Summary, error)) error {
	cfg, err := config.LoadEnvConfig(flags.envFile)
	if err != nil {
		return err
	}

	keys, err := batch.Load(flags.input, flags.keyColumn)
	if err != nil {
		return err
	}
	fmt.Printf("Loaded %d accounts from %s\n", len(keys), flags.input)

	adInstance := activedirectory.NewActiveDirectoryInstance(cfg.BaseDN, cfg.DcFQDN)
	if err := adInstance.Connect(cfg.Username, cfg.Password); err != nil {
		return err
	}
	defer adInstance.Close()

	writer, err := ledger.NewWriter(flags.ledgerDir, mode, time.Now())
	if err != nil {
		return err
	}
	defer writer.Close()

	var sink migrate.Ledger = writer
	if cfg.AuditDbDSN != "" {
		pgSink, err := ledger.NewPostgresSink(context.Background(), cfg.AuditDbDSN)
		if err != nil {
			log.Printf("audit database unavailable, continuing with file ledger only: %v", err)
		} else {
			defer pgSink.Close()
			sink = ledger.Fanout{Primary: writer, Mirrors: []migrate.Ledger{pgSink}}
		}
	}

	runner := migrate.NewRunner(adInstance, sink)
	summary, err := run(runner, keys)
	if err != nil {
		return err
	}

	fmt.Printf("Processed %d accounts: %d success, %d skipped, %d failed, %d errors\n",
		summary.Processed, summary.Success, summary.Skipped, summary.Failed, summary.Errors)
	fmt.Printf("Audit ledger: %s\n", writer.Path)

	return nil
}

func registerCommonFlags(cmd *cobra.Command, flags *commonFlags) {
	cmd.Flags().StringVar(&flags.input, "input", "", "batch CSV file of account keys")
	cmd.Flags().StringVar(&flags.keyColumn, "key-column", batch.DefaultKeyColumn, "header name of the account-key column")
	cmd.Flags().StringVar(&flags.ledgerDir, "ledger-dir", ".", "directory the audit ledger file is created in")
	cmd.Flags().StringVar(&flags.envFile, "env-file", "settings.env", "env file holding the LDAP connection settings")
	_ = cmd.MarkFlagRequired("input")
}
