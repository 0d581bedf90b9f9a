package main

import (
	"context"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/spf13/cobra"

	"github.com/teofils1/supply-chain/config"
	"github.com/teofils1/supply-chain/pkg/ledger"
	"github.com/teofils1/supply-chain/repository"
	"github.com/teofils1/supply-chain/service/audit"
)

// the maintenance commands never dispatch notifications
type noIntake struct{}

func (noIntake) Enqueue(uint64) bool { return true }

func newAuditService(conf config.Config) audit.IService {
	db := conf.MySQL.MustConnect()
	provider := repository.NewProvider(db)
	ledgerClient := ledger.NewMock(conf.Anchoring.Network)
	return audit.NewService(provider, repository.NewEvent(), ledgerClient, noIntake{})
}

func anchorCommand() *cobra.Command {
	var batchSize int
	var maxAgeHours int
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "anchor pending and failed events older than the age threshold",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf := config.Load()
			service := newAuditService(conf)

			opts := audit.BatchAnchorOptions{
				MaxAge:    time.Duration(maxAgeHours) * time.Hour,
				BatchSize: batchSize,
				DryRun:    dryRun,
			}
			if batchSize <= 0 {
				opts.BatchSize = conf.Anchoring.BatchSize
			}
			if maxAgeHours < 0 {
				opts.MaxAge = conf.Anchoring.MaxAge
			}

			report, err := service.AnchorUnanchoredEvents(context.Background(), opts)
			if err != nil {
				return err
			}

			for _, result := range report.Results {
				switch {
				case dryRun:
					fmt.Printf("event %d: would anchor\n", result.EventID)
				case result.Err != nil:
					fmt.Printf("event %d: FAILED: %v\n", result.EventID, result.Err)
				default:
					fmt.Printf("event %d: anchored tx=%s\n", result.EventID, result.TxRef)
				}
			}
			fmt.Printf("scanned=%d anchored=%d failed=%d\n",
				report.Scanned, report.Anchored, report.Failed)
			return nil
		},
	}

	cmd.Flags().IntVar(&batchSize, "batch-size", 0, "max events to anchor in one run")
	cmd.Flags().IntVar(&maxAgeHours, "max-age-hours", -1, "only anchor events older than this")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "list candidates without anchoring")
	return cmd
}

func verifyCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "re-verify anchored events against the ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf := config.Load()
			service := newAuditService(conf)

			report, err := service.VerifyAnchoredEvents(context.Background(), limit)
			if err != nil {
				return err
			}

			for _, eventID := range report.Mismatched {
				fmt.Printf("event %d: MISMATCH\n", eventID)
			}
			for _, eventID := range report.Errored {
				fmt.Printf("event %d: check incomplete, retry\n", eventID)
			}
			fmt.Printf("checked=%d verified=%d mismatched=%d errored=%d\n",
				report.Checked, report.Verified, len(report.Mismatched), len(report.Errored))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 100, "max events to verify in one run")
	return cmd
}

func main() {
	rootCmd := cobra.Command{
		Use: "anchor",
	}
	rootCmd.AddCommand(
		anchorCommand(),
		verifyCommand(),
	)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Println("[ERROR]", err)
	}
}
