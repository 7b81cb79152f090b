package cmd

import (
	"context"
	"fmt"
	"os"

	"ledger-reconciler/core/config"
	"ledger-reconciler/core/database"
	"ledger-reconciler/core/logger"
	"ledger-reconciler/feature/recon"
	"ledger-reconciler/feature/report"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	detailPath     string
	aggregatorPath string
	outputPath     string
	strictOrder    bool
	showUnmatched  bool
)

// reconcileCmd runs one reconciliation over local files.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Reconcile statement exports against the consolidated ledger",
	Long: `Reconcile detail statement exports (a single CSV or a folder of CSVs)
against the consolidated-ledger export.

Prints a summary table, optionally the unmatched rows, and optionally writes
the full output as CSV.

Examples:
  # Reconcile a folder of statement exports
  ledger-reconciler reconcile --details ./exports --aggregator ./ledger.csv

  # Write the assembled rows to a file
  ledger-reconciler reconcile --details ./exports --aggregator ./ledger.csv --output out.csv

  # Require matches to follow ledger file order
  ledger-reconciler reconcile --details ./exports --aggregator ./ledger.csv --strict-order`,
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().StringVar(&detailPath, "details", "", "Detail CSV file or folder of CSVs (required)")
	reconcileCmd.Flags().StringVar(&aggregatorPath, "aggregator", "", "Consolidated-ledger CSV file (required)")
	reconcileCmd.Flags().StringVar(&outputPath, "output", "", "Write assembled output rows to this CSV file")
	reconcileCmd.Flags().BoolVar(&strictOrder, "strict-order", false, "Require matches to be monotonic in ledger file position")
	reconcileCmd.Flags().BoolVar(&showUnmatched, "show-unmatched", false, "Print unmatched rows after the summary")
	_ = reconcileCmd.MarkFlagRequired("details")
	_ = reconcileCmd.MarkFlagRequired("aggregator")

	RootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	// Run history is optional for CLI runs; a missing database only costs
	// the persisted record.
	var db *gorm.DB
	if conn, err := database.Connect(cfg.Database); err != nil {
		l.Warn("Optional database connection failed, run will not be persisted", zap.Error(err))
	} else {
		db = conn
	}

	opts := cfg.Reconcile
	if strictOrder {
		opts.StrictOrder = true
	}

	svc := recon.NewService(nil, "", l, db, opts)
	result, err := svc.RunLocal(ctx, detailPath, aggregatorPath)
	if err != nil {
		return err
	}

	report.Render(os.Stdout, result.Summary)
	if showUnmatched {
		report.RenderUnmatched(os.Stdout, result.Rows)
	}

	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()

		if err := report.WriteCSV(f, result.Rows); err != nil {
			return err
		}
		l.Info("Output written", zap.String("file", outputPath), zap.Int("rows", len(result.Rows)))
	}

	return nil
}
