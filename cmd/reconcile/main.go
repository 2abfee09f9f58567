package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"billreview/internal/adapter/persistence/repository"
	"billreview/internal/infrastructure/database"
	"billreview/internal/usecase"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Run bill-to-order reconciliation batch stages from the command line",
	}

	rootCmd.AddCommand(newProcessCmd())
	rootCmd.AddCommand(newExportCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nInterrupted, cleaning up...")
		cancel()
	}()
	return ctx, cancel
}

func newProcessCmd() *cobra.Command {
	var (
		limit   int
		workers int
	)

	cmd := &cobra.Command{
		Use:   "process",
		Short: "Reconcile every MAPPED bill against its order",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext()
			defer cancel()

			ddb := database.ConnectDynamoDB()
			pg := database.ConnectPostgres(ctx)
			defer pg.Close()

			billRepo := repository.NewBillDynamoRepository(ddb)
			orderRepo := repository.NewOrderDynamoRepository(ddb)
			referenceRepo := repository.NewReferencePgRepository(pg)

			uc := usecase.NewReconcileUseCase(billRepo, orderRepo, referenceRepo, usecase.NewRateResolver(referenceRepo), referenceRepo)

			start := time.Now()
			summary, err := uc.RunBatch(ctx, limit, workers)
			if err != nil {
				return fmt.Errorf("batch reconcile: %w", err)
			}

			fmt.Fprintf(os.Stderr, "Reconcile complete in %.1fs: %d bills, %d reviewed, %d flagged, %d arthrogram, %d held, %d errors\n",
				time.Since(start).Seconds(), summary.Total, summary.Reviewed, summary.Flagged, summary.Arthrogram, summary.Held, summary.Errors)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of bills to process (0 = all)")
	cmd.Flags().IntVar(&workers, "workers", 4, "Number of concurrent bill workers")

	return cmd
}

func newExportCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Run duplicate detection and EOBR numbering over REVIEWED bills",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext()
			defer cancel()

			ddb := database.ConnectDynamoDB()
			pg := database.ConnectPostgres(ctx)
			defer pg.Close()

			billRepo := repository.NewBillDynamoRepository(ddb)
			orderRepo := repository.NewOrderDynamoRepository(ddb)
			ledgerRepo := repository.NewExportLedgerPgRepository(pg)

			uc := usecase.NewExportUseCase(billRepo, orderRepo, ledgerRepo)

			start := time.Now()
			summary, err := uc.RunExport(ctx, limit)
			if err != nil {
				return fmt.Errorf("export: %w", err)
			}

			fmt.Fprintf(os.Stderr, "Export complete in %.1fs: %d bills, %d new, %d exact duplicates, %d yellow, %d rejected, $%.2f released of $%.2f\n",
				time.Since(start).Seconds(), summary.Total, summary.NewRecords, summary.ExactDuplicates,
				summary.YellowWarnings, summary.Rejected, summary.ReleaseAmount, summary.TotalAmount)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of bills to export (0 = all)")

	return cmd
}
