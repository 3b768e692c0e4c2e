package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/mockbok-dev/mockbok/internal/config"
	"github.com/mockbok-dev/mockbok/internal/export"
	"github.com/mockbok-dev/mockbok/internal/logging"
	"github.com/mockbok-dev/mockbok/internal/model"
	"github.com/mockbok-dev/mockbok/internal/query"
	"github.com/mockbok-dev/mockbok/internal/service"
)

func newGenerateCommand() *cobra.Command {
	var (
		configPath string
		seed       int64
		size       int
		dateStart  string
		dateEnd    string
		vat        bool
		outDir     string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a dataset and print its summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				cfg.Generation.Seed = seed
			}
			if cmd.Flags().Changed("size") {
				cfg.Generation.DatasetSize = size
			}
			if cmd.Flags().Changed("start") {
				cfg.Generation.DateStart = dateStart
			}
			if cmd.Flags().Changed("end") {
				cfg.Generation.DateEnd = dateEnd
			}
			if cmd.Flags().Changed("vat") {
				cfg.Generation.IncludeVAT = vat
			}
			return runGenerate(cmd, cfg, outDir)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to mockbok.yaml")
	cmd.Flags().Int64Var(&seed, "seed", 42, "generation seed")
	cmd.Flags().IntVar(&size, "size", 100, "number of transactions")
	cmd.Flags().StringVar(&dateStart, "start", "2024-01-01", "date range start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&dateEnd, "end", "2024-01-31", "date range end (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&vat, "vat", true, "include VAT")
	cmd.Flags().StringVar(&outDir, "out", "", "directory to export accounts.csv and transactions.csv")

	return cmd
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func runGenerate(cmd *cobra.Command, cfg *config.Config, outDir string) error {
	genCfg, err := cfg.GenerationModel()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Logging.Level, cfg.Logging.Development)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	// No simulated latency for local generation runs.
	svc, err := service.New(genCfg, service.Simulation{}, logger)
	if err != nil {
		return err
	}

	txs, summary, err := collectAll(svc)
	if err != nil {
		return err
	}

	accounts, err := svc.GetAccounts(query.AccountFilter{IncludeInactive: true})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Generated %d transactions across %d accounts (seed %d)\n",
		len(txs), accounts.TotalCount, genCfg.Seed)
	fmt.Fprintf(out, "Debit total:  %s SEK\n", sek(summary.DebitTotal))
	fmt.Fprintf(out, "Credit total: %s SEK\n", sek(summary.CreditTotal))
	fmt.Fprintf(out, "Net:          %s SEK\n", sek(summary.Net))

	if outDir == "" {
		return nil
	}
	return exportDataset(outDir, accounts.Items, txs)
}

// collectAll walks every page of the unfiltered set through the facade.
func collectAll(svc *service.Service) ([]model.Transaction, query.Summary, error) {
	var txs []model.Transaction
	var summary query.Summary
	for page := 0; ; page++ {
		result, err := svc.GetTransactions(query.TransactionFilter{}, query.Pagination{Page: page, PageSize: query.MaxPageSize})
		if err != nil {
			return nil, query.Summary{}, err
		}
		txs = append(txs, result.Items...)
		summary = result.Summary
		if !result.PageInfo.HasNext {
			return txs, summary, nil
		}
	}
}

func exportDataset(dir string, accounts []model.Account, txs []model.Transaction) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating export dir: %w", err)
	}

	accountsFile, err := os.Create(filepath.Join(dir, "accounts.csv"))
	if err != nil {
		return fmt.Errorf("creating accounts.csv: %w", err)
	}
	defer accountsFile.Close()
	if err := export.WriteAccounts(accountsFile, accounts); err != nil {
		return fmt.Errorf("exporting accounts: %w", err)
	}

	txFile, err := os.Create(filepath.Join(dir, "transactions.csv"))
	if err != nil {
		return fmt.Errorf("creating transactions.csv: %w", err)
	}
	defer txFile.Close()
	if err := export.WriteTransactions(txFile, txs); err != nil {
		return fmt.Errorf("exporting transactions: %w", err)
	}
	return nil
}

func sek(ore int64) string {
	return decimal.New(ore, -2).StringFixed(2)
}
