package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mockbok-dev/mockbok/internal/apierr"
	"github.com/mockbok-dev/mockbok/internal/config"
	"github.com/mockbok-dev/mockbok/internal/logging"
	"github.com/mockbok-dev/mockbok/internal/query"
	"github.com/mockbok-dev/mockbok/internal/service"
)

func newQueryCommand() *cobra.Command {
	var (
		configPath string
		filter     query.TransactionFilter
		page       int
		pageSize   int
	)

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Run a filtered page through the simulated backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			return runQuery(cmd, cfg, filter, query.Pagination{Page: page, PageSize: pageSize})
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to mockbok.yaml")
	cmd.Flags().StringVar(&filter.DateFrom, "from", "", "date lower bound (YYYY-MM-DD)")
	cmd.Flags().StringVar(&filter.DateTo, "to", "", "date upper bound (YYYY-MM-DD)")
	cmd.Flags().StringVar(&filter.Class, "class", "", "BAS class (1-8)")
	cmd.Flags().StringVar(&filter.AccountID, "account", "", "account UUID")
	cmd.Flags().StringVar(&filter.Search, "search", "", "free-text search")
	cmd.Flags().StringVar(&filter.DebitCredit, "side", "", "DEBIT or CREDIT")
	cmd.Flags().StringVar(&filter.MinAmount, "min", "", "minimum amount in öre")
	cmd.Flags().StringVar(&filter.MaxAmount, "max", "", "maximum amount in öre")
	cmd.Flags().IntVar(&page, "page", 0, "zero-based page index")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "page size (10-100, default 50)")

	return cmd
}

func runQuery(cmd *cobra.Command, cfg *config.Config, filter query.TransactionFilter, page query.Pagination) error {
	genCfg, err := cfg.GenerationModel()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Logging.Level, cfg.Logging.Development)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	svc, err := service.New(genCfg, cfg.SimulationModel(), logger)
	if err != nil {
		return err
	}

	result, err := svc.GetTransactions(filter, page)
	if err != nil {
		if apiErr, ok := apierr.As(err); ok && apiErr.Kind == apierr.KindValidation {
			fmt.Fprintf(cmd.ErrOrStderr(), "invalid query:\n")
			for field, message := range apiErr.Details {
				fmt.Fprintf(cmd.ErrOrStderr(), "  %s: %s\n", field, message)
			}
		}
		return err
	}

	out := cmd.OutOrStdout()
	for _, tx := range result.Items {
		fmt.Fprintf(out, "%s  %4d  %-6s  %12s SEK  %s\n",
			tx.Date.Format("2006-01-02"), tx.AccountNumber, tx.DebitCredit, sek(tx.Amount), tx.Description)
	}
	info := result.PageInfo
	fmt.Fprintf(out, "\nPage %d/%d (%d matching transactions)\n", info.Page+1, info.TotalPages, info.TotalItems)
	fmt.Fprintf(out, "Debit %s SEK, credit %s SEK, net %s SEK, average %s SEK\n",
		sek(result.Summary.DebitTotal), sek(result.Summary.CreditTotal), sek(result.Summary.Net), sek(result.Summary.Average))
	return nil
}
