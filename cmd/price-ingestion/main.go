package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"os/signal"
	pipeline_errors "stockpipeline/internal"
	"stockpipeline/internal/config"
	db "stockpipeline/internal/db/query"
	"stockpipeline/internal/domain"
	"stockpipeline/internal/logger"
	price_ingestion "stockpipeline/internal/price-ingestion"
	"stockpipeline/internal/prices"
	"stockpipeline/internal/report"
	"stockpipeline/internal/repository"
	"stockpipeline/internal/schedule"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "price-ingestion",
		Short: "Fetch the daily stock quote and store it in postgres",
		Long: `price-ingestion fetches the latest quote for the configured symbol and upserts it
into the stock_price table. Use "run" from an external scheduler, or "schedule" to
keep the process alive and run once a day.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().String("config", "", "Optional config file (json, yaml or toml). Values can be overridden with PIPELINE_* environment variables.")
	rootCmd.PersistentFlags().String("symbol", "", "Ticker to ingest. Defaults to the configured symbol.")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Fetch and store one quote, then exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, symbol, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			step, dbConn, err := newStep(cfg)
			if err != nil {
				return err
			}
			defer dbConn.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			outcome, err := step.Run(ctx, symbol)
			if err != nil {
				return fmt.Errorf("ingestion failed: %w", err)
			}
			log.WithField("outcome", outcome).Infof("finished ingestion for %s", symbol)
			return nil
		},
	}

	scheduleCmd := &cobra.Command{
		Use:   "schedule",
		Short: "Run the ingestion once a day until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, symbol, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			hour, minute, err := cfg.Schedule.TimeOfDay()
			if err != nil {
				return err
			}
			loc, err := cfg.Schedule.Location()
			if err != nil {
				return err
			}
			start, err := cfg.Schedule.Start()
			if err != nil {
				return err
			}

			step, dbConn, err := newStep(cfg)
			if err != nil {
				return err
			}
			defer dbConn.Close()

			runner := schedule.NewRunner(
				schedule.Daily{
					Hour:     hour,
					Minute:   minute,
					Location: loc,
					Start:    start,
				},
				schedule.Policy{
					Retries:    cfg.Retry.Retries,
					RetryDelay: cfg.Retry.Delay,
					Retryable:  pipeline_errors.IsRetryable,
				},
				func(ctx context.Context) error {
					_, err := step.Run(ctx, symbol)
					return err
				},
			)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			err = runner.Run(ctx)
			if err != nil && !errors.Is(err, context.Canceled) {
				return fmt.Errorf("scheduler stopped: %w", err)
			}
			log.Info("scheduler stopped")
			return nil
		},
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the most recent stored quotes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, symbol, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			limit, err := cmd.Flags().GetInt("limit")
			if err != nil {
				return fmt.Errorf("error getting limit: %w", err)
			}
			format, err := cmd.Flags().GetString("format")
			if err != nil {
				return fmt.Errorf("error getting format: %w", err)
			}

			dbConn, err := db.New(cfg.Database.URL)
			if err != nil {
				return err
			}
			defer dbConn.Close()

			quotes, err := repository.NewStockPriceRepository(dbConn).ListRecent(cmd.Context(), symbol, limit)
			if err != nil {
				return err
			}

			return report.Write(cmd.OutOrStdout(), format, quotes)
		},
	}
	showCmd.Flags().Int("limit", 10, "Number of rows to print.")
	showCmd.Flags().String("format", report.FormatTable, "Output format, table or csv.")

	rootCmd.AddCommand(runCmd, scheduleCmd, showCmd)
	return rootCmd
}

func loadConfig(cmd *cobra.Command) (*config.Config, domain.Symbol, error) {
	configFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, "", fmt.Errorf("error getting config: %w", err)
	}
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Setup(log.StandardLogger(), cfg.Log); err != nil {
		return nil, "", err
	}

	symbolFlag, err := cmd.Flags().GetString("symbol")
	if err != nil {
		return nil, "", fmt.Errorf("error getting symbol: %w", err)
	}
	if symbolFlag != "" {
		cfg.Symbol = symbolFlag
	}
	symbol, err := domain.ParseSymbol(cfg.Symbol)
	if err != nil {
		return nil, "", fmt.Errorf("invalid symbol: %w", err)
	}

	return cfg, symbol, nil
}

func newStep(cfg *config.Config) (price_ingestion.Step, *sql.DB, error) {
	fetcher, err := prices.NewFetcher(*cfg)
	if err != nil {
		return price_ingestion.Step{}, nil, err
	}

	dbConn, err := db.New(cfg.Database.URL)
	if err != nil {
		return price_ingestion.Step{}, nil, err
	}

	step := price_ingestion.NewStep(
		fetcher,
		repository.NewStockPriceRepository(dbConn),
		price_ingestion.StepConfig{
			Source:         cfg.Source,
			FetchTimeout:   cfg.FetchTimeout,
			PersistTimeout: cfg.PersistTimeout,
		},
	)

	return step, dbConn, nil
}

func main() {
	cobra.CheckErr(newRootCmd().Execute())
}
