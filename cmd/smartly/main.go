package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alexanderramin/smartly/internal/cli"
	"github.com/alexanderramin/smartly/internal/config"
	"github.com/alexanderramin/smartly/internal/db"
	"github.com/alexanderramin/smartly/internal/repository"
	"github.com/alexanderramin/smartly/internal/service"
	"github.com/alexanderramin/smartly/internal/suggest"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.LoadConfig()

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	weights, err := suggest.LoadWeights(cfg.WeightsPath)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogUseCases {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	// Wire repositories
	contentRepo := repository.NewSQLiteContentRepo(database)
	goalRepo := repository.NewSQLiteFitnessGoalRepo(database)
	measurementRepo := repository.NewSQLiteMeasurementGoalRepo(database)
	activityRepo := repository.NewSQLiteActivityRepo(database)
	interactionRepo := repository.NewSQLiteInteractionRepo(database)

	var catalog service.CatalogReader = contentRepo
	var invalidator service.CacheInvalidator
	if cfg.CatalogTTL > 0 {
		cached := repository.NewCachedContentCatalog(contentRepo, cfg.CatalogTTL)
		catalog, invalidator = cached, cached
	}

	// Interaction logs are written off the request path; flush before exit.
	logs := service.NewAsyncInteractionLogger(interactionRepo, logger, cfg.LogWriteTimeout, observer)
	defer logs.Wait()

	// Wire services
	aggregator := service.NewContextAggregator(goalRepo, measurementRepo, activityRepo, logger,
		service.WithActivityWindowDays(cfg.ActivityWindowDays))

	app := &cli.App{
		Suggest: service.NewSuggestService(aggregator, suggest.NewEngine(weights), catalog, logs,
			service.WithGoalStaleAfter(cfg.GoalStaleAfter),
			service.WithSuggestLogger(logger),
			service.WithUseCaseObserver(observer)),
		Profile: service.NewProfileService(goalRepo, measurementRepo, activityRepo, contentRepo, interactionRepo),
		Catalog: service.NewCatalogService(db.NewSQLiteUnitOfWork(database), contentRepo, invalidator, observer),

		Interactive: isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()),
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
