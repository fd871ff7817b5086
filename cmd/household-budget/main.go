package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/iwvelando/household-budget/internal/budget"
	"github.com/iwvelando/household-budget/internal/config"
	"github.com/iwvelando/household-budget/internal/payoff"
	"github.com/iwvelando/household-budget/internal/server"
	"github.com/iwvelando/household-budget/internal/store/sqlite"
	"github.com/iwvelando/household-budget/pkg/constants"
	"github.com/iwvelando/household-budget/pkg/output"
	"github.com/iwvelando/household-budget/pkg/validation"
)

var version = "dev"

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info" // Default to info level
	}

	// Parse log level
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	// Determine output format
	format := loggingConfig.Format
	if format == "" {
		format = "json" // Default to JSON for production
	}

	// Configure encoder
	var config zap.Config
	switch format {
	case "console":
		config = zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		config = zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	// Configure output file if specified
	if loggingConfig.OutputFile != "" {
		// Ensure the directory exists
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		// Test if we can create/write to the file
		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		config.OutputPaths = []string{loggingConfig.OutputFile}
		config.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return config.Build()
}

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	serve := flag.Bool("serve", false, "serve the budget API over HTTP instead of printing a summary")
	importRecords := flag.Bool("import", false, "import the configured records into the database before summarizing")
	payoffBalance := flag.Float64("payoff-balance", 0, "credit card balance for a payoff simulation")
	payoffAPR := flag.Float64("payoff-apr", 0, "credit card APR percentage for a payoff simulation")
	payoffPayment := flag.Float64("payoff-payment", 0, "fixed monthly payment for a payoff simulation")
	flag.Parse()

	// Load the config file to get logging configuration
	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return
	}

	// Initialize logging based on config and CLI override
	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty // Default to pretty format
	}

	err = validation.ValidateOutputFormat(outputFormat)
	if err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	err = validation.ValidateFractionDigits(conf.Currency.FractionDigits)
	if err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	// Validate configuration and display any warnings
	warnings := conf.ValidateConfiguration()
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	if *serve {
		handler := server.NewHandler(logger, conf.Server.MaxRequestSizeBytes, version)
		logger.Info("serving budget API",
			zap.String("op", "main"),
			zap.String("address", conf.Server.Address),
		)
		if err := http.ListenAndServe(conf.Server.Address, handler); err != nil {
			logger.Fatal("server stopped",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		return
	}

	// One-off payoff simulation when the payoff flags are provided.
	if *payoffBalance != 0 || *payoffPayment != 0 {
		result, err := payoff.Compute(*payoffBalance, *payoffAPR, *payoffPayment, conf.Currency.FractionDigits)
		if err != nil {
			logger.Fatal("failed to compute payoff",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		switch outputFormat {
		case constants.OutputFormatPretty:
			output.PrettyPayoff(result, conf.Currency.FractionDigits)
		case constants.OutputFormatCSV:
			output.CsvPayoff(result, conf.Currency.FractionDigits)
		}
		return
	}

	people, expenses, settings, err := loadRecords(logger, conf, *importRecords)
	if err != nil {
		logger.Fatal("failed to load budget records",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	// The aggregators never inspect dates; apply the validity window here.
	currentMonth := time.Now().Format(constants.DateTimeLayout)
	expenses, err = budget.FilterActive(expenses, currentMonth)
	if err != nil {
		logger.Fatal("failed to filter expenses",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	summaries, err := budget.Summarize(people, expenses, settings, conf.Currency.FractionDigits)
	if err != nil {
		logger.Fatal("failed to compute budget summary",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	// Handle output.
	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettySummary(summaries, budget.OneTimeEntries(expenses), conf.Currency.FractionDigits)
	case constants.OutputFormatCSV:
		output.CsvSummary(summaries, conf.Currency.FractionDigits)
	}
}

// loadRecords resolves the budget records either directly from the
// configuration or, when a database is configured, through the store. With
// -import the configured records replace the stored ones first.
func loadRecords(logger *zap.Logger, conf *config.Configuration, importRecords bool) ([]budget.Person, []budget.Expense, budget.HouseholdSettings, error) {
	if conf.Database.Path == "" {
		return conf.BudgetRecords()
	}

	s, err := sqlite.New(conf.Database.Path)
	if err != nil {
		return nil, nil, budget.HouseholdSettings{}, err
	}
	defer func() {
		if closeErr := s.Close(); closeErr != nil {
			logger.Warn("failed to close store",
				zap.String("op", "main.loadRecords"),
				zap.Error(closeErr),
			)
		}
	}()

	ctx := context.Background()

	if importRecords {
		people, expenses, settings, err := conf.BudgetRecords()
		if err != nil {
			return nil, nil, budget.HouseholdSettings{}, err
		}
		if err := s.ReplaceAll(ctx, people, expenses, settings); err != nil {
			return nil, nil, budget.HouseholdSettings{}, err
		}
		logger.Info("imported configured records into database",
			zap.String("op", "main.loadRecords"),
			zap.String("path", conf.Database.Path),
			zap.Int("people", len(people)),
			zap.Int("expenses", len(expenses)),
		)
	}

	return s.LoadBudget(ctx)
}
