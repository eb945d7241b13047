package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"voyagedb/src/batch"
	"voyagedb/src/interactive"
	"voyagedb/src/regression"
	"voyagedb/src/settings"

	"go.uber.org/zap"
)

// printUsage prints helpful usage information
func printUsage() {
	log.Println("VoyageDB - an in-memory travel dataset query engine")
	log.Println("\nUsage:")
	log.Println("  voyagedb [options]")
	log.Println("\nOptions:")
	flag.PrintDefaults()

	log.Println("\nExamples:")
	log.Println("  voyagedb --datadir=./dataset --queries=input.txt")
	log.Println("  voyagedb --mode=interactive --datadir=./dataset")
	log.Println("  voyagedb --mode=regression --queries=input.txt --expected=./expected")
}

func main() {
	// Get the global settings instance
	args := settings.GetSettings()

	// Define command line flags that map to the Arguments struct
	flag.StringVar(&args.DataDir, "datadir", args.DataDir, "Directory holding the CSV datasets")
	flag.StringVar(&args.QueriesFile, "queries", args.QueriesFile, "File with one query command per line")
	flag.StringVar(&args.OutputDir, "outdir", args.OutputDir, "Directory for command outputs and error CSVs")
	flag.StringVar(&args.ExpectedDir, "expected", args.ExpectedDir, "Directory with expected outputs (regression mode)")
	flag.StringVar(&args.Mode, "mode", args.Mode, "Operation mode (batch, interactive, regression)")
	flag.BoolVar(&args.Labeled, "labeled", false, "Use the labeled output layout for every command")
	flag.BoolVar(&args.Analysis, "analysis", false, "Write analysis.txt with per-query timings")
	flag.BoolVar(&args.Verbose, "verbose", false, "Enable verbose logging")
	flag.BoolVar(&args.Debug, "debug", false, "Enable debug mode")

	// Parse the command line
	flag.Parse()

	if err := validateArguments(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n\n", err)
		printUsage()
		os.Exit(1)
	}

	var logger *zap.Logger
	var err error
	if args.Debug {
		// Development configuration with more verbose output
		z := zap.NewDevelopmentConfig()
		z.OutputPaths = []string{"stdout"}
		logger, err = z.Build()
	} else {
		// Production configuration
		logger, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)
	sugar := logger.Sugar()

	switch args.Mode {
	case "batch":
		if err := batch.NewRunner(sugar, args).Run(); err != nil {
			sugar.Fatalw("batch run failed", "error", err)
		}
	case "interactive":
		session := interactive.NewSession(sugar, args, os.Stdin, os.Stdout)
		if err := session.Run(); err != nil {
			sugar.Fatalw("interactive session failed", "error", err)
		}
	case "regression":
		outcomes, err := regression.NewHarness(sugar, args).Run()
		if err != nil {
			sugar.Fatalw("regression run failed", "error", err)
		}
		for _, o := range outcomes {
			if !o.Passed {
				os.Exit(1)
			}
		}
	}
}

// validateArguments validates the arguments and returns an error if invalid
func validateArguments(args *settings.Arguments) error {
	switch args.Mode {
	case "batch", "regression":
		if args.QueriesFile == "" {
			return fmt.Errorf("mode %q needs a queries file", args.Mode)
		}
		if _, err := os.Stat(args.QueriesFile); err != nil {
			return fmt.Errorf("error accessing queries file: %w", err)
		}
	case "interactive":
	default:
		return fmt.Errorf("unknown mode: %s", args.Mode)
	}

	if args.Mode == "regression" && args.ExpectedDir == "" {
		return fmt.Errorf("regression mode needs an expected outputs directory")
	}

	dirInfo, err := os.Stat(args.DataDir)
	if err != nil {
		return fmt.Errorf("error accessing data directory: %w", err)
	}
	if !dirInfo.IsDir() {
		return fmt.Errorf("data directory path exists but is not a directory: %s", args.DataDir)
	}
	return nil
}
