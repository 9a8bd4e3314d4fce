package cmd

import (
	"context"
	"fmt"

	"genie-graph/core/check"
	"genie-graph/core/config"
	"genie-graph/core/convert"
	"genie-graph/core/database"
	"genie-graph/core/logger"
	"genie-graph/core/source"
	"genie-graph/core/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the built group graph",
	Long:  `Builds the graph from the configured dump source and verifies its invariants. Without a subcommand every check runs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return cmd.Help()
		}
		return runGraphChecks(cmd.Context(), "")
	},
}

// checkStructureCmd represents the check structure command
var checkStructureCmd = &cobra.Command{
	Use:   "structure",
	Short: "Check group structure and registry keying",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGraphChecks(cmd.Context(), "structure")
	},
}

// checkPartitionCmd represents the check partition command
var checkPartitionCmd = &cobra.Command{
	Use:   "partition",
	Short: "Check that every grouped unit is referenced exactly once",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGraphChecks(cmd.Context(), "partition")
	},
}

// checkLinksCmd represents the check links command
var checkLinksCmd = &cobra.Command{
	Use:   "links",
	Short: "Check that cross-group links hold in both directions",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGraphChecks(cmd.Context(), "links")
	},
}

// checkDeterminismCmd represents the check determinism command
var checkDeterminismCmd = &cobra.Command{
	Use:   "determinism",
	Short: "Check that two snapshot encodings are identical",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGraphChecks(cmd.Context(), "determinism")
	},
}

// checkSchemaCmd represents the check schema command
var checkSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Check the genie table schema of the dump database",
	Long:  `Compares the genie_* tables of the configured database against the row models backing the database source.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}

		db, err := database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("database connection required: %w", err)
		}

		report, err := source.VerifySchema(db)
		if err != nil {
			return fmt.Errorf("schema verification failed: %w", err)
		}

		if report.Matched {
			logg.Info("Dump schema matches the row models.")
			return nil
		}

		for table, tbl := range report.Tables {
			if tbl.Status != "ok" {
				if len(tbl.MissingColumns) > 0 {
					logg.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", tbl.MissingColumns))
				}
				if len(tbl.TypeMismatches) > 0 {
					logg.Warn("Type Mismatches", zap.String("table", table), zap.Strings("mismatches", tbl.TypeMismatches))
				}
			}
		}
		for _, e := range report.Errors {
			logg.Error("Inspection Error", zap.String("error", e))
		}

		return fmt.Errorf("dump schema mismatches found")
	},
}

func init() {
	RootCmd.AddCommand(checkCmd)
	checkCmd.AddCommand(checkStructureCmd, checkPartitionCmd, checkLinksCmd, checkDeterminismCmd, checkSchemaCmd)
}

// runGraphChecks converts the configured source and runs the selected check,
// or every check when only is empty. A failed check returns an error so the
// process exits non-zero.
func runGraphChecks(ctx context.Context, only string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	if err := cfg.Source.Validate(); err != nil {
		return fmt.Errorf("invalid source configuration: %w", err)
	}

	// The storage client is only needed for storage sources.
	var client storage.Client
	if cfg.Source.Kind == source.KindStorage {
		client, err = storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}
	}

	// The database is only needed for database sources.
	var db *gorm.DB
	if cfg.Source.Kind == source.KindDatabase {
		db, err = database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
	}

	src, err := source.New(cfg.Source, client, cfg.Storage.Bucket, db)
	if err != nil {
		return fmt.Errorf("failed to build dump source: %w", err)
	}

	logg.Info("Loading dump", zap.String("source", src.Name()))
	dump, err := src.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load dump: %w", err)
	}

	registry, _, err := convert.Run(dump, logg)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	var results []check.Result
	switch only {
	case "structure":
		results = []check.Result{check.Structure(dump, registry)}
	case "partition":
		results = []check.Result{check.Partition(registry)}
	case "links":
		results = []check.Result{check.Links(registry)}
	case "determinism":
		results = []check.Result{check.Determinism(registry)}
	default:
		results = check.All(dump, registry).Results
	}

	failed := 0
	for _, r := range results {
		if r.Passed {
			logg.Info("Check passed", zap.String("check", r.Name), zap.Int("checked", r.Checked))
		} else {
			failed++
			logg.Warn("Check failed", zap.String("check", r.Name), zap.Int("checked", r.Checked), zap.Strings("details", r.Details))
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d checks failed", failed, len(results))
	}

	logg.Info("All checks passed.", zap.Int("checks", len(results)))
	return nil
}
