package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"genie-graph/core/config"
	"genie-graph/core/convert"
	"genie-graph/core/database"
	"genie-graph/core/graph"
	"genie-graph/core/logger"
	"genie-graph/core/source"
	"genie-graph/core/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// Flags for the convert command
	convertOut    string
	convertUpload bool
	convertJSON   bool
)

// convertCmd runs the pipeline once over the configured dump source.
var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a dump into the group graph",
	Long: `Convert loads the configured dump source, runs the conversion pipeline
and reports what every pass produced.

Examples:
  # Convert and print the per-pass report
  convert

  # Convert and write the snapshot to a file
  convert --out graph.json

  # Convert and upload the snapshot to the storage bucket
  convert --upload

  # Convert and save the run report as JSON
  convert --json`,
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVar(&convertOut, "out", "", "Write the snapshot to this file")
	convertCmd.Flags().BoolVar(&convertUpload, "upload", false, "Upload the snapshot to the storage bucket")
	convertCmd.Flags().BoolVar(&convertJSON, "json", false, "Save the run report as JSON")

	RootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := cfg.Source.Validate(); err != nil {
		return fmt.Errorf("invalid source configuration: %w", err)
	}

	upload := convertUpload || cfg.Convert.Upload

	// The storage client is only needed for storage sources and uploads.
	var client storage.Client
	if cfg.Source.Kind == source.KindStorage || upload {
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

	l.Info("Loading dump", zap.String("source", src.Name()))
	dump, err := src.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load dump: %w", err)
	}

	registry, report, err := convert.Run(dump, l)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}
	report.Source = src.Name()

	printConvertReport(report)

	if convertJSON {
		filename := fmt.Sprintf("convert_report_%d.json", time.Now().Unix())
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		if err := os.WriteFile(filename, data, 0644); err != nil {
			return fmt.Errorf("failed to save report file: %w", err)
		}
		l.Info("Run report saved", zap.String("file", filename))
	}

	if convertOut == "" && !upload {
		return nil
	}

	snap := graph.BuildSnapshot(registry)
	snap.RunID = report.RunID
	snap.Source = report.Source

	if convertOut != "" {
		data, err := snap.Encode()
		if err != nil {
			return fmt.Errorf("failed to encode snapshot: %w", err)
		}
		if err := os.WriteFile(convertOut, data, 0644); err != nil {
			return fmt.Errorf("failed to write snapshot file: %w", err)
		}
		l.Info("Snapshot written", zap.String("file", convertOut), zap.Int("bytes", len(data)))
	}

	if upload {
		size, err := convert.UploadSnapshot(ctx, client, cfg.Storage.Bucket, cfg.Convert.SnapshotObject, snap)
		if err != nil {
			return fmt.Errorf("failed to upload snapshot: %w", err)
		}
		l.Info("Snapshot uploaded", zap.String("object", cfg.Convert.SnapshotObject), zap.Int64("bytes", size))
	}

	return nil
}

// printConvertReport prints the per-pass table of one run.
func printConvertReport(report *convert.Report) {
	fmt.Println("\n=== Conversion Report ===")
	fmt.Printf("Run ID: %s\n", report.RunID)
	fmt.Printf("Source: %s\n", report.Source)
	fmt.Println()
	for _, p := range report.Passes {
		fmt.Printf("%-28s %6d  %s\n", p.Name, p.Count, p.Duration.Round(time.Microsecond))
	}
	fmt.Println("-------------------------")
	fmt.Printf("Unit Lines:      %d\n", report.Counts.UnitLines)
	fmt.Printf("Building Lines:  %d\n", report.Counts.BuildingLines)
	fmt.Printf("Ambient Groups:  %d\n", report.Counts.AmbientGroups)
	fmt.Printf("Variant Groups:  %d\n", report.Counts.VariantGroups)
	fmt.Printf("Terrain Groups:  %d\n", report.Counts.TerrainGroups)
	fmt.Printf("Tech Groups:     %d\n", report.Counts.TechGroups)
	fmt.Printf("Civ Groups:      %d\n", report.Counts.CivGroups)
	fmt.Printf("Execution Time:  %s\n", report.Duration.String())
}
