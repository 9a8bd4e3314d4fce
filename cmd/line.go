package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

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

// lineDetailCmd represents the top-level line command
var lineDetailCmd = &cobra.Command{
	Use:   "line [id]",
	Short: "View details of one line of the built graph",
	Long:  `Builds the graph from the configured dump source and prints one line with its links in both directions.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid line id %q", args[0])
		}
		return runLineDetail(cmd.Context(), id)
	},
}

func init() {
	RootCmd.AddCommand(lineDetailCmd)
}

func runLineDetail(ctx context.Context, id int) error {
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

	l := findLine(registry, id)
	if l == nil {
		return fmt.Errorf("line %d not found in the built graph", id)
	}

	printLineDetail(id, l)
	return nil
}

// findLine resolves the id across every group map. Unit lines are tried
// first by vertical line id, then by head id for the groups only keyed
// there, then the remaining domains.
func findLine(r *graph.Registry, id int) *graph.Line {
	if l, ok := r.UnitLinesByLineID[id]; ok {
		return l
	}
	if l, ok := r.UnitLines[id]; ok && l.ID == id {
		return l
	}
	if l, ok := r.BuildingLines[id]; ok {
		return l
	}
	if l, ok := r.AmbientGroups[id]; ok {
		return l
	}
	if l, ok := r.VariantGroups[id]; ok {
		return l
	}
	return nil
}

// printLineDetail renders a line the way the explorer detail endpoint
// serializes it, as a console view.
func printLineDetail(query int, l *graph.Line) {
	snap := l.Snapshot()

	name := ""
	if head := l.Head(); head != nil {
		name = head.Name
	}

	fmt.Println("\n--- Line Detail View ---")
	fmt.Printf("Query:          %d\n", query)
	fmt.Printf("Line ID:        %d\n", snap.LineID)
	fmt.Printf("Kind:           %s\n", snap.Kind)
	fmt.Printf("Name:           %s\n", name)
	fmt.Printf("Head Unit:      %d\n", snap.HeadUnitID)
	fmt.Printf("Units:          %v\n", snap.UnitIDs)
	fmt.Println("------------------------")

	creatableColor := "\033[33m" // Yellow
	if l.IsCreatable() {
		creatableColor = "\033[32m" // Green
	}
	resetColor := "\033[0m"
	fmt.Printf("Creatable:      %s%v%s\n", creatableColor, l.IsCreatable(), resetColor)

	if snap.CreatedAt != nil {
		fmt.Printf("Created At:     %s %d\n", snap.CreatedAt.Domain, snap.CreatedAt.ID)
	}
	fmt.Printf("Garrison Mode:  %s\n", snap.GarrisonMode)

	if len(snap.TaskLineIDs) > 0 {
		fmt.Printf("Task Lines:     %v\n", snap.TaskLineIDs)
	}
	if snap.TransformTargetID > -1 {
		fmt.Printf("Transforms To:  %d\n", snap.TransformTargetID)
	}
	if snap.SwitchUnitID > -1 {
		fmt.Printf("Switches To:    %d\n", snap.SwitchUnitID)
	}
	if snap.StackUnitID > -1 {
		fmt.Printf("Stack Unit:     %d\n", snap.StackUnitID)
	}
	if len(snap.Creatables) > 0 {
		fmt.Printf("Creates:        %s\n", refList(snap.Creatables))
	}
	if len(snap.ResearchableIDs) > 0 {
		fmt.Printf("Researches:     %v\n", snap.ResearchableIDs)
	}
	if len(snap.AcceptedResources) > 0 {
		fmt.Printf("Accepts:        %v\n", snap.AcceptedResources)
	}
	if len(snap.TradePosts) > 0 {
		fmt.Printf("Trades At:      %s\n", refList(snap.TradePosts))
	}
	if len(snap.TradePartners) > 0 {
		fmt.Printf("Trade Partners: %s\n", refList(snap.TradePartners))
	}
	if len(snap.GarrisonLocations) > 0 {
		fmt.Printf("Garrisons In:   %s\n", refList(snap.GarrisonLocations))
	}
	if len(snap.GarrisonEntities) > 0 {
		fmt.Printf("Holds:          %s\n", refList(snap.GarrisonEntities))
	}
	fmt.Println("------------------------")
}

// refList renders group references as "domain id" pairs.
func refList(refs []graph.GroupRef) string {
	parts := make([]string, 0, len(refs))
	for _, r := range refs {
		parts = append(parts, fmt.Sprintf("%s %d", r.Domain, r.ID))
	}
	return strings.Join(parts, ", ")
}
