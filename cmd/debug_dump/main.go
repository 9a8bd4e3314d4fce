package main

import (
	"context"
	"fmt"
	"log"

	"genie-graph/core/config"
	"genie-graph/core/database"
	"genie-graph/core/source"
	"genie-graph/core/storage"

	"gorm.io/gorm"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal(err)
	}

	var client storage.Client
	if cfg.Source.Kind == source.KindStorage {
		client, err = storage.NewClient(cfg.Storage)
		if err != nil {
			log.Fatal(err)
		}
	}

	var db *gorm.DB
	if cfg.Source.Kind == source.KindDatabase {
		db, err = database.Connect(cfg.Database)
		if err != nil {
			log.Fatal(err)
		}
	}

	src, err := source.New(cfg.Source, client, cfg.Storage.Bucket, db)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	fmt.Printf("Loading dump from %s...\n", src.Name())
	dump, err := src.Load(ctx)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("\n=== Dump Tables ===")
	fmt.Printf("Units:                %d\n", len(dump.Units))
	fmt.Printf("Techs:                %d\n", len(dump.Techs))
	fmt.Printf("Effect Bundles:       %d\n", len(dump.EffectBundles))
	fmt.Printf("Civilizations:        %d\n", len(dump.Civilizations))
	fmt.Printf("Terrains:             %d\n", len(dump.Terrains))
	fmt.Printf("Age Connections:      %d\n", len(dump.AgeConnections))
	fmt.Printf("Building Connections: %d\n", len(dump.BuildingConnections))
	fmt.Printf("Unit Connections:     %d\n", len(dump.UnitConnections))
	fmt.Printf("Tech Connections:     %d\n", len(dump.TechConnections))

	// Connection rows pointing at records the dump does not carry are the
	// usual cause of pipeline aborts. List them before converting.
	fmt.Println("\n=== Checking connection references ===")

	dangling := 0
	for _, conn := range dump.UnitConnections {
		if _, ok := dump.Unit(conn.ID); !ok {
			dangling++
			fmt.Printf("unit connection %d: unit not in dump\n", conn.ID)
		}
	}
	for _, conn := range dump.BuildingConnections {
		if _, ok := dump.Unit(conn.ID); !ok {
			dangling++
			fmt.Printf("building connection %d: building not in dump\n", conn.ID)
		}
	}
	for _, conn := range dump.TechConnections {
		if _, ok := dump.Tech(conn.ID); !ok {
			dangling++
			fmt.Printf("tech connection %d: tech not in dump\n", conn.ID)
		}
	}
	for _, tech := range dump.Techs {
		if tech.EffectBundleID < 0 {
			continue
		}
		if _, ok := dump.EffectBundle(tech.EffectBundleID); !ok {
			dangling++
			fmt.Printf("tech %d (%s): effect bundle %d not in dump\n", tech.ID, tech.Name, tech.EffectBundleID)
		}
	}

	if dangling == 0 {
		fmt.Println("All connection references resolve.")
	}
	fmt.Printf("\nTotal dangling references: %d\n", dangling)
}
