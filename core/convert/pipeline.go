package convert

import (
	"fmt"
	"time"

	"genie-graph/core/genie"
	"genie-graph/core/graph"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// pass is one ordered step of the pipeline. The count a pass returns is
// pass-specific: builders report created groups, link passes report
// created links, the sanitizer reports dropped effects.
type pass struct {
	name string
	run  func(*genie.Dump, *graph.Registry) (int, error)
}

// passes returns the pipeline in execution order. Builders run before the
// classifier, the classifier before the link passes; several passes read
// what earlier ones wrote.
func passes() []pass {
	return []pass{
		{"sanitize effect bundles", sanitizeEffectBundles},
		{"create unit lines", createUnitLines},
		{"create extra unit lines", createExtraUnitLines},
		{"create building lines", createBuildingLines},
		{"create villager groups", createVillagerGroups},
		{"create ambient groups", createAmbientGroups},
		{"create variant groups", createVariantGroups},
		{"create terrain groups", createTerrainGroups},
		{"create tech groups", createTechGroups},
		{"create civ groups", createCivGroups},
		{"link building upgrades", linkBuildingUpgrades},
		{"link creatables", linkCreatables},
		{"link researchables", linkResearchables},
		{"link civ uniques", linkCivUniques},
		{"link dropsites", linkDropsites},
		{"link garrisons", linkGarrisons},
		{"link trade posts", linkTradePosts},
	}
}

// PassReport captures one executed pass.
type PassReport struct {
	Name     string        `json:"name"`
	Count    int           `json:"count"`
	Duration time.Duration `json:"duration"`
}

// Report summarizes one conversion run.
type Report struct {
	RunID    string        `json:"run_id"`
	Source   string        `json:"source,omitempty"`
	Passes   []PassReport  `json:"passes"`
	Counts   graph.Counts  `json:"counts"`
	Duration time.Duration `json:"duration"`
}

// Run executes the pipeline over the dump and returns the filled registry
// together with a run report. The first structural inconsistency aborts
// the run; the registry is not usable afterwards.
func Run(dump *genie.Dump, logg *zap.Logger) (*graph.Registry, *Report, error) {
	registry := graph.NewRegistry()
	report := &Report{RunID: uuid.NewString()}

	start := time.Now()
	for _, p := range passes() {
		passStart := time.Now()
		count, err := p.run(dump, registry)
		if err != nil {
			logg.Error("Pass failed", zap.String("pass", p.name), zap.Error(err))
			return nil, nil, fmt.Errorf("pass %q: %w", p.name, err)
		}

		elapsed := time.Since(passStart)
		report.Passes = append(report.Passes, PassReport{Name: p.name, Count: count, Duration: elapsed})
		logg.Info("Pass completed",
			zap.String("pass", p.name),
			zap.Int("count", count),
			zap.Duration("duration", elapsed),
		)
	}
	report.Duration = time.Since(start)
	report.Counts = registry.Counts()

	logg.Info("Conversion completed",
		zap.String("run_id", report.RunID),
		zap.Int("unit_lines", report.Counts.UnitLines),
		zap.Int("building_lines", report.Counts.BuildingLines),
		zap.Int("tech_groups", report.Counts.TechGroups),
		zap.Int("civ_groups", report.Counts.CivGroups),
		zap.Duration("duration", report.Duration),
	)

	return registry, report, nil
}
