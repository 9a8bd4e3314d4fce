package convert

import (
	"genie-graph/core/genie"
	"genie-graph/core/graph"
)

// sanitizeEffectBundles drops the garbage entries the .dat format carries
// in effect bundles: effects without a type and tech disablers whose
// target slot is empty. Surviving effects keep their relative order.
// Returns the number of dropped effects.
func sanitizeEffectBundles(d *genie.Dump, _ *graph.Registry) (int, error) {
	dropped := 0
	for _, bundle := range d.EffectBundles {
		kept := make([]genie.Effect, 0, len(bundle.Effects))
		for _, eff := range bundle.Effects {
			if eff.TypeID < 0 {
				dropped++
				continue
			}
			if eff.TypeID == genie.EffectTypeDisableTech && eff.D < 0 {
				dropped++
				continue
			}
			kept = append(kept, eff)
		}
		bundle.Effects = kept
		bundle.Sanitized = true
	}
	return dropped, nil
}
