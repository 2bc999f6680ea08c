package stats

import "maps"

// RecommendedOptions returns the webpack stats options the check needs:
// the module list with reasons, sorted by build index, orphan modules
// included (webpack 5), everything else off.
//
// Issuer paths have no switch of their own: webpack writes issuerPath on
// every module record once "modules" is on.
//
// Pass them to `stats.toJson(...)` or the `stats` field of the webpack
// config. The returned map is a fresh copy.
func RecommendedOptions() map[string]any {
	return maps.Clone(recommended)
}

var recommended = map[string]any{
	"all":           false,
	"modules":       true,
	"reasons":       true,
	"modulesSort":   "index",
	"orphanModules": true,
}

// EffectiveOptions returns custom when it is non-empty, otherwise the
// recommended options. A custom set replaces the defaults wholesale.
func EffectiveOptions(custom map[string]any) map[string]any {
	if len(custom) > 0 {
		return maps.Clone(custom)
	}
	return RecommendedOptions()
}
