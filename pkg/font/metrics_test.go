package font

import (
	"testing"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/prometheus"
)

// counterTotal sums every series of the named counter in the default registry.
func counterTotal(t *testing.T, name string) float64 {
	t.Helper()

	families, err := prom.DefaultGatherer.Gather()
	require.NoError(t, err)

	var total float64
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			total += m.GetCounter().GetValue()
		}
	}
	return total
}

func TestMetrics(t *testing.T) {
	prometheus.Enable()

	t.Run("FallbackStackDoesNotCountLookups", func(t *testing.T) {
		before := counterTotal(t, "plat_fonts_catalog_lookups_total")
		for _, family := range AllFamilies() {
			FallbackStack(family)
		}
		FallbackStack("Unknown Sans")
		assert.Equal(t, before, counterTotal(t, "plat_fonts_catalog_lookups_total"))
	})

	t.Run("FontByFamilyCountsOnce", func(t *testing.T) {
		before := counterTotal(t, "plat_fonts_catalog_lookups_total")
		FontByFamily("Roboto")
		FontByFamily("Nonexistent")
		assert.Equal(t, before+2, counterTotal(t, "plat_fonts_catalog_lookups_total"))
	})

	t.Run("LoadBuildsOneURL", func(t *testing.T) {
		before := counterTotal(t, "plat_fonts_stylesheet_urls_built_total")
		LoadGoogleFont(&recordingDocument{}, "Inter")
		assert.Equal(t, before+1, counterTotal(t, "plat_fonts_stylesheet_urls_built_total"))
	})
}
