package font

import "github.com/zeromicro/go-zero/core/metric"

var (
	lookupsTotal = metric.NewCounterVec(&metric.CounterVecOpts{
		Namespace: "plat_fonts",
		Subsystem: "catalog",
		Name:      "lookups_total",
		Help:      "Catalog lookups by family",
		Labels:    []string{"result"},
	})

	urlsBuilt = metric.NewCounterVec(&metric.CounterVecOpts{
		Namespace: "plat_fonts",
		Subsystem: "stylesheet",
		Name:      "urls_built_total",
		Help:      "Stylesheet URLs built",
		Labels:    []string{"template"},
	})

	linksInjected = metric.NewCounterVec(&metric.CounterVecOpts{
		Namespace: "plat_fonts",
		Subsystem: "loader",
		Name:      "links_injected_total",
		Help:      "Stylesheet links appended to a host document",
		Labels:    []string{"family"},
	})
)
