// Package metrics instruments the Cnfizer and solver context with
// Prometheus counters, registered at package init the way
// operator-framework-operator-lifecycle-manager registers its
// controller metrics with promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ProxiesIntroduced counts Boolean proxy variables allocated
	// across every Convert call observed by ObserveConvert.
	ProxiesIntroduced = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "dsolve",
		Subsystem: "cnfizer",
		Name:      "proxies_introduced_total",
		Help:      "Number of fresh Boolean proxy variables introduced by the Cnfizer.",
	})

	// ClausesEmitted counts clauses returned across every Convert
	// call observed by ObserveConvert.
	ClausesEmitted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "dsolve",
		Subsystem: "cnfizer",
		Name:      "clauses_emitted_total",
		Help:      "Number of clauses emitted by Convert.",
	})

	// AssertionsConverted counts Convert calls, including the nested
	// Convert call made on the body of each quantified subformula.
	AssertionsConverted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "dsolve",
		Subsystem: "cnfizer",
		Name:      "assertions_converted_total",
		Help:      "Number of formulas passed through Convert, including quantified bodies.",
	})
)

// ObserveConvert records the outcome of a single Convert call:
// numClauses clauses were returned and numProxies proxy variables
// were allocated for it (an elided head proxy included).
func ObserveConvert(numClauses, numProxies int) {
	AssertionsConverted.Inc()
	ClausesEmitted.Add(float64(numClauses))
	ProxiesIntroduced.Add(float64(numProxies))
}
