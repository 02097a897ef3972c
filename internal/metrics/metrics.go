// Package metrics exposes prometheus collectors for settlement calculations.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricPrefix = "splitbill_"

	// Sources of a calculation.
	SourceWeb = "web"
	SourceRPC = "rpc"

	resultSuccess = "success"
	resultInvalid = "invalid"
)

var (
	registerOnce sync.Once

	settlementsTotal    *prometheus.CounterVec
	settlementLatency   *prometheus.HistogramVec
	participantsPerCalc *prometheus.HistogramVec
	transactionsPerCalc *prometheus.HistogramVec
	rejectedInputs      *prometheus.CounterVec
)

// Init registers the collectors with the default registry. Safe to call more
// than once; observations before Init are dropped.
func Init() {
	registerOnce.Do(func() {
		settlementsTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "settlements_total",
				Help: "Total settlement calculations by source and result",
			},
			[]string{"source", "result"},
		)
		settlementLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "settlement_latency_seconds",
				Help:    "Time to compute balances and the settlement plan",
				Buckets: prometheus.ExponentialBuckets(0.00001, 4, 8),
			},
			[]string{"source"},
		)
		participantsPerCalc = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "participants",
				Help:    "Participants per settlement calculation",
				Buckets: []float64{1, 2, 3, 5, 8, 13, 21, 50},
			},
			[]string{"source"},
		)
		transactionsPerCalc = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "transactions",
				Help:    "Payments in each settlement plan",
				Buckets: []float64{0, 1, 2, 3, 5, 8, 13, 21, 50},
			},
			[]string{"source"},
		)
		rejectedInputs = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "rejected_inputs_total",
				Help: "Inputs rejected before calculation by source and reason",
			},
			[]string{"source", "reason"},
		)

		prometheus.MustRegister(
			settlementsTotal,
			settlementLatency,
			participantsPerCalc,
			transactionsPerCalc,
			rejectedInputs,
		)
	})
}

// ObserveSettlement records one completed calculation.
func ObserveSettlement(source string, participants, transactions int, duration time.Duration) {
	if source == "" {
		source = "unknown"
	}
	if settlementsTotal != nil {
		settlementsTotal.WithLabelValues(source, resultSuccess).Inc()
	}
	if settlementLatency != nil {
		settlementLatency.WithLabelValues(source).Observe(duration.Seconds())
	}
	if participantsPerCalc != nil {
		participantsPerCalc.WithLabelValues(source).Observe(float64(participants))
	}
	if transactionsPerCalc != nil {
		transactionsPerCalc.WithLabelValues(source).Observe(float64(transactions))
	}
}

// IncRejected records input that never reached the calculator.
func IncRejected(source, reason string) {
	if source == "" {
		source = "unknown"
	}
	if reason == "" {
		reason = "unknown"
	}
	if settlementsTotal != nil {
		settlementsTotal.WithLabelValues(source, resultInvalid).Inc()
	}
	if rejectedInputs != nil {
		rejectedInputs.WithLabelValues(source, reason).Inc()
	}
}
