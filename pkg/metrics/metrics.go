package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AssessmentsRequested counts assessment requests by outcome source
	// (model or fallback).
	AssessmentsRequested = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "greenconnect",
		Name:      "assessments_requested_total",
		Help:      "Number of carbon assessments requested, labelled by estimate source.",
	}, []string{"source"})

	// CreditsIssued counts credit lots issued
	CreditsIssued = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "greenconnect",
		Name:      "credits_issued_total",
		Help:      "Number of credit lots issued.",
	})

	// PurchasesCompleted counts completed purchases by kind (full or partial)
	PurchasesCompleted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "greenconnect",
		Name:      "purchases_completed_total",
		Help:      "Number of completed credit purchases, labelled by full or partial.",
	}, []string{"kind"})

	// PurchasesRejected counts purchases rejected by validation
	PurchasesRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "greenconnect",
		Name:      "purchases_rejected_total",
		Help:      "Number of rejected credit purchases, labelled by reason.",
	}, []string{"reason"})

	// CreditsExpired counts lots marked expired by the background sweep
	CreditsExpired = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "greenconnect",
		Name:      "credits_expired_total",
		Help:      "Number of credit lots marked expired.",
	})
)
