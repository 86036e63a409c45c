package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	riskAssessments = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "olms_customer_risk_assessments_total",
		Help: "Customer history requests by computed risk level",
	}, []string{"level"})

	receiptsGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "olms_receipts_generated_total",
		Help: "Receipts rendered by copy",
	}, []string{"copy"})

	uploadsStored = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "olms_uploads_total",
		Help: "Uploaded images by kind",
	}, []string{"kind"})

	riskZoneChanges = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "olms_risk_zone_changes_total",
		Help: "Loans moved into a risk zone by the revaluation job",
	}, []string{"zone"})
)
