package audit

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var eventsRecordedTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "supplychain_events_recorded_total",
	Help: "Number of audit events recorded",
})

var eventsAnchoredTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "supplychain_events_anchored_total",
	Help: "Number of events successfully anchored to the ledger",
})

var anchoringFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "supplychain_anchoring_failures_total",
	Help: "Number of failed ledger anchoring attempts",
})

var intakeDroppedTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "supplychain_notification_intake_dropped_total",
	Help: "Number of event ids rejected by the notification intake queue",
})
