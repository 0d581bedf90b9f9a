package notify

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var notificationsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "supplychain_notifications_created_total",
	Help: "Number of notification log rows created by the dispatcher",
})

var dispatchSkippedTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "supplychain_dispatch_skipped_total",
	Help: "Number of events skipped by the dispatch eligibility gate",
})

var deliveriesSentTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "supplychain_deliveries_sent_total",
	Help: "Number of notifications delivered successfully",
})

var deliveriesFailedTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "supplychain_deliveries_failed_total",
	Help: "Number of notifications that exhausted their delivery attempts",
})

var escalationsTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "supplychain_escalations_total",
	Help: "Number of overdue critical notifications escalated to an admin",
})
